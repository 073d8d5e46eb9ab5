package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession contextKey = "session"
	ContextKeyStaff   contextKey = "staff"
)

const (
	FormFieldFirstName    = "firstName"
	FormFieldLastName     = "lastName"
	FormFieldRoom         = "room"
	FormFieldCheckIn      = "checkIn"
	FormFieldUsername     = "username"
	FormFieldPassword     = "password"
	FormFieldRoomNumber   = "room_number"
	FormFieldRoomType     = "room_type"
	FormFieldGuestName    = "guest_name"
	FormFieldStatus       = "status"
	FormFieldCheckOutDate = "check_out_date"
)

const (
	RoomStatusAvailable = "Available"
	RoomStatusOccupied  = "Occupied"
)

// DefaultRoomType is the room category applied when the booking form
// omits a selection.
const DefaultRoomType = "lake"

const (
	PathHome      = "/"
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
	PqErrorCodeUndefinedTable  = "42P01"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelSessionScopeName    = "session"
	OtelEventScopeName      = "event"
	OtelS3ScopeName         = "s3"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypePlainText      = "text/plain; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorSchemaMissing        = "Database tables not found. Run the migration tool (cmd/migrate up) before starting the server."
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
	Space = " "
)
