package response

import (
	"net/http"

	"sorabora/shared/constant"
	"sorabora/shared/logger"
)

// Redirect sends the browser to url, using 303 after form posts so the
// follow-up is always a GET.
func Redirect(writer http.ResponseWriter, request *http.Request, url string) {
	code := http.StatusFound
	if request.Method == http.MethodPost {
		code = http.StatusSeeOther
	}

	http.Redirect(writer, request, url, code)
}

// WithPlainMessage sends a bare text response for the few paths that never
// render a template.
func WithPlainMessage(writer http.ResponseWriter, code int, message string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypePlainText)
	writer.WriteHeader(code)

	if _, err := writer.Write([]byte(message)); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithSchemaDiagnostic sends the uniform diagnostic shown when the database
// tables are missing, regardless of which page hit the error.
func WithSchemaDiagnostic(writer http.ResponseWriter) {
	WithPlainMessage(writer, http.StatusInternalServerError, constant.ResponseErrorSchemaMissing)
}

// WithInternalError sends a generic failure page body.
func WithInternalError(writer http.ResponseWriter) {
	WithPlainMessage(writer, http.StatusInternalServerError, "Something went wrong. Please try again.")
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithPlainMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}
