package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sorabora/config"
	"sorabora/infras/jwt"
	"sorabora/infras/otel"
	"sorabora/shared/constant"

	"github.com/google/uuid"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

const (
	sessionKeyPrefix = "session"
	flashKeyPrefix   = "flash"
)

// ErrNoSession is returned by write operations handed a nil session, which
// happens when neither the cookie nor a fresh issue produced one.
var ErrNoSession = errors.New("no active session")

// Flash is a one-shot message handed from a write operation to the next
// rendered page, then discarded.
type Flash struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Session is the per-client state correlated via the signed cookie. Only the
// ID travels with the client; LoggedIn is read from the server-side store.
type Session struct {
	ID       string
	LoggedIn bool
}

// Authenticated is true iff the stored flag is exactly boolean true.
func (s *Session) Authenticated() bool {
	return s != nil && s.LoggedIn
}

type sessionState struct {
	LoggedIn bool `json:"logged_in"`
}

// Store manages cookie-backed server-side sessions and their flash queue.
type Store interface {
	Load(ctx context.Context, r *http.Request) (*Session, error)
	Issue(ctx context.Context, w http.ResponseWriter) (*Session, error)
	SetLoggedIn(ctx context.Context, sess *Session) error
	Destroy(ctx context.Context, w http.ResponseWriter, sess *Session) error
	AddFlash(ctx context.Context, sess *Session, severity, message string) error
	PopFlashes(ctx context.Context, sess *Session) ([]Flash, error)
}

type storeImpl struct {
	client *goRedis.Client
	tokens jwt.Tokens
	cfg    *config.Config
	otel   otel.Otel
}

func NewStore(client *goRedis.Client, tokens jwt.Tokens, cfg *config.Config, ot otel.Otel) Store {
	return &storeImpl{
		client: client,
		tokens: tokens,
		cfg:    cfg,
		otel:   ot,
	}
}

// Load resolves the inbound cookie to a session. Any invalid, expired or
// forged cookie yields a nil session; callers issue a fresh one.
func (s *storeImpl) Load(ctx context.Context, r *http.Request) (*Session, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Load")
	defer scope.End()

	cookie, err := r.Cookie(s.cfg.Session.CookieName)
	if err != nil {
		return nil, nil
	}

	sessionID, err := s.tokens.ParseSessionToken(cookie.Value)
	if err != nil {
		log.Warn().Err(err).Msg("discarding unverifiable session cookie")

		return nil, nil
	}

	sess := &Session{ID: sessionID}

	raw, err := s.client.Get(ctx, s.sessionKey(sessionID)).Result()
	if errors.Is(err, goRedis.Nil) {
		return sess, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}

	state := sessionState{}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("failed to decode session state: %w", err)
	}

	sess.LoggedIn = state.LoggedIn

	return sess, nil
}

// Issue creates a fresh anonymous session and sets the signed cookie.
func (s *storeImpl) Issue(ctx context.Context, w http.ResponseWriter) (*Session, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Issue")
	defer scope.End()

	sessionID := uuid.NewString()

	token, err := s.tokens.IssueSessionToken(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	http.SetCookie(w, s.cookie(token, time.Duration(s.cfg.Session.TTLMinutes)*time.Minute))

	return &Session{ID: sessionID}, nil
}

// SetLoggedIn persists the logged-in flag under the session key.
func (s *storeImpl) SetLoggedIn(ctx context.Context, sess *Session) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".SetLoggedIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sess == nil {
		return ErrNoSession
	}

	raw, err := json.Marshal(sessionState{LoggedIn: true})
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	ttl := time.Duration(s.cfg.Session.TTLMinutes) * time.Minute

	if err = s.client.Set(ctx, s.sessionKey(sess.ID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist session state: %w", err)
	}

	sess.LoggedIn = true

	return nil
}

// Destroy removes all server-side state for the session and expires the
// cookie, not just the logged-in flag.
func (s *storeImpl) Destroy(ctx context.Context, w http.ResponseWriter, sess *Session) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Destroy")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sess != nil {
		if err = s.client.Del(ctx, s.sessionKey(sess.ID), s.flashKey(sess.ID)).Err(); err != nil {
			return fmt.Errorf("failed to delete session state: %w", err)
		}
	}

	http.SetCookie(w, s.cookie("", -time.Hour))

	return nil
}

// AddFlash pushes a one-shot message onto the session's flash queue.
func (s *storeImpl) AddFlash(ctx context.Context, sess *Session, severity, message string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".AddFlash")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sess == nil {
		return ErrNoSession
	}

	raw, err := json.Marshal(Flash{Severity: severity, Message: message})
	if err != nil {
		return fmt.Errorf("failed to encode flash: %w", err)
	}

	key := s.flashKey(sess.ID)

	if err = s.client.RPush(ctx, key, raw).Err(); err != nil {
		return fmt.Errorf("failed to queue flash: %w", err)
	}

	if err = s.client.Expire(ctx, key, time.Duration(s.cfg.Session.FlashTTLSeconds)*time.Second).Err(); err != nil {
		return fmt.Errorf("failed to expire flash queue: %w", err)
	}

	return nil
}

// PopFlashes drains the flash queue; each message is displayed exactly once.
func (s *storeImpl) PopFlashes(ctx context.Context, sess *Session) ([]Flash, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".PopFlashes")
	defer scope.End()

	if sess == nil {
		return nil, nil
	}

	key := s.flashKey(sess.ID)

	pipe := s.client.TxPipeline()
	entries := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, goRedis.Nil) {
		return nil, fmt.Errorf("failed to drain flash queue: %w", err)
	}

	values := entries.Val()
	flashes := make([]Flash, 0, len(values))

	for _, raw := range values {
		flash := Flash{}
		if err := json.Unmarshal([]byte(raw), &flash); err != nil {
			log.Warn().Err(err).Msg("dropping undecodable flash entry")

			continue
		}

		flashes = append(flashes, flash)
	}

	return flashes, nil
}

func (s *storeImpl) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", sessionKeyPrefix, id)
}

func (s *storeImpl) flashKey(id string) string {
	return fmt.Sprintf("%s:%s", flashKeyPrefix, id)
}

func (s *storeImpl) cookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     s.cfg.Session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewContext stores the request session in the context.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, constant.ContextKeySession, sess)
}

// FromContext retrieves the request session; nil when no session middleware
// ran.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(constant.ContextKeySession).(*Session)

	return sess
}
