package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"

	"sorabora/config"
	"sorabora/infras/otel"
	"sorabora/shared/constant"
	"sorabora/shared/failure"
	"sorabora/shared/session"

	"github.com/rs/zerolog/log"
)

// Verifier checks a submitted credential pair. It is injected so tests can
// swap the static staff account for a scripted verdict.
type Verifier interface {
	Verify(username, password string) bool
}

type staticVerifier struct {
	username string
	password string
}

// NewStaticVerifier verifies against the single staff account from
// configuration using constant-time comparison.
func NewStaticVerifier(cfg *config.Config) Verifier {
	return &staticVerifier{
		username: cfg.Staff.Username,
		password: cfg.Staff.Password,
	}
}

func (v *staticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password))

	return userOK&passOK == 1
}

type Auth interface {
	Login(ctx context.Context, sess *session.Session, username, password string) error
	Logout(ctx context.Context, w http.ResponseWriter, sess *session.Session) (*session.Session, error)
}

type serviceImpl struct {
	verifier Verifier
	sessions session.Store
	otel     otel.Otel
}

func New(verifier Verifier, sessions session.Store, otel otel.Otel) Auth {
	return &serviceImpl{
		verifier: verifier,
		sessions: sessions,
		otel:     otel,
	}
}

// Login marks the session authenticated when the credential pair matches.
// A mismatch on either field leaves the session untouched.
func (s *serviceImpl) Login(ctx context.Context, sess *session.Session, username, password string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.verifier.Verify(username, password) {
		return failure.Unauthorized("Invalid credentials, please try again.")
	}

	if err = s.sessions.SetLoggedIn(ctx, sess); err != nil {
		log.Error().Err(err).Msg("failed to persist login")

		return fmt.Errorf("failed to persist login: %w", err)
	}

	return nil
}

// Logout destroys the session entirely and issues a fresh anonymous one so
// the confirmation flash has a queue to land on.
func (s *serviceImpl) Logout(ctx context.Context, w http.ResponseWriter, sess *session.Session) (fresh *session.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.sessions.Destroy(ctx, w, sess); err != nil {
		log.Error().Err(err).Msg("failed to destroy session")

		return nil, fmt.Errorf("failed to destroy session: %w", err)
	}

	fresh, err = s.sessions.Issue(ctx, w)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session")

		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	return fresh, nil
}
