package auth

import (
	"net/http"

	"sorabora/infras/otel"
	"sorabora/internal/domains/auth/service"
	"sorabora/shared/constant"
	"sorabora/shared/session"
	"sorabora/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Auth
	sessions  session.Store
	presenter response.Presenter
	otel      otel.Otel
}

func New(service service.Auth, sessions session.Store, presenter response.Presenter, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		sessions:  sessions,
		presenter: presenter,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/login", handler.LoginForm)
	router.Post("/login", handler.Login)
	router.Get("/logout", handler.Logout)
}

func (handler *Handler) LoginForm(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoginForm")
	defer scope.End()

	sess := session.FromContext(request.Context())
	if sess.Authenticated() {
		response.Redirect(writer, request, constant.PathDashboard)

		return
	}

	handler.presenter.Render(writer, request, "login.html", nil)
}

// Login verifies the submitted credentials. Success lands on the dashboard;
// failure flashes and returns to the form.
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	if err := request.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse login form")

		response.Redirect(writer, request, constant.PathLogin)

		return
	}

	sess := session.FromContext(ctx)

	username := request.PostFormValue(constant.FormFieldUsername)
	password := request.PostFormValue(constant.FormFieldPassword)

	if err := handler.service.Login(ctx, sess, username, password); err != nil {
		scope.TraceError(err)

		if flashErr := handler.sessions.AddFlash(ctx, sess, session.FlashError, "Invalid credentials, please try again."); flashErr != nil {
			log.Error().Err(flashErr).Msg("failed to flash login failure")
		}

		response.Redirect(writer, request, constant.PathLogin)

		return
	}

	if flashErr := handler.sessions.AddFlash(ctx, sess, session.FlashSuccess, "Access Authorized. Welcome back."); flashErr != nil {
		log.Error().Err(flashErr).Msg("failed to flash login confirmation")
	}

	response.Redirect(writer, request, constant.PathDashboard)
}

// Logout destroys the session and lands back on the login page. The flash
// is queued on the fresh session issued during logout.
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	sess := session.FromContext(ctx)

	fresh, err := handler.service.Logout(ctx, writer, sess)
	if err != nil {
		scope.TraceError(err)

		response.Redirect(writer, request, constant.PathLogin)

		return
	}

	if flashErr := handler.sessions.AddFlash(ctx, fresh, session.FlashSuccess, "You have been logged out."); flashErr != nil {
		log.Error().Err(flashErr).Msg("failed to flash logout confirmation")
	}

	response.Redirect(writer, request, constant.PathLogin)
}
