package middleware

import (
	"context"
	"net/http"

	"sorabora/infras/otel"
	"sorabora/shared/constant"
	"sorabora/shared/session"
	"sorabora/transport/http/response"
)

// Guard protects the staff-only routes. Authentication is decided per
// request from the session in the context, never from package state.
type Guard interface {
	RequireStaff(next http.Handler) http.Handler
}

type guardImpl struct {
	otel otel.Otel
}

func NewGuard(otel otel.Otel) Guard {
	return &guardImpl{
		otel: otel,
	}
}

// RequireStaff redirects anything but an exactly-authenticated session to
// the login page.
func (g *guardImpl) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := g.otel.NewScope(ctx, constant.OtelHandlerScopeName, "guard.RequireStaff")
		defer scope.End()

		sess := session.FromContext(ctx)
		if !sess.Authenticated() {
			response.Redirect(writer, request, constant.PathLogin)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyStaff, true)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
