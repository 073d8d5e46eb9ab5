package response

import (
	"net/http"

	"sorabora/shared/session"
	"sorabora/transport/http/view"

	"github.com/rs/zerolog/log"
)

// Presenter renders templates with the cross-cutting page state filled in:
// the drained flash queue and the authentication flag from the request
// session.
type Presenter interface {
	Render(writer http.ResponseWriter, request *http.Request, name string, data any)
}

type presenterImpl struct {
	renderer view.Renderer
	sessions session.Store
}

func NewPresenter(renderer view.Renderer, sessions session.Store) Presenter {
	return &presenterImpl{
		renderer: renderer,
		sessions: sessions,
	}
}

func (p *presenterImpl) Render(writer http.ResponseWriter, request *http.Request, name string, data any) {
	ctx := request.Context()
	sess := session.FromContext(ctx)

	flashes, err := p.sessions.PopFlashes(ctx, sess)
	if err != nil {
		log.Error().Err(err).Msg("failed to pop flashes")
	}

	page := view.PageData{
		Data:          data,
		Flashes:       flashes,
		Authenticated: sess.Authenticated(),
	}

	if err := p.renderer.Render(writer, name, page); err != nil {
		WithInternalError(writer)
	}
}
