package pages

import (
	"net/http"

	"sorabora/infras/otel"
	"sorabora/internal/domains/gallery/service"
	"sorabora/shared/constant"
	"sorabora/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Handler serves the public informational pages and the guarded premises
// page. None of them touch the database.
type Handler struct {
	gallery   service.Gallery
	presenter response.Presenter
	otel      otel.Otel
}

func New(gallery service.Gallery, presenter response.Presenter, otel otel.Otel) Handler {
	return Handler{
		gallery:   gallery,
		presenter: presenter,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Home)
	router.Get("/rooms", handler.Rooms)
	router.Get("/about", handler.About)
	router.Get("/gallery", handler.Gallery)
	router.Get("/contact", handler.Contact)
	router.Get("/staff", handler.Staff)
}

// GuardedRouter mounts the staff-only pages.
func (handler *Handler) GuardedRouter(router chi.Router) {
	router.Get("/premises_management", handler.PremisesManagement)
}

func (handler *Handler) Home(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Home")
	defer scope.End()

	handler.presenter.Render(writer, request, "index.html", nil)
}

func (handler *Handler) Rooms(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Rooms")
	defer scope.End()

	handler.presenter.Render(writer, request, "rooms.html", nil)
}

func (handler *Handler) About(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".About")
	defer scope.End()

	handler.presenter.Render(writer, request, "about.html", nil)
}

func (handler *Handler) Gallery(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Gallery")
	defer scope.End()

	images, err := handler.gallery.Images(ctx)
	if err != nil {
		scope.TraceError(err)

		images = []string{}
	}

	handler.presenter.Render(writer, request, "gallery.html", images)
}

func (handler *Handler) Contact(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Contact")
	defer scope.End()

	handler.presenter.Render(writer, request, "contact.html", nil)
}

func (handler *Handler) Staff(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Staff")
	defer scope.End()

	handler.presenter.Render(writer, request, "staff.html", nil)
}

func (handler *Handler) PremisesManagement(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PremisesManagement")
	defer scope.End()

	handler.presenter.Render(writer, request, "premises.html", nil)
}
