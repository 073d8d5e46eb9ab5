package booking

import (
	"net/http"

	"sorabora/infras/otel"
	"sorabora/internal/domains/booking/model/dto"
	"sorabora/internal/domains/booking/service"
	"sorabora/shared/constant"
	"sorabora/shared/failure"
	"sorabora/shared/session"
	"sorabora/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Booking
	sessions  session.Store
	presenter response.Presenter
	otel      otel.Otel
}

func New(service service.Booking, sessions session.Store, presenter response.Presenter, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		sessions:  sessions,
		presenter: presenter,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/booking", handler.BookingForm)
	router.Post("/booking", handler.SubmitBooking)
}

func (handler *Handler) BookingForm(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingForm")
	defer scope.End()

	handler.presenter.Render(writer, request, "booking.html", dto.BookingPage{})
}

// SubmitBooking records the reservation and renders the confirmation in
// place of the form.
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	if err := request.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse booking form")

		response.Redirect(writer, request, "/booking")

		return
	}

	req := dto.SubmitBookingRequest{
		FirstName: request.PostFormValue(constant.FormFieldFirstName),
		LastName:  request.PostFormValue(constant.FormFieldLastName),
		RoomType:  request.PostFormValue(constant.FormFieldRoom),
		CheckIn:   request.PostFormValue(constant.FormFieldCheckIn),
	}

	booking, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)

		if failure.IsSchemaMissing(err) {
			response.WithSchemaDiagnostic(writer)

			return
		}

		sess := session.FromContext(ctx)
		if flashErr := handler.sessions.AddFlash(ctx, sess, session.FlashError, "We could not record your booking. Please try again."); flashErr != nil {
			log.Error().Err(flashErr).Msg("failed to flash booking failure")
		}

		response.Redirect(writer, request, "/booking")

		return
	}

	page := dto.BookingPage{
		Submitted: true,
		Name:      booking.Name,
		RoomType:  booking.RoomType,
		CheckIn:   booking.CheckIn,
	}

	handler.presenter.Render(writer, request, "booking.html", page)
}
