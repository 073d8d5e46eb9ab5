package dashboard

import (
	"context"
	"errors"
	"net/http"

	"sorabora/infras/otel"
	"sorabora/internal/domains/room/model/dto"
	"sorabora/internal/domains/room/service"
	"sorabora/shared/constant"
	"sorabora/shared/failure"
	"sorabora/shared/session"
	"sorabora/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Room
	sessions  session.Store
	presenter response.Presenter
	otel      otel.Otel
}

func New(service service.Room, sessions session.Store, presenter response.Presenter, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		sessions:  sessions,
		presenter: presenter,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.Dashboard)
	router.Post("/add_room", handler.AddRoom)
	router.Post("/update_room", handler.UpdateRoom)
	router.Post("/delete_room", handler.DeleteRoom)
}

func (handler *Handler) Dashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	resp, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)

		if failure.IsSchemaMissing(err) {
			response.WithSchemaDiagnostic(writer)

			return
		}

		response.WithInternalError(writer)

		return
	}

	handler.presenter.Render(writer, request, "dashboard.html", resp)
}

// AddRoom registers a new room, flashing the outcome either way, then
// returns to the dashboard.
func (handler *Handler) AddRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	if err := request.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse add room form")

		response.Redirect(writer, request, constant.PathDashboard)

		return
	}

	req := dto.AddRoomRequest{
		RoomNumber: request.PostFormValue(constant.FormFieldRoomNumber),
		RoomType:   request.PostFormValue(constant.FormFieldRoomType),
	}

	err := handler.service.Add(ctx, req)

	handler.finish(ctx, writer, request, scope, err, "Room "+req.RoomNumber+" added successfully!")
}

// UpdateRoom overwrites the status fields of an existing room.
func (handler *Handler) UpdateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	if err := request.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse update room form")

		response.Redirect(writer, request, constant.PathDashboard)

		return
	}

	req := dto.UpdateRoomRequest{
		RoomNumber:   request.PostFormValue(constant.FormFieldRoomNumber),
		GuestName:    request.PostFormValue(constant.FormFieldGuestName),
		Status:       request.PostFormValue(constant.FormFieldStatus),
		CheckOutDate: request.PostFormValue(constant.FormFieldCheckOutDate),
	}

	err := handler.service.Update(ctx, req)

	handler.finish(ctx, writer, request, scope, err, "Room "+req.RoomNumber+" updated successfully!")
}

// DeleteRoom removes a room; deleting a missing room still reads as
// success.
func (handler *Handler) DeleteRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	if err := request.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse delete room form")

		response.Redirect(writer, request, constant.PathDashboard)

		return
	}

	roomNumber := request.PostFormValue(constant.FormFieldRoomNumber)

	err := handler.service.Delete(ctx, roomNumber)

	handler.finish(ctx, writer, request, scope, err, "Room "+roomNumber+" deleted successfully!")
}

// finish flashes the outcome of a room mutation and returns to the
// dashboard, funnelling schema errors to the uniform diagnostic.
func (handler *Handler) finish(ctx context.Context, writer http.ResponseWriter, request *http.Request, scope otel.Scope, err error, success string) {
	sess := session.FromContext(ctx)

	if err != nil {
		scope.TraceError(err)

		if failure.IsSchemaMissing(err) {
			response.WithSchemaDiagnostic(writer)

			return
		}

		message := "Something went wrong. Please try again."

		var fail *failure.Failure
		if errors.As(err, &fail) {
			message = fail.Message
		}

		if flashErr := handler.sessions.AddFlash(ctx, sess, session.FlashError, message); flashErr != nil {
			log.Error().Err(flashErr).Msg("failed to flash room mutation failure")
		}

		response.Redirect(writer, request, constant.PathDashboard)

		return
	}

	if flashErr := handler.sessions.AddFlash(ctx, sess, session.FlashSuccess, success); flashErr != nil {
		log.Error().Err(flashErr).Msg("failed to flash room mutation success")
	}

	response.Redirect(writer, request, constant.PathDashboard)
}
