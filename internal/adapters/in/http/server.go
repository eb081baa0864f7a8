// Package http exposes the parcel and delivery use cases over a JSON API.
// Handlers translate requests into commands and queries, and map the errs
// taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler       commands.CreateParcelCommandHandler
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler
	deleteParcelHandler       commands.DeleteParcelCommandHandler
	createDeliveryHandler     commands.CreateDeliveryCommandHandler
	assignDriverHandler       commands.AssignDriverCommandHandler
	startDeliveryHandler      commands.StartDeliveryCommandHandler
	completeDeliveryHandler   commands.CompleteDeliveryCommandHandler
	updateLocationHandler     commands.UpdateLocationCommandHandler

	// Query handlers
	getParcelHandler                 queries.GetParcelQueryHandler
	getParcelByTrackingNumberHandler queries.GetParcelByTrackingNumberQueryHandler
	listParcelsHandler               queries.ListParcelsQueryHandler
	listDeliveriesHandler            queries.ListDeliveriesQueryHandler
	getDeliveryHandler               queries.GetDeliveryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	updateLocationHandler commands.UpdateLocationCommandHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	getParcelByTrackingNumberHandler queries.GetParcelByTrackingNumberQueryHandler,
	listParcelsHandler queries.ListParcelsQueryHandler,
	listDeliveriesHandler queries.ListDeliveriesQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:              createParcelHandler,
		updateParcelStatusHandler:        updateParcelStatusHandler,
		deleteParcelHandler:              deleteParcelHandler,
		createDeliveryHandler:            createDeliveryHandler,
		assignDriverHandler:              assignDriverHandler,
		startDeliveryHandler:             startDeliveryHandler,
		completeDeliveryHandler:          completeDeliveryHandler,
		updateLocationHandler:            updateLocationHandler,
		getParcelHandler:                 getParcelHandler,
		getParcelByTrackingNumberHandler: getParcelByTrackingNumberHandler,
		listParcelsHandler:               listParcelsHandler,
		listDeliveriesHandler:            listDeliveriesHandler,
		getDeliveryHandler:               getDeliveryHandler,
	}
}

// RegisterRoutes mounts all API routes under /api/v1 behind the identity
// middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	api := e.Group("/api/v1", auth.Authenticate)

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels", s.ListParcels)
	api.GET("/parcels/:id", s.GetParcel)
	api.GET("/parcels/tracking/:trackingNumber", s.GetParcelByTrackingNumber)
	api.PATCH("/parcels/:id/status", s.UpdateParcelStatus)
	api.DELETE("/parcels/:id", s.DeleteParcel)

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries", s.ListDeliveries)
	api.GET("/deliveries/:id", s.GetDelivery)
	api.PATCH("/deliveries/:id/assign", s.AssignDriver)
	api.PATCH("/deliveries/:id/start", s.StartDelivery)
	api.PATCH("/deliveries/:id/complete", s.CompleteDelivery)
	api.POST("/deliveries/:id/location", s.UpdateLocation)
}

// CreateParcel handles POST /api/v1/parcels. The caller becomes the sender.
func (s *Server) CreateParcel(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	var request createParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	receiverID, err := parseUUID("receiverId", request.ReceiverID)
	if err != nil {
		return respondError(ctx, err)
	}
	priority, err := parcel.PriorityFromString(request.Priority)
	if err != nil {
		return respondError(ctx, err)
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(parcelID, actor, receiverID, parcel.Details{
		Description:         request.Description,
		WeightKG:            request.WeightKG,
		Dimensions:          request.Dimensions,
		DeclaredValue:       request.DeclaredValue,
		Priority:            priority,
		PickupAddress:       request.PickupAddress,
		DeliveryAddress:     request.DeliveryAddress,
		SpecialInstructions: request.SpecialInstructions,
		EstimatedDelivery:   request.EstimatedDelivery,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": parcelID.String()})
}

// GetParcel handles GET /api/v1/parcels/:id.
func (s *Server) GetParcel(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	parcelID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetParcelQuery(parcelID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelView(response))
}

// GetParcelByTrackingNumber handles GET /api/v1/parcels/tracking/:trackingNumber.
func (s *Server) GetParcelByTrackingNumber(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	trackingNumber, err := parcel.TrackingNumberFromString(ctx.Param("trackingNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetParcelByTrackingNumberQuery(trackingNumber, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getParcelByTrackingNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelView(response))
}

// ListParcels handles GET /api/v1/parcels with an optional status filter.
func (s *Server) ListParcels(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	var statusFilter *parcel.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := parcel.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewListParcelsQuery(actor, statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	parcels, err := s.listParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]parcelSummaryView, len(parcels))
	for i, summary := range parcels {
		response[i] = toParcelSummaryView(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateParcelStatus handles PATCH /api/v1/parcels/:id/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	parcelID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request updateParcelStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := parcel.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	coordinates, err := optionalCoordinates(request.Latitude, request.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(
		parcelID, actor, status,
		request.Description, request.Location, coordinates,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateParcelStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteParcel handles DELETE /api/v1/parcels/:id.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	parcelID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	var request createDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	parcelID, err := parseUUID("parcelId", request.ParcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	var driverID *kernel.UUID
	if request.DriverID != nil {
		id, idErr := parseUUID("driverId", *request.DriverID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		driverID = &id
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, actor, parcelID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": deliveryID.String()})
}

// ListDeliveries handles GET /api/v1/deliveries.
func (s *Server) ListDeliveries(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	query, err := queries.NewListDeliveriesQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.listDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]deliveryListItemView, len(deliveries))
	for i, item := range deliveries {
		response[i] = deliveryListItemView{
			Delivery: toDeliveryView(item.Delivery),
			Parcel:   toParcelSummaryView(item.Parcel),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) GetDelivery(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	deliveryID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryListItemView{
		Delivery: toDeliveryView(response.Delivery),
		Parcel:   toParcelSummaryView(response.Parcel),
	})
}

// AssignDriver handles PATCH /api/v1/deliveries/:id/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	deliveryID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request assignDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	driverID, err := parseUUID("driverId", request.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(deliveryID, actor, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles PATCH /api/v1/deliveries/:id/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	deliveryID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartDeliveryCommand(deliveryID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles PATCH /api/v1/deliveries/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	deliveryID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request completeDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, actor, delivery.Completion{
		Notes:           request.Notes,
		ProofOfDelivery: request.ProofOfDelivery,
		Signature:       request.Signature,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateLocation handles POST /api/v1/deliveries/:id/location.
func (s *Server) UpdateLocation(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	deliveryID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request updateLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	position, err := kernel.NewCoordinates(request.Latitude, request.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateLocationCommand(deliveryID, actor, position, request.Accuracy)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// parseUUID wraps identifier parse failures in the errs taxonomy so they
// surface as 400s rather than opaque server errors.
func parseUUID(paramName, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

// optionalCoordinates builds a coordinate pair from two optional fields.
// Supplying only one of the two is a client error.
func optionalCoordinates(latitude, longitude *float64) (*kernel.Coordinates, error) {
	if latitude == nil && longitude == nil {
		return nil, nil
	}
	if latitude == nil || longitude == nil {
		return nil, errs.NewValueIsInvalidError("coordinates")
	}

	coordinates, err := kernel.NewCoordinates(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &coordinates, nil
}

// respondError maps the errs taxonomy onto HTTP status codes. Anything
// outside the taxonomy is an infrastructure failure and stays opaque.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrAccessForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrStateConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, errorBody{Code: status, Message: message})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func respondUnauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, errorBody{
		Code:    http.StatusUnauthorized,
		Message: "Missing identity",
	})
}
