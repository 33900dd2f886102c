package api

import (
	"errors"
	"net/http"
	"strconv"

	"homestay/internal/domain/booking"
	"homestay/internal/handler/dto/request"
	"homestay/internal/handler/dto/response"
	"homestay/internal/handler/httperr"
	"homestay/internal/handler/middleware"
	"homestay/internal/pkg/errs"
	"homestay/internal/usecase"
	"homestay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	sessions usecase.BookingSessions
	queries  queries.BookingQueries
	commands usecase.BookingCommands
}

func NewBookingHandler(
	sessions usecase.BookingSessions,
	q queries.BookingQueries,
	commands usecase.BookingCommands,
) *BookingHandler {
	return &BookingHandler{
		sessions: sessions,
		queries:  q,
		commands: commands,
	}
}

// @Summary Get booking context
// @Description Get property pricing and confirmed stays for the booking calendar
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} response.BookingContextResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/booking-context [get]
func (h *BookingHandler) GetBookingContext(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property ID", nil)
		return
	}

	view, err := h.queries.GetBookingContext(c.Request.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := response.FromBookingContextView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Open booking session
// @Description Open a date-selection session for a property
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.OpenBookingSessionRequest true "Open session request"
// @Success 201 {object} response.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-sessions [post]
func (h *BookingHandler) OpenSession(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req request.OpenBookingSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.sessions.Open(c.Request.Context(), profileID, req.PropertyID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionView(view))
}

// @Summary Get booking session
// @Description Get the current state of a booking session
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-sessions/{id} [get]
func (h *BookingHandler) GetSession(c *gin.Context) {
	profileID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	view, err := h.sessions.Get(c.Request.Context(), profileID, sessionID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// @Summary Select check-in date
// @Description Select the check-in date for a booking session
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body request.SelectDateRequest true "Date selection"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-sessions/{id}/select-start [post]
func (h *BookingHandler) SelectStart(c *gin.Context) {
	profileID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	var req request.SelectDateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.sessions.SelectStart(c.Request.Context(), profileID, sessionID, req.SelectedDay())
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// @Summary Select check-out date
// @Description Select the check-out date for a booking session
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body request.SelectDateRequest true "Date selection"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-sessions/{id}/select-end [post]
func (h *BookingHandler) SelectEnd(c *gin.Context) {
	profileID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	var req request.SelectDateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.sessions.SelectEnd(c.Request.Context(), profileID, sessionID, req.SelectedDay())
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// @Summary Clear selection
// @Description Reset the session's date selection
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-sessions/{id}/clear [post]
func (h *BookingHandler) ClearSession(c *gin.Context) {
	profileID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	view, err := h.sessions.Clear(c.Request.Context(), profileID, sessionID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// @Summary Confirm booking
// @Description Persist the selected stay as a confirmed booking
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 201 {object} response.ConfirmResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /booking-sessions/{id}/confirm [post]
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	profileID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	result, err := h.sessions.Confirm(c.Request.Context(), profileID, sessionID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromConfirmResult(result))
}

// @Summary List bookings
// @Description List the authenticated profile's confirmed bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 200)"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Success 200 {object} response.BookingListPageResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = parsed
	}
	var after *queries.Cursor
	if raw := c.Query("cursor"); raw != "" {
		after = &queries.Cursor{After: raw}
	}

	items, next, err := h.queries.ListByProfile(c.Request.Context(), profileID, after, limit)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := response.FromBookingListItems(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Description Get one of the authenticated profile's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), profileID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := response.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel booking
// @Description Cancel one of the authenticated profile's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), profileID, bookingID); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) sessionScope(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session ID", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return profileID, sessionID, true
}

func (h *BookingHandler) respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking session not found", nil)
	case errors.Is(err, errs.ErrPropertyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
	case errors.Is(err, errs.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Selected dates are no longer available", nil)
	case errors.Is(err, errs.ErrSelectionNotConfirmable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Selection is not confirmable", nil)
	case errors.Is(err, booking.ErrNoCheckInSelected):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Select a check-in date first", nil)
	case errors.Is(err, booking.ErrSubmissionInFlight):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking submission already in progress", nil)
	case errors.Is(err, booking.ErrAlreadySubmitted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Session already produced a booking", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
