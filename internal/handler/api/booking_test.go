//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"homestay/internal/domain/booking"
	"homestay/internal/handler/api"
	resdto "homestay/internal/handler/dto/response"
	"homestay/internal/pkg/errs"
	"homestay/internal/usecase"
	"homestay/internal/usecase/queries"
	"homestay/tests/common/httptest"
	"homestay/tests/common/testutil"
	queriesmock "homestay/tests/mock/queries"
	usecasemock "homestay/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockSessions *usecasemock.MockBookingSessions
	mockQueries  *queriesmock.MockBookingQueries
	mockCommands *usecasemock.MockBookingCommands
	handler      *api.BookingHandler

	profileID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = usecasemock.NewMockBookingSessions(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCommands = usecasemock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockSessions, s.mockQueries, s.mockCommands)

	s.profileID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("profile_id", s.profileID)
		c.Next()
	}

	s.router.GET("/properties/:id/booking-context", authMiddleware, s.handler.GetBookingContext)
	s.router.POST("/booking-sessions", authMiddleware, s.handler.OpenSession)
	s.router.GET("/booking-sessions/:id", authMiddleware, s.handler.GetSession)
	s.router.POST("/booking-sessions/:id/select-start", authMiddleware, s.handler.SelectStart)
	s.router.POST("/booking-sessions/:id/select-end", authMiddleware, s.handler.SelectEnd)
	s.router.POST("/booking-sessions/:id/clear", authMiddleware, s.handler.ClearSession)
	s.router.POST("/booking-sessions/:id/confirm", authMiddleware, s.handler.ConfirmSession)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func emptySessionView(propertyID uuid.UUID) *usecase.SessionView {
	return &usecase.SessionView{
		ID:                uuid.New(),
		PropertyID:        propertyID,
		NightlyPriceCents: 120_00,
		Status:            "empty",
	}
}

// ================================================================================
// TestGetBookingContext
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBookingContext() {
	propertyID := uuid.New()
	url := "/properties/" + propertyID.String() + "/booking-context"

	s.Run("success: returns context with disabled dates", func() {
		view := &queries.BookingContextView{
			PropertyID:        propertyID,
			PropertyName:      "Sea Breeze Cottage",
			NightlyPriceCents: 120_00,
			ExistingStays: []queries.StayView{
				{
					CheckIn:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
					CheckOut: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
				},
			},
			DisabledDates: []time.Time{
				time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			},
		}
		s.mockQueries.EXPECT().GetBookingContext(gomock.Any(), propertyID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp resdto.BookingContextResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(propertyID, resp.PropertyID)
		s.Equal("Sea Breeze Cottage", resp.PropertyName)
		s.Equal([]string{"2026-03-10", "2026-03-11"}, resp.DisabledDates)
	})

	s.Run("error: unknown property returns 404", func() {
		s.mockQueries.EXPECT().GetBookingContext(gomock.Any(), propertyID).
			Return(nil, errs.ErrPropertyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/not-a-uuid/booking-context", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: missing token returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestOpenSession
// ================================================================================

func (s *BookingHandlerTestSuite) TestOpenSession() {
	url := "/booking-sessions"
	propertyID := uuid.New()
	reqBody := map[string]any{"property_id": propertyID.String()}

	s.Run("success: returns 201 with the empty session", func() {
		s.mockSessions.EXPECT().Open(gomock.Any(), s.profileID, propertyID).
			Return(emptySessionView(propertyID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("empty", resp.Status)
		s.Equal(propertyID, resp.PropertyID)
	})

	s.Run("error: missing property_id returns 400", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("property_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unknown property returns 404", func() {
		s.mockSessions.EXPECT().Open(gomock.Any(), s.profileID, propertyID).
			Return(nil, errs.ErrPropertyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestSelectDates
// ================================================================================

func (s *BookingHandlerTestSuite) TestSelectDates() {
	sessionID := uuid.New()
	propertyID := uuid.New()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	reqBody := map[string]any{"date": "2026-03-10T15:30:00Z"}

	s.Run("success: select-start truncates to the day", func() {
		view := emptySessionView(propertyID)
		view.Status = "selecting"
		s.mockSessions.EXPECT().SelectStart(gomock.Any(), s.profileID, sessionID, day).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/booking-sessions/"+sessionID.String()+"/select-start", reqBody, "bearer-token")

		var resp resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("selecting", resp.Status)
	})

	s.Run("error: select-end without start returns 400", func() {
		s.mockSessions.EXPECT().SelectEnd(gomock.Any(), s.profileID, sessionID, day).
			Return(nil, booking.ErrNoCheckInSelected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/booking-sessions/"+sessionID.String()+"/select-end", reqBody, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: selecting on a submitted session returns 409", func() {
		s.mockSessions.EXPECT().SelectStart(gomock.Any(), s.profileID, sessionID, day).
			Return(nil, booking.ErrAlreadySubmitted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/booking-sessions/"+sessionID.String()+"/select-start", reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: unknown session returns 404", func() {
		s.mockSessions.EXPECT().SelectStart(gomock.Any(), s.profileID, sessionID, day).
			Return(nil, errs.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/booking-sessions/"+sessionID.String()+"/select-start", reqBody, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: missing date returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/booking-sessions/"+sessionID.String()+"/select-start", map[string]any{}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestConfirmSession
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmSession() {
	sessionID := uuid.New()
	url := "/booking-sessions/" + sessionID.String() + "/confirm"

	s.Run("success: returns 201 with the checkout URL", func() {
		bookingID := uuid.New()
		s.mockSessions.EXPECT().Confirm(gomock.Any(), s.profileID, sessionID).
			Return(&usecase.ConfirmResult{
				BookingID:   bookingID,
				CheckoutURL: "/checkout?bookingId=" + bookingID.String(),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var resp resdto.ConfirmResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(bookingID, resp.BookingID)
		s.Equal("/checkout?bookingId="+bookingID.String(), resp.CheckoutURL)
	})

	s.Run("error: lost race returns 409", func() {
		s.mockSessions.EXPECT().Confirm(gomock.Any(), s.profileID, sessionID).
			Return(nil, errs.ErrBookingConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: unconfirmable selection returns 422", func() {
		s.mockSessions.EXPECT().Confirm(gomock.Any(), s.profileID, sessionID).
			Return(nil, errs.ErrSelectionNotConfirmable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

// ================================================================================
// TestBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestBookings() {
	bookingID := uuid.New()

	s.Run("success: list returns the profile's bookings", func() {
		items := []*queries.BookingListItem{
			{
				ID:              bookingID,
				PropertyID:      uuid.New(),
				PropertyName:    "Sea Breeze Cottage",
				PropertyCountry: "Portugal",
				CheckIn:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				CheckOut:        time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
				TotalNights:     3,
				OrderTotalCents: 360_00,
			},
		}
		s.mockQueries.EXPECT().ListByProfile(gomock.Any(), s.profileID, gomock.Nil(), 0).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var resp resdto.BookingListPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp.Items, 1)
		s.Equal(bookingID, resp.Items[0].ID)
		s.Equal("Portugal", resp.Items[0].PropertyCountry)
		s.Nil(resp.NextCursor)
	})

	s.Run("success: list forwards limit and cursor and returns the next cursor", func() {
		next := &queries.Cursor{After: "b3BhcXVl"}
		s.mockQueries.EXPECT().
			ListByProfile(gomock.Any(), s.profileID, &queries.Cursor{After: "abc"}, 1).
			Return([]*queries.BookingListItem{{ID: bookingID}}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=1&cursor=abc", nil, "bearer-token")

		var resp resdto.BookingListPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().NotNil(resp.NextCursor)
		s.Equal("b3BhcXVl", *resp.NextCursor)
	})

	s.Run("error: malformed cursor returns 400", func() {
		s.mockQueries.EXPECT().
			ListByProfile(gomock.Any(), s.profileID, &queries.Cursor{After: "???"}, 0).
			Return(nil, nil, errs.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=???", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("success: get returns one booking", func() {
		view := &queries.BookingView{
			ID:              bookingID,
			ProfileID:       s.profileID,
			PropertyName:    "Sea Breeze Cottage",
			TotalNights:     3,
			OrderTotalCents: 360_00,
			Status:          "confirmed",
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.profileID, bookingID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "bearer-token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(bookingID, resp.ID)
		s.Equal("confirmed", resp.Status)
	})

	s.Run("error: foreign booking reads as 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.profileID, bookingID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("success: delete returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.profileID, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+bookingID.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: deleting an unknown booking returns 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.profileID, bookingID).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+bookingID.String(), nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
