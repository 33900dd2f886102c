//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"homestay/internal/handler/dto/response"
	"homestay/tests/common/authtest"
	"homestay/tests/common/dbtest"
	"homestay/tests/common/httptest"
	"homestay/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingContextURL = "/api/properties/%s/booking-context"
	sessionsURL       = "/api/booking-sessions"
	bookingsURL       = "/api/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) token(profileID uuid.UUID) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), profileID)
}

func futureDay(days int) time.Time {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, days)
}

func dateBody(day time.Time) map[string]any {
	return map[string]any{"date": day.Format(time.RFC3339)}
}

// =============================================================================
// TestBookingContext
// =============================================================================

func (s *BookingSuite) TestBookingContext() {
	s.Run("Normal case: returns price and disabled dates", func() {
		t := s.T()

		profileID := uuid.New()
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Sea Breeze Cottage", 120_00)
		dbtest.CreateTestBooking(t, s.DB, propertyID, uuid.New(), futureDay(10), futureDay(12))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(bookingContextURL, propertyID), nil, s.token(profileID))

		var resp response.BookingContextResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, propertyID, resp.PropertyID)
		require.Equal(t, int64(120_00), resp.NightlyPriceCents)
		require.Equal(t, []string{
			futureDay(10).Format("2006-01-02"),
			futureDay(11).Format("2006-01-02"),
		}, resp.DisabledDates)
	})

	s.Run("Error case: unknown property returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(bookingContextURL, uuid.New()), nil, s.token(uuid.New()))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Property not found")
	})

	s.Run("Error case: request without token returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(bookingContextURL, uuid.New()), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestBookingFlow - select dates and confirm over the full stack
// =============================================================================

func (s *BookingSuite) TestBookingFlow() {
	s.Run("Normal case: open, select, confirm and read back the booking", func() {
		t := s.T()

		profileID := uuid.New()
		token := s.token(profileID)
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Sea Breeze Cottage", 120_00)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL,
			map[string]any{"property_id": propertyID}, token)
		var session response.SessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &session)
		require.Equal(t, "empty", session.Status)

		sessionURL := sessionsURL + "/" + session.ID.String()

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-start", dateBody(futureDay(5)), token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &session)
		require.Equal(t, "selecting", session.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-end", dateBody(futureDay(8)), token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &session)
		require.Equal(t, "valid", session.Status)
		require.NotNil(t, session.Nights)
		require.Equal(t, 3, *session.Nights)
		require.NotNil(t, session.OrderTotalCents)
		require.Equal(t, int64(360_00), *session.OrderTotalCents)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionURL+"/confirm", nil, token)
		var confirmed response.ConfirmResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &confirmed)
		require.NotEqual(t, uuid.Nil, confirmed.BookingID)
		require.Equal(t, "/checkout?bookingId="+confirmed.BookingID.String(), confirmed.CheckoutURL)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+confirmed.BookingID.String(), nil, token)
		var booked response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &booked)
		require.Equal(t, propertyID, booked.PropertyID)
		require.Equal(t, "confirmed", booked.Status)
		require.Equal(t, int32(3), booked.TotalNights)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		var list response.BookingListPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Items, 1)
		require.Equal(t, confirmed.BookingID, list.Items[0].ID)
		require.Nil(t, list.NextCursor)
	})

	s.Run("Normal case: selecting the same day twice clears the selection", func() {
		t := s.T()

		profileID := uuid.New()
		token := s.token(profileID)
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Sea Breeze Cottage", 120_00)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL,
			map[string]any{"property_id": propertyID}, token)
		var session response.SessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &session)

		sessionURL := sessionsURL + "/" + session.ID.String()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-start", dateBody(futureDay(5)), token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-end", dateBody(futureDay(5)), token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &session)
		require.Equal(t, "empty", session.Status)
	})

	s.Run("Error case: overlapping stay is invalid and unconfirmable", func() {
		t := s.T()

		profileID := uuid.New()
		token := s.token(profileID)
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Sea Breeze Cottage", 120_00)
		dbtest.CreateTestBooking(t, s.DB, propertyID, uuid.New(), futureDay(6), futureDay(9))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL,
			map[string]any{"property_id": propertyID}, token)
		var session response.SessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &session)

		sessionURL := sessionsURL + "/" + session.ID.String()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-start", dateBody(futureDay(5)), token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-end", dateBody(futureDay(8)), token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &session)
		require.Equal(t, "invalid", session.Status)
		require.NotNil(t, session.Reason)
		require.Equal(t, "overlap", *session.Reason)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionURL+"/confirm", nil, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Error case: concurrent winner surfaces as 409 on confirm", func() {
		t := s.T()

		profileID := uuid.New()
		token := s.token(profileID)
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Sea Breeze Cottage", 120_00)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL,
			map[string]any{"property_id": propertyID}, token)
		var session response.SessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &session)

		sessionURL := sessionsURL + "/" + session.ID.String()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-start", dateBody(futureDay(5)), token)
		require.Equal(t, http.StatusOK, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-end", dateBody(futureDay(8)), token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &session)
		require.Equal(t, "valid", session.Status)

		// Another guest books the same nights after this session validated.
		dbtest.CreateTestBooking(t, s.DB, propertyID, uuid.New(), futureDay(6), futureDay(9))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionURL+"/confirm", nil, token)
		require.Equal(t, http.StatusConflict, w.Code)

		// The refreshed snapshot now reports the overlap.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, sessionURL, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &session)
		require.Equal(t, "invalid", session.Status)
		require.NotNil(t, session.Reason)
		require.Equal(t, "overlap", *session.Reason)
	})

	s.Run("Normal case: adjacent stays do not conflict", func() {
		t := s.T()

		profileID := uuid.New()
		token := s.token(profileID)
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Sea Breeze Cottage", 120_00)
		dbtest.CreateTestBooking(t, s.DB, propertyID, uuid.New(), futureDay(3), futureDay(5))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL,
			map[string]any{"property_id": propertyID}, token)
		var session response.SessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &session)

		sessionURL := sessionsURL + "/" + session.ID.String()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-start", dateBody(futureDay(5)), token)
		require.Equal(t, http.StatusOK, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-end", dateBody(futureDay(7)), token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &session)
		require.Equal(t, "valid", session.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionURL+"/confirm", nil, token)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	s.Run("Error case: foreign session reads as 404", func() {
		t := s.T()

		token := s.token(uuid.New())
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Sea Breeze Cottage", 120_00)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL,
			map[string]any{"property_id": propertyID}, token)
		var session response.SessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &session)

		otherToken := s.token(uuid.New())
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			sessionsURL+"/"+session.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestListPagination
// =============================================================================

func (s *BookingSuite) TestListPagination() {
	s.Run("Normal case: cursor walks every booking exactly once", func() {
		t := s.T()

		profileID := uuid.New()
		token := s.token(profileID)
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Sea Breeze Cottage", 120_00)

		seen := map[uuid.UUID]bool{}
		for i := range 3 {
			id := dbtest.CreateTestBooking(t, s.DB, propertyID, profileID,
				futureDay(3+2*i), futureDay(4+2*i))
			seen[id] = false
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2", nil, token)
		var page response.BookingListPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 2)
		require.NotNil(t, page.NextCursor)
		for _, item := range page.Items {
			seen[item.ID] = true
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"?limit=2&cursor="+*page.NextCursor, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 1)
		require.Nil(t, page.NextCursor)
		seen[page.Items[0].ID] = true

		for id, visited := range seen {
			require.True(t, visited, "booking %s missing from paginated listing", id)
		}
	})

	s.Run("Error case: garbage cursor returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"?cursor=garbage", nil, s.token(uuid.New()))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestDeleteBooking
// =============================================================================

func (s *BookingSuite) TestDeleteBooking() {
	s.Run("Normal case: deleting a booking frees the nights", func() {
		t := s.T()

		profileID := uuid.New()
		token := s.token(profileID)
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Sea Breeze Cottage", 120_00)
		bookingID := dbtest.CreateTestBooking(t, s.DB, propertyID, profileID, futureDay(5), futureDay(8))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+bookingID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		// The nights are bookable again.
		otherToken := s.token(uuid.New())
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL,
			map[string]any{"property_id": propertyID}, otherToken)
		var session response.SessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &session)

		sessionURL := sessionsURL + "/" + session.ID.String()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-start", dateBody(futureDay(5)), otherToken)
		require.Equal(t, http.StatusOK, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			sessionURL+"/select-end", dateBody(futureDay(8)), otherToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &session)
		require.Equal(t, "valid", session.Status)
	})

	s.Run("Error case: deleting another profile's booking returns 404", func() {
		t := s.T()

		ownerID := uuid.New()
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Sea Breeze Cottage", 120_00)
		bookingID := dbtest.CreateTestBooking(t, s.DB, propertyID, ownerID, futureDay(5), futureDay(8))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+bookingID.String(), nil, s.token(uuid.New()))
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
