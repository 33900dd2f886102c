package response

import (
	"time"

	"homestay/internal/usecase"
	"homestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StayResponse struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

type BookingContextResponse struct {
	PropertyID        uuid.UUID      `json:"propertyId"`
	PropertyName      string         `json:"propertyName"`
	NightlyPriceCents int64          `json:"nightlyPriceCents"`
	ExistingStays     []StayResponse `json:"existingStays"`
	DisabledDates     []string       `json:"disabledDates"`
}

type SessionResponse struct {
	ID                uuid.UUID  `json:"id"`
	PropertyID        uuid.UUID  `json:"propertyId"`
	NightlyPriceCents int64      `json:"nightlyPriceCents"`
	Status            string     `json:"status"`
	Reason            *string    `json:"reason,omitempty"`
	CheckIn           *time.Time `json:"checkIn,omitempty"`
	CheckOut          *time.Time `json:"checkOut,omitempty"`
	Nights            *int       `json:"nights,omitempty"`
	OrderTotalCents   *int64     `json:"orderTotalCents,omitempty"`
}

type ConfirmResponse struct {
	BookingID   uuid.UUID `json:"bookingId"`
	CheckoutURL string    `json:"checkoutUrl"`
}

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"propertyId"`
	PropertyName    string    `json:"propertyName"`
	ProfileID       uuid.UUID `json:"profileId"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	TotalNights     int32     `json:"totalNights"`
	OrderTotalCents int64     `json:"orderTotalCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"propertyId"`
	PropertyName    string    `json:"propertyName"`
	PropertyCountry string    `json:"propertyCountry"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	TotalNights     int32     `json:"totalNights"`
	OrderTotalCents int64     `json:"orderTotalCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingContextView(v *queries.BookingContextView) (*BookingContextResponse, error) {
	resp := &BookingContextResponse{}
	if err := copier.Copy(resp, v); err != nil {
		return nil, err
	}
	resp.DisabledDates = make([]string, 0, len(v.DisabledDates))
	for _, d := range v.DisabledDates {
		resp.DisabledDates = append(resp.DisabledDates, d.Format("2006-01-02"))
	}
	return resp, nil
}

func FromSessionView(v *usecase.SessionView) *SessionResponse {
	return &SessionResponse{
		ID:                v.ID,
		PropertyID:        v.PropertyID,
		NightlyPriceCents: v.NightlyPriceCents,
		Status:            v.Status,
		Reason:            v.Reason,
		CheckIn:           v.CheckIn,
		CheckOut:          v.CheckOut,
		Nights:            v.Nights,
		OrderTotalCents:   v.OrderTotalCents,
	}
}

func FromConfirmResult(r *usecase.ConfirmResult) *ConfirmResponse {
	return &ConfirmResponse{
		BookingID:   r.BookingID,
		CheckoutURL: r.CheckoutURL,
	}
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	resp := &BookingResponse{}
	if err := copier.Copy(resp, v); err != nil {
		return nil, err
	}
	return resp, nil
}

type BookingListPageResponse struct {
	Items      []*BookingListResponse `json:"items"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

func FromBookingListItems(items []*queries.BookingListItem, next *queries.Cursor) (*BookingListPageResponse, error) {
	list := make([]*BookingListResponse, 0, len(items))
	if err := copier.Copy(&list, items); err != nil {
		return nil, err
	}
	page := &BookingListPageResponse{Items: list}
	if next != nil {
		page.NextCursor = &next.After
	}
	return page, nil
}
