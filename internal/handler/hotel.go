package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/service"
)

// HotelHandler serves the lodging catalogue.  Both endpoints sit
// behind the same ticket-eligibility gate as booking, enforced by the
// service.
type HotelHandler struct {
	Svc service.Hotels
}

func NewHotelHandler(svc service.Hotels) *HotelHandler {
	if svc == nil {
		panic("nil service passed to NewHotelHandler")
	}
	return &HotelHandler{Svc: svc}
}

type hotelPart struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type hotelRoomPart struct {
	ID          uint64    `json:"id"`
	HotelID     uint64    `json:"hotel_id"`
	Name        string    `json:"name"`
	Capacity    uint32    `json:"capacity"`
	BookedCount uint32    `json:"booked_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type hotelDetailResp struct {
	hotelPart
	Rooms []hotelRoomPart `json:"rooms"`
}

// List handles GET /v1/hotels.
func (h *HotelHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	hotels, err := h.Svc.List(c.Request().Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	out := make([]hotelPart, 0, len(hotels))
	for _, ht := range hotels {
		out = append(out, toHotelPart(ht))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/hotels/:hotelId and includes the hotel's rooms
// with their current occupancy.
func (h *HotelHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	detail, err := h.Svc.Get(c.Request().Context(), userID, c.Param("hotelId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	resp := hotelDetailResp{hotelPart: toHotelPart(detail.Hotel), Rooms: make([]hotelRoomPart, 0, len(detail.Rooms))}
	for _, r := range detail.Rooms {
		resp.Rooms = append(resp.Rooms, hotelRoomPart{
			ID:          r.ID,
			HotelID:     r.HotelID,
			Name:        r.Name,
			Capacity:    r.Capacity,
			BookedCount: r.BookedCount,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func toHotelPart(h model.Hotel) hotelPart {
	return hotelPart{ID: h.ID, Name: h.Name, Image: h.Image, CreatedAt: h.CreatedAt, UpdatedAt: h.UpdatedAt}
}
