package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/queue"
	"github.com/iliyamo/hotel-room-reservation/internal/service"
)

// BookingHandler exposes the three reservation endpoints.  All
// business rules live in the service; the handler binds input, maps
// sentinel errors to statuses and publishes booking events after a
// successful mutation.  Events is optional: when nil (e.g. in tests
// or when no broker is configured) publishing is skipped.
type BookingHandler struct {
	Svc    service.Booking
	Events queue.Publisher
}

func NewBookingHandler(svc service.Booking, events queue.Publisher) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Svc: svc, Events: events}
}

type bookingReq struct {
	RoomID uint64 `json:"room_id"`
}

type roomPart struct {
	ID        uint64    `json:"id"`
	HotelID   uint64    `json:"hotel_id"`
	Name      string    `json:"name"`
	Capacity  uint32    `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type bookingResp struct {
	ID   uint64   `json:"id"`
	Room roomPart `json:"room"`
}

// Create handles POST /v1/booking.  It reserves a room for the
// authenticated user and returns the new booking id.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
	}

	bookingID, err := h.Svc.Create(c.Request().Context(), userID, req.RoomID)
	if err != nil {
		return respondServiceError(c, err)
	}

	h.publish(c, queue.BookingCreated, bookingID, userID, req.RoomID)
	return c.JSON(http.StatusOK, echo.Map{"booking_id": bookingID})
}

// Update handles PUT /v1/booking/:bookingId.  The path id is passed
// to the service raw: the service decides whether it is well formed
// and whether it belongs to the caller.
func (h *BookingHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
	}

	bookingID, err := h.Svc.Update(c.Request().Context(), userID, c.Param("bookingId"), req.RoomID)
	if err != nil {
		return respondServiceError(c, err)
	}

	h.publish(c, queue.BookingRoomChanged, bookingID, userID, req.RoomID)
	return c.JSON(http.StatusOK, echo.Map{"booking_id": bookingID})
}

// Get handles GET /v1/booking and returns the caller's booking with
// the full attributes of its room.
func (h *BookingHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	booking, err := h.Svc.Get(c.Request().Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toBookingResp(booking))
}

func toBookingResp(b *model.Booking) bookingResp {
	return bookingResp{
		ID: b.ID,
		Room: roomPart{
			ID:        b.Room.ID,
			HotelID:   b.Room.HotelID,
			Name:      b.Room.Name,
			Capacity:  b.Room.Capacity,
			CreatedAt: b.Room.CreatedAt,
			UpdatedAt: b.Room.UpdatedAt,
		},
	}
}

// publish emits a booking event, logging and swallowing failures so a
// broker outage never turns a committed booking into an error reply.
func (h *BookingHandler) publish(c echo.Context, kind string, bookingID, userID, roomID uint64) {
	if h.Events == nil {
		return
	}
	ev := queue.NewBookingEvent(kind, bookingID, userID, roomID)
	if err := h.Events.Publish(c.Request().Context(), ev); err != nil {
		logrus.WithError(err).WithField("kind", kind).Warn("booking event publish failed")
	}
}
