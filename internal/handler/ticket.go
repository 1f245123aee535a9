package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/repository"
)

// TicketHandler exposes the ticket catalogue and the caller's own
// ticket. Buying and paying a ticket is what makes a user eligible to
// book a room, so everything here is keyed through the enrollment.
type TicketHandler struct {
	Enrollments *repository.EnrollmentRepo
	Tickets     *repository.TicketRepo
}

func NewTicketHandler(enrollments *repository.EnrollmentRepo, tickets *repository.TicketRepo) *TicketHandler {
	return &TicketHandler{Enrollments: enrollments, Tickets: tickets}
}

type buyTicketReq struct {
	TicketTypeID uint64 `json:"ticket_type_id"`
}

type ticketTypePart struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	PriceCents    uint32 `json:"price_cents"`
	IsRemote      bool   `json:"is_remote"`
	IncludesHotel bool   `json:"includes_hotel"`
}

type ticketResp struct {
	ID        uint64         `json:"id"`
	Status    string         `json:"status"`
	Type      ticketTypePart `json:"type"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ListTypes handles GET /v1/tickets/types.
func (h *TicketHandler) ListTypes(c echo.Context) error {
	types, err := h.Tickets.ListTypes(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]ticketTypePart, 0, len(types))
	for _, tt := range types {
		out = append(out, toTicketTypePart(tt))
	}
	return c.JSON(http.StatusOK, echo.Map{"ticket_types": out})
}

// Buy handles POST /v1/tickets. One ticket per enrollment; the ticket
// starts RESERVED and must be paid separately.
func (h *TicketHandler) Buy(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req buyTicketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.TicketTypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket_type_id required"})
	}
	ctx := c.Request().Context()

	e, err := h.Enrollments.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "enrollment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if _, err := h.Tickets.GetByEnrollmentID(ctx, e.ID); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "ticket already exists"})
	} else if !errors.Is(err, repository.ErrTicketNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	t, err := h.Tickets.Create(ctx, e.ID, req.TicketTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketTypeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, toTicketResp(t))
}

// Get handles GET /v1/tickets and returns the caller's ticket.
func (h *TicketHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()

	e, err := h.Enrollments.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "enrollment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	t, err := h.Tickets.GetByEnrollmentID(ctx, e.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toTicketResp(t))
}

// Pay handles POST /v1/tickets/:ticketId/pay. Stands in for a payment
// gateway callback: it flips the caller's own ticket to PAID.
func (h *TicketHandler) Pay(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ticketID, err := strconv.ParseUint(c.Param("ticketId"), 10, 64)
	if err != nil || ticketID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket id"})
	}
	ctx := c.Request().Context()

	e, err := h.Enrollments.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "enrollment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	t, err := h.Tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	// Paying someone else's ticket is not allowed.
	if t.EnrollmentID != e.ID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "ticket does not belong to caller"})
	}

	if err := h.Tickets.MarkPaid(ctx, ticketID); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	t.Status = model.TicketStatusPaid
	return c.JSON(http.StatusOK, toTicketResp(t))
}

func toTicketTypePart(tt model.TicketType) ticketTypePart {
	return ticketTypePart{ID: tt.ID, Name: tt.Name, PriceCents: tt.PriceCents, IsRemote: tt.IsRemote, IncludesHotel: tt.IncludesHotel}
}

func toTicketResp(t *model.Ticket) ticketResp {
	return ticketResp{ID: t.ID, Status: t.Status, Type: toTicketTypePart(t.Type), CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}
