package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/repository"
)

// EnrollmentHandler manages the caller's event enrollment, the root
// of the eligibility chain: no enrollment, no ticket, no booking.
type EnrollmentHandler struct {
	Enrollments *repository.EnrollmentRepo
}

func NewEnrollmentHandler(enrollments *repository.EnrollmentRepo) *EnrollmentHandler {
	if enrollments == nil {
		panic("nil repository passed to NewEnrollmentHandler")
	}
	return &EnrollmentHandler{Enrollments: enrollments}
}

type enrollmentReq struct {
	Name     string `json:"name"`
	Document string `json:"document"`
}

type enrollmentResp struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Upsert handles PUT /v1/enrollments.  A user has at most one
// enrollment; posting again updates the attendee data in place.
func (h *EnrollmentHandler) Upsert(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req enrollmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Document = strings.TrimSpace(req.Document)
	if req.Name == "" || req.Document == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/document required"})
	}

	e := &model.Enrollment{UserID: userID, Name: req.Name, Document: req.Document}
	if err := h.Enrollments.Upsert(c.Request().Context(), e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toEnrollmentResp(e))
}

// Get handles GET /v1/enrollments and returns the caller's enrollment.
func (h *EnrollmentHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	e, err := h.Enrollments.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "enrollment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toEnrollmentResp(e))
}

func toEnrollmentResp(e *model.Enrollment) enrollmentResp {
	return enrollmentResp{ID: e.ID, Name: e.Name, Document: e.Document, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}
}
