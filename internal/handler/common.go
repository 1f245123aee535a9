package handler // handler defines the HTTP handlers of the API

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/repository"
	"github.com/iliyamo/hotel-room-reservation/internal/service"
)

// getUserID extracts the user_id placed in the context by the JWT
// middleware and converts it to uint64.  JWT numeric claims decode as
// float64, so that is the common case.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// respondServiceError maps the closed set of business and storage
// sentinels onto HTTP responses.  Enrollment, ticket, room, booking
// and hotel lookups that miss are 404s; an ineligible ticket is 402;
// a full room, a foreign booking and a duplicate booking are 403s;
// malformed path ids are 400s.  Anything outside the set is an
// unclassified storage fault and stays a 500.
func respondServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrEnrollmentNotFound),
		errors.Is(err, repository.ErrTicketNotFound),
		errors.Is(err, repository.ErrRoomNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrHotelNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrPaymentRequired):
		return c.JSON(http.StatusPaymentRequired, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrRoomFull),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrAlreadyBooked):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidHotelID):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}
