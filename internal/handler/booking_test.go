package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/queue"
	"github.com/iliyamo/hotel-room-reservation/internal/repository"
	"github.com/iliyamo/hotel-room-reservation/internal/service"
)

// bookingSvcStub satisfies service.Booking with function fields so
// each test controls exactly one behavior.
type bookingSvcStub struct {
	create func(ctx context.Context, userID, roomID uint64) (uint64, error)
	update func(ctx context.Context, userID uint64, rawBookingID string, roomID uint64) (uint64, error)
	get    func(ctx context.Context, userID uint64) (*model.Booking, error)
}

func (s *bookingSvcStub) Create(ctx context.Context, userID, roomID uint64) (uint64, error) {
	return s.create(ctx, userID, roomID)
}
func (s *bookingSvcStub) Update(ctx context.Context, userID uint64, rawBookingID string, roomID uint64) (uint64, error) {
	return s.update(ctx, userID, rawBookingID, roomID)
}
func (s *bookingSvcStub) Get(ctx context.Context, userID uint64) (*model.Booking, error) {
	return s.get(ctx, userID)
}

type publisherStub struct {
	events []queue.BookingEvent
	err    error
}

func (p *publisherStub) Publish(_ context.Context, ev queue.BookingEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

func newBookingCtx(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(7)) // JWT middleware stores numeric claims as float64
	return c, rec
}

func TestBookingHandlerCreate(t *testing.T) {
	t.Run("reserves room and publishes event", func(t *testing.T) {
		svc := &bookingSvcStub{create: func(_ context.Context, userID, roomID uint64) (uint64, error) {
			assert.Equal(t, uint64(7), userID)
			assert.Equal(t, uint64(3), roomID)
			return 101, nil
		}}
		pub := &publisherStub{}
		h := NewBookingHandler(svc, pub)

		c, rec := newBookingCtx(t, http.MethodPost, "/v1/booking", `{"room_id":3}`)
		require.NoError(t, h.Create(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"booking_id":101}`, rec.Body.String())
		require.Len(t, pub.events, 1)
		assert.Equal(t, queue.BookingCreated, pub.events[0].Kind)
		assert.Equal(t, uint64(101), pub.events[0].BookingID)
		assert.Equal(t, uint64(7), pub.events[0].UserID)
		assert.Equal(t, uint64(3), pub.events[0].RoomID)
	})

	t.Run("missing room_id is a 400", func(t *testing.T) {
		h := NewBookingHandler(&bookingSvcStub{}, nil)
		c, rec := newBookingCtx(t, http.MethodPost, "/v1/booking", `{}`)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("status mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{"no enrollment", repository.ErrEnrollmentNotFound, http.StatusNotFound},
			{"no ticket", repository.ErrTicketNotFound, http.StatusNotFound},
			{"unknown room", repository.ErrRoomNotFound, http.StatusNotFound},
			{"ineligible ticket", service.ErrPaymentRequired, http.StatusPaymentRequired},
			{"room full", repository.ErrRoomFull, http.StatusForbidden},
			{"second booking", service.ErrAlreadyBooked, http.StatusForbidden},
			{"storage fault", context.DeadlineExceeded, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				svc := &bookingSvcStub{create: func(context.Context, uint64, uint64) (uint64, error) {
					return 0, tc.err
				}}
				pub := &publisherStub{}
				h := NewBookingHandler(svc, pub)

				c, rec := newBookingCtx(t, http.MethodPost, "/v1/booking", `{"room_id":3}`)
				require.NoError(t, h.Create(c))
				assert.Equal(t, tc.want, rec.Code)
				assert.Empty(t, pub.events, "no event on failure")
			})
		}
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		svc := &bookingSvcStub{create: func(context.Context, uint64, uint64) (uint64, error) {
			return 101, nil
		}}
		pub := &publisherStub{err: context.DeadlineExceeded}
		h := NewBookingHandler(svc, pub)

		c, rec := newBookingCtx(t, http.MethodPost, "/v1/booking", `{"room_id":3}`)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing identity is a 401", func(t *testing.T) {
		h := NewBookingHandler(&bookingSvcStub{}, nil)
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/booking", strings.NewReader(`{"room_id":3}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec) // no user_id in context
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBookingHandlerUpdate(t *testing.T) {
	t.Run("passes the raw path id through and publishes", func(t *testing.T) {
		svc := &bookingSvcStub{update: func(_ context.Context, userID uint64, raw string, roomID uint64) (uint64, error) {
			assert.Equal(t, uint64(7), userID)
			assert.Equal(t, "9", raw)
			assert.Equal(t, uint64(4), roomID)
			return 9, nil
		}}
		pub := &publisherStub{}
		h := NewBookingHandler(svc, pub)

		c, rec := newBookingCtx(t, http.MethodPut, "/v1/booking/9", `{"room_id":4}`)
		c.SetParamNames("bookingId")
		c.SetParamValues("9")
		require.NoError(t, h.Update(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"booking_id":9}`, rec.Body.String())
		require.Len(t, pub.events, 1)
		assert.Equal(t, queue.BookingRoomChanged, pub.events[0].Kind)
	})

	t.Run("status mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{"malformed id", service.ErrInvalidBookingID, http.StatusBadRequest},
			{"foreign booking", service.ErrForbidden, http.StatusForbidden},
			{"unknown room", repository.ErrRoomNotFound, http.StatusNotFound},
			{"room full", repository.ErrRoomFull, http.StatusForbidden},
			{"eligibility lost", service.ErrPaymentRequired, http.StatusPaymentRequired},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				svc := &bookingSvcStub{update: func(context.Context, uint64, string, uint64) (uint64, error) {
					return 0, tc.err
				}}
				h := NewBookingHandler(svc, nil)

				c, rec := newBookingCtx(t, http.MethodPut, "/v1/booking/abc", `{"room_id":4}`)
				c.SetParamNames("bookingId")
				c.SetParamValues("abc")
				require.NoError(t, h.Update(c))
				assert.Equal(t, tc.want, rec.Code)
			})
		}
	})
}

func TestBookingHandlerGet(t *testing.T) {
	t.Run("returns booking with full room", func(t *testing.T) {
		created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		svc := &bookingSvcStub{get: func(_ context.Context, userID uint64) (*model.Booking, error) {
			assert.Equal(t, uint64(7), userID)
			return &model.Booking{
				ID:     101,
				UserID: 7,
				RoomID: 3,
				Room: model.Room{
					ID: 3, HotelID: 1, Name: "Suite 3", Capacity: 2,
					CreatedAt: created, UpdatedAt: created,
				},
			}, nil
		}}
		h := NewBookingHandler(svc, nil)

		c, rec := newBookingCtx(t, http.MethodGet, "/v1/booking", "")
		require.NoError(t, h.Get(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"id":101`)
		assert.Contains(t, body, `"name":"Suite 3"`)
		assert.Contains(t, body, `"hotel_id":1`)
		assert.Contains(t, body, `"capacity":2`)
	})

	t.Run("no booking is a 404", func(t *testing.T) {
		svc := &bookingSvcStub{get: func(context.Context, uint64) (*model.Booking, error) {
			return nil, repository.ErrBookingNotFound
		}}
		h := NewBookingHandler(svc, nil)

		c, rec := newBookingCtx(t, http.MethodGet, "/v1/booking", "")
		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
