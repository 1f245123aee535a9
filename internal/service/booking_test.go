package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/repository"
	"github.com/iliyamo/hotel-room-reservation/internal/service"
)

const (
	testUserID       = uint64(1)
	testEnrollmentID = uint64(3)
	testRoomID       = uint64(42)
)

func newBookingFixture() (*service.BookingService, *enrollmentStoreMock, *ticketStoreMock, *bookingStoreMock) {
	enrollments := new(enrollmentStoreMock)
	tickets := new(ticketStoreMock)
	bookings := new(bookingStoreMock)
	return service.NewBookingService(enrollments, tickets, bookings), enrollments, tickets, bookings
}

func stubEligible(enrollments *enrollmentStoreMock, tickets *ticketStoreMock) {
	enrollments.On("GetByUserID", mock.Anything, testUserID).
		Return(&model.Enrollment{ID: testEnrollmentID, UserID: testUserID}, nil)
	tickets.On("GetByEnrollmentID", mock.Anything, testEnrollmentID).
		Return(eligibleTicket(), nil)
}

func TestBookingCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("fails with enrollment not found when user never enrolled", func(t *testing.T) {
		svc, enrollments, _, bookings := newBookingFixture()
		enrollments.On("GetByUserID", mock.Anything, testUserID).
			Return(nil, repository.ErrEnrollmentNotFound)

		_, err := svc.Create(ctx, testUserID, testRoomID)
		assert.ErrorIs(t, err, repository.ErrEnrollmentNotFound)
		bookings.AssertNotCalled(t, "CreateWithCapacity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails with ticket not found when enrollment has no ticket", func(t *testing.T) {
		svc, enrollments, tickets, bookings := newBookingFixture()
		enrollments.On("GetByUserID", mock.Anything, testUserID).
			Return(&model.Enrollment{ID: testEnrollmentID, UserID: testUserID}, nil)
		tickets.On("GetByEnrollmentID", mock.Anything, testEnrollmentID).
			Return(nil, repository.ErrTicketNotFound)

		_, err := svc.Create(ctx, testUserID, testRoomID)
		assert.ErrorIs(t, err, repository.ErrTicketNotFound)
		bookings.AssertNotCalled(t, "CreateWithCapacity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails with payment required for ineligible tickets", func(t *testing.T) {
		cases := []struct {
			name   string
			ticket *model.Ticket
		}{
			{"unpaid ticket", &model.Ticket{Status: model.TicketStatusReserved, Type: model.TicketType{IncludesHotel: true}}},
			{"remote ticket", &model.Ticket{Status: model.TicketStatusPaid, Type: model.TicketType{IsRemote: true, IncludesHotel: true}}},
			{"no hotel included", &model.Ticket{Status: model.TicketStatusPaid, Type: model.TicketType{IncludesHotel: false}}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				svc, enrollments, tickets, bookings := newBookingFixture()
				enrollments.On("GetByUserID", mock.Anything, testUserID).
					Return(&model.Enrollment{ID: testEnrollmentID, UserID: testUserID}, nil)
				tickets.On("GetByEnrollmentID", mock.Anything, testEnrollmentID).
					Return(tc.ticket, nil)

				_, err := svc.Create(ctx, testUserID, testRoomID)
				assert.ErrorIs(t, err, service.ErrPaymentRequired)
				bookings.AssertNotCalled(t, "CreateWithCapacity", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("fails when the user already has a booking", func(t *testing.T) {
		svc, enrollments, tickets, bookings := newBookingFixture()
		stubEligible(enrollments, tickets)
		bookings.On("GetByUserID", mock.Anything, testUserID).
			Return(&model.Booking{ID: 9, UserID: testUserID, RoomID: 5}, nil)

		_, err := svc.Create(ctx, testUserID, testRoomID)
		assert.ErrorIs(t, err, service.ErrAlreadyBooked)
		bookings.AssertNotCalled(t, "CreateWithCapacity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagates room not found from the ledger", func(t *testing.T) {
		svc, enrollments, tickets, bookings := newBookingFixture()
		stubEligible(enrollments, tickets)
		bookings.On("GetByUserID", mock.Anything, testUserID).
			Return(nil, repository.ErrBookingNotFound)
		bookings.On("CreateWithCapacity", mock.Anything, testUserID, testRoomID).
			Return(uint64(0), repository.ErrRoomNotFound)

		_, err := svc.Create(ctx, testUserID, testRoomID)
		assert.ErrorIs(t, err, repository.ErrRoomNotFound)
	})

	t.Run("fails with room full when capacity is saturated", func(t *testing.T) {
		svc, enrollments, tickets, bookings := newBookingFixture()
		stubEligible(enrollments, tickets)
		bookings.On("GetByUserID", mock.Anything, testUserID).
			Return(nil, repository.ErrBookingNotFound)
		bookings.On("CreateWithCapacity", mock.Anything, testUserID, testRoomID).
			Return(uint64(0), repository.ErrRoomFull)

		_, err := svc.Create(ctx, testUserID, testRoomID)
		assert.ErrorIs(t, err, repository.ErrRoomFull)
	})

	t.Run("returns the new booking id on success", func(t *testing.T) {
		svc, enrollments, tickets, bookings := newBookingFixture()
		stubEligible(enrollments, tickets)
		bookings.On("GetByUserID", mock.Anything, testUserID).
			Return(nil, repository.ErrBookingNotFound)
		bookings.On("CreateWithCapacity", mock.Anything, testUserID, testRoomID).
			Return(uint64(101), nil)

		id, err := svc.Create(ctx, testUserID, testRoomID)
		assert.NoError(t, err)
		assert.Equal(t, uint64(101), id)
		bookings.AssertExpectations(t)
	})
}

func TestBookingUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects malformed booking ids before any store read", func(t *testing.T) {
		for _, raw := range []string{"abc", "-1", "", "12.5", "1e3"} {
			t.Run(raw, func(t *testing.T) {
				svc, _, _, bookings := newBookingFixture()

				_, err := svc.Update(ctx, testUserID, raw, testRoomID)
				assert.ErrorIs(t, err, service.ErrInvalidBookingID)
				bookings.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("fails with forbidden when the user has no booking", func(t *testing.T) {
		svc, _, _, bookings := newBookingFixture()
		bookings.On("GetByUserID", mock.Anything, testUserID).
			Return(nil, repository.ErrBookingNotFound)

		_, err := svc.Update(ctx, testUserID, "9", testRoomID)
		assert.ErrorIs(t, err, service.ErrForbidden)
		bookings.AssertNotCalled(t, "MoveToRoom", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails with forbidden when the supplied id is not the caller's booking", func(t *testing.T) {
		svc, _, _, bookings := newBookingFixture()
		bookings.On("GetByUserID", mock.Anything, testUserID).
			Return(&model.Booking{ID: 9, UserID: testUserID, RoomID: 5}, nil)

		_, err := svc.Update(ctx, testUserID, "10", testRoomID)
		assert.ErrorIs(t, err, service.ErrForbidden)
		bookings.AssertNotCalled(t, "MoveToRoom", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails with payment required when the ticket lost eligibility", func(t *testing.T) {
		svc, enrollments, tickets, bookings := newBookingFixture()
		bookings.On("GetByUserID", mock.Anything, testUserID).
			Return(&model.Booking{ID: 9, UserID: testUserID, RoomID: 5}, nil)
		enrollments.On("GetByUserID", mock.Anything, testUserID).
			Return(&model.Enrollment{ID: testEnrollmentID, UserID: testUserID}, nil)
		tickets.On("GetByEnrollmentID", mock.Anything, testEnrollmentID).
			Return(&model.Ticket{Status: model.TicketStatusReserved, Type: model.TicketType{IncludesHotel: true}}, nil)

		_, err := svc.Update(ctx, testUserID, "9", testRoomID)
		assert.ErrorIs(t, err, service.ErrPaymentRequired)
		bookings.AssertNotCalled(t, "MoveToRoom", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagates room full for the new room", func(t *testing.T) {
		svc, enrollments, tickets, bookings := newBookingFixture()
		stubEligible(enrollments, tickets)
		bookings.On("GetByUserID", mock.Anything, testUserID).
			Return(&model.Booking{ID: 9, UserID: testUserID, RoomID: 5}, nil)
		bookings.On("MoveToRoom", mock.Anything, uint64(9), testRoomID).
			Return(repository.ErrRoomFull)

		_, err := svc.Update(ctx, testUserID, "9", testRoomID)
		assert.ErrorIs(t, err, repository.ErrRoomFull)
	})

	t.Run("moves the booking and returns its id on success", func(t *testing.T) {
		svc, enrollments, tickets, bookings := newBookingFixture()
		stubEligible(enrollments, tickets)
		bookings.On("GetByUserID", mock.Anything, testUserID).
			Return(&model.Booking{ID: 9, UserID: testUserID, RoomID: 5}, nil)
		bookings.On("MoveToRoom", mock.Anything, uint64(9), testRoomID).
			Return(nil)

		id, err := svc.Update(ctx, testUserID, "9", testRoomID)
		assert.NoError(t, err)
		assert.Equal(t, uint64(9), id)
		bookings.AssertExpectations(t)
	})
}

func TestBookingGet(t *testing.T) {
	ctx := context.Background()

	t.Run("fails with booking not found when the user never booked", func(t *testing.T) {
		svc, _, _, bookings := newBookingFixture()
		bookings.On("GetByUserID", mock.Anything, testUserID).
			Return(nil, repository.ErrBookingNotFound)

		_, err := svc.Get(ctx, testUserID)
		assert.ErrorIs(t, err, repository.ErrBookingNotFound)
	})

	t.Run("returns the booking with full room attributes", func(t *testing.T) {
		svc, _, _, bookings := newBookingFixture()
		want := &model.Booking{
			ID:     9,
			UserID: testUserID,
			RoomID: testRoomID,
			Room:   model.Room{ID: testRoomID, HotelID: 2, Name: "1203", Capacity: 4},
		}
		bookings.On("GetByUserID", mock.Anything, testUserID).Return(want, nil)

		got, err := svc.Get(ctx, testUserID)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
