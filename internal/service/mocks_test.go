package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/repository"
)

// Hand-written testify mocks for the store interfaces consumed by the
// service layer.

type enrollmentStoreMock struct{ mock.Mock }

func (m *enrollmentStoreMock) GetByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*model.Enrollment), args.Error(1)
	}
	return nil, args.Error(1)
}

type ticketStoreMock struct{ mock.Mock }

func (m *ticketStoreMock) GetByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.Ticket, error) {
	args := m.Called(ctx, enrollmentID)
	if v := args.Get(0); v != nil {
		return v.(*model.Ticket), args.Error(1)
	}
	return nil, args.Error(1)
}

type bookingStoreMock struct{ mock.Mock }

func (m *bookingStoreMock) GetByUserID(ctx context.Context, userID uint64) (*model.Booking, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *bookingStoreMock) CreateWithCapacity(ctx context.Context, userID, roomID uint64) (uint64, error) {
	args := m.Called(ctx, userID, roomID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *bookingStoreMock) MoveToRoom(ctx context.Context, bookingID, roomID uint64) error {
	args := m.Called(ctx, bookingID, roomID)
	return args.Error(0)
}

type hotelStoreMock struct{ mock.Mock }

func (m *hotelStoreMock) List(ctx context.Context) ([]model.Hotel, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Hotel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hotelStoreMock) GetByID(ctx context.Context, id uint64) (*model.Hotel, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Hotel), args.Error(1)
	}
	return nil, args.Error(1)
}

type roomStoreMock struct{ mock.Mock }

func (m *roomStoreMock) ListByHotel(ctx context.Context, hotelID uint64) ([]repository.RoomWithOccupancy, error) {
	args := m.Called(ctx, hotelID)
	if v := args.Get(0); v != nil {
		return v.([]repository.RoomWithOccupancy), args.Error(1)
	}
	return nil, args.Error(1)
}

// eligibleTicket returns a ticket that passes the booking gate.
func eligibleTicket() *model.Ticket {
	return &model.Ticket{
		ID:           7,
		EnrollmentID: 3,
		Status:       model.TicketStatusPaid,
		Type:         model.TicketType{ID: 1, IsRemote: false, IncludesHotel: true},
	}
}
