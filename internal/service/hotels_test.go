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

func newHotelFixture() (*service.HotelService, *enrollmentStoreMock, *ticketStoreMock, *hotelStoreMock, *roomStoreMock) {
	enrollments := new(enrollmentStoreMock)
	tickets := new(ticketStoreMock)
	hotels := new(hotelStoreMock)
	rooms := new(roomStoreMock)
	return service.NewHotelService(enrollments, tickets, hotels, rooms), enrollments, tickets, hotels, rooms
}

func TestHotelList(t *testing.T) {
	ctx := context.Background()

	t.Run("fails with enrollment not found when user never enrolled", func(t *testing.T) {
		svc, enrollments, _, hotels, _ := newHotelFixture()
		enrollments.On("GetByUserID", mock.Anything, testUserID).
			Return(nil, repository.ErrEnrollmentNotFound)

		_, err := svc.List(ctx, testUserID)
		assert.ErrorIs(t, err, repository.ErrEnrollmentNotFound)
		hotels.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("fails with payment required behind the same gate as booking", func(t *testing.T) {
		svc, enrollments, tickets, hotels, _ := newHotelFixture()
		enrollments.On("GetByUserID", mock.Anything, testUserID).
			Return(&model.Enrollment{ID: testEnrollmentID, UserID: testUserID}, nil)
		tickets.On("GetByEnrollmentID", mock.Anything, testEnrollmentID).
			Return(&model.Ticket{Status: model.TicketStatusPaid, Type: model.TicketType{IsRemote: true}}, nil)

		_, err := svc.List(ctx, testUserID)
		assert.ErrorIs(t, err, service.ErrPaymentRequired)
		hotels.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("reports an empty catalogue as not found", func(t *testing.T) {
		svc, enrollments, tickets, hotels, _ := newHotelFixture()
		stubEligible(enrollments, tickets)
		hotels.On("List", mock.Anything).Return([]model.Hotel{}, nil)

		_, err := svc.List(ctx, testUserID)
		assert.ErrorIs(t, err, repository.ErrHotelNotFound)
	})

	t.Run("returns all hotels for an eligible user", func(t *testing.T) {
		svc, enrollments, tickets, hotels, _ := newHotelFixture()
		stubEligible(enrollments, tickets)
		want := []model.Hotel{{ID: 1, Name: "Driven Resort"}, {ID: 2, Name: "Palace Hotel"}}
		hotels.On("List", mock.Anything).Return(want, nil)

		got, err := svc.List(ctx, testUserID)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestHotelGet(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects malformed hotel ids", func(t *testing.T) {
		for _, raw := range []string{"x", "-2", ""} {
			svc, enrollments, _, _, _ := newHotelFixture()

			_, err := svc.Get(ctx, testUserID, raw)
			assert.ErrorIs(t, err, service.ErrInvalidHotelID)
			enrollments.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
		}
	})

	t.Run("fails with hotel not found for an unknown id", func(t *testing.T) {
		svc, enrollments, tickets, hotels, _ := newHotelFixture()
		stubEligible(enrollments, tickets)
		hotels.On("GetByID", mock.Anything, uint64(99)).
			Return(nil, repository.ErrHotelNotFound)

		_, err := svc.Get(ctx, testUserID, "99")
		assert.ErrorIs(t, err, repository.ErrHotelNotFound)
	})

	t.Run("returns the hotel with rooms and occupancy", func(t *testing.T) {
		svc, enrollments, tickets, hotels, rooms := newHotelFixture()
		stubEligible(enrollments, tickets)
		hotels.On("GetByID", mock.Anything, uint64(2)).
			Return(&model.Hotel{ID: 2, Name: "Palace Hotel"}, nil)
		roomRows := []repository.RoomWithOccupancy{
			{Room: model.Room{ID: 41, HotelID: 2, Name: "1202", Capacity: 2}, BookedCount: 2},
			{Room: model.Room{ID: 42, HotelID: 2, Name: "1203", Capacity: 4}, BookedCount: 1},
		}
		rooms.On("ListByHotel", mock.Anything, uint64(2)).Return(roomRows, nil)

		got, err := svc.Get(ctx, testUserID, "2")
		assert.NoError(t, err)
		assert.Equal(t, uint64(2), got.Hotel.ID)
		assert.Len(t, got.Rooms, 2)
		assert.Equal(t, uint32(2), got.Rooms[0].BookedCount)
	})
}
