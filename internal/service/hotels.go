package service

import (
	"context"
	"strconv"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/repository"
)

// HotelStore is the slice of the hotel repository the browse gate needs.
type HotelStore interface {
	List(ctx context.Context) ([]model.Hotel, error)
	GetByID(ctx context.Context, id uint64) (*model.Hotel, error)
}

// RoomStore lists a hotel's rooms with their current occupancy.
type RoomStore interface {
	ListByHotel(ctx context.Context, hotelID uint64) ([]repository.RoomWithOccupancy, error)
}

// HotelDetail is a hotel together with its rooms and their occupancy.
type HotelDetail struct {
	Hotel model.Hotel
	Rooms []repository.RoomWithOccupancy
}

// Hotels exposes the hotel browsing operations.  Both sit behind the
// same eligibility gate as booking: only holders of a paid, in-person,
// hotel-inclusive ticket get to see lodging options.
type Hotels interface {
	List(ctx context.Context, userID uint64) ([]model.Hotel, error)
	Get(ctx context.Context, userID uint64, rawHotelID string) (*HotelDetail, error)
}

// HotelService implements Hotels over the enrollment/ticket chain and
// the hotel/room repositories.
type HotelService struct {
	enrollments EnrollmentStore
	tickets     TicketStore
	hotels      HotelStore
	rooms       RoomStore
}

func NewHotelService(enrollments EnrollmentStore, tickets TicketStore, hotels HotelStore, rooms RoomStore) *HotelService {
	return &HotelService{enrollments: enrollments, tickets: tickets, hotels: hotels, rooms: rooms}
}

// List returns every hotel.  An empty catalogue is reported as
// ErrHotelNotFound so the transport layer answers 404, matching the
// not-found semantics of the rest of the read paths.
func (s *HotelService) List(ctx context.Context, userID uint64) ([]model.Hotel, error) {
	if err := checkEligibility(ctx, s.enrollments, s.tickets, userID); err != nil {
		return nil, err
	}
	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, repository.ErrHotelNotFound
	}
	return hotels, nil
}

// Get returns one hotel with its rooms and per-room occupancy.  The
// raw hotel id must parse as a non-negative number.
func (s *HotelService) Get(ctx context.Context, userID uint64, rawHotelID string) (*HotelDetail, error) {
	hotelID, err := strconv.ParseInt(rawHotelID, 10, 64)
	if err != nil || hotelID < 0 {
		return nil, ErrInvalidHotelID
	}
	if err := checkEligibility(ctx, s.enrollments, s.tickets, userID); err != nil {
		return nil, err
	}
	hotel, err := s.hotels.GetByID(ctx, uint64(hotelID))
	if err != nil {
		return nil, err
	}
	rooms, err := s.rooms.ListByHotel(ctx, hotel.ID)
	if err != nil {
		return nil, err
	}
	return &HotelDetail{Hotel: *hotel, Rooms: rooms}, nil
}
