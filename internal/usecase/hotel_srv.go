package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"

	"go.uber.org/zap"
)

type HotelService interface {
	GetHotels(ctx context.Context, userID int64) ([]response.HotelResponse, error)
	GetHotelByID(ctx context.Context, userID, hotelID int64) (*response.HotelDetailResponse, error)
}

type hotelService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHotelService(repo *repository.Repository, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

// checkAccess gates the hotel catalog on the same ticket rules that gate
// booking creation
func (s *hotelService) checkAccess(ctx context.Context, userID int64) error {
	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch enrollment: %w", err)
	}

	var ticket *entity.Ticket
	if enrollment != nil {
		ticket, err = s.repo.Ticket.FindByEnrollmentID(ctx, enrollment.ID)
		if err != nil {
			return fmt.Errorf("fetch ticket: %w", err)
		}
	}

	if decision := CheckHotelAccess(enrollment, ticket); !decision.Allowed {
		return NewRejection(decision.Reason)
	}

	return nil
}

func (s *hotelService) GetHotels(ctx context.Context, userID int64) ([]response.HotelResponse, error) {
	if err := s.checkAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.repo.Hotel.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get hotels", zap.Error(err))
		return nil, fmt.Errorf("get hotels: %w", err)
	}

	hotelResponses := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		hotelResponses[i] = response.HotelToResponse(hotel)
	}

	return hotelResponses, nil
}

func (s *hotelService) GetHotelByID(ctx context.Context, userID, hotelID int64) (*response.HotelDetailResponse, error) {
	if err := s.checkAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		s.log.Error("Failed to get hotel",
			zap.Error(err),
			zap.Int64("hotel_id", hotelID),
		)
		return nil, fmt.Errorf("get hotel: %w", err)
	}
	if hotel == nil {
		return nil, NewRejection(RejectionHotelNotFound)
	}

	rooms, err := s.repo.Hotel.FindRoomsByHotelID(ctx, hotelID)
	if err != nil {
		s.log.Error("Failed to get hotel rooms",
			zap.Error(err),
			zap.Int64("hotel_id", hotelID),
		)
		return nil, fmt.Errorf("get hotel rooms: %w", err)
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = response.RoomToResponse(room)
	}

	return &response.HotelDetailResponse{
		HotelResponse: response.HotelToResponse(hotel),
		Rooms:         roomResponses,
	}, nil
}
