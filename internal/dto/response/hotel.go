package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type HotelDetailResponse struct {
	HotelResponse
	Rooms []RoomResponse `json:"Rooms"`
}

func HotelToResponse(hotel *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:        hotel.ID,
		Name:      hotel.Name,
		Image:     hotel.Image,
		CreatedAt: hotel.CreatedAt,
		UpdatedAt: hotel.UpdatedAt,
	}
}
