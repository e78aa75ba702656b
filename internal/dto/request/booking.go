package request

type BookingRequest struct {
	RoomID int64 `json:"roomId" validate:"required,min=1"`
}
