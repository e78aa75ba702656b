package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /hotels - hotel catalog (hotel-eligible ticket required)
		r.Get("/hotels", hotelHandler.GetHotels)

		// GET /hotels/{hotelId} - hotel with its rooms
		r.Get("/hotels/{hotelId}", hotelHandler.GetHotelByID)
	})
}
