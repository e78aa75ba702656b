package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All booking routes require auth
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /booking - current user's booking with its room
		r.Get("/booking", bookingHandler.GetBooking)

		// POST /booking - create a booking
		r.Post("/booking", bookingHandler.CreateBooking)

		// PUT /booking/{bookingId} - move the booking to another room
		r.Put("/booking/{bookingId}", bookingHandler.UpdateBooking)
	})
}
