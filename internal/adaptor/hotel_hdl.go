package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// GetHotels handles GET /hotels (protected)
func (h *HotelHandler) GetHotels(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	hotels, err := h.service.GetHotels(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, err, "get hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// GetHotelByID handles GET /hotels/{hotelId} (protected)
func (h *HotelHandler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	hotelID, err := utils.ParseID(chi.URLParam(r, "hotelId"))
	if err != nil {
		utils.ResponseUnprocessable(w, "Invalid hotel ID", nil)
		return
	}

	hotel, err := h.service.GetHotelByID(r.Context(), userID, hotelID)
	if err != nil {
		writeServiceError(w, h.log, err, "get hotel by ID")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}
