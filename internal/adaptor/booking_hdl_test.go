package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stubBookingService struct {
	get       *response.GetBookingResponse
	getErr    error
	create    *response.BookingIDResponse
	createErr error
	update    *response.BookingIDResponse
	updateErr error
}

func (s *stubBookingService) GetBooking(_ context.Context, _ int64) (*response.GetBookingResponse, error) {
	return s.get, s.getErr
}

func (s *stubBookingService) CreateBooking(_ context.Context, _ int64, _ *request.BookingRequest) (*response.BookingIDResponse, error) {
	return s.create, s.createErr
}

func (s *stubBookingService) UpdateBooking(_ context.Context, _, _ int64, _ *request.BookingRequest) (*response.BookingIDResponse, error) {
	return s.update, s.updateErr
}

func newBookingRouter(service usecase.BookingService) *chi.Mux {
	handler := NewBookingHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/booking", handler.GetBooking)
	r.Post("/booking", handler.CreateBooking)
	r.Put("/booking/{bookingId}", handler.UpdateBooking)
	return r
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(utils.SetUserContext(req.Context(), 1))
}

func TestCreateBooking_StatusMapping(t *testing.T) {
	tests := []struct {
		reason usecase.Rejection
		status int
	}{
		{usecase.RejectionMissingEnrollment, http.StatusNotFound},
		{usecase.RejectionMissingTicket, http.StatusNotFound},
		{usecase.RejectionRoomNotFound, http.StatusNotFound},
		{usecase.RejectionTicketNotPaid, http.StatusPaymentRequired},
		{usecase.RejectionTicketIneligible, http.StatusPaymentRequired},
		{usecase.RejectionRoomAtCapacity, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			router := newBookingRouter(&stubBookingService{
				createErr: usecase.NewRejection(tt.reason),
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(http.MethodPost, "/booking", `{"roomId":1}`))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestUpdateBooking_StatusMapping(t *testing.T) {
	tests := []struct {
		reason usecase.Rejection
		status int
	}{
		{usecase.RejectionRoomNotFound, http.StatusNotFound},
		{usecase.RejectionRoomAtCapacity, http.StatusForbidden},
		{usecase.RejectionNoExistingBooking, http.StatusForbidden},
		{usecase.RejectionNotOwner, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			router := newBookingRouter(&stubBookingService{
				updateErr: usecase.NewRejection(tt.reason),
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(http.MethodPut, "/booking/5", `{"roomId":2}`))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestCreateBooking_Success(t *testing.T) {
	router := newBookingRouter(&stubBookingService{
		create: &response.BookingIDResponse{BookingID: 7},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/booking", `{"roomId":1}`))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			BookingID int64 `json:"bookingId"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Status || body.Data.BookingID != 7 {
		t.Fatalf("body = %+v, want bookingId 7", body)
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	router := newBookingRouter(&stubBookingService{
		getErr: usecase.NewRejection(usecase.RejectionBookingNotFound),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/booking", ""))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetBooking_Success(t *testing.T) {
	router := newBookingRouter(&stubBookingService{
		get: &response.GetBookingResponse{
			ID:   3,
			Room: response.RoomResponse{ID: 1, Name: "101", Capacity: 2, HotelID: 1},
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/booking", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Data struct {
			ID   int64 `json:"id"`
			Room struct {
				ID       int64 `json:"id"`
				Capacity int   `json:"capacity"`
			} `json:"Room"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.ID != 3 || body.Data.Room.ID != 1 || body.Data.Room.Capacity != 2 {
		t.Fatalf("body = %+v", body)
	}
}

func TestCreateBooking_Unauthenticated(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(`{"roomId":1}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestCreateBooking_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not-json"},
		{"missing roomId", `{}`},
		{"zero roomId", `{"roomId":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBookingRouter(&stubBookingService{})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(http.MethodPost, "/booking", tt.body))

			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
			}
		})
	}
}

func TestUpdateBooking_InvalidBookingID(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPut, "/booking/abc", `{"roomId":1}`))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}
