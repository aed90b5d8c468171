package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type bookingCreateRequest struct {
	ItemID int64     `json:"itemId"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var body bookingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.NewValidationError("malformed request body"))
		return
	}
	booking, err := h.svc.CreateBooking(r.Context(), userID, body.ItemID, body.Start, body.End)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bookingID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		writeError(w, domain.NewValidationError("malformed approved parameter"))
		return
	}
	booking, err := h.svc.ChangeStatus(r.Context(), bookingID, userID, approved)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bookingID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	booking, err := h.svc.GetBooking(r.Context(), bookingID, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListForBooker(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListForBooker)
}

func (h *BookingHandler) ListForOwner(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListForOwner)
}

func (h *BookingHandler) list(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, userID int64, state string, from, size int) ([]domain.Booking, error)) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	from, size, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bookings, err := fn(r.Context(), userID, r.URL.Query().Get("state"), from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
