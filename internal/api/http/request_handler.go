package http

import (
	"encoding/json"
	"net/http"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"

	"github.com/gorilla/mux"
)

type RequestHandler struct {
	svc service.RequestService
}

func NewRequestHandler(svc service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

type createRequestBody struct {
	Description string `json:"description"`
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.NewValidationError("malformed request body"))
		return
	}
	req, err := h.svc.CreateRequest(r.Context(), userID, body.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	requests, err := h.svc.ListRequestsForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.ItemRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	requestID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := h.svc.GetRequest(r.Context(), requestID, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) ListAll(w http.ResponseWriter, r *http.Request) {
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
	requests, err := h.svc.ListOtherRequests(r.Context(), userID, from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.ItemRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}
