package http

import (
	"encoding/json"
	"net/http"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"

	"github.com/gorilla/mux"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var item domain.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, domain.NewValidationError("malformed request body"))
		return
	}
	created, err := h.svc.CreateItem(r.Context(), userID, &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *ItemHandler) Patch(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var patch service.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, domain.NewValidationError("malformed request body"))
		return
	}
	item, err := h.svc.PatchItem(r.Context(), itemID, userID, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	detail, err := h.svc.GetItem(r.Context(), itemID, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *ItemHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
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
	items, err := h.svc.ListItemsForUser(r.Context(), userID, from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.ItemDetail{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	from, size, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.svc.SearchItems(r.Context(), r.URL.Query().Get("text"), from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type commentRequest struct {
	Text string `json:"text"`
}

func (h *ItemHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var body commentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.NewValidationError("malformed request body"))
		return
	}
	comment, err := h.svc.AddComment(r.Context(), itemID, userID, body.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}
