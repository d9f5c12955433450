package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luyandaaaa/Farm2city/internal/store"
	"github.com/luyandaaaa/Farm2city/internal/ussd"
)

type SessionHandler struct {
	manager *SessionManager
	orders  store.OrderStore
}

func NewSessionHandler(manager *SessionManager, orders store.OrderStore) *SessionHandler {
	return &SessionHandler{
		manager: manager,
		orders:  orders,
	}
}

// Routes mounts the session API on r.
func (h *SessionHandler) Routes(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)
		r.Route("/{session_id}", func(r chi.Router) {
			r.Get("/", h.GetScreen)
			r.Delete("/", h.DeleteSession)
			r.Post("/input", h.SubmitInput)
			r.Post("/keys", h.PressKey)
		})
	})
	r.Get("/orders", h.ListOrders)
}

type InputRequestDTO struct {
	Input string `json:"input"`
}

type KeyRequestDTO struct {
	Key string `json:"key"`
}

type ScreenResponseDTO struct {
	SessionID    string             `json:"session_id"`
	Menu         string             `json:"menu"`
	Header       string             `json:"header"`
	Screen       string             `json:"screen"`
	Buffer       string             `json:"buffer,omitempty"`
	Notification *ussd.Notification `json:"notification,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Create()
	respondJSON(w, http.StatusCreated, screenResponse(s))
}

func (h *SessionHandler) GetScreen(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, screenResponse(s))
}

func (h *SessionHandler) SubmitInput(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req InputRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Input == "" {
		respondError(w, http.StatusBadRequest, "invalid_input", "input must not be empty")
		return
	}

	s.Submit(req.Input)
	log.Printf("[%s] session %s handled input", getRequestID(r.Context()), s.ID())
	respondJSON(w, http.StatusOK, screenResponse(s))
}

func (h *SessionHandler) PressKey(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req KeyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	keys := []rune(req.Key)
	if len(keys) != 1 {
		respondError(w, http.StatusBadRequest, "invalid_key", "key must be a single character")
		return
	}

	s.Press(keys[0])
	respondJSON(w, http.StatusOK, screenResponse(s))
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	if _, ok := h.manager.Get(id); !ok {
		respondError(w, http.StatusNotFound, "session_not_found", "no such session")
		return
	}
	h.manager.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		log.Printf("list orders error: %v", err)
		respondError(w, http.StatusInternalServerError, "store_error", "failed to list orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (*ussd.Session, bool) {
	id := chi.URLParam(r, "session_id")
	s, ok := h.manager.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "session_not_found", "no such session")
		return nil, false
	}
	return s, true
}

func screenResponse(s *ussd.Session) ScreenResponseDTO {
	resp := ScreenResponseDTO{
		SessionID: s.ID(),
		Menu:      string(s.Snapshot().CurrentMenu),
		Header:    s.Header(),
		Screen:    s.Screen(),
		Buffer:    s.Buffer(),
	}
	if n, ok := s.Notification(); ok {
		resp.Notification = &n
	}
	return resp
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, details string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Code:    code,
		Details: details,
	})
}
