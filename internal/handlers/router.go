package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers the API routes.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(WithRequestLog)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/new_game", h.HandleNewGame).Methods(http.MethodPost)
	api.HandleFunc("/legal_moves", h.HandleLegalMoves).Methods(http.MethodPost)
	api.HandleFunc("/move", h.HandleMove).Methods(http.MethodPost)

	return r
}
