package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/notnil/chess"

	"chessdesk/internal/game"
	"chessdesk/internal/logging"
	"chessdesk/pkg/utils"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// appendPromotionIfPawn auto-queens a pawn move onto the last rank when
// the client did not spell out a promotion piece.
func appendPromotionIfPawn(s *game.Session, from chess.Square, uci string) string {
	if len(uci) != 4 {
		return uci
	}
	to := uci[2:]
	if to[1] != '1' && to[1] != '8' {
		return uci
	}
	if !s.IsPawnAt(from) {
		return uci
	}
	return uci + "q"
}

// WithRequestLog tags each request with a short id and logs it.
func WithRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := utils.ShortID()
		logging.Debugf("[%s] %s %s from %s", id, r.Method, r.URL.Path, ClientIP(r))
		next.ServeHTTP(w, r)
	})
}

// ClientIP extracts the client IP from the request.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
