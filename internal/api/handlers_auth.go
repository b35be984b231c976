package api

import (
	"log"
	"net/http"
	"time"

	"github.com/filmlane/FilmLane/internal/auth"
	"github.com/filmlane/FilmLane/internal/httputil"
)

const adminPasswordKey = "admin_password_hash"

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hash, err := s.settingsRepo.Get(adminPasswordKey)
	if err != nil || hash == "" {
		httputil.WriteError(w, http.StatusForbidden, "admin password not configured")
		return
	}
	if !auth.CheckPassword(hash, req.Password) {
		httputil.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken()
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	expiresAt := time.Now().Add(auth.SessionTTL).Unix()
	if _, err := s.db.Exec(
		`INSERT INTO sessions (token, expires_at) VALUES ($1, $2)`,
		token, expiresAt,
	); err != nil {
		log.Printf("API: session insert failed: %v", err)
		httputil.WriteError(w, http.StatusInternalServerError, "session creation failed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt})
}
