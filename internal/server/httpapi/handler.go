package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/accountd/internal/common"
)

const (
	msgBadCredentials    = "Incorrect username or password"
	msgInvalidToken      = "Could not validate credentials"
	msgUserNotFound      = "User not found"
	msgInternal          = "Internal server error"
	msgUsernameExists    = "Username already exists"
	msgEmailExists       = "Email already exists"
	msgMissingFields     = "username, email and password are required"
	msgInvalidBody       = "invalid request body"
	msgRegistered        = "User registered successfully"
	bearerPrefix         = "Bearer "
	wwwAuthenticateValue = `Bearer`
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorJSON writes {"detail": ...}, the error shape the original browser
// client expects.
func errorJSON(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

type registerRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
}

type userResponse struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        tokenUser `json:"user"`
}

type tokenUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {

	s.logger.Info(r.Context(), "Registration request")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		errorJSON(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUsernameExists):
			errorJSON(w, http.StatusBadRequest, msgUsernameExists)
		case errors.Is(err, common.ErrorEmailExists):
			errorJSON(w, http.StatusBadRequest, msgEmailExists)
		default:
			s.logger.Error(r.Context(), "registration failed", "username", req.Username)
			errorJSON(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.Username)
	writeJSON(w, http.StatusCreated, map[string]string{"message": msgRegistered})
}

func (s *HTTPServer) handleToken(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseForm(); err != nil {
		errorJSON(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	res, err := s.users.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			w.Header().Set("WWW-Authenticate", wwwAuthenticateValue)
			errorJSON(w, http.StatusUnauthorized, msgBadCredentials)
			return
		}
		s.logger.Error(r.Context(), "login failed", "username", username)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
		User:        tokenUser{Username: res.User.Username, Email: res.User.Email},
	})
}

func (s *HTTPServer) handleMe(w http.ResponseWriter, r *http.Request) {

	token, ok := bearerToken(r)
	if !ok {
		w.Header().Set("WWW-Authenticate", wwwAuthenticateValue)
		errorJSON(w, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	user, err := s.users.CurrentUser(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			w.Header().Set("WWW-Authenticate", wwwAuthenticateValue)
			errorJSON(w, http.StatusUnauthorized, msgInvalidToken)
		case errors.Is(err, common.ErrorNotFound):
			errorJSON(w, http.StatusNotFound, msgUserNotFound)
		default:
			errorJSON(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	})
}

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" || !strings.HasPrefix(h, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	if token == "" {
		return "", false
	}
	return token, true
}
