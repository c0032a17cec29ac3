package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fanbase/internal/logger"
	"fanbase/internal/service"
	"fanbase/internal/store"
	"fanbase/internal/utils"
	"fanbase/models"
)

// register handles POST /register. It decodes the registration payload,
// delegates to [service.AuthService.RegisterUser], and maps service errors to
// HTTP statuses:
//   - 400 "Missing data" — malformed JSON or a blank username/email/password.
//   - 409 "Username already exists" — the username is taken.
//   - 409 "Email already registered" — the email is taken.
//   - 201 "User registered successfully" — on success.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding register request body")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Missing data"}, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("register request with missing fields")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Missing data"}, http.StatusBadRequest)
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Str("username", req.Username).Msg("username already taken")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Username already exists"}, http.StatusConflict)
		case errors.Is(err, store.ErrEmailAlreadyRegistered):
			log.Err(err).Str("email", req.Email).Msg("email already taken")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Email already registered"}, http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error during registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		}
		return
	}

	log.Info().Str("username", req.Username).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Message: "User registered successfully"}, http.StatusCreated)
}

// login handles POST /login. Credentials arrive via HTTP Basic auth; on
// success the response carries the user's ID and a signed JWT valid for the
// configured token lifetime.
//
//   - 400 "Missing username or password" — the Basic header is absent or a
//     credential is blank.
//   - 401 "Invalid username or password" — unknown user or wrong password.
//     The two cases are indistinguishable on the wire.
//   - 200 {"user_id": ..., "token": "..."} — on success.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, password, ok := r.BasicAuth()
	if !ok || username == "" || password == "" {
		log.Warn().Msg("login request without basic auth credentials")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Missing username or password"}, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	user, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound), errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("username", username).Msg("login rejected")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid username or password"}, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error during login")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error creating token")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{UserID: user.UserID, Token: token.String()}, http.StatusOK)
}
