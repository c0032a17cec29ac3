package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fanbase/internal/logger"
	"fanbase/internal/service"
	"fanbase/internal/store"
	"fanbase/internal/utils"
	"fanbase/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], resolves the claimed
// user via [service.UserService.GetUser], and — on success — stores the
// authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests in the following cases:
//   - The "Authorization" header is absent or carries no token segment →
//     401 "Token is missing!".
//   - The token has expired → 401 "Token has expired".
//   - The token is otherwise invalid or cannot be parsed → 401 "Token is invalid".
//   - The claimed user no longer exists → 404 "User not found".
//   - Any other fault while resolving the user → 500 with the error's message.
//     This is a deliberate catch-all boundary: the guard never propagates an
//     unhandled fault to the transport layer.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: "Token is missing!"}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				utils.WriteJSON(w, models.MessageResponse{Message: "Token has expired"}, http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteJSON(w, models.MessageResponse{Message: "Token is invalid"}, http.StatusUnauthorized)
				return
			}
		}

		if _, err := h.services.UserService.GetUser(ctx, token.UserID); err != nil {
			switch {
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Err(err).Int64("user_id", token.UserID).Msg("token user no longer exists")
				utils.WriteJSON(w, models.MessageResponse{Message: "User not found"}, http.StatusNotFound)
				return
			default:
				log.Err(err).Int64("user_id", token.UserID).Msg("unexpected error resolving token user")
				utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is an empty string.
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
