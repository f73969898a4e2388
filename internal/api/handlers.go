package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kiraleos/wellness-backend/internal/auth"
	"github.com/kiraleos/wellness-backend/internal/core"
	"github.com/kiraleos/wellness-backend/internal/logger"
	"github.com/kiraleos/wellness-backend/internal/store"
)

type ctxKey int

const userIDKey ctxKey = iota

type APIHandler struct {
	chatService     *core.ChatService
	timelineService *core.TimelineService
	store           *store.SQLiteStore
	verifier        *auth.Verifier
	log             *logger.Logger
}

func NewAPIHandler(cs *core.ChatService, ts *core.TimelineService, db *store.SQLiteStore, v *auth.Verifier, log *logger.Logger) *APIHandler {
	return &APIHandler{
		chatService:     cs,
		timelineService: ts,
		store:           db,
		verifier:        v,
		log:             log.With("component", "api"),
	}
}

func (h *APIHandler) JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Authorization header is required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := h.verifier.ValidateJWT(tokenString)
		if err != nil {
			h.log.Debug("rejected token", "error", err)
			writeError(w, http.StatusUnauthorized, "unauthorized", "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFrom returns the authenticated user id set by JWTAuthMiddleware.
func userIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateResponse struct {
	Reply      string          `json:"reply"`
	TokenUsage core.TokenUsage `json:"token_usage"`
}

func (h *APIHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid request body: "+err.Error())
		return
	}

	result, err := h.chatService.Generate(r.Context(), req.Prompt)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, "invalid_prompt", verr.Reason)
			return
		}
		h.log.Error("generate failed", "user_id", userIDFrom(r), "error", err)
		writeError(w, http.StatusInternalServerError, "upstream_error", "Failed to generate a reply")
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Reply:      result.Text,
		TokenUsage: result.Usage,
	})
}

func (h *APIHandler) TimelineHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID != userIDFrom(r) {
		writeError(w, http.StatusForbidden, "forbidden", "Cannot read another user's timeline")
		return
	}

	result, err := h.timelineService.Timeline(r.Context(), userID)
	if err != nil {
		h.log.Error("timeline failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to build timeline")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
