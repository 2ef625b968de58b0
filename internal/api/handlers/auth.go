package handlers

import (
	"context"
	"net/http"

	"github.com/baharkarakas/book-manager/internal/api/httpx"
	"github.com/baharkarakas/book-manager/internal/models"
	"github.com/baharkarakas/book-manager/internal/services"
)

type Authenticator interface {
	Login(ctx context.Context, p models.LoginPayload) (services.LoginResult, error)
}

type AuthHandler struct {
	svc Authenticator
}

func NewAuthHandler(svc Authenticator) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var p models.LoginPayload
	if err := httpx.DecodeJSON(w, r, &p); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	res, err := h.svc.Login(r.Context(), p)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Login successful", res)
}
