package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/book-manager/internal/api/httpx"
	"github.com/baharkarakas/book-manager/internal/middleware"
	"github.com/baharkarakas/book-manager/internal/models"
)

type BookService interface {
	List(ctx context.Context) ([]models.Book, error)
	Get(ctx context.Context, id string) (models.Book, error)
	Create(ctx context.Context, p models.BookPayload, actor string) (models.Book, error)
	Update(ctx context.Context, id string, p models.BookPayload, actor string) (models.Book, error)
	Delete(ctx context.Context, id string) (models.BookRef, error)
}

type BookHandler struct {
	svc BookService
}

func NewBookHandler(svc BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Books retrieved successfully", books)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Book retrieved successfully", b)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.BookPayload
	if err := httpx.DecodeJSON(w, r, &p); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	actor, _ := middleware.Username(r.Context())
	b, err := h.svc.Create(r.Context(), p, actor)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, "Book created successfully", b)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p models.BookPayload
	if err := httpx.DecodeJSON(w, r, &p); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	actor, _ := middleware.Username(r.Context())
	b, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), p, actor)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Book updated successfully", b)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ref, err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Book deleted successfully", map[string]models.BookRef{"deletedBook": ref})
}
