package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/baharkarakas/book-manager/internal/api/validate"
	"github.com/baharkarakas/book-manager/internal/metrics"
	"github.com/baharkarakas/book-manager/internal/models"
	repo "github.com/baharkarakas/book-manager/internal/repository"
)

const msgBookNotFound = "Book not found"

type BookService struct {
	r   repo.Books
	now func() time.Time
}

func NewBookService(r repo.Books) *BookService {
	return &BookService{r: r, now: time.Now}
}

// WithClock sets the clock used for the year range and audit stamps.
func (s *BookService) WithClock(now func() time.Time) *BookService {
	s.now = now
	return s
}

func (s *BookService) List(ctx context.Context) (books []models.Book, err error) {
	defer s.observe(ctx, "list", &err)

	books, err = s.r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *BookService) Get(ctx context.Context, id string) (b models.Book, err error) {
	defer s.observe(ctx, "get", &err)
	return s.get(ctx, id)
}

func (s *BookService) Create(ctx context.Context, p models.BookPayload, actor string) (b models.Book, err error) {
	defer s.observe(ctx, "create", &err)

	now := s.now()
	in, err := s.validate(p, now)
	if err != nil {
		return models.Book{}, err
	}
	if err := s.checkDuplicate(ctx, in, ""); err != nil {
		return models.Book{}, err
	}

	at := now.UTC()
	b, err = s.r.Insert(ctx, models.Book{
		Title:         in.Title,
		Author:        in.Author,
		Genre:         in.Genre,
		YearPublished: in.YearPublished,
		CreatedAt:     &at,
		CreatedBy:     actor,
	})
	if err != nil {
		return models.Book{}, fmt.Errorf("insert book: %w", err)
	}
	slog.InfoContext(ctx, "book created", "book_id", b.ID, "by", actor)
	return b, nil
}

// Update replaces every client-writable field of the book. Checks run in the
// order validation, existence, duplicate.
func (s *BookService) Update(ctx context.Context, id string, p models.BookPayload, actor string) (b models.Book, err error) {
	defer s.observe(ctx, "update", &err)

	now := s.now()
	in, err := s.validate(p, now)
	if err != nil {
		return models.Book{}, err
	}
	current, err := s.get(ctx, id)
	if err != nil {
		return models.Book{}, err
	}
	if err := s.checkDuplicate(ctx, in, current.ID); err != nil {
		return models.Book{}, err
	}

	at := now.UTC()
	current.Title = in.Title
	current.Author = in.Author
	current.Genre = in.Genre
	current.YearPublished = in.YearPublished
	current.UpdatedAt = &at
	current.UpdatedBy = actor

	b, err = s.r.Replace(ctx, current)
	if errors.Is(err, repo.ErrNotFound) {
		// removed between the lookup and the write
		return models.Book{}, models.NewNotFoundError(msgBookNotFound, nil)
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("replace book %s: %w", id, err)
	}
	slog.InfoContext(ctx, "book updated", "book_id", b.ID, "by", actor)
	return b, nil
}

func (s *BookService) Delete(ctx context.Context, id string) (ref models.BookRef, err error) {
	defer s.observe(ctx, "delete", &err)

	removed, err := s.r.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.BookRef{}, models.NewNotFoundError(msgBookNotFound, nil)
	}
	if err != nil {
		return models.BookRef{}, fmt.Errorf("delete book %s: %w", id, err)
	}
	slog.InfoContext(ctx, "book deleted", "book_id", removed.ID)
	return removed.Ref(), nil
}

func (s *BookService) get(ctx context.Context, id string) (models.Book, error) {
	if id == "" {
		return models.Book{}, models.NewNotFoundError(msgBookNotFound, nil)
	}
	b, err := s.r.Get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Book{}, models.NewNotFoundError(msgBookNotFound, nil)
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("get book %s: %w", id, err)
	}
	return b, nil
}

func (s *BookService) validate(p models.BookPayload, now time.Time) (models.BookInput, error) {
	err := p.Validate(now)
	if err == nil {
		return p.Input(), nil
	}
	if errs, ok := validate.Collect(err, models.BookFields...); ok {
		return models.BookInput{}, models.NewValidationError("Validation failed", errs)
	}
	return models.BookInput{}, fmt.Errorf("validate book: %w", err)
}

func (s *BookService) checkDuplicate(ctx context.Context, in models.BookInput, excludeID string) error {
	existing, found, err := s.r.FindByTitleAuthor(ctx, in.Title, in.Author, excludeID)
	if err != nil {
		return fmt.Errorf("find duplicate: %w", err)
	}
	if found {
		return models.NewConflictError(
			"A book with this title and author already exists",
			map[string]any{"existingBook": existing.Ref()},
		)
	}
	return nil
}

func (s *BookService) observe(ctx context.Context, op string, err *error) {
	metrics.BookOperations.WithLabelValues(op, metrics.Outcome(*err)).Inc()
	if n, cErr := s.r.Count(ctx); cErr == nil {
		metrics.BooksStored.Set(float64(n))
	}
}
