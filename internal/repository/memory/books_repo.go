package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/baharkarakas/book-manager/internal/models"
	"github.com/baharkarakas/book-manager/internal/repository"
)

// SeedBooks is the content of every fresh store.
func SeedBooks() []models.Book {
	return []models.Book{
		{ID: uuid.NewString(), Title: "The Alchemist", Author: "Paulo Coelho", Genre: "Fiction", YearPublished: 1988},
		{ID: uuid.NewString(), Title: "Clean Code", Author: "Robert C. Martin", Genre: "Programming", YearPublished: 2008},
	}
}

// booksRepo keeps books in insertion order. The mutex only protects the
// slice; check-then-write sequences in callers are not atomic.
type booksRepo struct {
	mu    sync.RWMutex
	books []models.Book
}

func NewBooks(seed ...models.Book) repository.Books {
	r := &booksRepo{books: make([]models.Book, 0, len(seed))}
	r.books = append(r.books, seed...)
	return r
}

func (r *booksRepo) List(_ context.Context) ([]models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *booksRepo) Get(_ context.Context, id string) (models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.books[i], nil
	}
	return models.Book{}, repository.ErrNotFound
}

func (r *booksRepo) FindByTitleAuthor(_ context.Context, title, author, excludeID string) (models.Book, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.books {
		if b.ID != excludeID && b.SameTitleAuthor(title, author) {
			return b, true, nil
		}
	}
	return models.Book{}, false, nil
}

func (r *booksRepo) Insert(_ context.Context, b models.Book) (models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if r.indexOf(b.ID) >= 0 {
		return models.Book{}, fmt.Errorf("insert book %s: id already taken", b.ID)
	}
	r.books = append(r.books, b)
	return b, nil
}

func (r *booksRepo) Replace(_ context.Context, b models.Book) (models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(b.ID)
	if i < 0 {
		return models.Book{}, repository.ErrNotFound
	}
	r.books[i] = b
	return b, nil
}

func (r *booksRepo) Delete(_ context.Context, id string) (models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return models.Book{}, repository.ErrNotFound
	}
	removed := r.books[i]
	r.books = append(r.books[:i], r.books[i+1:]...)
	return removed, nil
}

func (r *booksRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books), nil
}

// indexOf expects r.mu to be held.
func (r *booksRepo) indexOf(id string) int {
	for i := range r.books {
		if r.books[i].ID == id {
			return i
		}
	}
	return -1
}
