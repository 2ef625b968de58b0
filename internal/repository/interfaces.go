package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/book-manager/internal/models"
)

var ErrNotFound = errors.New("record not found")

// Books is the ordered book collection.
// Duplicate (title, author) pairs are checked by the caller, not by the store.
type Books interface {
	List(ctx context.Context) ([]models.Book, error)
	Get(ctx context.Context, id string) (models.Book, error)
	// FindByTitleAuthor returns the first book other than excludeID whose
	// title and author match case-insensitively.
	FindByTitleAuthor(ctx context.Context, title, author, excludeID string) (models.Book, bool, error)
	Insert(ctx context.Context, b models.Book) (models.Book, error)
	Replace(ctx context.Context, b models.Book) (models.Book, error)
	Delete(ctx context.Context, id string) (models.Book, error)
	Count(ctx context.Context) (int, error)
}

// Credentials is the fixed, read-only credential set.
type Credentials interface {
	Lookup(ctx context.Context, username string) (models.Credential, bool)
}
