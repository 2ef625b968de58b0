package memory

import (
	"github.com/baharkarakas/book-manager/internal/models"
	repo "github.com/baharkarakas/book-manager/internal/repository"
)

type Repositories struct {
	Books       repo.Books
	Credentials repo.Credentials
}

// NewRepositories returns a freshly seeded book store and the given credential set.
func NewRepositories(creds []models.Credential) Repositories {
	return Repositories{
		Books:       NewBooks(SeedBooks()...),
		Credentials: NewCredentials(creds),
	}
}
