package memory

import (
	"context"

	"github.com/baharkarakas/book-manager/internal/models"
	"github.com/baharkarakas/book-manager/internal/repository"
)

type credentialsRepo struct {
	byName map[string]models.Credential
}

// NewCredentials indexes creds by exact username. Later duplicates win.
func NewCredentials(creds []models.Credential) repository.Credentials {
	m := make(map[string]models.Credential, len(creds))
	for _, c := range creds {
		m[c.Username] = c
	}
	return &credentialsRepo{byName: m}
}

func (r *credentialsRepo) Lookup(_ context.Context, username string) (models.Credential, bool) {
	c, ok := r.byName[username]
	return c, ok
}
