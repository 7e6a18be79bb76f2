// Package credentials persists the credential collection of the SQL stores.
package credentials

import (
	"context"

	"github.com/izm4457/password-manager/internal/client/models"
)

// Repository loads and replaces the whole collection.
//
// ReplaceAll is all or nothing: on error the previously stored collection
// is untouched. There is no optimistic locking, so when two writers run a
// LoadAll/ReplaceAll cycle concurrently the last ReplaceAll wins.
type Repository interface {
	LoadAll(ctx context.Context) ([]models.Credential, error)
	ReplaceAll(ctx context.Context, records []models.Credential) error
}
