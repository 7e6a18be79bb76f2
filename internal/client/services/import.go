// Package services contains the application services of the pwimport CLI.
// This file defines the import service: it merges accepted candidates into
// the stored collection and persists the result with a single write.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/izm4457/password-manager/internal/client/importer"
	"github.com/izm4457/password-manager/internal/client/models"
	"github.com/izm4457/password-manager/internal/client/repositories/credentials"
	"github.com/izm4457/password-manager/internal/logging"
)

// UnknownService is stored for a candidate whose service is still empty at
// commit time.
const UnknownService = "Unknown Service"

var (
	// ErrLoadFailure wraps an error reading the current collection.
	ErrLoadFailure = errors.New("failed to load stored credentials")
	// ErrPersistenceFailure wraps an error from Repository.ReplaceAll. The
	// store's own message follows the prefix unchanged.
	ErrPersistenceFailure = errors.New("persistence failure")
)

// ImportResult describes a successful commit.
type ImportResult struct {
	ImportedCount int
	// Collection is the full collection as persisted.
	Collection []models.Credential
}

// ImportService commits accepted candidates.
//
// Commit performs exactly one ReplaceAll. When it fails nothing is
// considered committed and the caller may retry with the same input.
// Concurrent commits against one store are last-writer-wins.
type ImportService interface {
	Commit(ctx context.Context, accepted []importer.CandidateRecord) (*ImportResult, error)
}

type importService struct {
	repo  credentials.Repository
	log   logging.Logger
	newID func() string
}

// NewImportService constructs an ImportService persisting through repo.
func NewImportService(repo credentials.Repository, log logging.Logger) ImportService {
	return &importService{repo: repo, log: log, newID: uuid.NewString}
}

func (s *importService) Commit(ctx context.Context, accepted []importer.CandidateRecord) (*ImportResult, error) {
	existing, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}

	merged := Merge(existing, accepted, s.newID)

	if err := s.repo.ReplaceAll(ctx, merged); err != nil {
		s.log.Error(ctx, "import commit failed", "existing", len(existing), "accepted", len(accepted), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	s.log.Info(ctx, "import committed", "existing", len(existing), "imported", len(accepted), "total", len(merged))
	return &ImportResult{ImportedCount: len(accepted), Collection: merged}, nil
}

// Merge returns a new slice holding existing followed by accepted, in input
// order. Each accepted candidate gets an id from newID, and an empty service
// becomes UnknownService. existing is not modified.
func Merge(existing []models.Credential, accepted []importer.CandidateRecord, newID func() string) []models.Credential {
	out := make([]models.Credential, 0, len(existing)+len(accepted))
	out = append(out, existing...)
	for _, c := range accepted {
		service := c.Service
		if service == "" {
			service = UnknownService
		}
		out = append(out, models.Credential{
			Id:       newID(),
			Service:  service,
			Username: c.Username,
			Password: c.Password,
			Notes:    c.Notes,
		})
	}
	return out
}
