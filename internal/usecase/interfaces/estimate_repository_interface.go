package interfaces

import (
	"context"
	"errors"

	"hospital_billing/internal/domain/entities"
)

// ErrEstimateNumberConflict is returned by Save when another save committed a
// document number between the caller's ordinal read and its write. The
// usecase retries a bounded number of times.
var ErrEstimateNumberConflict = errors.New("estimate number already assigned")

// ISavedEstimateRepository abstracts DynamoDB persistence for saved
// estimates and their line snapshots.
//
// Numbering contract:
//   - LastAssignedOrdinal returns the highest committed ordinal (0 when the
//     store is empty).
//   - Save writes the header, every line snapshot and the counter advance as
//     one atomic unit, conditioned on the counter still holding prevOrdinal.
//     Concurrent saves are therefore strictly ordered and gap-free.

type ISavedEstimateRepository interface {
	LastAssignedOrdinal(ctx context.Context) (int, error)
	Save(ctx context.Context, est entities.SavedEstimate, lines []entities.SavedEstimateService, prevOrdinal int) (entities.SavedEstimate, error)
	GetByID(ctx context.Context, id string) (entities.SavedEstimate, error)
	ListAll(ctx context.Context) ([]entities.SavedEstimate, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.SavedEstimate, error)
	ListServicesByEstimateID(ctx context.Context, estimateID string) ([]entities.SavedEstimateService, error)
}
