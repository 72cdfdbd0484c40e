package input

import (
	"context"

	"localesync/internal/domain/entities"
)

// ReconcileOptions tune a reconcile run.
type ReconcileOptions struct {
	// DryRun computes changes without writing any file.
	DryRun bool
	// Strict aborts on a malformed locale file instead of treating it as empty.
	Strict bool
}

type ReconcileUseCase interface {
	Reconcile(ctx context.Context, opts ReconcileOptions) (*entities.ReconcileReport, error)
}
