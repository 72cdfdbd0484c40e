package input

import (
	"context"

	"localesync/internal/domain/entities"
)

// ValidateOptions tune a validate run.
type ValidateOptions struct {
	Strict         bool
	CheckTemplates bool
}

type ValidateUseCase interface {
	Validate(ctx context.Context, opts ValidateOptions) (*entities.ValidationReport, error)
}
