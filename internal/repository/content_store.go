package repository

import (
	"context"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
)

// ContentStore looks up published content items by base path.
// Unknown paths fail with an error matching entity.ErrNotFound.
type ContentStore interface {
	ContentItem(ctx context.Context, path string) (*entity.ContentItem, error)
}
