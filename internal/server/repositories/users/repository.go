package users

import (
	"context"

	"github.com/dmitrijs2005/usersvc/internal/server/models"
)

// Repository is the storage contract for the users entity. Implementations
// classify storage failures into the sentinel errors of internal/common;
// callers match them with errors.Is and never inspect error text.
type Repository interface {
	ListAll(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, fields models.UserFields) (*models.User, error)
	Replace(ctx context.Context, id int64, fields models.UserFields) (*models.User, error)
	MergeUpdate(ctx context.Context, id int64, fields models.UserFields) (*models.UpdateResult, error)
	Delete(ctx context.Context, id int64) (string, error)
	Stats(ctx context.Context) (*models.Stats, error)
	Paginate(ctx context.Context, pagina int, limite int) (*models.Page, error)
}
