package repository

import (
	"context"

	"github.com/jhoicas/turismo-api/internal/domain/entity"
)

// FavoriteRow favorito más el título del listado guardado, para el shaping.
type FavoriteRow struct {
	Favorite  entity.Favorite
	ItemTitle string
}

// FavoriteRepository define el puerto de persistencia para favoritos.
// Create devuelve domain.ErrDuplicate si (user, kind, id) ya existe.
type FavoriteRepository interface {
	Create(ctx context.Context, f *entity.Favorite) error
	Delete(ctx context.Context, userID string, item entity.BookedItemRef) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]FavoriteRow, error)
}
