package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/turismo-api/internal/domain"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

var _ repository.FavoriteRepository = (*FavoriteRepo)(nil)

// FavoriteRepo implementación del puerto FavoriteRepository sobre PostgreSQL.
type FavoriteRepo struct {
	q Querier
}

// NewFavoriteRepository construye el adaptador.
func NewFavoriteRepository(q Querier) *FavoriteRepo {
	return &FavoriteRepo{q: q}
}

// Create persiste un favorito. Devuelve domain.ErrDuplicate si el viajero ya
// guardó este listado.
func (r *FavoriteRepo) Create(ctx context.Context, f *entity.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, item_kind, item_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, f.ID, f.UserID, f.Item.Kind, f.Item.ID, f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// Delete elimina un favorito por su clave natural.
func (r *FavoriteRepo) Delete(ctx context.Context, userID string, item entity.BookedItemRef) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND item_kind = $2 AND item_id = $3`,
		userID, item.Kind, item.ID,
	)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

// ListByUser lista los favoritos del viajero con el título del listado,
// created_at descendente.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]repository.FavoriteRow, error) {
	query := `
		SELECT f.id, f.user_id, f.item_kind, f.item_id, f.created_at,
		       COALESCE(d.title, o.title, p.title, '') AS item_title
		FROM favorites f
		LEFT JOIN destinations d ON f.item_kind = 'destination' AND d.id = f.item_id
		LEFT JOIN offers o       ON f.item_kind = 'offer'       AND o.id = f.item_id
		LEFT JOIN packages p     ON f.item_kind = 'package'     AND p.id = f.item_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()
	var list []repository.FavoriteRow
	for rows.Next() {
		var fr repository.FavoriteRow
		err := rows.Scan(
			&fr.Favorite.ID, &fr.Favorite.UserID, &fr.Favorite.Item.Kind,
			&fr.Favorite.Item.ID, &fr.Favorite.CreatedAt, &fr.ItemTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		list = append(list, fr)
	}
	return list, rows.Err()
}
