package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/domain"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// FavoriteUseCase favoritos de un viajero sobre listados del catálogo.
type FavoriteUseCase struct {
	repo repository.FavoriteRepository
}

// NewFavoriteUseCase construye el caso de uso.
func NewFavoriteUseCase(repo repository.FavoriteRepository) *FavoriteUseCase {
	return &FavoriteUseCase{repo: repo}
}

// Add guarda un listado como favorito. Duplicado → domain.ErrDuplicate.
func (uc *FavoriteUseCase) Add(ctx context.Context, userID string, in dto.AddFavoriteRequest) (*dto.FavoriteResponse, error) {
	kind := entity.ListingKind(in.ItemKind)
	if !kind.Valid() {
		return nil, domain.NewValidationError("item_kind", "debe ser destination, offer o package")
	}
	if in.ItemID == "" {
		return nil, domain.NewValidationError("item_id", "es requerido")
	}
	f := &entity.Favorite{
		ID:        uuid.New().String(),
		UserID:    userID,
		Item:      entity.BookedItemRef{Kind: kind, ID: in.ItemID},
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return &dto.FavoriteResponse{
		ID:        f.ID,
		ItemKind:  string(f.Item.Kind),
		ItemID:    f.Item.ID,
		CreatedAt: f.CreatedAt,
	}, nil
}

// Remove quita el favorito del viajero sobre el item dado.
func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, itemKind, itemID string) error {
	kind := entity.ListingKind(itemKind)
	if !kind.Valid() {
		return domain.NewValidationError("item_kind", "debe ser destination, offer o package")
	}
	return uc.repo.Delete(ctx, userID, entity.BookedItemRef{Kind: kind, ID: itemID})
}

// List lista los favoritos del viajero con el título del listado guardado.
func (uc *FavoriteUseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.FavoriteListResponse, error) {
	page.DefaultPage()
	rows, err := uc.repo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FavoriteResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.FavoriteResponse{
			ID:        r.Favorite.ID,
			ItemKind:  string(r.Favorite.Item.Kind),
			ItemID:    r.Favorite.Item.ID,
			ItemTitle: r.ItemTitle,
			CreatedAt: r.Favorite.CreatedAt,
		})
	}
	return &dto.FavoriteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}
