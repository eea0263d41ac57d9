package dto

import "time"

// AddFavoriteRequest entrada para guardar un listado como favorito.
type AddFavoriteRequest struct {
	ItemKind string `json:"item_kind" validate:"required"`
	ItemID   string `json:"item_id" validate:"required"`
}

// FavoriteResponse favorito moldeado con el título del listado guardado.
type FavoriteResponse struct {
	ID        string    `json:"id"`
	ItemKind  string    `json:"item_kind"`
	ItemID    string    `json:"item_id"`
	ItemTitle string    `json:"item_title"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteListResponse lista paginada de favoritos.
type FavoriteListResponse struct {
	Items []FavoriteResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
