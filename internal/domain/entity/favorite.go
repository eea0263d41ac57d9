package entity

import "time"

// Favorite representa un listado guardado por un viajero.
// Único por (user_id, item_kind, item_id).
type Favorite struct {
	ID        string
	UserID    string
	Item      BookedItemRef
	CreatedAt time.Time
}
