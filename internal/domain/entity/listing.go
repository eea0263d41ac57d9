package entity

// ListingKind identifica el tipo de listado reservable del marketplace.
type ListingKind string

const (
	KindDestination ListingKind = "destination"
	KindOffer       ListingKind = "offer"
	KindPackage     ListingKind = "package"
)

// Valid indica si el kind es uno de los tres listados soportados.
func (k ListingKind) Valid() bool {
	switch k {
	case KindDestination, KindOffer, KindPackage:
		return true
	}
	return false
}

// Categorías de destino (deben coincidir con el CHECK de las tablas de listados).
const (
	CategoryBeach      = "Beach"
	CategoryMountain   = "Mountain"
	CategoryCity       = "City"
	CategoryCultural   = "Cultural"
	CategoryAdventure  = "Adventure"
	CategoryHistorical = "Historical"
	CategoryWildlife   = "Wildlife"
)

// Categories lista todas las categorías válidas.
var Categories = []string{
	CategoryBeach, CategoryMountain, CategoryCity, CategoryCultural,
	CategoryAdventure, CategoryHistorical, CategoryWildlife,
}

// ValidCategory indica si s es una categoría conocida.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// Tipos de descuento para Offer y Package.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)
