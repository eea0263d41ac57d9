// Package shaping convierte entidades crudas en registros listos para
// presentación: defaults documentados, imagen resuelta a URL pública y
// destino vinculado reducido a {id, name}. Es la única implementación del
// moldeado; los cuatro controladores la comparten en vez de divergir.
package shaping

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// Defaults aplicados al moldear un listado incompleto.
const (
	UntitledDestination = "Untitled Destination"
	UntitledOffer       = "Untitled Offer"
	UntitledPackage     = "Untitled Package"
	Uncategorized       = "Uncategorized"
)

// Placeholders del viajero cuando la reserva no tiene usuario asociado.
const (
	AnonymousName  = "Anonymous"
	AnonymousEmail = "N/A"
)

// Resolver resuelve claves del Media Store a URLs públicas.
// Devuelve "" cuando la clave está vacía o el archivo no existe.
type Resolver interface {
	URLFor(key string) string
}

// core campos comunes de los tres kinds; cada kind aporta sus extras.
type core struct {
	id, title, description, location, category string
	price                                      decimal.Decimal
	discountPrice                              *decimal.Decimal
	imageKey                                   string
	rating                                     decimal.Decimal
	isFeatured, isActive                       bool
}

// shape aplica los defaults y la resolución de media sobre los campos comunes.
func shape(kind entity.ListingKind, untitled string, c core, media Resolver) dto.ListingResponse {
	title := c.title
	if title == "" {
		title = untitled
	}
	category := c.category
	if category == "" {
		category = Uncategorized
	}
	var imageURL *string
	if c.imageKey != "" && media != nil {
		if u := media.URLFor(c.imageKey); u != "" {
			imageURL = &u
		}
	}
	rating := c.rating
	if rating.IsNegative() {
		rating = decimal.Zero
	}
	return dto.ListingResponse{
		ID:            c.id,
		Kind:          string(kind),
		Title:         title,
		Description:   c.description,
		Location:      c.location,
		Category:      category,
		Price:         c.price,
		DiscountPrice: c.discountPrice,
		ImageURL:      imageURL,
		Rating:        rating,
		IsFeatured:    c.isFeatured,
		IsActive:      c.isActive,
	}
}

// Destination moldea un destino para presentación.
func Destination(d *entity.Destination, media Resolver) dto.ListingResponse {
	out := shape(entity.KindDestination, UntitledDestination, core{
		id: d.ID, title: d.Title, description: d.Description, location: d.Location,
		category: d.Category, price: d.Price, discountPrice: d.DiscountPrice,
		imageKey: d.ImageKey, rating: d.Rating, isFeatured: d.IsFeatured, isActive: d.IsActive,
	}, media)
	out.CreatedAt = d.CreatedAt
	out.UpdatedAt = d.UpdatedAt
	return out
}

// Offer moldea una oferta. destName es el título del destino vinculado
// ("" si fue borrado; se reduce igualmente a {id, name}).
func Offer(o *entity.Offer, destName string, media Resolver) dto.ListingResponse {
	out := shape(entity.KindOffer, UntitledOffer, core{
		id: o.ID, title: o.Title, description: o.Description, location: o.Location,
		category: o.Category, price: o.Price, discountPrice: o.DiscountPrice,
		imageKey: o.ImageKey, rating: o.Rating, isFeatured: o.IsFeatured, isActive: o.IsActive,
	}, media)
	out.DiscountType = o.DiscountType
	start, end := o.StartDate, o.EndDate
	out.StartDate, out.EndDate = &start, &end
	out.Destination = &dto.DestinationRef{ID: o.DestinationID, Name: destName}
	out.CreatedAt = o.CreatedAt
	out.UpdatedAt = o.UpdatedAt
	return out
}

// Package moldea un paquete (oferta más subtítulo).
func Package(p *entity.Package, destName string, media Resolver) dto.ListingResponse {
	out := shape(entity.KindPackage, UntitledPackage, core{
		id: p.ID, title: p.Title, description: p.Description, location: p.Location,
		category: p.Category, price: p.Price, discountPrice: p.DiscountPrice,
		imageKey: p.ImageKey, rating: p.Rating, isFeatured: p.IsFeatured, isActive: p.IsActive,
	}, media)
	out.Subtitle = p.Subtitle
	out.DiscountType = p.DiscountType
	start, end := p.StartDate, p.EndDate
	out.StartDate, out.EndDate = &start, &end
	out.Destination = &dto.DestinationRef{ID: p.DestinationID, Name: destName}
	out.CreatedAt = p.CreatedAt
	out.UpdatedAt = p.UpdatedAt
	return out
}

// Booking moldea una reserva: viajero reducido con placeholders y el resumen
// del listado reservado en exactamente uno de los tres campos.
func Booking(row repository.CheckoutRow) dto.BookingResponse {
	c := row.Checkout
	user := dto.UserSummary{Name: AnonymousName, Email: AnonymousEmail}
	if row.UserName != nil && *row.UserName != "" {
		user.Name = *row.UserName
	}
	if row.UserEmail != nil && *row.UserEmail != "" {
		user.Email = *row.UserEmail
	}
	out := dto.BookingResponse{
		ID:         c.ID,
		Status:     c.Status,
		TotalPrice: c.TotalPrice,
		Guests:     c.Guests,
		CheckIn:    c.CheckIn,
		CheckOut:   c.CheckOut,
		User:       user,
		CreatedAt:  c.CreatedAt,
	}
	item := &dto.BookedItemSummary{ID: c.Item.ID, Kind: string(c.Item.Kind), Title: row.ItemTitle}
	switch c.Item.Kind {
	case entity.KindDestination:
		out.Destination = item
	case entity.KindOffer:
		out.Offer = item
	case entity.KindPackage:
		out.Package = item
	}
	return out
}
