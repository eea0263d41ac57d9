package shaping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turismo-api/internal/application/shaping"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// fakeResolver Media Store de prueba: conoce un conjunto fijo de claves.
type fakeResolver struct{ known map[string]string }

func (f *fakeResolver) URLFor(key string) string { return f.known[key] }

func newResolver() *fakeResolver {
	return &fakeResolver{known: map[string]string{
		"destinations/playa-abc.jpg": "http://localhost:8080/media/destinations/playa-abc.jpg",
	}}
}

func TestShapeDestination_AplicaDefaults(t *testing.T) {
	d := &entity.Destination{
		ID:       "d1",
		Price:    decimal.NewFromInt(150),
		IsActive: true,
	}
	out := shaping.Destination(d, newResolver())

	assert.Equal(t, "Untitled Destination", out.Title, "título vacío debe usar el default")
	assert.Equal(t, "Uncategorized", out.Category, "categoría vacía debe usar el default")
	assert.True(t, out.Rating.IsZero(), "rating ausente debe moldearse como 0")
	assert.Nil(t, out.ImageURL, "sin clave de imagen la URL debe ser null")
	assert.Equal(t, "destination", out.Kind)
}

func TestShapeDestination_ResuelveImagen(t *testing.T) {
	d := &entity.Destination{
		ID:       "d1",
		Title:    "Playa Blanca",
		Category: entity.CategoryBeach,
		Price:    decimal.NewFromInt(200),
		ImageKey: "destinations/playa-abc.jpg",
		Rating:   decimal.NewFromFloat(4.5),
	}
	out := shaping.Destination(d, newResolver())

	require.NotNil(t, out.ImageURL)
	assert.Equal(t, "http://localhost:8080/media/destinations/playa-abc.jpg", *out.ImageURL)
	assert.Equal(t, "Playa Blanca", out.Title)
	assert.Equal(t, "Beach", out.Category)
}

func TestShapeDestination_ClaveDesconocida_URLNull(t *testing.T) {
	d := &entity.Destination{ID: "d1", ImageKey: "destinations/borrada.jpg"}
	out := shaping.Destination(d, newResolver())
	assert.Nil(t, out.ImageURL, "clave sin archivo debe moldearse como null")
}

func TestShapeOffer_ReduceDestino(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	o := &entity.Offer{
		ID:            "o1",
		DestinationID: "d1",
		Title:         "Oferta de temporada",
		Category:      entity.CategoryMountain,
		Price:         decimal.NewFromInt(300),
		DiscountType:  entity.DiscountPercentage,
		StartDate:     start,
		EndDate:       end,
	}
	out := shaping.Offer(o, "Nevado del Ruiz", newResolver())

	require.NotNil(t, out.Destination)
	assert.Equal(t, "d1", out.Destination.ID)
	assert.Equal(t, "Nevado del Ruiz", out.Destination.Name)
	assert.Equal(t, "offer", out.Kind)
	require.NotNil(t, out.StartDate)
	assert.Equal(t, start, *out.StartDate)
}

func TestShapePackage_IncluyeSubtitulo(t *testing.T) {
	p := &entity.Package{
		ID:       "p1",
		Subtitle: "Todo incluido",
		Price:    decimal.NewFromInt(900),
	}
	out := shaping.Package(p, "", newResolver())

	assert.Equal(t, "Untitled Package", out.Title)
	assert.Equal(t, "Todo incluido", out.Subtitle)
	require.NotNil(t, out.Destination, "el destino reducido debe existir aunque el título falte")
	assert.Empty(t, out.Destination.Name)
}

func TestShapeBooking_PlaceholdersDeUsuario(t *testing.T) {
	row := repository.CheckoutRow{
		Checkout: entity.Checkout{
			ID:         "c1",
			Item:       entity.BookedItemRef{Kind: entity.KindDestination, ID: "d1"},
			Status:     entity.CheckoutStatusPending,
			TotalPrice: decimal.NewFromInt(100),
			Guests:     2,
		},
		ItemTitle: "Playa Blanca",
	}
	out := shaping.Booking(row)

	assert.Equal(t, "Anonymous", out.User.Name, "reserva sin viajero debe usar el placeholder")
	assert.Equal(t, "N/A", out.User.Email)
	require.NotNil(t, out.Destination, "el resumen del kind reservado debe ir poblado")
	assert.Nil(t, out.Offer, "los otros dos kinds deben ir null")
	assert.Nil(t, out.Package)
	assert.Equal(t, "Playa Blanca", out.Destination.Title)
}

func TestShapeBooking_ConUsuario(t *testing.T) {
	name, email := "Ana", "ana@example.com"
	row := repository.CheckoutRow{
		Checkout: entity.Checkout{
			ID:     "c2",
			UserID: "u1",
			Item:   entity.BookedItemRef{Kind: entity.KindPackage, ID: "p1"},
			Status: entity.CheckoutStatusConfirmed,
		},
		UserName:  &name,
		UserEmail: &email,
		ItemTitle: "Eje Cafetero",
	}
	out := shaping.Booking(row)

	assert.Equal(t, "Ana", out.User.Name)
	require.NotNil(t, out.Package)
	assert.Nil(t, out.Destination)
	assert.Equal(t, "package", out.Package.Kind)
}
