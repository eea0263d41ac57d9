// Package booking contiene los casos de uso sobre reservas: listado acotado
// por empresa, transiciones de estado y creación por parte del viajero.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/application/shaping"
	"github.com/jhoicas/turismo-api/internal/domain"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// UseCase reservas. La pertenencia de una reserva a la empresa siempre se
// deriva a través del listado reservado; inexistente y ajena se reportan
// igual (ErrNotFound) para no filtrar la existencia de reservas de otros
// tenants.
type UseCase struct {
	checkouts repository.CheckoutRepository
	dests     repository.DestinationRepository
	offers    repository.OfferRepository
	packages  repository.PackageRepository
	companies repository.CompanyRepository
	vouchers  VoucherGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	checkouts repository.CheckoutRepository,
	dests repository.DestinationRepository,
	offers repository.OfferRepository,
	packages repository.PackageRepository,
	companies repository.CompanyRepository,
	vouchers VoucherGenerator,
) *UseCase {
	return &UseCase{
		checkouts: checkouts,
		dests:     dests,
		offers:    offers,
		packages:  packages,
		companies: companies,
		vouchers:  vouchers,
	}
}

// ListByCompany lista las reservas de la empresa en orden cronológico
// inverso, moldeadas para presentación.
func (uc *UseCase) ListByCompany(ctx context.Context, companyID string, page dto.PageRequest) (*dto.BookingListResponse, error) {
	page.DefaultPage()
	rows, err := uc.checkouts.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.checkouts.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BookingResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, shaping.Booking(r))
	}
	return &dto.BookingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Confirm pasa la reserva de pending a confirmed y devuelve la reserva
// actualizada (señal de éxito explícita).
func (uc *UseCase) Confirm(ctx context.Context, bookingID, companyID string) (*dto.BookingResponse, error) {
	return uc.transition(ctx, bookingID, companyID,
		[]string{entity.CheckoutStatusPending}, entity.CheckoutStatusConfirmed,
		func(c *entity.Checkout) bool { return c.CanConfirm() },
		"solo una reserva pendiente puede confirmarse")
}

// Cancel pasa la reserva a cancelled desde pending o confirmed. cancelled es
// terminal: cancelar dos veces falla.
func (uc *UseCase) Cancel(ctx context.Context, bookingID, companyID string) (*dto.BookingResponse, error) {
	return uc.transition(ctx, bookingID, companyID,
		[]string{entity.CheckoutStatusPending, entity.CheckoutStatusConfirmed}, entity.CheckoutStatusCancelled,
		func(c *entity.Checkout) bool { return c.CanCancel() },
		"una reserva cancelada no admite más transiciones")
}

// transition aplica la precondición dos veces: primero sobre la lectura (para
// un mensaje claro) y de nuevo dentro del UPDATE condicional, que es el que
// serializa escrituras concurrentes sobre la misma reserva.
func (uc *UseCase) transition(
	ctx context.Context,
	bookingID, companyID string,
	allowedFrom []string, to string,
	allowed func(*entity.Checkout) bool,
	reason string,
) (*dto.BookingResponse, error) {
	row, err := uc.checkouts.GetByCompany(ctx, bookingID, companyID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if !allowed(&row.Checkout) {
		return nil, fmt.Errorf("%w: %s (estado actual: %s)", domain.ErrConflict, reason, row.Checkout.Status)
	}
	ok, err := uc.checkouts.TransitionStatus(ctx, bookingID, allowedFrom, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Otra petición ganó la carrera entre la lectura y el UPDATE.
		return nil, fmt.Errorf("%w: la reserva cambió de estado, recargue e intente de nuevo", domain.ErrConflict)
	}
	row.Checkout.Status = to
	out := shaping.Booking(*row)
	return &out, nil
}

// Create crea una reserva de un viajero sobre un listado activo. El precio
// total congela el precio efectivo del listado por huésped al momento de
// reservar.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateCheckoutRequest) (*dto.BookingResponse, error) {
	kind := entity.ListingKind(in.ItemKind)
	ve := &domain.ValidationError{}
	if !kind.Valid() {
		ve.Addf("item_kind", "debe ser destination, offer o package")
	}
	if in.ItemID == "" {
		ve.Addf("item_id", "es requerido")
	}
	if in.Guests < 1 {
		ve.Addf("guests", "mínimo un huésped")
	}
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		ve.Addf("check_in", "check-in y check-out son requeridos")
	} else if !in.CheckOut.After(in.CheckIn) {
		ve.Addf("check_out", "el check-out debe ser posterior al check-in")
	}
	if err := errOrNil(ve); err != nil {
		return nil, err
	}

	title, price, err := uc.activeListing(ctx, kind, in.ItemID)
	if err != nil {
		return nil, err
	}

	c := &entity.Checkout{
		ID:         uuid.New().String(),
		UserID:     userID,
		Item:       entity.BookedItemRef{Kind: kind, ID: in.ItemID},
		Status:     entity.CheckoutStatusPending,
		TotalPrice: price.Mul(decimal.NewFromInt(int64(in.Guests))),
		Guests:     in.Guests,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		CreatedAt:  time.Now(),
	}
	if err := uc.checkouts.Create(ctx, c); err != nil {
		return nil, err
	}
	out := shaping.Booking(repository.CheckoutRow{Checkout: *c, ItemTitle: title})
	return &out, nil
}

// ListByUser lista las reservas del viajero.
func (uc *UseCase) ListByUser(ctx context.Context, userID string, page dto.PageRequest) (*dto.BookingListResponse, error) {
	page.DefaultPage()
	rows, err := uc.checkouts.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BookingResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, shaping.Booking(r))
	}
	return &dto.BookingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// activeListing devuelve título y precio efectivo del listado si existe y
// está activo; si no, ErrNotFound.
func (uc *UseCase) activeListing(ctx context.Context, kind entity.ListingKind, id string) (string, decimal.Decimal, error) {
	switch kind {
	case entity.KindDestination:
		d, err := uc.dests.GetByID(ctx, id)
		if err != nil {
			return "", decimal.Zero, err
		}
		if d == nil || !d.IsActive {
			return "", decimal.Zero, domain.ErrNotFound
		}
		return d.Title, d.EffectivePrice(), nil
	case entity.KindOffer:
		o, err := uc.offers.GetByID(ctx, id)
		if err != nil {
			return "", decimal.Zero, err
		}
		if o == nil || !o.IsActive {
			return "", decimal.Zero, domain.ErrNotFound
		}
		return o.Title, o.EffectivePrice(), nil
	default:
		p, err := uc.packages.GetByID(ctx, id)
		if err != nil {
			return "", decimal.Zero, err
		}
		if p == nil || !p.IsActive {
			return "", decimal.Zero, domain.ErrNotFound
		}
		return p.Title, p.EffectivePrice(), nil
	}
}

// errOrNil devuelve el ValidationError como error solo si acumuló campos.
func errOrNil(ve *domain.ValidationError) error {
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}
