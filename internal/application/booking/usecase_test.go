package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/domain"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeCheckoutRepo repositorio de reservas en memoria con pertenencia por
// empresa explícita (owner por id de reserva).
type fakeCheckoutRepo struct {
	rows   map[string]*repository.CheckoutRow
	owner  map[string]string // checkout id -> company id dueña del listado
	failTx bool              // fuerza RowsAffected=0 para simular carrera
}

func newFakeCheckoutRepo() *fakeCheckoutRepo {
	return &fakeCheckoutRepo{rows: map[string]*repository.CheckoutRow{}, owner: map[string]string{}}
}

func (f *fakeCheckoutRepo) add(companyID string, row repository.CheckoutRow) {
	f.rows[row.Checkout.ID] = &row
	f.owner[row.Checkout.ID] = companyID
}

func (f *fakeCheckoutRepo) Create(_ context.Context, c *entity.Checkout) error {
	f.rows[c.ID] = &repository.CheckoutRow{Checkout: *c}
	return nil
}

func (f *fakeCheckoutRepo) GetByCompany(_ context.Context, id, companyID string) (*repository.CheckoutRow, error) {
	row, ok := f.rows[id]
	if !ok || f.owner[id] != companyID {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeCheckoutRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]repository.CheckoutRow, error) {
	var out []repository.CheckoutRow
	for id, row := range f.rows {
		if f.owner[id] == companyID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeCheckoutRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	n := 0
	for id := range f.rows {
		if f.owner[id] == companyID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCheckoutRepo) SumConfirmedRevenue(_ context.Context, companyID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for id, row := range f.rows {
		if f.owner[id] == companyID && row.Checkout.Status == entity.CheckoutStatusConfirmed {
			total = total.Add(row.Checkout.TotalPrice)
		}
	}
	return total, nil
}

func (f *fakeCheckoutRepo) TransitionStatus(_ context.Context, id string, allowedFrom []string, to string) (bool, error) {
	if f.failTx {
		return false, nil
	}
	row, ok := f.rows[id]
	if !ok {
		return false, nil
	}
	for _, from := range allowedFrom {
		if row.Checkout.Status == from {
			row.Checkout.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCheckoutRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]repository.CheckoutRow, error) {
	var out []repository.CheckoutRow
	for _, row := range f.rows {
		if row.Checkout.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

// fakeDestRepo solo implementa lo que el caso de uso de reservas toca.
type fakeDestRepo struct {
	byID map[string]*entity.Destination
}

func (f *fakeDestRepo) Create(context.Context, *entity.Destination) error { return nil }
func (f *fakeDestRepo) GetByID(_ context.Context, id string) (*entity.Destination, error) {
	return f.byID[id], nil
}
func (f *fakeDestRepo) Update(context.Context, *entity.Destination) error { return nil }
func (f *fakeDestRepo) Delete(context.Context, string) error              { return nil }
func (f *fakeDestRepo) ListByCompany(context.Context, string, int, int) ([]*entity.Destination, error) {
	return nil, nil
}
func (f *fakeDestRepo) CountByCompany(context.Context, string) (int, error) { return 0, nil }
func (f *fakeDestRepo) ListPublic(context.Context, repository.PublicFilter, int, int) ([]*entity.Destination, error) {
	return nil, nil
}
func (f *fakeDestRepo) NamesByIDs(context.Context, []string) (map[string]string, error) {
	return map[string]string{}, nil
}

type fakeOfferRepo struct{ byID map[string]*entity.Offer }

func (f *fakeOfferRepo) Create(context.Context, *entity.Offer) error { return nil }
func (f *fakeOfferRepo) GetByID(_ context.Context, id string) (*entity.Offer, error) {
	return f.byID[id], nil
}
func (f *fakeOfferRepo) Update(context.Context, *entity.Offer) error { return nil }
func (f *fakeOfferRepo) Delete(context.Context, string) error        { return nil }
func (f *fakeOfferRepo) ListByCompany(context.Context, string, int, int) ([]*entity.Offer, error) {
	return nil, nil
}
func (f *fakeOfferRepo) CountByCompany(context.Context, string) (int, error) { return 0, nil }
func (f *fakeOfferRepo) ListPublic(context.Context, repository.PublicFilter, int, int) ([]*entity.Offer, error) {
	return nil, nil
}

type fakePackageRepo struct{ byID map[string]*entity.Package }

func (f *fakePackageRepo) Create(context.Context, *entity.Package) error { return nil }
func (f *fakePackageRepo) GetByID(_ context.Context, id string) (*entity.Package, error) {
	return f.byID[id], nil
}
func (f *fakePackageRepo) Update(context.Context, *entity.Package) error { return nil }
func (f *fakePackageRepo) Delete(context.Context, string) error          { return nil }
func (f *fakePackageRepo) ListByCompany(context.Context, string, int, int) ([]*entity.Package, error) {
	return nil, nil
}
func (f *fakePackageRepo) CountByCompany(context.Context, string) (int, error) { return 0, nil }
func (f *fakePackageRepo) ListPublic(context.Context, repository.PublicFilter, int, int) ([]*entity.Package, error) {
	return nil, nil
}

type fakeCompanyRepo struct{ byID map[string]*entity.Company }

func (f *fakeCompanyRepo) Create(context.Context, *entity.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return f.byID[id], nil
}
func (f *fakeCompanyRepo) GetByEmail(context.Context, string) (*entity.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) GetByLicense(context.Context, string) (*entity.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) Update(context.Context, *entity.Company) error { return nil }

type fakeVoucherGen struct{ called bool }

func (f *fakeVoucherGen) GenerateVoucher(context.Context, repository.CheckoutRow, *entity.Company) ([]byte, error) {
	f.called = true
	return []byte("%PDF-1.7 fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	empresaA = "company-a"
	empresaB = "company-b"
	viajero  = "user-1"
)

func dinero(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func reserva(id, status string, total decimal.Decimal) repository.CheckoutRow {
	name := "Ana Torres"
	email := "ana@example.com"
	return repository.CheckoutRow{
		Checkout: entity.Checkout{
			ID:         id,
			UserID:     viajero,
			Item:       entity.BookedItemRef{Kind: entity.KindDestination, ID: "dest-1"},
			Status:     status,
			TotalPrice: total,
			Guests:     2,
			CheckIn:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt:  time.Now(),
		},
		UserName:  &name,
		UserEmail: &email,
		ItemTitle: "Playa Escondida",
	}
}

func newBookingUC(checkouts *fakeCheckoutRepo) (*UseCase, *fakeVoucherGen) {
	dests := &fakeDestRepo{byID: map[string]*entity.Destination{
		"dest-1": {
			ID: "dest-1", CompanyID: empresaA, Title: "Playa Escondida",
			Price: dinero("50"), IsActive: true,
		},
		"dest-inactive": {
			ID: "dest-inactive", CompanyID: empresaA, Title: "Cerrado",
			Price: dinero("80"), IsActive: false,
		},
	}}
	descuento := dinero("30")
	offers := &fakeOfferRepo{byID: map[string]*entity.Offer{
		"offer-1": {
			ID: "offer-1", CompanyID: empresaA, DestinationID: "dest-1",
			Title: "Oferta Caribe", Price: dinero("40"),
			DiscountPrice: &descuento, IsActive: true,
		},
	}}
	packages := &fakePackageRepo{byID: map[string]*entity.Package{}}
	companies := &fakeCompanyRepo{byID: map[string]*entity.Company{
		empresaA: {ID: empresaA, Name: "Viajes Andinos", LicenseNumber: "LIC-001", Status: entity.CompanyStatusActive},
	}}
	gen := &fakeVoucherGen{}
	return NewUseCase(checkouts, dests, offers, packages, companies, gen), gen
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirm_PendingAConfirmed(t *testing.T) {
	repo := newFakeCheckoutRepo()
	repo.add(empresaA, reserva("b1", entity.CheckoutStatusPending, dinero("100")))
	uc, _ := newBookingUC(repo)

	out, err := uc.Confirm(context.Background(), "b1", empresaA)
	require.NoError(t, err)

	assert.Equal(t, entity.CheckoutStatusConfirmed, out.Status)
	assert.Equal(t, entity.CheckoutStatusConfirmed, repo.rows["b1"].Checkout.Status)
	// La respuesta viene moldeada: el item reservado en el campo de su kind.
	require.NotNil(t, out.Destination)
	assert.Nil(t, out.Offer)
	assert.Nil(t, out.Package)
	assert.Equal(t, "Playa Escondida", out.Destination.Title)
}

func TestConfirm_ConfirmadaDosVecesFalla(t *testing.T) {
	repo := newFakeCheckoutRepo()
	repo.add(empresaA, reserva("b1", entity.CheckoutStatusConfirmed, dinero("100")))
	uc, _ := newBookingUC(repo)

	_, err := uc.Confirm(context.Background(), "b1", empresaA)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConfirm_CanceladaNoSeConfirma(t *testing.T) {
	repo := newFakeCheckoutRepo()
	repo.add(empresaA, reserva("b1", entity.CheckoutStatusCancelled, dinero("100")))
	uc, _ := newBookingUC(repo)

	_, err := uc.Confirm(context.Background(), "b1", empresaA)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCancel_DesdePendingYConfirmed(t *testing.T) {
	repo := newFakeCheckoutRepo()
	repo.add(empresaA, reserva("b1", entity.CheckoutStatusPending, dinero("100")))
	repo.add(empresaA, reserva("b2", entity.CheckoutStatusConfirmed, dinero("200")))
	uc, _ := newBookingUC(repo)

	for _, id := range []string{"b1", "b2"} {
		out, err := uc.Cancel(context.Background(), id, empresaA)
		require.NoError(t, err, "cancelar %s", id)
		assert.Equal(t, entity.CheckoutStatusCancelled, out.Status)
	}
}

func TestCancel_CancelledEsTerminal(t *testing.T) {
	repo := newFakeCheckoutRepo()
	repo.add(empresaA, reserva("b1", entity.CheckoutStatusCancelled, dinero("100")))
	uc, _ := newBookingUC(repo)

	_, err := uc.Cancel(context.Background(), "b1", empresaA)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// La reserva de otra empresa y la inexistente responden igual: no se filtra
// la existencia de reservas ajenas.
func TestTransiciones_ReservaAjenaYFantasmaIndistinguibles(t *testing.T) {
	repo := newFakeCheckoutRepo()
	repo.add(empresaB, reserva("ajena", entity.CheckoutStatusPending, dinero("100")))
	uc, _ := newBookingUC(repo)

	_, errAjena := uc.Confirm(context.Background(), "ajena", empresaA)
	_, errFantasma := uc.Confirm(context.Background(), "no-existe", empresaA)

	assert.ErrorIs(t, errAjena, domain.ErrNotFound)
	assert.ErrorIs(t, errFantasma, domain.ErrNotFound)
	// El estado de la reserva ajena no cambió.
	assert.Equal(t, entity.CheckoutStatusPending, repo.rows["ajena"].Checkout.Status)
}

// Simula la carrera: la precondición pasa en la lectura pero el UPDATE
// condicional no afecta filas porque otra petición ganó.
func TestConfirm_CarreraPerdidaDevuelveConflict(t *testing.T) {
	repo := newFakeCheckoutRepo()
	repo.add(empresaA, reserva("b1", entity.CheckoutStatusPending, dinero("100")))
	repo.failTx = true
	uc, _ := newBookingUC(repo)

	_, err := uc.Confirm(context.Background(), "b1", empresaA)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de reservas por el viajero
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CongelaPrecioEfectivoPorHuesped(t *testing.T) {
	repo := newFakeCheckoutRepo()
	uc, _ := newBookingUC(repo)

	out, err := uc.Create(context.Background(), viajero, dto.CreateCheckoutRequest{
		ItemKind: "offer",
		ItemID:   "offer-1",
		Guests:   3,
		CheckIn:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// La oferta vale 40 con descuento a 30: total = 30 × 3.
	assert.True(t, dinero("90").Equal(out.TotalPrice), "total: %s", out.TotalPrice)
	assert.Equal(t, entity.CheckoutStatusPending, out.Status)
	require.NotNil(t, out.Offer)
	assert.Equal(t, "Oferta Caribe", out.Offer.Title)
}

func TestCreate_ListadoInactivoNoSeReserva(t *testing.T) {
	repo := newFakeCheckoutRepo()
	uc, _ := newBookingUC(repo)

	_, err := uc.Create(context.Background(), viajero, dto.CreateCheckoutRequest{
		ItemKind: "destination",
		ItemID:   "dest-inactive",
		Guests:   1,
		CheckIn:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ValidaCamposDeEntrada(t *testing.T) {
	repo := newFakeCheckoutRepo()
	uc, _ := newBookingUC(repo)

	_, err := uc.Create(context.Background(), viajero, dto.CreateCheckoutRequest{
		ItemKind: "hotel", // kind desconocido
		Guests:   0,
		CheckIn:  time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), // antes del check-in
	})

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "debe ser ValidationError: %v", err)
	assert.Contains(t, ve.Fields, "item_kind")
	assert.Contains(t, ve.Fields, "item_id")
	assert.Contains(t, ve.Fields, "guests")
	assert.Contains(t, ve.Fields, "check_out")
}

// ──────────────────────────────────────────────────────────────────────────────
// Comprobante PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestVoucher_SoloReservasConfirmadas(t *testing.T) {
	repo := newFakeCheckoutRepo()
	repo.add(empresaA, reserva("ok", entity.CheckoutStatusConfirmed, dinero("150")))
	repo.add(empresaA, reserva("pend", entity.CheckoutStatusPending, dinero("150")))
	uc, gen := newBookingUC(repo)

	pdfBytes, err := uc.Voucher(context.Background(), "ok", empresaA)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.True(t, gen.called)

	_, err = uc.Voucher(context.Background(), "pend", empresaA)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestVoucher_ReservaAjenaEsNotFound(t *testing.T) {
	repo := newFakeCheckoutRepo()
	repo.add(empresaB, reserva("ajena", entity.CheckoutStatusConfirmed, dinero("150")))
	uc, _ := newBookingUC(repo)

	_, err := uc.Voucher(context.Background(), "ajena", empresaA)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
