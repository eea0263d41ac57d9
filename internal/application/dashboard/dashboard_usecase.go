// Package dashboard contiene el agregador del panel de empresa: conteos,
// vistas paginadas moldeadas y revenue confirmado, todo acotado a la
// propiedad de la empresa autenticada.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/turismo-api/internal/application/booking"
	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/application/usecase"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// Pages paginación independiente de cada vista del panel.
type Pages struct {
	Destinations dto.PageRequest
	Offers       dto.PageRequest
	Packages     dto.PageRequest
	Bookings     dto.PageRequest
}

// UseCase arma el DashboardSummaryDTO de una empresa.
//
// El acotado por empresa se re-evalúa en cada llamada (nada se cachea entre
// peticiones): no hay fuga entre tenants ni bajo modificación concurrente.
// El revenue siempre se deriva fresco de las reservas confirmadas.
type UseCase struct {
	destinations *usecase.DestinationUseCase
	offers       *usecase.OfferUseCase
	packages     *usecase.PackageUseCase
	bookings     *booking.UseCase
	checkouts    repository.CheckoutRepository
}

// NewUseCase construye el agregador.
func NewUseCase(
	destinations *usecase.DestinationUseCase,
	offers *usecase.OfferUseCase,
	packages *usecase.PackageUseCase,
	bookings *booking.UseCase,
	checkouts repository.CheckoutRepository,
) *UseCase {
	return &UseCase{
		destinations: destinations,
		offers:       offers,
		packages:     packages,
		bookings:     bookings,
		checkouts:    checkouts,
	}
}

// GetSummary construye el panel completo para la empresa indicada.
//
// Seis consultas independientes en paralelo:
//  1. destinos paginados (el total alimenta el conteo)
//  2. ofertas paginadas
//  3. paquetes paginados
//  4. reservas paginadas (unión de pertenencia, created_at desc)
//  5. conteo de reservas de la empresa
//  6. revenue confirmado
//
// Cualquier fallo de almacenamiento aborta la agregación completa; nunca se
// devuelven resultados parciales.
func (uc *UseCase) GetSummary(ctx context.Context, companyID string, pages Pages) (*dto.DashboardSummaryDTO, error) {
	type listResult struct {
		out *dto.ListingListResponse
		err error
	}
	type bookingsResult struct {
		out *dto.BookingListResponse
		err error
	}
	type countResult struct {
		n   int
		err error
	}
	type revenueResult struct {
		total decimal.Decimal
		err   error
	}

	destCh := make(chan listResult, 1)
	offerCh := make(chan listResult, 1)
	pkgCh := make(chan listResult, 1)
	bookCh := make(chan bookingsResult, 1)
	countCh := make(chan countResult, 1)
	revCh := make(chan revenueResult, 1)

	go func() {
		out, err := uc.destinations.List(ctx, companyID, pages.Destinations)
		destCh <- listResult{out, err}
	}()
	go func() {
		out, err := uc.offers.List(ctx, companyID, pages.Offers)
		offerCh <- listResult{out, err}
	}()
	go func() {
		out, err := uc.packages.List(ctx, companyID, pages.Packages)
		pkgCh <- listResult{out, err}
	}()
	go func() {
		out, err := uc.bookings.ListByCompany(ctx, companyID, pages.Bookings)
		bookCh <- bookingsResult{out, err}
	}()
	go func() {
		n, err := uc.checkouts.CountByCompany(ctx, companyID)
		countCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.checkouts.SumConfirmedRevenue(ctx, companyID)
		revCh <- revenueResult{total, err}
	}()

	dests := <-destCh
	offers := <-offerCh
	pkgs := <-pkgCh
	books := <-bookCh
	count := <-countCh
	revenue := <-revCh

	if dests.err != nil {
		return nil, fmt.Errorf("dashboard: destinos: %w", dests.err)
	}
	if offers.err != nil {
		return nil, fmt.Errorf("dashboard: ofertas: %w", offers.err)
	}
	if pkgs.err != nil {
		return nil, fmt.Errorf("dashboard: paquetes: %w", pkgs.err)
	}
	if books.err != nil {
		return nil, fmt.Errorf("dashboard: reservas: %w", books.err)
	}
	if count.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de reservas: %w", count.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: revenue: %w", revenue.err)
	}

	return &dto.DashboardSummaryDTO{
		Counts: dto.DashboardCounts{
			Destinations: dests.out.Page.Total,
			Offers:       offers.out.Page.Total,
			Packages:     pkgs.out.Page.Total,
			Checkouts:    count.n,
		},
		TotalRevenue: revenue.total.Round(2),
		Destinations: *dests.out,
		Offers:       *offers.out,
		Packages:     *pkgs.out,
		Bookings:     *books.out,
	}, nil
}
