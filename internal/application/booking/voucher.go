package booking

import (
	"context"
	"fmt"

	"github.com/jhoicas/turismo-api/internal/domain"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// VoucherGenerator puerto de salida hacia el generador de comprobantes PDF.
type VoucherGenerator interface {
	GenerateVoucher(ctx context.Context, row repository.CheckoutRow, company *entity.Company) ([]byte, error)
}

// Voucher genera el comprobante PDF de una reserva confirmada de la empresa.
// Las reservas en cualquier otro estado no tienen comprobante (ErrConflict).
func (uc *UseCase) Voucher(ctx context.Context, bookingID, companyID string) ([]byte, error) {
	row, err := uc.checkouts.GetByCompany(ctx, bookingID, companyID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if row.Checkout.Status != entity.CheckoutStatusConfirmed {
		return nil, fmt.Errorf("%w: solo las reservas confirmadas tienen comprobante (estado actual: %s)",
			domain.ErrConflict, row.Checkout.Status)
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.vouchers.GenerateVoucher(ctx, *row, company)
}
