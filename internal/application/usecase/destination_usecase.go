package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/application/ports"
	"github.com/jhoicas/turismo-api/internal/application/shaping"
	"github.com/jhoicas/turismo-api/internal/domain"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// DestinationUseCase casos de uso CRUD para destinos, acotados por empresa.
// Toda mutación verifica la pertenencia antes de tocar datos: un id de otra
// empresa se reporta como ErrForbidden (el handler lo colapsa con not-found).
type DestinationUseCase struct {
	repo  repository.DestinationRepository
	media ports.MediaStore
}

// NewDestinationUseCase construye el caso de uso.
func NewDestinationUseCase(repo repository.DestinationRepository, media ports.MediaStore) *DestinationUseCase {
	return &DestinationUseCase{repo: repo, media: media}
}

// Create valida y crea un destino para la empresa. La imagen es opcional.
func (uc *DestinationUseCase) Create(ctx context.Context, companyID string, in dto.CreateDestinationRequest, image *ports.Upload) (*dto.ListingResponse, error) {
	ve := &domain.ValidationError{}
	checkTitle(ve, in.Title)
	checkLocation(ve, in.Location)
	checkCategory(ve, in.Category)
	checkPrice(ve, in.Price)
	checkDiscount(ve, in.Price, in.DiscountPrice)
	checkRating(ve, in.Rating)
	if err := errOrNil(ve); err != nil {
		return nil, err
	}

	imageKey, err := storeUpload(uc.media, image, nsDestinations)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	d := &entity.Destination{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		Category:      in.Category,
		Price:         in.Price,
		DiscountPrice: in.DiscountPrice,
		ImageKey:      imageKey,
		Rating:        in.Rating,
		IsFeatured:    in.IsFeatured,
		IsActive:      in.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := swapImage(uc.media, "", imageKey, func() error { return uc.repo.Create(ctx, d) }); err != nil {
		return nil, err
	}
	out := shaping.Destination(d, uc.media)
	return &out, nil
}

// GetByID obtiene un destino de la empresa. Inexistente → ErrNotFound;
// de otra empresa → ErrForbidden.
func (uc *DestinationUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ListingResponse, error) {
	d, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	out := shaping.Destination(d, uc.media)
	return &out, nil
}

// List lista los destinos de la empresa, paginados y moldeados.
func (uc *DestinationUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.ListingListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ListingResponse, 0, len(list))
	for _, d := range list {
		items = append(items, shaping.Destination(d, uc.media))
	}
	return &dto.ListingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update actualiza campos presentes. Sin imagen nueva, la clave existente no
// se toca; con imagen nueva se guarda primero y el archivo viejo se borra
// después de persistir.
func (uc *DestinationUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateDestinationRequest, image *ports.Upload) (*dto.ListingResponse, error) {
	d, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		d.Title = *in.Title
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Location != nil {
		d.Location = *in.Location
	}
	if in.Category != nil {
		d.Category = *in.Category
	}
	if in.Price != nil {
		d.Price = *in.Price
	}
	if in.ClearDiscount {
		d.DiscountPrice = nil
	} else if in.DiscountPrice != nil {
		d.DiscountPrice = in.DiscountPrice
	}
	if in.Rating != nil {
		d.Rating = *in.Rating
	}

	ve := &domain.ValidationError{}
	checkTitle(ve, d.Title)
	checkLocation(ve, d.Location)
	checkCategory(ve, d.Category)
	checkPrice(ve, d.Price)
	checkDiscount(ve, d.Price, d.DiscountPrice)
	checkRating(ve, d.Rating)
	if err := errOrNil(ve); err != nil {
		return nil, err
	}

	newKey, err := storeUpload(uc.media, image, nsDestinations)
	if err != nil {
		return nil, err
	}
	oldKey := d.ImageKey
	if newKey != "" {
		d.ImageKey = newKey
	}
	d.UpdatedAt = time.Now()

	if err := swapImage(uc.media, oldKey, newKey, func() error { return uc.repo.Update(ctx, d) }); err != nil {
		return nil, err
	}
	out := shaping.Destination(d, uc.media)
	return &out, nil
}

// Delete elimina el destino y después su archivo de imagen, si existía.
func (uc *DestinationUseCase) Delete(ctx context.Context, companyID, id string) error {
	d, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, d.ID); err != nil {
		return err
	}
	if d.ImageKey != "" {
		_ = uc.media.Delete(d.ImageKey)
	}
	return nil
}

// ToggleFeatured invierte is_featured. No es idempotente: cada llamada vuelve
// a invertir, el caller no debe reintentar a ciegas.
func (uc *DestinationUseCase) ToggleFeatured(ctx context.Context, companyID, id string) (*dto.ListingResponse, error) {
	return uc.toggle(ctx, companyID, id, func(d *entity.Destination) { d.IsFeatured = !d.IsFeatured })
}

// ToggleActive invierte is_active. Mismas semánticas que ToggleFeatured.
func (uc *DestinationUseCase) ToggleActive(ctx context.Context, companyID, id string) (*dto.ListingResponse, error) {
	return uc.toggle(ctx, companyID, id, func(d *entity.Destination) { d.IsActive = !d.IsActive })
}

func (uc *DestinationUseCase) toggle(ctx context.Context, companyID, id string, flip func(*entity.Destination)) (*dto.ListingResponse, error) {
	d, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	flip(d)
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	out := shaping.Destination(d, uc.media)
	return &out, nil
}

// ListPublic catálogo público: solo destinos activos, con filtros opcionales.
func (uc *DestinationUseCase) ListPublic(ctx context.Context, f repository.PublicFilter, page dto.PageRequest) (*dto.ListingListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListPublic(ctx, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ListingResponse, 0, len(list))
	for _, d := range list {
		items = append(items, shaping.Destination(d, uc.media))
	}
	return &dto.ListingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// GetPublic detalle público de un destino activo.
func (uc *DestinationUseCase) GetPublic(ctx context.Context, id string) (*dto.ListingResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil || !d.IsActive {
		return nil, domain.ErrNotFound
	}
	out := shaping.Destination(d, uc.media)
	return &out, nil
}

// owned carga el destino y verifica la pertenencia a la empresa.
func (uc *DestinationUseCase) owned(ctx context.Context, companyID, id string) (*entity.Destination, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if d.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return d, nil
}
