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

// OfferUseCase casos de uso CRUD para ofertas. Además de las reglas de
// Destination, valida el tipo de descuento, el rango de vigencia y que el
// destino vinculado pertenezca a la misma empresa.
type OfferUseCase struct {
	repo     repository.OfferRepository
	destRepo repository.DestinationRepository
	media    ports.MediaStore
}

// NewOfferUseCase construye el caso de uso.
func NewOfferUseCase(repo repository.OfferRepository, destRepo repository.DestinationRepository, media ports.MediaStore) *OfferUseCase {
	return &OfferUseCase{repo: repo, destRepo: destRepo, media: media}
}

// Create valida y crea una oferta.
func (uc *OfferUseCase) Create(ctx context.Context, companyID string, in dto.CreateOfferRequest, image *ports.Upload) (*dto.ListingResponse, error) {
	ve := &domain.ValidationError{}
	checkTitle(ve, in.Title)
	checkLocation(ve, in.Location)
	checkCategory(ve, in.Category)
	checkPrice(ve, in.Price)
	checkDiscount(ve, in.Price, in.DiscountPrice)
	checkRating(ve, in.Rating)
	checkDiscountType(ve, in.DiscountType)
	checkDates(ve, in.StartDate, in.EndDate, true, time.Now())
	dest, err := uc.linkedDestination(ctx, companyID, in.DestinationID, ve)
	if err != nil {
		return nil, err
	}
	if err := errOrNil(ve); err != nil {
		return nil, err
	}

	imageKey, err := storeUpload(uc.media, image, nsOffers)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	o := &entity.Offer{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		DestinationID: dest.ID,
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		Category:      in.Category,
		Price:         in.Price,
		DiscountPrice: in.DiscountPrice,
		DiscountType:  in.DiscountType,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		ImageKey:      imageKey,
		Rating:        in.Rating,
		IsFeatured:    in.IsFeatured,
		IsActive:      in.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := swapImage(uc.media, "", imageKey, func() error { return uc.repo.Create(ctx, o) }); err != nil {
		return nil, err
	}
	out := shaping.Offer(o, dest.Title, uc.media)
	return &out, nil
}

// GetByID obtiene una oferta de la empresa.
func (uc *OfferUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ListingResponse, error) {
	o, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return uc.shapeOne(ctx, o)
}

// List lista las ofertas de la empresa, paginadas y moldeadas.
func (uc *OfferUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.ListingListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items, err := uc.shapeMany(ctx, list)
	if err != nil {
		return nil, err
	}
	return &dto.ListingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update actualiza campos presentes; al crear no, pero al editar el rango de
// fechas solo se exige start ≤ end (una oferta vigente puede haber empezado).
func (uc *OfferUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateOfferRequest, image *ports.Upload) (*dto.ListingResponse, error) {
	o, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		o.Title = *in.Title
	}
	if in.Description != nil {
		o.Description = *in.Description
	}
	if in.Location != nil {
		o.Location = *in.Location
	}
	if in.Category != nil {
		o.Category = *in.Category
	}
	if in.Price != nil {
		o.Price = *in.Price
	}
	if in.ClearDiscount {
		o.DiscountPrice = nil
	} else if in.DiscountPrice != nil {
		o.DiscountPrice = in.DiscountPrice
	}
	if in.Rating != nil {
		o.Rating = *in.Rating
	}
	if in.DiscountType != nil {
		o.DiscountType = *in.DiscountType
	}
	if in.StartDate != nil {
		o.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		o.EndDate = *in.EndDate
	}

	ve := &domain.ValidationError{}
	checkTitle(ve, o.Title)
	checkLocation(ve, o.Location)
	checkCategory(ve, o.Category)
	checkPrice(ve, o.Price)
	checkDiscount(ve, o.Price, o.DiscountPrice)
	checkRating(ve, o.Rating)
	checkDiscountType(ve, o.DiscountType)
	checkDates(ve, o.StartDate, o.EndDate, false, time.Now())
	if in.DestinationID != nil {
		dest, err := uc.linkedDestination(ctx, companyID, *in.DestinationID, ve)
		if err != nil {
			return nil, err
		}
		if dest != nil {
			o.DestinationID = dest.ID
		}
	}
	if err := errOrNil(ve); err != nil {
		return nil, err
	}

	newKey, err := storeUpload(uc.media, image, nsOffers)
	if err != nil {
		return nil, err
	}
	oldKey := o.ImageKey
	if newKey != "" {
		o.ImageKey = newKey
	}
	o.UpdatedAt = time.Now()

	if err := swapImage(uc.media, oldKey, newKey, func() error { return uc.repo.Update(ctx, o) }); err != nil {
		return nil, err
	}
	return uc.shapeOne(ctx, o)
}

// Delete elimina la oferta y después su archivo de imagen.
func (uc *OfferUseCase) Delete(ctx context.Context, companyID, id string) error {
	o, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, o.ID); err != nil {
		return err
	}
	if o.ImageKey != "" {
		_ = uc.media.Delete(o.ImageKey)
	}
	return nil
}

// ToggleFeatured invierte is_featured (no idempotente).
func (uc *OfferUseCase) ToggleFeatured(ctx context.Context, companyID, id string) (*dto.ListingResponse, error) {
	return uc.toggle(ctx, companyID, id, func(o *entity.Offer) { o.IsFeatured = !o.IsFeatured })
}

// ToggleActive invierte is_active (no idempotente).
func (uc *OfferUseCase) ToggleActive(ctx context.Context, companyID, id string) (*dto.ListingResponse, error) {
	return uc.toggle(ctx, companyID, id, func(o *entity.Offer) { o.IsActive = !o.IsActive })
}

func (uc *OfferUseCase) toggle(ctx context.Context, companyID, id string, flip func(*entity.Offer)) (*dto.ListingResponse, error) {
	o, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	flip(o)
	o.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return uc.shapeOne(ctx, o)
}

// ListPublic catálogo público de ofertas activas.
func (uc *OfferUseCase) ListPublic(ctx context.Context, f repository.PublicFilter, page dto.PageRequest) (*dto.ListingListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListPublic(ctx, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items, err := uc.shapeMany(ctx, list)
	if err != nil {
		return nil, err
	}
	return &dto.ListingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// GetPublic detalle público de una oferta activa.
func (uc *OfferUseCase) GetPublic(ctx context.Context, id string) (*dto.ListingResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil || !o.IsActive {
		return nil, domain.ErrNotFound
	}
	return uc.shapeOne(ctx, o)
}

// linkedDestination resuelve el destino vinculado y exige que pertenezca a la
// misma empresa; los problemas se acumulan como errores de validación.
func (uc *OfferUseCase) linkedDestination(ctx context.Context, companyID, destID string, ve *domain.ValidationError) (*entity.Destination, error) {
	if destID == "" {
		ve.Addf("destination_id", "el destino vinculado es requerido")
		return nil, nil
	}
	dest, err := uc.destRepo.GetByID(ctx, destID)
	if err != nil {
		return nil, err
	}
	if dest == nil || dest.CompanyID != companyID {
		ve.Addf("destination_id", "destino inexistente o de otra empresa")
		return nil, nil
	}
	return dest, nil
}

func (uc *OfferUseCase) owned(ctx context.Context, companyID, id string) (*entity.Offer, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

func (uc *OfferUseCase) shapeOne(ctx context.Context, o *entity.Offer) (*dto.ListingResponse, error) {
	names, err := uc.destRepo.NamesByIDs(ctx, []string{o.DestinationID})
	if err != nil {
		return nil, err
	}
	out := shaping.Offer(o, names[o.DestinationID], uc.media)
	return &out, nil
}

func (uc *OfferUseCase) shapeMany(ctx context.Context, list []*entity.Offer) ([]dto.ListingResponse, error) {
	ids := make([]string, 0, len(list))
	for _, o := range list {
		ids = append(ids, o.DestinationID)
	}
	names, err := uc.destRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ListingResponse, 0, len(list))
	for _, o := range list {
		items = append(items, shaping.Offer(o, names[o.DestinationID], uc.media))
	}
	return items, nil
}
