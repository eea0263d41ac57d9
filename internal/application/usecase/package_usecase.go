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

// PackageUseCase casos de uso CRUD para paquetes: mismas reglas que Offer
// más el subtítulo opcional.
type PackageUseCase struct {
	repo     repository.PackageRepository
	destRepo repository.DestinationRepository
	media    ports.MediaStore
}

// NewPackageUseCase construye el caso de uso.
func NewPackageUseCase(repo repository.PackageRepository, destRepo repository.DestinationRepository, media ports.MediaStore) *PackageUseCase {
	return &PackageUseCase{repo: repo, destRepo: destRepo, media: media}
}

// Create valida y crea un paquete.
func (uc *PackageUseCase) Create(ctx context.Context, companyID string, in dto.CreatePackageRequest, image *ports.Upload) (*dto.ListingResponse, error) {
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

	imageKey, err := storeUpload(uc.media, image, nsPackages)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &entity.Package{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		DestinationID: dest.ID,
		Title:         in.Title,
		Subtitle:      in.Subtitle,
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
	if err := swapImage(uc.media, "", imageKey, func() error { return uc.repo.Create(ctx, p) }); err != nil {
		return nil, err
	}
	out := shaping.Package(p, dest.Title, uc.media)
	return &out, nil
}

// GetByID obtiene un paquete de la empresa.
func (uc *PackageUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ListingResponse, error) {
	p, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return uc.shapeOne(ctx, p)
}

// List lista los paquetes de la empresa, paginados y moldeados.
func (uc *PackageUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.ListingListResponse, error) {
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

// Update actualiza campos presentes con las mismas reglas que Offer.Update.
func (uc *PackageUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdatePackageRequest, image *ports.Upload) (*dto.ListingResponse, error) {
	p, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Subtitle != nil {
		p.Subtitle = *in.Subtitle
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.ClearDiscount {
		p.DiscountPrice = nil
	} else if in.DiscountPrice != nil {
		p.DiscountPrice = in.DiscountPrice
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.DiscountType != nil {
		p.DiscountType = *in.DiscountType
	}
	if in.StartDate != nil {
		p.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		p.EndDate = *in.EndDate
	}

	ve := &domain.ValidationError{}
	checkTitle(ve, p.Title)
	checkLocation(ve, p.Location)
	checkCategory(ve, p.Category)
	checkPrice(ve, p.Price)
	checkDiscount(ve, p.Price, p.DiscountPrice)
	checkRating(ve, p.Rating)
	checkDiscountType(ve, p.DiscountType)
	checkDates(ve, p.StartDate, p.EndDate, false, time.Now())
	if in.DestinationID != nil {
		dest, err := uc.linkedDestination(ctx, companyID, *in.DestinationID, ve)
		if err != nil {
			return nil, err
		}
		if dest != nil {
			p.DestinationID = dest.ID
		}
	}
	if err := errOrNil(ve); err != nil {
		return nil, err
	}

	newKey, err := storeUpload(uc.media, image, nsPackages)
	if err != nil {
		return nil, err
	}
	oldKey := p.ImageKey
	if newKey != "" {
		p.ImageKey = newKey
	}
	p.UpdatedAt = time.Now()

	if err := swapImage(uc.media, oldKey, newKey, func() error { return uc.repo.Update(ctx, p) }); err != nil {
		return nil, err
	}
	return uc.shapeOne(ctx, p)
}

// Delete elimina el paquete y después su archivo de imagen.
func (uc *PackageUseCase) Delete(ctx context.Context, companyID, id string) error {
	p, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, p.ID); err != nil {
		return err
	}
	if p.ImageKey != "" {
		_ = uc.media.Delete(p.ImageKey)
	}
	return nil
}

// ToggleFeatured invierte is_featured (no idempotente).
func (uc *PackageUseCase) ToggleFeatured(ctx context.Context, companyID, id string) (*dto.ListingResponse, error) {
	return uc.toggle(ctx, companyID, id, func(p *entity.Package) { p.IsFeatured = !p.IsFeatured })
}

// ToggleActive invierte is_active (no idempotente).
func (uc *PackageUseCase) ToggleActive(ctx context.Context, companyID, id string) (*dto.ListingResponse, error) {
	return uc.toggle(ctx, companyID, id, func(p *entity.Package) { p.IsActive = !p.IsActive })
}

func (uc *PackageUseCase) toggle(ctx context.Context, companyID, id string, flip func(*entity.Package)) (*dto.ListingResponse, error) {
	p, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	flip(p)
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.shapeOne(ctx, p)
}

// ListPublic catálogo público de paquetes activos.
func (uc *PackageUseCase) ListPublic(ctx context.Context, f repository.PublicFilter, page dto.PageRequest) (*dto.ListingListResponse, error) {
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

// GetPublic detalle público de un paquete activo.
func (uc *PackageUseCase) GetPublic(ctx context.Context, id string) (*dto.ListingResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsActive {
		return nil, domain.ErrNotFound
	}
	return uc.shapeOne(ctx, p)
}

func (uc *PackageUseCase) linkedDestination(ctx context.Context, companyID, destID string, ve *domain.ValidationError) (*entity.Destination, error) {
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

func (uc *PackageUseCase) owned(ctx context.Context, companyID, id string) (*entity.Package, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func (uc *PackageUseCase) shapeOne(ctx context.Context, p *entity.Package) (*dto.ListingResponse, error) {
	names, err := uc.destRepo.NamesByIDs(ctx, []string{p.DestinationID})
	if err != nil {
		return nil, err
	}
	out := shaping.Package(p, names[p.DestinationID], uc.media)
	return &out, nil
}

func (uc *PackageUseCase) shapeMany(ctx context.Context, list []*entity.Package) ([]dto.ListingResponse, error) {
	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.DestinationID)
	}
	names, err := uc.destRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ListingResponse, 0, len(list))
	for _, p := range list {
		items = append(items, shaping.Package(p, names[p.DestinationID], uc.media))
	}
	return items, nil
}
