package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/application/ports"
	"github.com/jhoicas/turismo-api/internal/domain"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// memDestRepo repositorio de destinos en memoria. failUpdate fuerza el fallo
// de persistencia para probar la limpieza del archivo nuevo.
type memDestRepo struct {
	byID       map[string]*entity.Destination
	failUpdate bool
}

func newMemDestRepo() *memDestRepo {
	return &memDestRepo{byID: map[string]*entity.Destination{}}
}

func (m *memDestRepo) Create(_ context.Context, d *entity.Destination) error {
	cp := *d
	m.byID[d.ID] = &cp
	return nil
}

func (m *memDestRepo) GetByID(_ context.Context, id string) (*entity.Destination, error) {
	d, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (m *memDestRepo) Update(_ context.Context, d *entity.Destination) error {
	if m.failUpdate {
		return errors.New("conexión perdida")
	}
	cp := *d
	m.byID[d.ID] = &cp
	return nil
}

func (m *memDestRepo) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func (m *memDestRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Destination, error) {
	var out []*entity.Destination
	for _, d := range m.byID {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDestRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	list, _ := m.ListByCompany(context.Background(), companyID, 0, 0)
	return len(list), nil
}

func (m *memDestRepo) ListPublic(_ context.Context, f repository.PublicFilter, limit, offset int) ([]*entity.Destination, error) {
	var out []*entity.Destination
	for _, d := range m.byID {
		if !d.IsActive {
			continue
		}
		if f.Category != "" && d.Category != f.Category {
			continue
		}
		if f.Featured != nil && d.IsFeatured != *f.Featured {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *memDestRepo) NamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	out := map[string]string{}
	for _, id := range ids {
		if d, ok := m.byID[id]; ok {
			out[id] = d.Title
		}
	}
	return out, nil
}

// recordingMedia Media Store en memoria que registra stores y deletes.
type recordingMedia struct {
	next    int
	files   map[string]bool
	deleted []string
}

func newRecordingMedia() *recordingMedia {
	return &recordingMedia{files: map[string]bool{}}
}

func (m *recordingMedia) Store(_ io.Reader, namespace, _ string) (string, error) {
	m.next++
	key := fmt.Sprintf("%s/img-%d.jpg", namespace, m.next)
	m.files[key] = true
	return key, nil
}

func (m *recordingMedia) Delete(key string) error {
	delete(m.files, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *recordingMedia) URLFor(key string) string {
	if key == "" || !m.files[key] {
		return ""
	}
	return "http://media.local/" + key
}

func (m *recordingMedia) Exists(key string) bool { return m.files[key] }

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	miEmpresa   = "company-a"
	otraEmpresa = "company-b"
)

func precio(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func validCreate() dto.CreateDestinationRequest {
	return dto.CreateDestinationRequest{
		Title:    "Playa Blanca",
		Location: "Cartagena",
		Category: entity.CategoryBeach,
		Price:    precio("120.50"),
		Rating:   precio("4.5"),
		IsActive: true,
	}
}

func upload() *ports.Upload {
	return &ports.Upload{Reader: strings.NewReader("jpegdata"), Filename: "foto.jpg"}
}

func buildDestUC() (*DestinationUseCase, *memDestRepo, *recordingMedia) {
	repo := newMemDestRepo()
	media := newRecordingMedia()
	return NewDestinationUseCase(repo, media), repo, media
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DescuentoIgualOAlPrecioSeRechaza(t *testing.T) {
	uc, _, _ := buildDestUC()

	for _, discount := range []string{"120.50", "500"} {
		in := validCreate()
		d := precio(discount)
		in.DiscountPrice = &d

		_, err := uc.Create(context.Background(), miEmpresa, in, nil)

		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve), "descuento %s debe fallar", discount)
		assert.Contains(t, ve.Fields, "discount_price",
			"el error debe nombrar el campo discount_price")
	}
}

func TestCreate_DescuentoMenorQueElPrecioPasa(t *testing.T) {
	uc, _, _ := buildDestUC()
	in := validCreate()
	d := precio("99.99")
	in.DiscountPrice = &d

	out, err := uc.Create(context.Background(), miEmpresa, in, nil)
	require.NoError(t, err)
	require.NotNil(t, out.DiscountPrice)
	assert.True(t, precio("99.99").Equal(*out.DiscountPrice))
}

func TestCreate_AcumulaErroresPorCampo(t *testing.T) {
	uc, _, _ := buildDestUC()

	_, err := uc.Create(context.Background(), miEmpresa, dto.CreateDestinationRequest{
		Title:    "",
		Location: "",
		Category: "Volcano",
		Price:    precio("0"),
		Rating:   precio("9"),
	}, nil)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	for _, campo := range []string{"title", "location", "category", "price", "rating"} {
		assert.Contains(t, ve.Fields, campo)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Pertenencia
// ──────────────────────────────────────────────────────────────────────────────

func TestOwned_OtraEmpresaYFantasmaSeDistinguenInternamente(t *testing.T) {
	uc, repo, _ := buildDestUC()
	repo.byID["d1"] = &entity.Destination{ID: "d1", CompanyID: otraEmpresa, Title: "Ajeno"}

	_, errAjeno := uc.GetByID(context.Background(), miEmpresa, "d1")
	_, errFantasma := uc.GetByID(context.Background(), miEmpresa, "no-existe")

	// El use case distingue (ErrForbidden vs ErrNotFound); el handler colapsa
	// ambos en el mismo 404 hacia afuera.
	assert.ErrorIs(t, errAjeno, domain.ErrForbidden)
	assert.ErrorIs(t, errFantasma, domain.ErrNotFound)
}

func TestUpdate_NoTocaListadosAjenos(t *testing.T) {
	uc, repo, _ := buildDestUC()
	repo.byID["d1"] = &entity.Destination{
		ID: "d1", CompanyID: otraEmpresa, Title: "Original",
		Location: "Cali", Category: entity.CategoryCity, Price: precio("10"), IsActive: true,
	}

	titulo := "Hackeado"
	_, err := uc.Update(context.Background(), miEmpresa, "d1", dto.UpdateDestinationRequest{Title: &titulo}, nil)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Original", repo.byID["d1"].Title)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de la imagen
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_GuardaImagenBajoSuNamespace(t *testing.T) {
	uc, _, media := buildDestUC()

	out, err := uc.Create(context.Background(), miEmpresa, validCreate(), upload())
	require.NoError(t, err)

	require.NotNil(t, out.ImageURL)
	assert.Contains(t, *out.ImageURL, "destinations/")
	assert.Empty(t, media.deleted)
}

func TestUpdate_ImagenNuevaBorraLaVieja(t *testing.T) {
	uc, _, media := buildDestUC()
	created, err := uc.Create(context.Background(), miEmpresa, validCreate(), upload())
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), miEmpresa, created.ID, dto.UpdateDestinationRequest{}, upload())
	require.NoError(t, err)

	require.NotNil(t, updated.ImageURL)
	assert.NotEqual(t, *created.ImageURL, *updated.ImageURL)
	require.Len(t, media.deleted, 1)
	assert.Contains(t, *created.ImageURL, media.deleted[0])
}

func TestUpdate_SinImagenNuevaConservaLaExistente(t *testing.T) {
	uc, _, media := buildDestUC()
	created, err := uc.Create(context.Background(), miEmpresa, validCreate(), upload())
	require.NoError(t, err)

	titulo := "Playa Blanca Norte"
	updated, err := uc.Update(context.Background(), miEmpresa, created.ID, dto.UpdateDestinationRequest{Title: &titulo}, nil)
	require.NoError(t, err)

	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, *created.ImageURL, *updated.ImageURL)
	assert.Empty(t, media.deleted)
}

// Si el UPDATE falla después de subir la imagen nueva, el archivo nuevo se
// limpia y el viejo queda intacto.
func TestUpdate_FalloDePersistenciaLimpiaArchivoNuevo(t *testing.T) {
	uc, repo, media := buildDestUC()
	created, err := uc.Create(context.Background(), miEmpresa, validCreate(), upload())
	require.NoError(t, err)
	repo.failUpdate = true

	_, err = uc.Update(context.Background(), miEmpresa, created.ID, dto.UpdateDestinationRequest{}, upload())
	require.Error(t, err)

	// Queda exactamente el archivo original.
	assert.Len(t, media.files, 1)
	assert.NotEmpty(t, *created.ImageURL)
}

func TestDelete_BorraFilaYLuegoArchivo(t *testing.T) {
	uc, repo, media := buildDestUC()
	created, err := uc.Create(context.Background(), miEmpresa, validCreate(), upload())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), miEmpresa, created.ID))

	assert.NotContains(t, repo.byID, created.ID)
	assert.Empty(t, media.files)
}

// ──────────────────────────────────────────────────────────────────────────────
// Toggles y catálogo público
// ──────────────────────────────────────────────────────────────────────────────

func TestToggleFeatured_Invierte(t *testing.T) {
	uc, _, _ := buildDestUC()
	created, err := uc.Create(context.Background(), miEmpresa, validCreate(), nil)
	require.NoError(t, err)
	assert.False(t, created.IsFeatured)

	out, err := uc.ToggleFeatured(context.Background(), miEmpresa, created.ID)
	require.NoError(t, err)
	assert.True(t, out.IsFeatured)

	out, err = uc.ToggleFeatured(context.Background(), miEmpresa, created.ID)
	require.NoError(t, err)
	assert.False(t, out.IsFeatured)
}

func TestGetPublic_InactivoEsNotFound(t *testing.T) {
	uc, _, _ := buildDestUC()
	created, err := uc.Create(context.Background(), miEmpresa, validCreate(), nil)
	require.NoError(t, err)

	// Activo: visible públicamente.
	_, err = uc.GetPublic(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = uc.ToggleActive(context.Background(), miEmpresa, created.ID)
	require.NoError(t, err)

	_, err = uc.GetPublic(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPublic_FiltraPorCategoriaYFeatured(t *testing.T) {
	uc, _, _ := buildDestUC()

	playa := validCreate()
	playa.IsFeatured = true
	_, err := uc.Create(context.Background(), miEmpresa, playa, nil)
	require.NoError(t, err)

	montana := validCreate()
	montana.Title = "Nevado"
	montana.Category = entity.CategoryMountain
	_, err = uc.Create(context.Background(), otraEmpresa, montana, nil)
	require.NoError(t, err)

	featured := true
	out, err := uc.ListPublic(context.Background(), repository.PublicFilter{
		Category: entity.CategoryBeach, Featured: &featured,
	}, dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Playa Blanca", out.Items[0].Title)
}
