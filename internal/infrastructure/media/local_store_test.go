package media

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imagenJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 30, 30, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func nuevoStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(t.TempDir(), "http://localhost:3000/media")
	require.NoError(t, err)
	return s
}

func TestStore_GuardaYResuelveURL(t *testing.T) {
	s := nuevoStore(t)

	key, err := s.Store(bytes.NewReader(imagenJPEG(t, 100, 80)), "destinations", "Playa Cañón.jpg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "destinations/playa-canon-"), "key: %s", key)
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.True(t, s.Exists(key))
	assert.Equal(t, "http://localhost:3000/media/"+key, s.URLFor(key))
}

func TestStore_ReduceImagenesGrandes(t *testing.T) {
	s := nuevoStore(t)

	key, err := s.Store(bytes.NewReader(imagenJPEG(t, 2048, 1024)), "offers", "grande.jpg")
	require.NoError(t, err)

	data, err := processImage(bytes.NewReader(imagenJPEG(t, 2048, 1024)))
	require.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), maxDimension)
	assert.LessOrEqual(t, img.Bounds().Dy(), maxDimension)
	assert.True(t, s.Exists(key))
}

func TestStore_RechazaFormatoInvalido(t *testing.T) {
	s := nuevoStore(t)

	_, err := s.Store(strings.NewReader("esto no es una imagen"), "logos", "x.jpg")
	assert.Error(t, err)
}

func TestDelete_ClaveInexistenteNoEsError(t *testing.T) {
	s := nuevoStore(t)

	assert.NoError(t, s.Delete("destinations/no-existe.jpg"))
	assert.NoError(t, s.Delete(""))
}

func TestDelete_EliminaArchivo(t *testing.T) {
	s := nuevoStore(t)
	key, err := s.Store(bytes.NewReader(imagenJPEG(t, 10, 10)), "packages", "p.png")
	require.NoError(t, err)

	require.NoError(t, s.Delete(key))
	assert.False(t, s.Exists(key))
	assert.Equal(t, "", s.URLFor(key))
}

func TestURLFor_ClaveInexistenteDevuelveVacio(t *testing.T) {
	s := nuevoStore(t)
	assert.Equal(t, "", s.URLFor("destinations/fantasma.jpg"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "playa-canon", slugify("Playa Cañón.jpg"))
	assert.Equal(t, "tour-cafe-2024", slugify("Tour Café 2024.PNG"))
	assert.Equal(t, "imagen", slugify("日本.jpg"))
	assert.Equal(t, "imagen", slugify(""))
}
