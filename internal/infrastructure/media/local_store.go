package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/turismo-api/internal/application/ports"
)

var _ ports.MediaStore = (*LocalStore)(nil)

// LocalStore almacén de media en disco local. Las claves son rutas relativas
// namespace/slug-uuid.jpg; la URL pública se arma con el prefijo configurado
// que el router sirve como estático.
type LocalStore struct {
	root    string
	baseURL string
}

// NewLocalStore crea el almacén sobre el directorio root. Lo crea si no existe.
func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creando directorio de media: %w", err)
	}
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Store procesa la imagen y la persiste bajo el namespace. La clave incorpora
// un slug del nombre original (solo legibilidad) y un UUID (unicidad), por lo
// que nunca colisiona ni pisa archivos existentes.
func (s *LocalStore) Store(r io.Reader, namespace, originalName string) (string, error) {
	data, err := processImage(r)
	if err != nil {
		return "", err
	}

	key := filepath.ToSlash(filepath.Join(namespace, fmt.Sprintf("%s-%s.jpg", slugify(originalName), uuid.NewString())))
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creando namespace %s: %w", namespace, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("escribiendo media %s: %w", key, err)
	}
	return key, nil
}

// Delete elimina el archivo de la clave. Una clave inexistente no es error.
func (s *LocalStore) Delete(key string) error {
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrando media %s: %w", key, err)
	}
	return nil
}

// URLFor devuelve la URL pública de la clave, o "" si el archivo no existe.
func (s *LocalStore) URLFor(key string) string {
	if key == "" || !s.Exists(key) {
		return ""
	}
	return s.baseURL + "/" + key
}

// Exists indica si el archivo de la clave está en disco.
func (s *LocalStore) Exists(key string) bool {
	if key == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(key)))
	return err == nil
}

// stripAccents quita marcas diacríticas (NFD y descarte de combining marks).
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugify deriva un slug ASCII en minúsculas del nombre original del archivo,
// sin su extensión. Nombres vacíos o irreducibles devuelven "imagen".
func slugify(name string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if out, _, err := transform.String(stripAccents, name); err == nil {
		name = out
	}
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "imagen"
	}
	if len(slug) > 40 {
		slug = strings.Trim(slug[:40], "-")
	}
	return slug
}
