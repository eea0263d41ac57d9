package ports

import "io"

// MediaStore define el puerto de salida hacia el almacén de archivos.
// Cualquier adaptador (disco local, bucket, mock) debe implementar esta
// interfaz; la aplicación solo conoce claves opacas, nunca rutas.
type MediaStore interface {
	// Store procesa y persiste una imagen bajo el namespace dado
	// (destinations, offers, packages, logos) y devuelve su clave.
	Store(r io.Reader, namespace, originalName string) (key string, err error)

	// Delete elimina el archivo de la clave. Borrar una clave inexistente
	// no es error: el reemplazo de media no es atómico y el archivo viejo
	// puede haber desaparecido ya.
	Delete(key string) error

	// URLFor devuelve la URL pública de la clave, o "" si no existe.
	URLFor(key string) string

	Exists(key string) bool
}

// Upload imagen entrante de una petición multipart. Nil = sin imagen nueva.
type Upload struct {
	Reader   io.Reader
	Filename string
}
