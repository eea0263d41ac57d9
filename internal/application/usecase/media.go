package usecase

import (
	"github.com/jhoicas/turismo-api/internal/application/ports"
)

// Namespaces del Media Store por tipo de archivo.
const (
	nsDestinations = "destinations"
	nsOffers       = "offers"
	nsPackages     = "packages"
	nsLogos        = "logos"
)

// storeUpload guarda la imagen entrante si existe. Devuelve "" sin error
// cuando no hay imagen nueva.
func storeUpload(media ports.MediaStore, up *ports.Upload, namespace string) (string, error) {
	if up == nil || up.Reader == nil {
		return "", nil
	}
	return media.Store(up.Reader, namespace, up.Filename)
}

/// swapImage aplica la política guardar-primero-borrar-después: persiste la
// clave nueva en el registro antes de tocar el archivo viejo, de modo que un
// fallo a mitad de camino deje como mucho un archivo huérfano, nunca un
// listado apuntando a media inexistente.
//
// persist debe guardar el registro ya con newKey; si falla, se borra newKey
// y el estado previo queda intacto.
func swapImage(media ports.MediaStore, oldKey, newKey string, persist func() error) error {
	if err := persist(); err != nil {
		if newKey != "" && newKey != oldKey {
			_ = media.Delete(newKey)
		}
		return err
	}
	if newKey != "" && oldKey != "" && oldKey != newKey {
		_ = media.Delete(oldKey)
	}
	return nil
}
