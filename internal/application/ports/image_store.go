package ports

import (
	"context"
	"io"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ImageUpload carga de imagen tal como llega del transporte (multipart).
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ImageStore define el puerto de salida hacia el almacén externo de blobs.
// Cualquier adaptador (S3, MinIO, fake de test) debe implementar esta interfaz.
// El llamador decide qué hacer ante fallos: un Upload fallido aborta la
// operación dueña; un Delete fallido es limpieza best-effort.
type ImageStore interface {
	// Upload sube el contenido y devuelve una referencia estable (id + URL).
	Upload(ctx context.Context, in ImageUpload) (entity.Image, error)
	// Delete elimina el blob identificado por storeID.
	Delete(ctx context.Context, storeID string) error
}
