package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ImageLifecycle gobierna el ciclo de vida de la imagen propia de cada
// entidad del catálogo: alta junto con la entidad, reemplazo junto con la
// entidad y borrado junto con la entidad. Las tres familias de usecases
// comparten esta pieza.
//
// Política de fallos: un Upload fallido siempre aborta la operación dueña
// (nunca se persiste un registro sin imagen); el borrado del blob anterior
// es una acción compensatoria best-effort cuyo fallo se registra pero no
// bloquea la mutación ya decidida.
type ImageLifecycle struct {
	store ports.ImageStore
	log   *logger.Logger
}

// NewImageLifecycle construye el ayudante con el gateway de blobs.
func NewImageLifecycle(store ports.ImageStore, log *logger.Logger) *ImageLifecycle {
	return &ImageLifecycle{store: store, log: log}
}

// Attach sube la imagen inicial de una entidad nueva. El error envuelve
// domain.ErrUpload para que el borde lo distinga de un fallo de persistencia.
func (l *ImageLifecycle) Attach(ctx context.Context, upload ports.ImageUpload) (entity.Image, error) {
	img, err := l.store.Upload(ctx, upload)
	if err != nil {
		return entity.Image{}, fmt.Errorf("%w: %v", domain.ErrUpload, err)
	}
	return img, nil
}

// Replace sube la imagen nueva y, solo si la subida tuvo éxito, borra la
// anterior. Devuelve la referencia nueva y si la limpieza del blob viejo
// falló (outcome registrado: el blob queda huérfano pero la operación sigue).
func (l *ImageLifecycle) Replace(ctx context.Context, old entity.Image, upload ports.ImageUpload) (entity.Image, bool, error) {
	img, err := l.store.Upload(ctx, upload)
	if err != nil {
		// La imagen vigente queda intacta; el llamador aborta.
		return entity.Image{}, false, fmt.Errorf("%w: %v", domain.ErrUpload, err)
	}
	cleanupFailed := false
	if !old.IsZero() {
		if err := l.store.Delete(ctx, old.StoreID); err != nil {
			cleanupFailed = true
			l.log.Warn().
				Str("store_id", old.StoreID).
				Err(err).
				Msg("no se pudo borrar la imagen anterior; blob huérfano")
		}
	}
	return img, cleanupFailed, nil
}

// Release borra la imagen de una entidad eliminada. Best-effort: devuelve
// false si el gateway falló, y el borrado del registro continúa igual.
func (l *ImageLifecycle) Release(ctx context.Context, img entity.Image) bool {
	if img.IsZero() {
		return true
	}
	if err := l.store.Delete(ctx, img.StoreID); err != nil {
		l.log.Warn().
			Str("store_id", img.StoreID).
			Err(err).
			Msg("no se pudo borrar la imagen de la entidad eliminada; blob huérfano")
		return false
	}
	return true
}
