package equipment

import (
	"context"
	"io"

	"github.com/invenmovil/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta/baja de un equipo y el
// ajuste de total_equipos del inventario padre se confirmen juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		equipoRepo repository.EquipoRepository,
		invRepo repository.InventarioRepository,
	) error) error
}

// BlobStore es el contrato mínimo del almacenamiento de imágenes.
// Lo implementan infrastructure/storage (S3) y el store en memoria de tests.
type BlobStore interface {
	// Put sube el objeto en una sola operación, sin reintentos.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// PublicURL devuelve la URL pública de lectura para una key ya subida.
	PublicURL(key string) string
}
