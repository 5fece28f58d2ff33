package equipment

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/invenmovil/inventario-api/internal/domain"
)

// MaxImageSize tamaño máximo aceptado para la foto de un equipo (5 MB).
const MaxImageSize = 5 * 1024 * 1024

const maxSerialToken = 50

// ImageUpload imagen recibida en el formulario (bytes ya leídos del multipart).
type ImageUpload struct {
	Data        []byte
	ContentType string
}

// UploadResult URL pública y nombre de archivo de una imagen subida.
type UploadResult struct {
	URL      string
	FileName string
}

// sanitizeSerial reduce el serial a un token seguro para rutas de objetos:
// solo alfanuméricos, máximo 50 caracteres. Si no queda nada usable, "equipo".
func sanitizeSerial(serial string) string {
	var b strings.Builder
	for _, r := range serial {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= maxSerialToken {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "equipo"
	}
	return b.String()
}

// extensionFor devuelve la extensión de archivo para el content type de la imagen.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

// objectKey construye la key del objeto, espaciada por inventario y con
// sufijo timestamp+aleatorio para evitar colisiones entre seriales repetidos.
func objectKey(inventarioID, serial, contentType string) (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	fileName := fmt.Sprintf("%s_%d_%s%s",
		sanitizeSerial(serial), time.Now().UnixMilli(), hex.EncodeToString(suffix), extensionFor(contentType))
	return fmt.Sprintf("inventarios/%s/equipos/%s", inventarioID, fileName), nil
}

// uploadImage valida y sube la imagen en una sola pasada: el tamaño y el tipo
// se rechazan ANTES de cualquier llamada de red. Sin reintentos ni subida
// reanudable; el progreso fino no se modela.
func (uc *EquipoUseCase) uploadImage(ctx context.Context, inventarioID, serial string, img *ImageUpload) (*UploadResult, error) {
	if !strings.HasPrefix(img.ContentType, "image/") {
		return nil, domain.ErrNotAnImage
	}
	if len(img.Data) > MaxImageSize {
		return nil, domain.ErrImageTooLarge
	}
	key, err := objectKey(inventarioID, serial, img.ContentType)
	if err != nil {
		return nil, err
	}
	if err := uc.blobs.Put(ctx, key, bytes.NewReader(img.Data), int64(len(img.Data)), img.ContentType); err != nil {
		return nil, fmt.Errorf("subir imagen: %w", err)
	}
	return &UploadResult{URL: uc.blobs.PublicURL(key), FileName: key}, nil
}
