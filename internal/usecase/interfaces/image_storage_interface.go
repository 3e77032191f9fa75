package interfaces

import (
	"context"
	"io"
)

// IImageStorage abstracts the external object store holding
// publication, proposal and profile images. Implementations return an
// opaque URL; the rest of the system never interprets it.

type IImageStorage interface {
	Upload(ctx context.Context, folder, userID, fileName, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, url string) error
}
