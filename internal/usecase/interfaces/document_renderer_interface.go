package interfaces

import (
	"context"
	"engclin_tse/internal/domain/entities"
)

// RenderedDocument is the output of a document renderer.
type RenderedDocument struct {
	FileName    string
	ContentType string
	Content     []byte
}

// IDocumentRenderer turns an assembled certificate payload into a document.
// It must not fetch any additional data.
type IDocumentRenderer interface {
	Render(ctx context.Context, payload entities.CertificatePayload) (RenderedDocument, error)
}
