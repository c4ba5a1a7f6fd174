package interfaces

import "context"

// IAssetFetcher downloads binary assets (company logo) referenced by URL so
// the certificate payload is self-contained.
type IAssetFetcher interface {
	Fetch(ctx context.Context, url string) (content []byte, contentType string, err error)
}
