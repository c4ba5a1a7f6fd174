package assets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"engclin_tse/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// maxLogoBytes bounds what is embedded into a certificate payload.
const maxLogoBytes = 2 << 20

var (
	ErrLogoTooLarge  = errors.New("logo exceeds size limit")
	ErrNotAnImage    = errors.New("logo is not an image")
	ErrLogoEmptyBody = errors.New("logo response is empty")
)

// LogoFetcher downloads tenant logos. It never retries: a failed download
// leaves the certificate without a logo.
type LogoFetcher struct {
	client *resty.Client
	logger *zap.Logger
}

var _ interfaces.IAssetFetcher = (*LogoFetcher)(nil)

func NewLogoFetcher(timeout time.Duration, logger *zap.Logger) *LogoFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetResponseBodyLimit(maxLogoBytes).
		SetHeader("Accept", "image/png, image/jpeg, image/*")
	return &LogoFetcher{client: client, logger: logger}
}

func (f *LogoFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		return nil, "", ErrLogoTooLarge
	}
	if err != nil {
		return nil, "", fmt.Errorf("logo request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, "", fmt.Errorf("logo request returned status %d", resp.StatusCode())
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, "", ErrLogoEmptyBody
	}

	contentType := strings.TrimSpace(strings.SplitN(resp.Header().Get("Content-Type"), ";", 2)[0])
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(body)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", ErrNotAnImage
	}

	f.logger.Debug("logo fetched", zap.String("url", url), zap.Int("bytes", len(body)))
	return body, contentType, nil
}
