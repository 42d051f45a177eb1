// Package manifest loads the field lists checked by fieldguard.
//
// A manifest is a JSON or YAML document:
//
//	{"fields": [
//	    {"name": "car", "value": null, "message": "FromValidator"},
//	    {"name": "bike"},
//	    {"name": "truck", "value": "pickup"}
//	]}
//
// Manifests are read from the local filesystem or fetched over HTTP(S).
package manifest

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gabapcia/fieldguard/internal/fieldcheck"
	httptransport "github.com/gabapcia/fieldguard/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

// Loader resolves a manifest source into a field list.
type Loader interface {
	// Load reads and decodes the manifest at source, which is either a
	// local path or an http(s) URL.
	Load(ctx context.Context, source string) ([]fieldcheck.Field, error)
}

type loader struct {
	httpClient *retryablehttp.Client
}

var _ Loader = (*loader)(nil)

// NewLoader creates a Loader that fetches remote manifests with httpClient.
func NewLoader(httpClient *retryablehttp.Client) *loader {
	return &loader{
		httpClient: httpClient,
	}
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func (l *loader) read(ctx context.Context, source string) ([]byte, error) {
	if isRemote(source) {
		return httptransport.Get(ctx, l.httpClient, source)
	}

	return os.ReadFile(source)
}

// Load implements Loader.
func (l *loader) Load(ctx context.Context, source string) ([]fieldcheck.Field, error) {
	data, err := l.read(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("read manifest %q: %w", source, err)
	}

	return Decode(data, FormatFromPath(source))
}
