// Package content decides what the main window loads and serves it.
//
// In development the window is pointed at a frontend dev server; the
// requests are proxied to it. Otherwise the packaged frontend is served
// from an embedded filesystem on the webview's private scheme.
package content

import (
	"fmt"
	"io/fs"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/natscamp/money-manager/common"
)

// Kind tells where content comes from.
type Kind int

const (
	KindPackaged Kind = iota
	KindDevServer
)

// String returns a human-readable kind.
func (k Kind) String() string {
	switch k {
	case KindPackaged:
		return "packaged"
	case KindDevServer:
		return "dev-server"
	default:
		return "unknown"
	}
}

// Scheme is the private scheme the webview serves packaged content on.
const Scheme = "wails"

// Source is the resolved content location for the main window.
type Source struct {
	Kind Kind
	URL  *url.URL
}

// Resolve returns a dev server source when devServerURL is set,
// otherwise the packaged index document.
func Resolve(devServerURL string) (Source, error) {
	devServerURL = strings.TrimSpace(devServerURL)
	if devServerURL == "" {
		return Packaged(), nil
	}

	u, err := url.Parse(devServerURL)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %w", common.ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Source{}, fmt.Errorf("%w: unsupported scheme %q", common.ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return Source{}, fmt.Errorf("%w: missing host in %q", common.ErrInvalidURL, devServerURL)
	}
	return Source{Kind: KindDevServer, URL: u}, nil
}

// Packaged returns the source for the embedded index document.
func Packaged() Source {
	return Source{
		Kind: KindPackaged,
		URL:  &url.URL{Scheme: Scheme, Host: Scheme, Path: "/" + common.IndexDocument},
	}
}

// IsDevelopment reports whether the source is a dev server.
func (s Source) IsDevelopment() bool {
	return s.Kind == KindDevServer
}

// String returns the location the window loads.
func (s Source) String() string {
	if s.URL == nil {
		return ""
	}
	return s.URL.String()
}

// AssetServerOptions returns the wails asset server configuration for src.
// Packaged content is served from assets; a dev server is reverse proxied.
func AssetServerOptions(src Source, assets fs.FS) (*assetserver.Options, error) {
	switch src.Kind {
	case KindDevServer:
		if src.URL == nil {
			return nil, fmt.Errorf("%w: dev server source without url", common.ErrContentLoad)
		}
		return &assetserver.Options{Handler: httputil.NewSingleHostReverseProxy(src.URL)}, nil
	case KindPackaged:
		if assets == nil {
			return nil, fmt.Errorf("%w: no packaged assets", common.ErrContentLoad)
		}
		if _, err := fs.Stat(assets, common.IndexDocument); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrContentLoad, err)
		}
		return &assetserver.Options{Assets: assets}, nil
	default:
		return nil, fmt.Errorf("%w: unknown source kind %d", common.ErrContentLoad, src.Kind)
	}
}
