package services

import (
	"fmt"
	"strings"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driven"
)

// WebDAV transport markers understood by the Windows WebClient redirector.
const (
	webdavPlainMarker  = "@80"
	webdavSecureMarker = "@SSL"
)

// BuildLocator composes the external target for req.Mode. The resource is
// req.Resource without leading separators when set, otherwise a catalog
// pick. The share is always a catalog pick.
func BuildLocator(req domain.TargetRequest, catalog domain.Catalog, rnd driven.Random) (string, error) {
	if !req.Mode.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidMode, req.Mode)
	}

	catalog = catalog.WithDefaults()
	host := strings.TrimSpace(req.Host)

	// Stored slash-separated and relative to the share.
	resource := strings.TrimLeft(strings.ReplaceAll(req.Resource, `\`, "/"), "/")
	if resource == "" {
		resource = pick(catalog.Resources, rnd)
	}
	share := pick(catalog.Shares, rnd)

	switch req.Mode {
	case domain.ModeHTTP:
		scheme := "http"
		if req.Secure {
			scheme = "https"
		}
		return fmt.Sprintf("%s://%s/%s/%s", scheme, host, share, resource), nil

	case domain.ModeSMB:
		return unc(host, share, resource), nil

	default:
		marker := webdavPlainMarker
		if req.Secure {
			marker = webdavSecureMarker
		}
		return unc(host+marker, share, resource), nil
	}
}

func unc(host, share, resource string) string {
	resource = strings.ReplaceAll(resource, "/", `\`)
	return `\\` + host + `\` + share + `\` + resource
}

func pick(names []string, rnd driven.Random) string {
	return names[rnd.IntN(len(names))]
}
