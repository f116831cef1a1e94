package domain

// Catalog holds the decoy names a locator is assembled from.
type Catalog struct {
	// Resources are plausible file names requested from the share.
	Resources []string

	// Shares are plausible share or top-level directory names.
	Shares []string
}

// DefaultCatalog returns the built-in decoy names.
func DefaultCatalog() Catalog {
	return Catalog{
		Resources: []string{
			"logo.png", "header.png", "footer.png", "chart_bg.png",
			"watermark.png", "template_img.png", "brand_asset.png",
			"report_header.png", "company_logo.png", "signature.png",
			"analytics.js", "tracking.js", "metrics.js", "telemetry.js",
		},
		Shares: []string{
			"images", "assets", "resources", "cdn", "static",
			"media", "files", "docs", "shared", "public",
		},
	}
}

// WithDefaults fills empty lists from DefaultCatalog.
func (c Catalog) WithDefaults() Catalog {
	def := DefaultCatalog()
	if len(c.Resources) == 0 {
		c.Resources = def.Resources
	}
	if len(c.Shares) == 0 {
		c.Shares = def.Shares
	}
	return c
}
