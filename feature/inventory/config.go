package inventory

import "strings"

// Config holds listing and upload settings.
type Config struct {
	// DefaultCurrency fills the currency of placeholder and imported items that have none.
	DefaultCurrency string `mapstructure:"default_currency" default:"$"`
	// PerPage is the listing page size.
	PerPage int `mapstructure:"per_page" default:"50"`
	// AllowedExtensions is a comma separated list of accepted image extensions.
	AllowedExtensions string `mapstructure:"allowed_extensions" default:"png,jpg,jpeg,gif,webp"`
	// ImagePrefix is the object key prefix of uploaded images.
	ImagePrefix string `mapstructure:"image_prefix" default:"uploads"`
}

// Extensions returns the allowed image extensions, lower-cased and without dots.
func (c Config) Extensions() []string {
	var exts []string
	for _, e := range strings.Split(c.AllowedExtensions, ",") {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			exts = append(exts, e)
		}
	}
	return exts
}

// IsAllowed reports whether a file extension (with or without the dot) is accepted.
func (c Config) IsAllowed(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, e := range c.Extensions() {
		if e == ext {
			return true
		}
	}
	return false
}

func (c Config) perPage() int {
	if c.PerPage <= 0 {
		return 50
	}
	return c.PerPage
}
