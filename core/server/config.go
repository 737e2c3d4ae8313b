package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies, uploads included.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
}

const (
	defaultBodyLimitMB = 16
	maxBodyLimitMB     = 512
)

// BodyLimit returns the request body limit in bytes, falling back to the
// default when the configured value is out of range.
func (c Config) BodyLimit() int {
	mb := c.BodyLimitMB
	if mb <= 0 || mb > maxBodyLimitMB {
		mb = defaultBodyLimitMB
	}
	return mb * 1024 * 1024
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}
