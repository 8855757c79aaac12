// Package manifest describes the HTTP routes a server exposes, decoded from TOML.
package manifest

import "errors"

// Config is the top-level manifest.
type Config struct {
	Routes []Route `toml:"route"`
}

// Validate normalizes routes in place and rejects an empty or malformed table.
func (c *Config) Validate() error {
	if len(c.Routes) == 0 {
		return errors.New("no routes defined")
	}
	return c.validateRoutes()
}
