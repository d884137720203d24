// Package tracked loads the set of SKUs the shop actually sells.
// Feed entries outside this set are ignored by the checker.
package tracked

import "fmt"

// Source provides the tracked SKU set. Implementations normalize
// identifiers the same way feed entries are normalized so lookups
// never miss on casing or padding.
type Source interface {
	Load() (map[string]struct{}, error)
}

// ConfigError reports an unusable tracked list, such as a missing
// file or a sheet without the expected column.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tracked list %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
