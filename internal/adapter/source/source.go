// Package source provides the fetchers the loader pulls question documents from.
package source

import (
	"devops-reference/internal/config"
	"devops-reference/internal/domain"
)

// New returns an HTTP source when a base URL is configured, otherwise a directory source.
func New(cfg config.SourceConfig) (domain.Source, error) {
	if cfg.BaseURL != "" {
		return NewHTTPSource(cfg.BaseURL, cfg.Timeout)
	}
	return NewFileSource(cfg.Dir), nil
}
