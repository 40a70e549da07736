package domain

import "context"

// Source fetches a named static asset.
// Implementations return a SOURCE_UNAVAILABLE DomainError when the asset
// cannot be fetched or is answered with a non-ok status.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}
