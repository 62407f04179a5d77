package types

import (
	"errors"
	"fmt"
)

// ErrUnrepresentableName is returned by banking providers when an account
// holder name sanitizes to nothing, e.g. input made entirely of symbols.
var ErrUnrepresentableName = errors.New("account holder name has no representable characters")

// ErrNoActiveProvider is returned by the provider factory when no enabled and
// active configuration row exists for any identifier registered under the
// category, and no registry fallback is available.
type ErrNoActiveProvider struct {
	Category ProviderCategory
}

func (e ErrNoActiveProvider) Error() string {
	return fmt.Sprintf("no active provider for category %s", e.Category)
}

// ErrProviderNotFound is returned when an identifier is not in the registry.
type ErrProviderNotFound struct {
	Identifier string
}

func (e ErrProviderNotFound) Error() string {
	return fmt.Sprintf("provider %s is not registered", e.Identifier)
}

// ErrProviderNotConfigured is returned by adapters asked to perform work
// before they received a usable configuration.
type ErrProviderNotConfigured struct {
	Identifier string
}

func (e ErrProviderNotConfigured) Error() string {
	return fmt.Sprintf("provider %s is not configured", e.Identifier)
}
