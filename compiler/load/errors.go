package load

import (
	"errors"
	"strings"
)

// Sentinel errors for catalog loading and discovery.
var (
	// ErrInvalidCatalog indicates a catalog that could not be read or parsed.
	ErrInvalidCatalog = errors.New("locgen: invalid catalog")
	// ErrNoLocalizationDir indicates the localization directory does not exist.
	ErrNoLocalizationDir = errors.New("locgen: localization directory not found")
	// ErrNoCatalogs indicates the localization directory holds no catalogs.
	ErrNoCatalogs = errors.New("locgen: no catalogs found")
)

// CatalogError represents a failure to read or parse a single catalog.
type CatalogError struct {
	Path    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	var b strings.Builder
	b.WriteString("locgen: catalog error")
	if e.Path != "" {
		b.WriteString(" in ")
		b.WriteString(e.Path)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches ErrInvalidCatalog.
func (e *CatalogError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

// NewCatalogError creates a new CatalogError.
func NewCatalogError(path, message string, cause error) *CatalogError {
	return &CatalogError{Path: path, Message: message, Cause: cause}
}

// DiscoveryError is returned when the project layout has no usable catalogs.
// It matches either ErrNoLocalizationDir or ErrNoCatalogs.
type DiscoveryError struct {
	Dir   string
	Cause error
	kind  error
}

// Error implements the error interface.
func (e *DiscoveryError) Error() string {
	var b strings.Builder
	b.WriteString(e.kind.Error())
	if e.Dir != "" {
		b.WriteString(": ")
		b.WriteString(e.Dir)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DiscoveryError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the discovery failure kind.
func (e *DiscoveryError) Is(target error) bool {
	return target == e.kind
}

func newDiscoveryError(kind error, dir string, cause error) *DiscoveryError {
	return &DiscoveryError{Dir: dir, Cause: cause, kind: kind}
}

// IsCatalogError reports whether the error is a CatalogError.
func IsCatalogError(err error) bool {
	var catErr *CatalogError
	return errors.As(err, &catErr)
}

// IsDiscoveryError reports whether the error is a DiscoveryError.
func IsDiscoveryError(err error) bool {
	var discErr *DiscoveryError
	return errors.As(err, &discErr)
}
