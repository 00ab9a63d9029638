package asset

import "errors"

// Sentinel errors returned by locators and the resolver. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoLocation is returned when an asset has no location usable by any
	// locator of the resolution strategy.
	ErrNoLocation = errors.New("no usable location for asset")

	// ErrWebjarAssetNotFound is returned when no registered webjar contains
	// the requested file.
	ErrWebjarAssetNotFound = errors.New("webjar asset not found")

	// ErrWebjarAssetAmbiguous is returned when several registered webjars
	// contain a file matching the requested location.
	ErrWebjarAssetAmbiguous = errors.New("webjar asset location is ambiguous")

	// ErrJarAssetNotFound is returned when the packaged asset file does not
	// exist under the jar root.
	ErrJarAssetNotFound = errors.New("jar asset not found")

	// ErrInvalidManifest is returned by [LoadManifest] for an asset without a
	// name or a name declared twice.
	ErrInvalidManifest = errors.New("invalid asset manifest")

	// ErrAssetNotRegistered is returned by [Registry.Get] for unknown names.
	ErrAssetNotRegistered = errors.New("asset is not registered")
)
