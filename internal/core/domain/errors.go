package domain

import "go.trai.ch/zerr"

var (
	// ErrRevisionLookupFailed is returned when the current source revision cannot be determined.
	ErrRevisionLookupFailed = zerr.New("revision lookup failed")

	// ErrManifestUnreadable is returned when the dependency manifest is missing or unreadable.
	ErrManifestUnreadable = zerr.New("manifest unreadable")

	// ErrEnvCreationFailed is returned when the environment manager fails to create the environment.
	ErrEnvCreationFailed = zerr.New("environment creation failed")

	// ErrInstallFailed is returned when dependency installation into the environment fails.
	ErrInstallFailed = zerr.New("dependency installation failed")

	// ErrConfigVersion is returned when the project configuration declares an unsupported version.
	ErrConfigVersion = zerr.New("unsupported config version")

	// ErrUnknownProduct is returned when a selected product is not declared in the project configuration.
	ErrUnknownProduct = zerr.New("unknown product")

	// ErrUnknownMode is returned when a selected mode is not declared in the project configuration.
	ErrUnknownMode = zerr.New("unknown mode")

	// ErrUnknownSite is returned when a selected site is not declared in the project configuration.
	ErrUnknownSite = zerr.New("unknown site")

	// ErrUnknownVersion is returned when a selected version is not declared in the project configuration.
	ErrUnknownVersion = zerr.New("unknown version")

	// ErrSelectionIncomplete is returned when products, mode, or site are missing after resolution.
	ErrSelectionIncomplete = zerr.New("incomplete selection")

	// ErrVersionFrozen is returned when the version is changed after the environment was initialized.
	ErrVersionFrozen = zerr.New("version cannot be changed after initialization")

	// ErrBuildDirFrozen is returned when the build directory is changed after the environment was initialized.
	ErrBuildDirFrozen = zerr.New("build directory cannot be changed after initialization")

	// ErrIncompatibleProducts is returned when selected products disagree on their default version.
	ErrIncompatibleProducts = zerr.New("products have incompatible default versions")

	// ErrMissingLayers is returned when a product requires layer collections absent from the resolved version.
	ErrMissingLayers = zerr.New("missing layer collections")
)
