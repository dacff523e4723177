package domain

// DefaultVersionName is the synthetic version that defers to each product's
// default_version.
const DefaultVersionName = "default"

// UserCacheVersion is the current user-configuration cache schema version.
// Records with a different version are discarded.
const UserCacheVersion = 1

// Selection is the fully resolved build selection for one configure run.
type Selection struct {
	Products []string
	Mode     string
	Site     string

	// Version is the user-facing version: either DefaultVersionName or an
	// explicit version name.
	Version string

	// ActualVersion is the concrete version resolved from Version, falling
	// back to the products' shared default version.
	ActualVersion string

	BuildDir string
}

// UserConfig is the cached user selection persisted between configure runs.
type UserConfig struct {
	CacheVersion  int      `yaml:"cache_version"`
	Mode          string   `yaml:"mode,omitempty"`
	Products      []string `yaml:"products,omitempty"`
	Site          string   `yaml:"site,omitempty"`
	Version       string   `yaml:"version,omitempty"`
	ActualVersion string   `yaml:"actual_version,omitempty"`
	BuildDir      string   `yaml:"build_dir,omitempty"`
}
