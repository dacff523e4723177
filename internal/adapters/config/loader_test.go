package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/whisk/internal/adapters/config"
	"go.trai.ch/whisk/internal/core/domain"
)

const validConfig = `
version: 1
defaults:
  mode: internal
  site: hq
  products: [gadget]
hooks:
  pre_init: "export EXTRA=1"
core:
  layers: [oe]
products:
  gadget:
    description: Example gadget
    default_version: dunfell
    layers: [oe, bsp]
    targets: [gadget-image]
modes:
  internal:
    description: Internal development
    conf: 'INTERNAL = "1"'
sites:
  hq:
    description: Main site
versions:
  dunfell:
    oeinit: "%{WHISK_PROJECT_ROOT}/layers/oe-core/oe-init-build-env"
    layers:
      - name: oe
        paths: ["%{WHISK_PROJECT_ROOT}/layers/oe-core/meta"]
      - name: bsp
        paths: ["%{WHISK_PROJECT_ROOT}/layers/meta-bsp"]
`

func writeConfig(t *testing.T, content string) (root, path string) {
	t.Helper()
	root = t.TempDir()
	path = filepath.Join(root, "whisk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return root, path
}

func TestLoader_Load_Success(t *testing.T) {
	root, path := writeConfig(t, validConfig)

	loader := config.NewLoader()
	project, err := loader.Load(root, path)
	require.NoError(t, err)

	assert.Equal(t, 1, project.Version)
	assert.Equal(t, "internal", project.Defaults.Mode)
	assert.Equal(t, []string{"gadget"}, project.Defaults.Products)
	assert.Equal(t, "export EXTRA=1", project.Hook("pre_init"))

	gadget, ok := project.Product("gadget")
	require.True(t, ok)
	assert.Equal(t, "dunfell", gadget.DefaultVersion)

	// Template expansion must resolve the project root to an absolute path.
	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)
	dunfell := project.Versions["dunfell"]
	assert.Equal(t, absRoot+"/layers/oe-core/oe-init-build-env", dunfell.OEInit)
	assert.Equal(t, []string{absRoot + "/layers/oe-core/meta"}, dunfell.LayerIndex()["oe"])
}

func TestLoader_Load_MissingVersionField(t *testing.T) {
	root, path := writeConfig(t, `
products:
  gadget:
    default_version: dunfell
versions:
  dunfell:
    oeinit: init
`)

	loader := config.NewLoader()
	_, err := loader.Load(root, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigVersion.Error())
}

func TestLoader_Load_BadVersion(t *testing.T) {
	root, path := writeConfig(t, `
version: 2
products:
  gadget:
    default_version: dunfell
versions:
  dunfell:
    oeinit: init
`)

	loader := config.NewLoader()
	_, err := loader.Load(root, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigVersion.Error())
}

func TestLoader_Load_UndeclaredDefaultVersion(t *testing.T) {
	root, path := writeConfig(t, `
version: 1
products:
  gadget:
    default_version: missing
versions:
  dunfell:
    oeinit: init
`)

	loader := config.NewLoader()
	_, err := loader.Load(root, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a declared version")
}

func TestLoader_Load_ReservedCoreProduct(t *testing.T) {
	root, path := writeConfig(t, `
version: 1
products:
  core:
    default_version: dunfell
versions:
  dunfell:
    oeinit: init
`)

	loader := config.NewLoader()
	_, err := loader.Load(root, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}

func TestLoader_Load_DuplicateLayerCollection(t *testing.T) {
	root, path := writeConfig(t, `
version: 1
products:
  gadget:
    default_version: dunfell
versions:
  dunfell:
    oeinit: init
    layers:
      - name: oe
        paths: [a]
      - name: oe
        paths: [b]
`)

	loader := config.NewLoader()
	_, err := loader.Load(root, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate layer collection")
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := config.NewLoader()
	_, err := loader.Load(t.TempDir(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestUserCacheStore_RoundTrip(t *testing.T) {
	store := config.NewUserCacheStore()
	path := filepath.Join(t.TempDir(), ".config.yaml")

	cfg := domain.UserConfig{
		Mode:          "internal",
		Products:      []string{"gadget"},
		Site:          "hq",
		Version:       "default",
		ActualVersion: "dunfell",
		BuildDir:      "/work/build",
	}
	require.NoError(t, store.Save(path, cfg))

	got, err := store.Load(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.UserCacheVersion, got.CacheVersion)
	assert.Equal(t, "internal", got.Mode)
	assert.Equal(t, []string{"gadget"}, got.Products)
	assert.Equal(t, "dunfell", got.ActualVersion)
}

func TestUserCacheStore_Absent(t *testing.T) {
	store := config.NewUserCacheStore()
	got, err := store.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserCacheStore_StaleCacheVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_version: 99\nmode: internal\n"), 0o600))

	store := config.NewUserCacheStore()
	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Nil(t, got, "stale cache versions must be discarded")
}
