package app_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adapterconfig "go.trai.ch/whisk/internal/adapters/config"
	"go.trai.ch/whisk/internal/adapters/fs"
	"go.trai.ch/whisk/internal/adapters/telemetry"
	"go.trai.ch/whisk/internal/app"
	"go.trai.ch/whisk/internal/core/domain"
	"go.trai.ch/whisk/internal/core/ports/mocks"
	"go.trai.ch/whisk/internal/engine/configure"
	"go.trai.ch/whisk/internal/engine/setup"
	"go.uber.org/mock/gomock"
)

const appTestConfig = `
version: 1
defaults:
  mode: internal
  site: hq
  products: [gadget]
products:
  gadget:
    default_version: dunfell
    layers: [oe]
modes:
  internal: {}
sites:
  hq: {}
versions:
  dunfell:
    oeinit: "%{WHISK_PROJECT_ROOT}/layers/oe-core/oe-init-build-env"
    layers:
      - name: oe
        paths: ["%{WHISK_PROJECT_ROOT}/layers/oe-core/meta"]
`

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newApp(t *testing.T, out io.Writer) (*app.App, *mocks.MockRevisionProvider, *mocks.MockEnvironmentManager) {
	t.Helper()
	ctrl := gomock.NewController(t)

	revision := mocks.NewMockRevisionProvider(ctrl)
	envs := mocks.NewMockEnvironmentManager(ctrl)

	gate := setup.NewGate(revision, fs.NewHasher(), fs.NewRecordStore(), envs, nopLogger{}, telemetry.NewNoOp())
	conf := configure.NewConfigurator(adapterconfig.NewLoader(), adapterconfig.NewUserCacheStore(), nopLogger{}, out)

	return app.New(gate, conf), revision, envs
}

func TestApp_SetupThenConfigure(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "requirements.txt"), []byte("yamllint==1.26\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "whisk.yaml"), []byte(appTestConfig), 0o600))

	out := &bytes.Buffer{}
	a, revision, envs := newApp(t, out)

	revision.EXPECT().Revision(gomock.Any(), root).Return("1111111111111111111111111111111111111111", nil)
	envs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	envs.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	envDir, err := a.Setup(context.Background(), setup.Config{Root: root})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".whisk", "venv"), envDir)

	err = a.Configure(context.Background(), root, filepath.Join(root, "whisk.yaml"), configure.Options{Init: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "PRODUCT    = gadget")
}

func TestApp_SetupFailurePropagates(t *testing.T) {
	root := t.TempDir()
	out := &bytes.Buffer{}
	a, revision, _ := newApp(t, out)

	revision.EXPECT().Revision(gomock.Any(), root).Return("", domain.ErrRevisionLookupFailed)

	_, err := a.Setup(context.Background(), setup.Config{Root: root})
	require.ErrorIs(t, err, domain.ErrRevisionLookupFailed)
}

func TestApp_ConfigureFailurePropagates(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "whisk.yaml"), []byte(appTestConfig), 0o600))

	out := &bytes.Buffer{}
	a, _, _ := newApp(t, out)

	err := a.Configure(context.Background(), root, filepath.Join(root, "whisk.yaml"), configure.Options{
		Init:     true,
		Products: []string{"gizmo"},
	})
	require.ErrorIs(t, err, domain.ErrUnknownProduct)
}
