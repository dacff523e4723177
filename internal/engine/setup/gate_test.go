package setup_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/whisk/internal/adapters/fs"
	"go.trai.ch/whisk/internal/adapters/telemetry"
	"go.trai.ch/whisk/internal/core/ports/mocks"
	"go.trai.ch/whisk/internal/engine/setup"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type gateMocks struct {
	revision *mocks.MockRevisionProvider
	hasher   *mocks.MockHasher
	store    *mocks.MockFingerprintStore
	envs     *mocks.MockEnvironmentManager
	logger   *mocks.MockLogger
}

func newGate(t *testing.T) (*setup.Gate, gateMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := gateMocks{
		revision: mocks.NewMockRevisionProvider(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		store:    mocks.NewMockFingerprintStore(ctrl),
		envs:     mocks.NewMockEnvironmentManager(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	gate := setup.NewGate(m.revision, m.hasher, m.store, m.envs, m.logger, telemetry.NewNoOp())
	return gate, m
}

func testConfig() setup.Config {
	return setup.Config{
		Root:     "/work/project",
		Manifest: "/work/project/requirements.txt",
		EnvDir:   "/work/project/.whisk/venv",
		Record:   "/work/project/.whisk/venv/.setup-fingerprint",
	}
}

func TestGate_FastPath(t *testing.T) {
	gate, m := newGate(t)
	cfg := testConfig()

	m.revision.EXPECT().Revision(gomock.Any(), cfg.Root).Return("abc123", nil)
	m.hasher.EXPECT().ComputeManifestHash(cfg.Manifest).Return("00000000deadbeef", nil)
	m.store.EXPECT().Get(cfg.Record).Return("abc123:00000000deadbeef", nil)
	// No Create, Install, or Put calls on the fast path.

	envDir, err := gate.EnsureReady(context.Background(), cfg)
	if err != nil {
		t.Fatalf("EnsureReady failed: %v", err)
	}
	if envDir != cfg.EnvDir {
		t.Errorf("expected env path %q, got %q", cfg.EnvDir, envDir)
	}
}

func TestGate_RebuildWhenRecordAbsent(t *testing.T) {
	gate, m := newGate(t)
	cfg := testConfig()

	m.revision.EXPECT().Revision(gomock.Any(), cfg.Root).Return("abc123", nil)
	m.hasher.EXPECT().ComputeManifestHash(cfg.Manifest).Return("00000000deadbeef", nil)
	m.store.EXPECT().Get(cfg.Record).Return("", nil)

	gomock.InOrder(
		m.envs.EXPECT().Create(gomock.Any(), cfg.EnvDir).Return(nil),
		m.envs.EXPECT().Install(gomock.Any(), cfg.EnvDir, cfg.Manifest).Return(nil),
		m.store.EXPECT().Put(cfg.Record, "abc123:00000000deadbeef").Return(nil),
	)

	if _, err := gate.EnsureReady(context.Background(), cfg); err != nil {
		t.Fatalf("EnsureReady failed: %v", err)
	}
}

func TestGate_RebuildOnManifestChange(t *testing.T) {
	gate, m := newGate(t)
	cfg := testConfig()

	// Same revision, different manifest hash than the recorded fingerprint.
	m.revision.EXPECT().Revision(gomock.Any(), cfg.Root).Return("abc123", nil)
	m.hasher.EXPECT().ComputeManifestHash(cfg.Manifest).Return("0000000000000002", nil)
	m.store.EXPECT().Get(cfg.Record).Return("abc123:0000000000000001", nil)

	m.envs.EXPECT().Create(gomock.Any(), cfg.EnvDir).Return(nil)
	m.envs.EXPECT().Install(gomock.Any(), cfg.EnvDir, cfg.Manifest).Return(nil)
	m.store.EXPECT().Put(cfg.Record, "abc123:0000000000000002").Return(nil)

	if _, err := gate.EnsureReady(context.Background(), cfg); err != nil {
		t.Fatalf("EnsureReady failed: %v", err)
	}
}

func TestGate_RebuildOnRevisionChange(t *testing.T) {
	gate, m := newGate(t)
	cfg := testConfig()

	// Same manifest hash, different revision than the recorded fingerprint.
	m.revision.EXPECT().Revision(gomock.Any(), cfg.Root).Return("def456", nil)
	m.hasher.EXPECT().ComputeManifestHash(cfg.Manifest).Return("0000000000000001", nil)
	m.store.EXPECT().Get(cfg.Record).Return("abc123:0000000000000001", nil)

	m.envs.EXPECT().Create(gomock.Any(), cfg.EnvDir).Return(nil)
	m.envs.EXPECT().Install(gomock.Any(), cfg.EnvDir, cfg.Manifest).Return(nil)
	m.store.EXPECT().Put(cfg.Record, "def456:0000000000000001").Return(nil)

	if _, err := gate.EnsureReady(context.Background(), cfg); err != nil {
		t.Fatalf("EnsureReady failed: %v", err)
	}
}

func TestGate_InstallFailureLeavesRecordUntouched(t *testing.T) {
	gate, m := newGate(t)
	cfg := testConfig()

	m.revision.EXPECT().Revision(gomock.Any(), cfg.Root).Return("abc123", nil)
	m.hasher.EXPECT().ComputeManifestHash(cfg.Manifest).Return("0000000000000001", nil)
	m.store.EXPECT().Get(cfg.Record).Return("", nil)

	m.envs.EXPECT().Create(gomock.Any(), cfg.EnvDir).Return(nil)
	m.envs.EXPECT().Install(gomock.Any(), cfg.EnvDir, cfg.Manifest).
		Return(zerr.New("dependency installation failed"))
	// Put must never be called after a failed installation.

	if _, err := gate.EnsureReady(context.Background(), cfg); err == nil {
		t.Fatal("expected error from failed installation")
	}
}

func TestGate_CreationFailureAborts(t *testing.T) {
	gate, m := newGate(t)
	cfg := testConfig()

	m.revision.EXPECT().Revision(gomock.Any(), cfg.Root).Return("abc123", nil)
	m.hasher.EXPECT().ComputeManifestHash(cfg.Manifest).Return("0000000000000001", nil)
	m.store.EXPECT().Get(cfg.Record).Return("", nil)

	m.envs.EXPECT().Create(gomock.Any(), cfg.EnvDir).
		Return(zerr.New("environment creation failed"))
	// Neither Install nor Put may run after a failed creation.

	if _, err := gate.EnsureReady(context.Background(), cfg); err == nil {
		t.Fatal("expected error from failed creation")
	}
}

func TestGate_RevisionLookupFailureIsFatal(t *testing.T) {
	gate, m := newGate(t)
	cfg := testConfig()

	m.revision.EXPECT().Revision(gomock.Any(), cfg.Root).
		Return("", zerr.New("revision lookup failed"))
	// Fingerprint computation aborts before the store is consulted.

	if _, err := gate.EnsureReady(context.Background(), cfg); err == nil {
		t.Fatal("expected error from failed revision lookup")
	}
}

func TestGate_DefaultPaths(t *testing.T) {
	gate, m := newGate(t)
	cfg := setup.Config{Root: "/work/project"}

	manifest := filepath.Join("/work/project", "requirements.txt")
	envDir := filepath.Join("/work/project", ".whisk", "venv")
	record := filepath.Join(envDir, ".setup-fingerprint")

	m.revision.EXPECT().Revision(gomock.Any(), "/work/project").Return("abc123", nil)
	m.hasher.EXPECT().ComputeManifestHash(manifest).Return("0000000000000001", nil)
	m.store.EXPECT().Get(record).Return("abc123:0000000000000001", nil)

	got, err := gate.EnsureReady(context.Background(), cfg)
	if err != nil {
		t.Fatalf("EnsureReady failed: %v", err)
	}
	if got != envDir {
		t.Errorf("expected default env path %q, got %q", envDir, got)
	}
}

// fakeRevision is a RevisionProvider pinned to a fixed identifier.
type fakeRevision struct{ rev string }

func (f *fakeRevision) Revision(context.Context, string) (string, error) {
	return f.rev, nil
}

// fakeEnvManager counts rebuilds without running any external tool.
type fakeEnvManager struct {
	creates  int
	installs int
}

func (f *fakeEnvManager) Create(_ context.Context, dir string) error {
	f.creates++
	return os.MkdirAll(dir, 0o750)
}

func (f *fakeEnvManager) Install(context.Context, string, string) error {
	f.installs++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func TestGate_EndToEnd(t *testing.T) {
	root := t.TempDir()
	manifest := filepath.Join(root, "requirements.txt")
	if err := os.WriteFile(manifest, []byte("pkg==1.0\n"), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	envs := &fakeEnvManager{}
	gate := setup.NewGate(
		&fakeRevision{rev: "abc123"},
		fs.NewHasher(),
		fs.NewRecordStore(),
		envs,
		nopLogger{},
		telemetry.NewNoOp(),
	)

	cfg := setup.Config{Root: root}
	ctx := context.Background()

	// First run builds the environment and records the fingerprint.
	if _, err := gate.EnsureReady(ctx, cfg); err != nil {
		t.Fatalf("first EnsureReady failed: %v", err)
	}
	if envs.creates != 1 || envs.installs != 1 {
		t.Fatalf("expected one rebuild, got creates=%d installs=%d", envs.creates, envs.installs)
	}

	// Second run with identical inputs is a no-op.
	if _, err := gate.EnsureReady(ctx, cfg); err != nil {
		t.Fatalf("second EnsureReady failed: %v", err)
	}
	if envs.creates != 1 || envs.installs != 1 {
		t.Fatalf("expected fast path, got creates=%d installs=%d", envs.creates, envs.installs)
	}

	// Changing the manifest forces a rebuild.
	if err := os.WriteFile(manifest, []byte("pkg==2.0\n"), 0o600); err != nil {
		t.Fatalf("failed to rewrite manifest: %v", err)
	}
	if _, err := gate.EnsureReady(ctx, cfg); err != nil {
		t.Fatalf("third EnsureReady failed: %v", err)
	}
	if envs.creates != 2 || envs.installs != 2 {
		t.Fatalf("expected second rebuild, got creates=%d installs=%d", envs.creates, envs.installs)
	}
}
