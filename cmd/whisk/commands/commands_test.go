package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/whisk/cmd/whisk/commands"
	"go.trai.ch/whisk/internal/build"
	"go.trai.ch/whisk/internal/engine/configure"
	"go.trai.ch/whisk/internal/engine/setup"
)

type mockApp struct {
	setupFunc     func(ctx context.Context, cfg setup.Config) (string, error)
	configureFunc func(ctx context.Context, root, confPath string, opts configure.Options) error
}

func (m *mockApp) Setup(ctx context.Context, cfg setup.Config) (string, error) {
	if m.setupFunc != nil {
		return m.setupFunc(ctx, cfg)
	}
	return "", nil
}

func (m *mockApp) Configure(ctx context.Context, root, confPath string, opts configure.Options) error {
	if m.configureFunc != nil {
		return m.configureFunc(ctx, root, confPath, opts)
	}
	return nil
}

func TestCommands_Setup(t *testing.T) {
	t.Run("wires flags and prints the environment path", func(t *testing.T) {
		var captured setup.Config

		mock := &mockApp{
			setupFunc: func(_ context.Context, cfg setup.Config) (string, error) {
				captured = cfg
				return "/proj/.whisk/venv", nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"setup", "--root", "/proj", "--manifest", "/proj/reqs.txt", "--env-dir", "/proj/venv"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/proj", captured.Root)
		assert.Equal(t, "/proj/reqs.txt", captured.Manifest)
		assert.Equal(t, "/proj/venv", captured.EnvDir)
		assert.Contains(t, buf.String(), "/proj/.whisk/venv")
	})

	t.Run("returns error on setup failure", func(t *testing.T) {
		mock := &mockApp{
			setupFunc: func(_ context.Context, _ setup.Config) (string, error) {
				return "", errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"setup"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Configure(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedRoot, capturedConf string
		var capturedOpts configure.Options

		mock := &mockApp{
			configureFunc: func(_ context.Context, root, confPath string, opts configure.Options) error {
				capturedRoot = root
				capturedConf = confPath
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{
			"configure",
			"--root", "/proj",
			"--init",
			"--product", "gadget",
			"--product", "widget",
			"--mode", "internal",
			"--site", "hq",
			"--version", "dunfell",
			"--build-dir", "/proj/build",
			"--env", "/tmp/env",
			"--quiet",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/proj", capturedRoot)
		assert.Equal(t, "/proj/whisk.yaml", capturedConf)
		assert.True(t, capturedOpts.Init)
		assert.Equal(t, []string{"gadget", "widget"}, capturedOpts.Products)
		assert.Equal(t, "internal", capturedOpts.Mode)
		assert.Equal(t, "hq", capturedOpts.Site)
		assert.Equal(t, "dunfell", capturedOpts.Version)
		assert.Equal(t, "/proj/build", capturedOpts.BuildDir)
		assert.Equal(t, "/tmp/env", capturedOpts.EnvFile)
		assert.True(t, capturedOpts.Quiet)
	})

	t.Run("explicit conf path wins over the root default", func(t *testing.T) {
		var capturedConf string

		mock := &mockApp{
			configureFunc: func(_ context.Context, _, confPath string, _ configure.Options) error {
				capturedConf = confPath
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"configure", "--root", "/proj", "--conf", "/elsewhere/whisk.yaml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/elsewhere/whisk.yaml", capturedConf)
	})

	t.Run("returns error on configure failure", func(t *testing.T) {
		mock := &mockApp{
			configureFunc: func(_ context.Context, _, _ string, _ configure.Options) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"configure"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
