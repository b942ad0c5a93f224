package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pyprune/cmd/pyprune/commands"
	"go.trai.ch/pyprune/internal/app"
	"go.trai.ch/pyprune/internal/build"
	"go.trai.ch/pyprune/internal/core/domain"
)

type mockApp struct {
	cleanFunc  func(ctx context.Context, opts app.CleanOptions) error
	reportFunc func(ctx context.Context, opts app.ReportOptions) error
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Report(ctx context.Context, opts app.ReportOptions) error {
	if m.reportFunc != nil {
		return m.reportFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.CleanOptions
	}{
		{
			name: "defaults to interactive without target",
			args: []string{},
			want: app.CleanOptions{Mode: domain.ModeInteractive, Target: domain.TargetNone},
		},
		{
			name: "local interactive",
			args: []string{"--local"},
			want: app.CleanOptions{Mode: domain.ModeInteractive, Target: domain.TargetLocal},
		},
		{
			name: "global info",
			args: []string{"--global", "--info"},
			want: app.CleanOptions{Mode: domain.ModeInfo, Target: domain.TargetGlobal},
		},
		{
			name: "dry run without target",
			args: []string{"--dry-run"},
			want: app.CleanOptions{Mode: domain.ModeDryRun, Target: domain.TargetNone},
		},
		{
			name: "confirmed with config",
			args: []string{"--local", "--confirm", "-c", "custom.yaml"},
			want: app.CleanOptions{Mode: domain.ModeConfirmed, Target: domain.TargetLocal, ConfigPath: "custom.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.CleanOptions
			called := false

			cli := commands.New(&mockApp{
				cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
					captured = opts
					called = true
					return nil
				},
			})
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.True(t, called)
			assert.Equal(t, tt.want, captured)
		})
	}
}

func TestCommands_Clean_MutuallyExclusiveFlags(t *testing.T) {
	tests := [][]string{
		{"--local", "--global"},
		{"--info", "--dry-run"},
		{"--dry-run", "--confirm"},
		{"--info", "--confirm"},
	}

	for _, args := range tests {
		t.Run(args[0]+" "+args[1], func(t *testing.T) {
			cli := commands.New(&mockApp{
				cleanFunc: func(_ context.Context, _ app.CleanOptions) error {
					panic("should not be called")
				},
			})
			cli.SetArgs(args)
			cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

			err := cli.Execute(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "were all set")
		})
	}
}

func TestCommands_Clean_PropagatesError(t *testing.T) {
	cli := commands.New(&mockApp{
		cleanFunc: func(_ context.Context, _ app.CleanOptions) error {
			return domain.ErrGlobalInVirtualEnv
		},
	})
	cli.SetArgs([]string{"--global", "--confirm"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrGlobalInVirtualEnv)
}

func TestCommands_Clean_RejectsArguments(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetArgs([]string{"numpy"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Env(t *testing.T) {
	t.Run("default sample", func(t *testing.T) {
		var captured app.ReportOptions
		cli := commands.New(&mockApp{
			reportFunc: func(_ context.Context, opts app.ReportOptions) error {
				captured = opts
				return nil
			},
		})
		cli.SetArgs([]string{"env"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.ReportOptions{Sample: domain.DefaultSampleSize}, captured)
	})

	t.Run("custom sample and config", func(t *testing.T) {
		var captured app.ReportOptions
		cli := commands.New(&mockApp{
			reportFunc: func(_ context.Context, opts app.ReportOptions) error {
				captured = opts
				return nil
			},
		})
		cli.SetArgs([]string{"env", "--sample", "3", "--config", "pyprune.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.ReportOptions{Sample: 3, ConfigPath: "pyprune.yaml"}, captured)
	})

	t.Run("negative sample", func(t *testing.T) {
		cli := commands.New(&mockApp{
			reportFunc: func(_ context.Context, _ app.ReportOptions) error {
				panic("should not be called")
			},
		})
		cli.SetArgs([]string{"env", "-n", "-1"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sample size must not be negative")
	})

	t.Run("propagates error", func(t *testing.T) {
		cli := commands.New(&mockApp{
			reportFunc: func(_ context.Context, _ app.ReportOptions) error {
				return errors.New("config broken")
			},
		})
		cli.SetArgs([]string{"env"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.EqualError(t, cli.Execute(context.Background()), "config broken")
	})
}

func TestCommands_LogJSON(t *testing.T) {
	var enabled []bool
	cli := commands.New(&mockApp{}, commands.WithJSONLogging(func(on bool) {
		enabled = append(enabled, on)
	}))
	cli.SetArgs([]string{"env", "--log-json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []bool{true}, enabled)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetArgs([]string{"version"})
	cli.SetOutput(buf, buf)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "pyprune version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetArgs([]string{"--version"})
	cli.SetOutput(buf, buf)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "pyprune version "+build.Version)
}
