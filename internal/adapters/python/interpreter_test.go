package python_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pyprune/internal/adapters/python"
	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/pyprune/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterpreter_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), []string{"python3", "--version"}).Return([]byte("Python 3.12.4\n"), nil)

	got, err := python.NewInterpreter(runner, []string{"python3"}).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Python 3.12.4", got)
}

func TestInterpreter_Version_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("not found"))

	_, err := python.NewInterpreter(runner, []string{"python3"}).Version(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query interpreter version")
}

func TestFactory_DefaultsAndOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), []string{"pip", "uninstall", "-y", "a"}).Return(nil, nil),
		runner.EXPECT().Run(gomock.Any(), []string{"python3", "--version"}).Return([]byte("Python 3.12.4"), nil),
		runner.EXPECT().Run(gomock.Any(), []string{"py", "-3", "-m", "pip", "uninstall", "-y", "b"}).Return(nil, nil),
		runner.EXPECT().Run(gomock.Any(), []string{"py", "-3", "--version"}).Return([]byte("Python 3.11.9"), nil),
	)

	factory := python.NewFactory(runner)
	ctx := context.Background()

	require.NoError(t, factory.PackageManager(domain.Toolchain{}).Uninstall(ctx, "a"))
	_, err := factory.Interpreter(domain.Toolchain{}).Version(ctx)
	require.NoError(t, err)

	custom := domain.Toolchain{
		Pip:    []string{"py", "-3", "-m", "pip"},
		Python: []string{"py", "-3"},
	}
	require.NoError(t, factory.PackageManager(custom).Uninstall(ctx, "b"))
	_, err = factory.Interpreter(custom).Version(ctx)
	require.NoError(t, err)
}
