package cleanup_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/pyprune/internal/core/ports/mocks"
	"go.trai.ch/pyprune/internal/engine/cleanup"
	"go.uber.org/mock/gomock"
)

var (
	inVenv  = domain.Environment{VirtualEnvActive: true, Path: "/work/.venv", Name: ".venv"}
	noVenv  = domain.Environment{}
	minimal = domain.NewProtectedSet(domain.ProtectionRules{Names: []string{"pip", "setuptools", "wheel"}})
)

func TestEngine_Guard(t *testing.T) {
	tests := []struct {
		name    string
		env     domain.Environment
		target  domain.Target
		wantErr string
	}{
		{name: "global outside venv", env: noVenv, target: domain.TargetGlobal},
		{name: "global inside venv", env: inVenv, target: domain.TargetGlobal, wantErr: "global cleanup refused"},
		{name: "local inside venv", env: inVenv, target: domain.TargetLocal},
		{name: "local outside venv", env: noVenv, target: domain.TargetLocal, wantErr: "local cleanup refused"},
		{name: "no target inside venv", env: inVenv, target: domain.TargetNone},
		{name: "no target outside venv", env: noVenv, target: domain.TargetNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// The guard must not touch the package manager.
			manager := mocks.NewMockPackageManager(ctrl)

			err := cleanup.New(manager, minimal, tt.env).Guard(tt.target)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEngine_Plan(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockPackageManager(ctrl)
	manager.EXPECT().List(gomock.Any()).Return([]domain.Package{
		{Name: "pip", Version: "24.2"},
		{Name: "requests", Version: "2.32.3"},
		{Name: "flask", Version: "2.3.3"},
	}, nil)

	plan, err := cleanup.New(manager, minimal, noVenv).Plan(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []domain.Package{
		{Name: "requests", Version: "2.32.3"},
		{Name: "flask", Version: "2.3.3"},
	}, plan.Removable)
	assert.Equal(t, []domain.Package{{Name: "pip", Version: "24.2"}}, plan.Protected)
	assert.Len(t, plan.Installed, 3)
}

func TestEngine_Plan_QueryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockPackageManager(ctrl)
	manager.EXPECT().List(gomock.Any()).Return(nil, errors.New("pip: command not found"))

	plan, err := cleanup.New(manager, minimal, noVenv).Plan(context.Background())
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "failed to query installed packages")
}

func TestEngine_Plan_InjectedProtector(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockPackageManager(ctrl)
	manager.EXPECT().List(gomock.Any()).Return([]domain.Package{
		{Name: "internal-tool", Version: "1.0"},
		{Name: "numpy", Version: "2.1.0"},
	}, nil)

	keepInternal := domain.ProtectorFunc(func(name string) bool {
		return name == "internal-tool"
	})

	plan, err := cleanup.New(manager, keepInternal, noVenv).Plan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"numpy"}, domain.Names(plan.Removable))
}

func TestEngine_Remove_CallCountIndependentOfBatchSize(t *testing.T) {
	removable := packages(23)

	for _, size := range []int{1, 3, 10, 23, 50} {
		t.Run(fmt.Sprintf("batch size %d", size), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			manager := mocks.NewMockPackageManager(ctrl)
			logger := mocks.NewMockLogger(ctrl)
			logger.EXPECT().Info(gomock.Any()).Times((len(removable) + size - 1) / size)

			var order []any
			for _, pkg := range removable {
				order = append(order, manager.EXPECT().Uninstall(gomock.Any(), pkg.Name).Return(nil).Times(1))
			}
			gomock.InOrder(order...)

			engine := cleanup.New(manager, minimal, noVenv,
				cleanup.WithBatchSize(size),
				cleanup.WithLogger(logger),
			)
			report := engine.Remove(context.Background(), &domain.Plan{Removable: removable})

			assert.Len(t, report.Removed, len(removable))
			assert.Empty(t, report.Failed)
			assert.Equal(t, (len(removable)+size-1)/size, report.Batches)
			assert.Equal(t, len(removable), report.Attempted())
		})
	}
}

func TestEngine_Remove_FailureDoesNotStopRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockPackageManager(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn("could not remove pkg01, continuing").Times(1)
	logger.EXPECT().Warn("could not remove pkg03, continuing").Times(1)

	removable := packages(5)
	gomock.InOrder(
		manager.EXPECT().Uninstall(gomock.Any(), "pkg00").Return(nil),
		manager.EXPECT().Uninstall(gomock.Any(), "pkg01").Return(errors.New("permission denied")),
		manager.EXPECT().Uninstall(gomock.Any(), "pkg02").Return(nil),
		manager.EXPECT().Uninstall(gomock.Any(), "pkg03").Return(errors.New("not installed")),
		manager.EXPECT().Uninstall(gomock.Any(), "pkg04").Return(nil),
	)

	engine := cleanup.New(manager, minimal, noVenv, cleanup.WithBatchSize(2), cleanup.WithLogger(logger))
	report := engine.Remove(context.Background(), &domain.Plan{
		Removable: removable,
		Protected: []domain.Package{{Name: "pip", Version: "24.2"}},
	})

	assert.Equal(t, []string{"pkg00", "pkg02", "pkg04"}, domain.Names(report.Removed))
	require.Len(t, report.Failed, 2)
	assert.Equal(t, "pkg01", report.Failed[0].Package.Name)
	assert.Equal(t, "permission denied", report.Failed[0].Reason)
	assert.Equal(t, "pkg03", report.Failed[1].Package.Name)
	assert.Equal(t, "not installed", report.Failed[1].Reason)
	assert.Equal(t, 1, report.ProtectedCount)
	assert.Equal(t, 3, report.Batches)
}

func TestEngine_Remove_BatchLogging(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockPackageManager(ctrl)
	manager.EXPECT().Uninstall(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	logger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		logger.EXPECT().Info("removing batch 1/2: pkg00, pkg01"),
		logger.EXPECT().Info("removing batch 2/2: pkg02"),
	)

	engine := cleanup.New(manager, minimal, noVenv, cleanup.WithBatchSize(2), cleanup.WithLogger(logger))
	engine.Remove(context.Background(), &domain.Plan{Removable: packages(3)})
}

func TestEngine_Remove_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockPackageManager(ctrl)

	report := cleanup.New(manager, minimal, noVenv).Remove(context.Background(), &domain.Plan{})

	assert.Empty(t, report.Removed)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 0, report.Batches)
}

func TestEngine_Remove_InvalidBatchSizeKeepsDefault(t *testing.T) {
	for _, size := range []int{0, -3} {
		t.Run(fmt.Sprintf("batch size %d", size), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			manager := mocks.NewMockPackageManager(ctrl)
			manager.EXPECT().Uninstall(gomock.Any(), gomock.Any()).Return(nil).Times(domain.DefaultBatchSize + 1)

			engine := cleanup.New(manager, minimal, noVenv, cleanup.WithBatchSize(size))
			report := engine.Remove(context.Background(), &domain.Plan{Removable: packages(domain.DefaultBatchSize + 1)})

			assert.Equal(t, 2, report.Batches)
		})
	}
}

func packages(n int) []domain.Package {
	pkgs := make([]domain.Package, n)
	for i := range pkgs {
		pkgs[i] = domain.Package{Name: fmt.Sprintf("pkg%02d", i), Version: "1.0"}
	}
	return pkgs
}
