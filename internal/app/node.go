package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pyprune/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pyprune/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/pyprune/internal/adapters/linear"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pyprune/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pyprune/internal/adapters/prompt"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pyprune/internal/adapters/python"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pyprune/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			python.NodeID,
			detector.NodeID,
			prompt.NodeID,
			linear.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	toolchains, err := graft.Dep[ports.ToolchainFactory](ctx)
	if err != nil {
		return nil, err
	}

	probe, err := graft.Dep[ports.EnvironmentProbe](ctx)
	if err != nil {
		return nil, err
	}

	confirmer, err := graft.Dep[ports.Confirmer](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, toolchains, probe, confirmer, renderer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
