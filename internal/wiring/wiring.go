// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pyprune/internal/adapters/config"
	_ "go.trai.ch/pyprune/internal/adapters/detector"
	_ "go.trai.ch/pyprune/internal/adapters/linear"
	_ "go.trai.ch/pyprune/internal/adapters/logger"
	_ "go.trai.ch/pyprune/internal/adapters/prompt"
	_ "go.trai.ch/pyprune/internal/adapters/python"
	_ "go.trai.ch/pyprune/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/pyprune/internal/app"
)
