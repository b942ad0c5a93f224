package app

import "go.trai.ch/pyprune/internal/core/ports"

// Components holds the application and the shared infrastructure the entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
