// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bundler/internal/adapters/cas"
	_ "go.trai.ch/bundler/internal/adapters/config"
	_ "go.trai.ch/bundler/internal/adapters/detector"
	_ "go.trai.ch/bundler/internal/adapters/fs"
	_ "go.trai.ch/bundler/internal/adapters/logger"
	_ "go.trai.ch/bundler/internal/adapters/prompt"
	_ "go.trai.ch/bundler/internal/adapters/report"
	_ "go.trai.ch/bundler/internal/adapters/shell"
	_ "go.trai.ch/bundler/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/bundler/internal/app"
	_ "go.trai.ch/bundler/internal/engine/planner"
)
