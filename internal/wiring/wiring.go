// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nativeimage/internal/adapters/config"
	_ "go.trai.ch/nativeimage/internal/adapters/fs"
	_ "go.trai.ch/nativeimage/internal/adapters/host"
	_ "go.trai.ch/nativeimage/internal/adapters/logger"
	_ "go.trai.ch/nativeimage/internal/adapters/macro"
	_ "go.trai.ch/nativeimage/internal/adapters/planfile"
	_ "go.trai.ch/nativeimage/internal/adapters/shell"
	_ "go.trai.ch/nativeimage/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/nativeimage/internal/app"
	_ "go.trai.ch/nativeimage/internal/engine/planner"
)
