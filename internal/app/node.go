package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundler/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/bundler/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bundler/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/bundler/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/bundler/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bundler/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bundler/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bundler/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/bundler/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/bundler/internal/core/ports"
	"go.trai.ch/bundler/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			detector.PlatformNodeID,
			prompt.NodeID,
			planner.NodeID,
			shell.NodeID,
			fs.InspectorNodeID,
			cas.NodeID,
			report.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
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

	platform, err := graft.Dep[ports.Platform](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	plan, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.ArtifactInspector](ctx)
	if err != nil {
		return nil, err
	}

	records, err := graft.Dep[ports.BuildRecordStore](ctx)
	if err != nil {
		return nil, err
	}

	reporters, err := graft.Dep[ports.ReporterFactory](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, platform, prompter, plan, executor, inspector, records, reporters, tracer, log), nil
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
