// Package app implements the application layer for bundler.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports"
	"go.trai.ch/bundler/internal/engine/planner"
	"go.trai.ch/zerr"
)

// ConfirmQuestion is asked before anything is built.
const ConfirmQuestion = "Continue? (y/n): "

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	platform     ports.Platform
	prompter     ports.Prompter
	planner      *planner.Planner
	executor     ports.Executor
	inspector    ports.ArtifactInspector
	records      ports.BuildRecordStore
	reporters    ports.ReporterFactory
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	platform ports.Platform,
	prompter ports.Prompter,
	plan *planner.Planner,
	executor ports.Executor,
	inspector ports.ArtifactInspector,
	records ports.BuildRecordStore,
	reporters ports.ReporterFactory,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		platform:     platform,
		prompter:     prompter,
		planner:      plan,
		executor:     executor,
		inspector:    inspector,
		records:      records,
		reporters:    reporters,
		tracer:       tracer,
		logger:       log,
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// ConfigPath is the project file; empty uses the default lookup.
	ConfigPath string
	// OutputMode selects the report colour mode: auto, rich or linear.
	OutputMode string
}

// Build confirms with the operator, runs the bundling tool once for the host
// target and reports the result. The returned Outcome is also what was reported.
func (a *App) Build(ctx context.Context, opts BuildOptions) domain.Outcome {
	reporter := a.reporters.NewReporter(opts.OutputMode)

	outcome := a.build(ctx, opts, reporter)
	if outcome.Kind == domain.OutcomeUnexpectedError && outcome.Err != nil {
		a.logger.Error(outcome.Err)
	}
	reporter.Result(outcome)

	return outcome
}

func (a *App) build(ctx context.Context, opts BuildOptions, reporter ports.Reporter) domain.Outcome {
	// 1. Load the project
	project, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.UnexpectedError(zerr.Wrap(err, "failed to load project"))
	}

	// 2. Confirm
	platformID := a.platform.Identifier()
	reporter.Banner(platformID, project)

	confirmed, err := a.prompter.Confirm(ctx, ConfirmQuestion)
	if err != nil {
		return domain.UnexpectedError(err)
	}
	if !confirmed {
		return domain.UserAborted()
	}

	// 3. Select the target
	target := domain.SelectTarget(platformID)
	if !target.Supported() {
		return domain.UnsupportedPlatform(platformID)
	}

	ctx, span := a.tracer.Start(ctx, "build "+target.String())
	defer span.End()
	span.SetAttribute("platform", platformID)
	span.SetAttribute("project", project.Name)

	outcome := a.bundle(ctx, target, project, reporter)

	span.SetAttribute("outcome", outcome.Kind.String())
	if outcome.Failed() {
		span.RecordError(outcome.Err)
	}
	return outcome
}

// bundle plans and runs the tool exactly once.
func (a *App) bundle(
	ctx context.Context,
	target domain.Target,
	project domain.Project,
	reporter ports.Reporter,
) domain.Outcome {
	cmd, err := a.planner.Plan(target, project)
	if err != nil {
		return domain.UnexpectedError(err)
	}

	reporter.Building(target, cmd)

	if err := a.executor.Execute(ctx, cmd); err != nil {
		var exitErr *domain.ToolExitError
		if errors.As(err, &exitErr) {
			return domain.ToolFailure(target, cmd, exitErr.Code, err)
		}
		return domain.UnexpectedError(err)
	}

	artifactPath := project.ArtifactPath(target)
	artifact, err := a.inspector.Inspect(artifactPath)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("tool succeeded but %s could not be inspected", artifactPath))
		artifact = domain.Artifact{Path: artifactPath}
	}
	if artifact.Inspected {
		a.remember(target, cmd, artifact)
	}

	return domain.Success(target, cmd, artifact)
}

// remember compares the artifact with the previous build for target and
// records it. Store failures never fail the build.
func (a *App) remember(target domain.Target, cmd domain.CommandSpec, artifact domain.Artifact) {
	previous, err := a.records.Get(target.String())
	if err != nil {
		a.logger.Warn(fmt.Sprintf("failed to read previous build record: %v", err))
	} else if previous != nil && previous.Digest == artifact.Digest {
		a.logger.Info(fmt.Sprintf("%s is identical to the previous %s build", artifact.Path, target))
	}

	record := domain.BuildRecord{
		Target:    target.String(),
		Command:   cmd.Tokens(),
		Artifact:  artifact.Path,
		Digest:    artifact.Digest,
		Size:      artifact.Size,
		Timestamp: time.Now().UTC(),
	}
	if err := a.records.Put(record); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to save build record: %v", err))
	}
}

// PlanOptions configuration for the Plan method.
type PlanOptions struct {
	// ConfigPath is the project file; empty uses the default lookup.
	ConfigPath string
	// Target overrides the host target, e.g. "windows"; empty uses the host.
	Target string
	// OutputMode selects the report colour mode.
	OutputMode string
}

// Plan reports the command Build would run, without prompting or executing.
func (a *App) Plan(_ context.Context, opts PlanOptions) (domain.CommandSpec, error) {
	project, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.CommandSpec{}, zerr.Wrap(err, "failed to load project")
	}

	target, err := a.resolveTarget(opts.Target)
	if err != nil {
		return domain.CommandSpec{}, err
	}

	cmd, err := a.planner.Plan(target, project)
	if err != nil {
		return domain.CommandSpec{}, err
	}

	a.reporters.NewReporter(opts.OutputMode).Plan(target, cmd)
	return cmd, nil
}

func (a *App) resolveTarget(name string) (domain.Target, error) {
	if name != "" {
		return domain.ParseTarget(name)
	}

	platformID := a.platform.Identifier()
	target := domain.SelectTarget(platformID)
	if !target.Supported() {
		return target, zerr.With(domain.ErrUnsupportedPlatform, "platform", platformID)
	}
	return target, nil
}
