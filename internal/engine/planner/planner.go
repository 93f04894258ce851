// Package planner builds the bundling tool invocation for a target platform.
package planner

import (
	"fmt"

	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports"
	"go.trai.ch/zerr"
)

// Planner turns a project and target into a CommandSpec.
type Planner struct {
	assets ports.AssetProbe
	logger ports.Logger
}

// New creates a new Planner.
func New(assets ports.AssetProbe, logger ports.Logger) *Planner {
	return &Planner{
		assets: assets,
		logger: logger,
	}
}

// Plan builds the command for target. Every optional flag is resolved to
// present or absent before the token list is assembled.
func (p *Planner) Plan(target domain.Target, project domain.Project) (domain.CommandSpec, error) {
	if !target.Supported() {
		return domain.CommandSpec{}, zerr.With(domain.ErrUnsupportedPlatform, "target", target.String())
	}

	tokens := []string{
		project.Tool,
		"--name=" + project.ArtifactName(target),
		"--onefile",
	}

	if target.Windowed() {
		tokens = append(tokens, "--windowed")
	}

	iconFlag, hasIcon, err := p.iconFlag(target, project)
	if err != nil {
		return domain.CommandSpec{}, err
	}
	if hasIcon {
		tokens = append(tokens, iconFlag)
	}

	for _, m := range project.Data {
		tokens = append(tokens, dataFlag(target, m))
	}

	tokens = append(tokens, project.Entry)

	return domain.NewCommandSpec(tokens...)
}

func (p *Planner) iconFlag(target domain.Target, project domain.Project) (string, bool, error) {
	icon, ok := project.Icon(target)
	if !ok {
		return "", false, nil
	}

	exists, err := p.assets.Exists(icon)
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrAssetProbeFailed.Error()), "path", icon)
	}
	if !exists {
		p.logger.Warn(fmt.Sprintf("icon %s not found, building without an icon", icon))
		return "", false, nil
	}

	return "--icon=" + icon, true, nil
}

func dataFlag(target domain.Target, m domain.DataMapping) string {
	return "--add-data=" + m.Source + target.DataSeparator() + m.Dest
}
