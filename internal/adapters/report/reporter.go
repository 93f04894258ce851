// Package report renders build progress and results for the operator.
package report

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports"
	"go.trai.ch/bundler/internal/ui/output"
	"go.trai.ch/bundler/internal/ui/style"
)

var _ ports.Reporter = (*Reporter)(nil)

// installerTargets is the order of the installer suggestions in the next steps.
var installerTargets = []domain.Target{domain.TargetWindows, domain.TargetMacOS, domain.TargetLinux}

// Reporter implements ports.Reporter with line-oriented terminal output.
type Reporter struct {
	mu     sync.Mutex
	w      io.Writer
	output *termenv.Output
}

// NewReporter creates a Reporter writing to w with the given colour profile.
// A nil w writes to stdout.
func NewReporter(w io.Writer, profileFn output.ProfileFunc) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		w:      w,
		output: output.NewWithProfile(w, profileFn),
	}
}

// Banner prints the run header shown before the confirmation prompt.
func (r *Reporter) Banner(platformID string, project domain.Project) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rule()
	r.println(r.title(project.Name + " - Build Script"))
	r.rule()
	r.println("")
	r.printf("Platform: %s\n", r.accent(platformID))
	r.println("")
	r.println("This will create a standalone executable for distribution.")
	r.println("")
	r.println("Requirements:")
	r.printf("- pip install %s\n", project.Tool)
	r.println("- All dependencies from requirements.txt")
	r.println("")
}

// Building announces the command about to run.
func (r *Reporter) Building(target domain.Target, cmd domain.CommandSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("Building %s %s...\n", target, strings.ToLower(target.ArtifactKind()))
	r.println(r.muted(style.Arrow + " " + cmd.String()))
}

// Plan prints the command that would run for target.
func (r *Reporter) Plan(target domain.Target, cmd domain.CommandSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("Plan for %s:\n", r.accent(target.String()))
	r.printf("  %s\n", cmd)
}

// Result prints the final outcome of a build.
func (r *Reporter) Result(outcome domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch outcome.Kind {
	case domain.OutcomeSuccess:
		r.success(outcome)
	case domain.OutcomeUserAborted:
		r.println("Build cancelled.")
	case domain.OutcomeUnsupportedPlatform:
		r.printf("%s Unsupported platform: %s\n", r.warn(style.Warning), outcome.Platform)
	case domain.OutcomeToolFailure:
		r.println("")
		r.println("")
		r.printf("%s Build failed: %s exited with status %d\n",
			r.fail(style.Cross), outcome.Command, outcome.ExitCode)
	default:
		detail := "unknown error"
		if outcome.Err != nil {
			detail = outcome.Err.Error()
		}
		r.println("")
		r.println("")
		r.printf("%s Unexpected error: %s\n", r.fail(style.Cross), firstLine(detail))
	}
}

func (r *Reporter) success(outcome domain.Outcome) {
	kind := outcome.Target.ArtifactKind()
	artifact := outcome.Artifact

	r.println("")
	r.printf("%s Build complete! %s: %s\n", r.ok(style.Check), kind, artifact.Path)
	if artifact.Inspected {
		r.println(r.muted(fmt.Sprintf("  %s, xxh64 %s", formatSize(artifact), artifact.Digest)))
	}

	r.println("")
	r.rule()
	r.println(r.ok("Build successful!"))
	r.rule()
	r.println("")
	r.println("Next steps:")
	r.printf("1. Test the %s in %s/\n", strings.ToLower(kind), path.Dir(artifact.Path))
	r.println("2. Create installer package (optional)")
	for _, t := range installerTargets {
		line := fmt.Sprintf("   - %s: %s", t, t.InstallerHint())
		if t == outcome.Target {
			line = r.accent(line)
		}
		r.println(line)
	}
}

func (r *Reporter) rule() {
	r.println(r.muted(style.Rule))
}

func (r *Reporter) title(s string) string {
	return style.Strong(r.output, style.Accent, s)
}

func (r *Reporter) accent(s string) string {
	return style.Paint(r.output, style.Accent, s)
}

func (r *Reporter) muted(s string) string {
	return style.Paint(r.output, style.Muted, s)
}

func (r *Reporter) ok(s string) string {
	return style.Paint(r.output, style.Success, s)
}

func (r *Reporter) warn(s string) string {
	return style.Paint(r.output, style.Caution, s)
}

func (r *Reporter) fail(s string) string {
	return style.Paint(r.output, style.Failure, s)
}

func (r *Reporter) println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

// firstLine keeps diagnostics on one line; the logger renders the full chain.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func formatSize(a domain.Artifact) string {
	const unit = 1024
	size := a.Size
	var s string
	if size < unit {
		s = fmt.Sprintf("%d B", size)
	} else {
		div, exp := int64(unit), 0
		for n := size / unit; n >= unit; n /= unit {
			div *= unit
			exp++
		}
		s = fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
	}
	if a.Dir {
		s += " bundle"
	}
	return s
}
