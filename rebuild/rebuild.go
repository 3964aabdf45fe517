// Package rebuild keeps single-file Go scripts self-compiling. A script
// built once with `go build` can check its own binary against its sources on
// startup, rebuild itself when stale and re-exec with the original
// arguments. The flag registry never depends on this package; it is a
// standalone utility for the same scripting workflow.
package rebuild

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sparlib/go-spar/termio"
)

// osExit is swapped out by tests exercising the fatal paths.
var osExit = os.Exit

// Options configures RebuildWith.
type Options struct {
	// BuildFlags are passed to `go build` before the output and source
	// arguments (e.g. "-trimpath", "-ldflags=-s -w").
	BuildFlags []string

	// Logger receives build progress; nil means the process-wide termio
	// logger.
	Logger *termio.Logger
}

// Stale reports whether the output binary is older than any of the sources.
// Missing files and unreadable metadata conservatively count as stale.
func Stale(output string, sources ...string) bool {
	outInfo, err := os.Stat(output)
	if err != nil {
		return true
	}
	for _, source := range sources {
		srcInfo, err := os.Stat(source)
		if err != nil {
			return true
		}
		if outInfo.ModTime().Before(srcInfo.ModTime()) {
			return true
		}
	}
	return false
}

// Rebuild recompiles and re-execs the running program when its sources are
// newer than its binary. args must be the raw process argument list; args[0]
// is the path of the running binary and also the build output path. When the
// binary is up to date, Rebuild returns immediately. Otherwise it builds
// mainPath plus extra sources, runs the fresh binary with args[1:], and
// exits with the child's exit code. A failed build is fatal with exit
// code 1.
func Rebuild(args []string, mainPath string, extra ...string) {
	RebuildWith(args, Options{}, mainPath, extra...)
}

// RebuildWith is Rebuild with explicit Options.
func RebuildWith(args []string, opts Options, mainPath string, extra ...string) {
	if len(args) == 0 {
		return
	}
	self := args[0]
	sources := append([]string{mainPath}, extra...)
	if !Stale(self, sources...) {
		return
	}

	log := opts.Logger
	if log == nil {
		log = termio.Default()
	}

	buildArgs := make([]string, 0, 3+len(opts.BuildFlags)+len(sources))
	buildArgs = append(buildArgs, "build", "-o", self)
	buildArgs = append(buildArgs, opts.BuildFlags...)
	buildArgs = append(buildArgs, sources...)

	build := exec.Command("go", buildArgs...)
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		log.Errorf("build failed: %v", err)
		osExit(1)
		return
	}
	log.Infof("build successful")

	child := exec.Command(self, args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			osExit(exitErr.ExitCode())
			return
		}
		log.Errorf("program failed to run: %v", err)
		osExit(1)
		return
	}
	osExit(0)
}

// WriteProjectFile writes a minimal go.mod into dir so editor tooling
// resolves a standalone script directory as a module. It is a no-op when a
// go.mod already exists there.
func WriteProjectFile(dir, module string) error {
	path := filepath.Join(dir, "go.mod")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	content := "module " + module + "\n\ngo " + toolchainVersion() + "\n"
	return os.WriteFile(path, []byte(content), 0o644)
}

// toolchainVersion derives a go.mod language version from the running
// toolchain, falling back to a safe floor for devel builds.
func toolchainVersion() string {
	version := strings.TrimPrefix(runtime.Version(), "go")
	if version == runtime.Version() || strings.ContainsAny(version, " -") {
		return "1.22"
	}
	return version
}
