package runtime

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Tool describes one external program that generated scripts depend on.
type Tool struct {
	// Name is the binary looked up on PATH.
	Name string

	// Purpose is a short phrase shown in diagnostics.
	Purpose string

	// Required marks tools whose absence should fail a health check.
	// Optional tools only produce a warning.
	Required bool
}

// Status is the result of probing a single tool.
type Status struct {
	Tool    Tool
	Found   bool
	Path    string // resolved absolute path, empty when not found
	Version string // first line of `<tool> --version`, empty on failure
}

// Tools returns the probe list in display order.
func Tools() []Tool {
	return []Tool{
		{Name: "python3", Purpose: "runs generated scripts", Required: true},
		{Name: "git", Purpose: "initializes standalone tool repositories", Required: false},
		{Name: "uv", Purpose: "installs script dependencies", Required: false},
	}
}

// Probe resolves a tool on PATH and reads its version.
// A missing binary is not an error; the returned Status reports it.
func Probe(ctx context.Context, tool Tool) Status {
	status := Status{Tool: tool}

	path, err := exec.LookPath(tool.Name)
	if err != nil {
		return status
	}
	status.Found = true
	status.Path = path

	version, err := probeVersion(ctx, path)
	if err != nil {
		return status
	}
	status.Version = version
	return status
}

// ProbeAll probes every known tool in order.
func ProbeAll(ctx context.Context) []Status {
	tools := Tools()
	statuses := make([]Status, 0, len(tools))
	for _, tool := range tools {
		statuses = append(statuses, Probe(ctx, tool))
	}
	return statuses
}

// probeVersion runs `<path> --version` and returns the first output line.
func probeVersion(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, path, "--version")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("probing version of %s: %w", path, err)
	}
	line := strings.TrimSpace(string(out))
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line), nil
}
