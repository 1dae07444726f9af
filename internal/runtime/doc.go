// Package runtime probes the external tools that generated scripts rely
// on at run time: the Python interpreter, git, and the uv package manager.
// It resolves each tool on PATH and reads its version so callers can
// report a meaningful diagnosis instead of a bare "not found".
package runtime
