package runtime

import (
	"context"
	"fmt"
	"io"
)

// CheckTools probes every known tool and writes a diagnosis line per tool.
// Missing required tools produce [MISS]; missing optional tools [WARN].
func CheckTools(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "Runtime check:")

	for _, status := range ProbeAll(ctx) {
		writeStatus(w, status)
	}
}

func writeStatus(w io.Writer, status Status) {
	if !status.Found {
		tag := "[WARN]"
		if status.Tool.Required {
			tag = "[MISS]"
		}
		fmt.Fprintf(w, "  %s %s not found in PATH (%s)\n", tag, status.Tool.Name, status.Tool.Purpose)
		return
	}

	if status.Version == "" {
		fmt.Fprintf(w, "  [WARN] %s found at %s but did not report a version\n", status.Tool.Name, status.Path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s (%s)\n", status.Tool.Name, status.Version)
}
