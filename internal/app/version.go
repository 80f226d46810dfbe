package app

import (
	"fmt"
	"io"
	"runtime"
	"slices"
)

// Build information, set at link time with
// -ldflags "-X github.com/agbru/colorize/internal/app.Version=v1.0.0".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request the version, so main can print
// it before any other flag is validated.
func HasVersionFlag(args []string) bool {
	return slices.ContainsFunc(args, func(a string) bool {
		switch a {
		case "-V", "--V", "-version", "--version":
			return true
		}
		return false
	})
}

// PrintVersion writes the build information to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "colorize %s (commit %s, built %s) %s %s/%s\n",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
