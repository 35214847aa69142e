package app

import (
	"fmt"
	"io"
	"runtime"
)

// Library version components.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// Build metadata, set with -ldflags "-X github.com/agbru/bigshift/internal/app.Commit=...".
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// VersionString returns the version as "MAJOR.MINOR.PATCH".
func VersionString() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}

// VersionNumber returns the version packed as MAJOR<<16 | MINOR<<8 | PATCH.
func VersionNumber() uint32 {
	return VersionMajor<<16 | VersionMinor<<8 | VersionPatch
}

// HasVersionFlag reports whether args request version output.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "-version", "--version", "-V", "--V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "bigshift %s (0x%06x)\n", VersionString(), VersionNumber())
	fmt.Fprintf(out, "commit %s, built %s, %s %s/%s\n",
		Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
