// Package version exposes the release embedded from the VERSION file.
package version

import (
	_ "embed"
	"fmt"
	"runtime"
	"strings"
)

//go:embed VERSION
var versionContent string

// Get returns the release version, e.g. "0.1.0".
func Get() string {
	return strings.TrimSpace(versionContent)
}

// Full returns the version with the Go toolchain and platform it was built for.
func Full() string {
	return fmt.Sprintf("%s (%s %s/%s)", Get(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
