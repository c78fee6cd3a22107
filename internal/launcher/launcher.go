// Package launcher derives the game executable path from the launcher's.
package launcher

import "strings"

const (
	suffix    = "-launcher"
	exeSuffix = ".exe"
)

// FindExecutable strips a trailing "-launcher" or "-launcher.exe" (any case)
// from launcherPath. The ".exe" extension is kept, in lowercase. Paths
// without either suffix are returned unchanged.
func FindExecutable(launcherPath string) string {
	if hasSuffixFold(launcherPath, suffix+exeSuffix) {
		return launcherPath[:len(launcherPath)-len(suffix+exeSuffix)] + exeSuffix
	}
	if hasSuffixFold(launcherPath, suffix) {
		return launcherPath[:len(launcherPath)-len(suffix)]
	}
	return launcherPath
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
