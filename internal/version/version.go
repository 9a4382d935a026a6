// Package version exposes build metadata stamped via -ldflags.
package version

import "strings"

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String renders "1.2.3 (abc1234) 2026-01-02", omitting unset parts.
func String() string {
	parts := []string{Version}
	if Commit != "" {
		parts = append(parts, "("+Commit+")")
	}
	if Date != "" {
		parts = append(parts, Date)
	}
	return strings.Join(parts, " ")
}
