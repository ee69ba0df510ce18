package service

import "strings"

// FormatBullets splits raw completion text into trimmed, non-empty lines.
// The model is prompted for bullet-pointed output and line breaks are the
// only structure its raw text has.
func FormatBullets(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
