package mcptools

import "strings"

const (
	// defaultLookbackDays is the trailing analytics window used when the
	// caller gives no dates.
	defaultLookbackDays = 28

	// maxInspectionBatch caps the URLs inspected per call to stay clear
	// of API quota limits.
	maxInspectionBatch = 10

	defaultDimensions = "query"
)

// splitURLs parses a one-URL-per-line block, dropping blank lines.
func splitURLs(s string) []string {
	var urls []string
	for _, line := range strings.Split(s, "\n") {
		if u := strings.TrimSpace(line); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
