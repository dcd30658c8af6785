package report

import (
	"fmt"
	"io"

	"github.com/chris-regnier/gscctl/internal/gsc"
)

// FormatSitemaps renders a sitemap listing. source names what was listed,
// e.g. "all submitted sitemaps" or "child sitemaps from index: ...".
func FormatSitemaps(w io.Writer, siteURL, source string, maps []gsc.Sitemap) {
	fmt.Fprintf(w, "Sitemaps for %s (%s):\n", siteURL, source)
	rule(w, wideRuleWidth)
	fmt.Fprintln(w, "Path | Last Submitted | Last Downloaded | Type | URLs | Errors | Warnings")
	rule(w, wideRuleWidth)

	pending := 0
	for _, m := range maps {
		kind := "Sitemap"
		if m.IsIndex {
			kind = "Index"
		}
		if m.IsPending {
			pending++
		}
		fmt.Fprintf(w, "%s | %s | %s | %s | %s | %d | %d\n",
			m.Path, formatTime(m.LastSubmitted), formatTime(m.LastDownloaded),
			kind, webURLCount(m), m.Errors, m.Warnings)
	}

	if pending > 0 {
		fmt.Fprintf(w, "\nNote: %d sitemaps are still pending processing by Google.\n", pending)
	}
}

// FormatSitemapDetails renders one sitemap's full state.
func FormatSitemapDetails(w io.Writer, feedPath string, m gsc.Sitemap) {
	fmt.Fprintf(w, "Sitemap Details for %s:\n", feedPath)
	rule(w, ruleWidth)

	kind := "Sitemap"
	if m.IsIndex {
		kind = "Sitemap Index"
	}
	fmt.Fprintf(w, "Type: %s\n", kind)

	status := "Processed"
	if m.IsPending {
		status = "Pending processing"
	}
	fmt.Fprintf(w, "Status: %s\n", status)

	if !m.LastSubmitted.IsZero() {
		fmt.Fprintf(w, "Last Submitted: %s\n", formatTime(m.LastSubmitted))
	}
	if !m.LastDownloaded.IsZero() {
		fmt.Fprintf(w, "Last Downloaded: %s\n", formatTime(m.LastDownloaded))
	}
	fmt.Fprintf(w, "Errors: %d\n", m.Errors)
	fmt.Fprintf(w, "Warnings: %d\n", m.Warnings)

	if len(m.Contents) > 0 {
		fmt.Fprintln(w, "\nContent Breakdown:")
		for _, c := range m.Contents {
			fmt.Fprintf(w, "- %s: %d submitted, %d indexed\n", c.Type, c.Submitted, c.Indexed)
		}
	}

	if m.IsIndex {
		fmt.Fprintln(w, "\nThis is a sitemap index. To list child sitemaps, use:")
		fmt.Fprintf(w, "list_sitemaps with sitemap_index=%s\n", feedPath)
	}
}

// webURLCount pulls the submitted URL count from a sitemap's web content
// bucket, or "N/A" when there is none.
func webURLCount(m gsc.Sitemap) string {
	for _, c := range m.Contents {
		if c.Type == "web" {
			return fmt.Sprintf("%d", c.Submitted)
		}
	}
	return "N/A"
}
