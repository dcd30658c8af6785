package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/chris-regnier/gscctl/internal/gsc"
)

// maxReferringURLs caps the referring-URL examples in a full inspection.
const maxReferringURLs = 5

// FormatInspection renders a full single-URL inspection.
func FormatInspection(w io.Writer, pageURL string, insp gsc.Inspection) {
	fmt.Fprintf(w, "URL Inspection for %s:\n", pageURL)
	rule(w, ruleWidth)

	if insp.Link != "" {
		fmt.Fprintf(w, "Search Console Link: %s\n", insp.Link)
		rule(w, ruleWidth)
	}

	fmt.Fprintf(w, "Indexing Status: %s\n", orUnknown(insp.Verdict))
	if insp.CoverageState != "" {
		fmt.Fprintf(w, "Coverage: %s\n", insp.CoverageState)
	}
	if !insp.LastCrawlTime.IsZero() {
		fmt.Fprintf(w, "Last Crawled: %s\n", insp.LastCrawlTime.Format("2006-01-02 15:04"))
	}
	if insp.PageFetchState != "" {
		fmt.Fprintf(w, "Page Fetch: %s\n", insp.PageFetchState)
	}
	if insp.RobotsTxtState != "" {
		fmt.Fprintf(w, "Robots.txt: %s\n", insp.RobotsTxtState)
	}
	if insp.IndexingState != "" {
		fmt.Fprintf(w, "Indexing State: %s\n", insp.IndexingState)
	}
	if insp.GoogleCanonical != "" {
		fmt.Fprintf(w, "Google Canonical: %s\n", insp.GoogleCanonical)
	}
	if insp.UserCanonical != "" && insp.UserCanonical != insp.GoogleCanonical {
		fmt.Fprintf(w, "User Canonical: %s\n", insp.UserCanonical)
	}
	if insp.CrawledAs != "" {
		fmt.Fprintf(w, "Crawled As: %s\n", insp.CrawledAs)
	}

	if len(insp.ReferringURLs) > 0 {
		fmt.Fprintln(w, "\nReferring URLs:")
		for i, u := range insp.ReferringURLs {
			if i == maxReferringURLs {
				fmt.Fprintf(w, "... and %d more\n", len(insp.ReferringURLs)-maxReferringURLs)
				break
			}
			fmt.Fprintf(w, "- %s\n", u)
		}
	}

	if insp.RichResultsVerdict != "" {
		fmt.Fprintf(w, "\nRich Results: %s\n", insp.RichResultsVerdict)
		if len(insp.RichResults) > 0 {
			fmt.Fprintln(w, "Detected Rich Result Types:")
			for _, rr := range insp.RichResults {
				fmt.Fprintf(w, "- %s\n", rr.Type)
				for _, name := range rr.Items {
					fmt.Fprintf(w, "  • %s\n", name)
				}
				for _, issue := range rr.Issues {
					fmt.Fprintf(w, "  [%s] %s\n", issue.Severity, issue.Message)
				}
			}
		}
	}
}

// FormatInspectionBrief renders the batch-inspection summary for one URL.
func FormatInspectionBrief(w io.Writer, pageURL string, insp gsc.Inspection) {
	lastCrawl := "Never"
	if !insp.LastCrawlTime.IsZero() {
		lastCrawl = insp.LastCrawlTime.Format("2006-01-02")
	}

	richResults := "None"
	if insp.RichResultsVerdict == "PASS" && len(insp.RichResults) > 0 {
		types := make([]string, len(insp.RichResults))
		for i, rr := range insp.RichResults {
			types[i] = rr.Type
		}
		richResults = strings.Join(types, ", ")
	}

	fmt.Fprintf(w, "%s:\n  Status: %s - %s\n  Last Crawl: %s\n  Rich Results: %s\n\n",
		pageURL, orUnknown(insp.Verdict), orUnknown(insp.CoverageState), lastCrawl, richResults)
}

// IssueSummary buckets inspected URLs by the kind of indexing problem they
// show. Build it with Add/AddError, render it with FormatIndexingIssues.
type IssueSummary struct {
	Total           int
	Indexed         []string
	NotIndexed      []string
	CanonicalIssues []string
	RobotsBlocked   []string
	FetchIssues     []string
}

// Add categorizes one successful inspection. A URL can land in several
// buckets (e.g. not indexed and robots-blocked).
func (s *IssueSummary) Add(pageURL string, insp gsc.Inspection) {
	s.Total++

	coverage := orUnknown(insp.CoverageState)
	lower := strings.ToLower(coverage)
	if insp.Verdict != "PASS" || strings.Contains(lower, "not indexed") || strings.Contains(lower, "excluded") {
		s.NotIndexed = append(s.NotIndexed, fmt.Sprintf("%s - %s", pageURL, coverage))
	} else {
		s.Indexed = append(s.Indexed, pageURL)
	}

	if insp.GoogleCanonical != "" && insp.UserCanonical != "" && insp.GoogleCanonical != insp.UserCanonical {
		s.CanonicalIssues = append(s.CanonicalIssues,
			fmt.Sprintf("%s - Google chose: %s instead of user-declared: %s",
				pageURL, insp.GoogleCanonical, insp.UserCanonical))
	}
	if insp.RobotsTxtState == "BLOCKED" {
		s.RobotsBlocked = append(s.RobotsBlocked, pageURL)
	}
	if insp.PageFetchState != "" && insp.PageFetchState != "SUCCESSFUL" {
		s.FetchIssues = append(s.FetchIssues, fmt.Sprintf("%s - %s", pageURL, insp.PageFetchState))
	}
}

// AddError records a URL whose inspection failed outright.
func (s *IssueSummary) AddError(pageURL string, err error) {
	s.Total++
	s.NotIndexed = append(s.NotIndexed, fmt.Sprintf("%s - Error: %v", pageURL, err))
}

// FormatIndexingIssues renders the categorized report.
func FormatIndexingIssues(w io.Writer, siteURL string, s IssueSummary) {
	fmt.Fprintf(w, "Indexing Issues Report for %s:\n", siteURL)
	rule(w, ruleWidth)
	fmt.Fprintf(w, "Total URLs checked: %d\n", s.Total)
	fmt.Fprintf(w, "Indexed: %d\n", len(s.Indexed))
	fmt.Fprintf(w, "Not indexed: %d\n", len(s.NotIndexed))
	fmt.Fprintf(w, "Canonical issues: %d\n", len(s.CanonicalIssues))
	fmt.Fprintf(w, "Robots.txt blocked: %d\n", len(s.RobotsBlocked))
	fmt.Fprintf(w, "Fetch issues: %d\n", len(s.FetchIssues))
	rule(w, ruleWidth)

	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s:\n", title)
		for _, item := range items {
			fmt.Fprintf(w, "- %s\n", item)
		}
	}
	section("Not Indexed URLs", s.NotIndexed)
	section("Canonical Issues", s.CanonicalIssues)
	section("Robots.txt Blocked URLs", s.RobotsBlocked)
	section("Fetch Issues", s.FetchIssues)
}

func orUnknown(s string) string {
	if s == "" {
		return "UNKNOWN"
	}
	return s
}
