package gsc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/chris-regnier/gscctl/internal/analytics"
)

// APIError is a Search Console API failure with its HTTP status code and
// the service's own message.
type APIError struct {
	Op      string
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (HTTP %d)", e.Op, e.Message, e.Code)
}

// IsNotFound reports whether err is a Search Console 404.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Code == http.StatusNotFound
}

// ErrNoInspection reports that the API returned no inspection result for a
// URL.
var ErrNoInspection = errors.New("no inspection data")

// Property is one Search Console property and the caller's access to it.
type Property struct {
	SiteURL         string
	PermissionLevel string
}

// SitemapContent is one content-type bucket within a sitemap.
type SitemapContent struct {
	Type      string
	Submitted int64
	Indexed   int64
}

// Sitemap is a submitted sitemap's processing state. Absent timestamps are
// the zero time.
type Sitemap struct {
	Path           string
	LastSubmitted  time.Time
	LastDownloaded time.Time
	IsIndex        bool
	IsPending      bool
	Errors         int64
	Warnings       int64
	Contents       []SitemapContent
}

// RichResultIssue is one problem Google found with a detected rich result.
type RichResultIssue struct {
	Severity string
	Message  string
}

// RichResult is one rich result type detected on an inspected page.
type RichResult struct {
	Type   string
	Items  []string
	Issues []RichResultIssue
}

// Inspection is the indexing state of a single URL.
type Inspection struct {
	Link            string
	Verdict         string
	CoverageState   string
	IndexingState   string
	PageFetchState  string
	RobotsTxtState  string
	CrawledAs       string
	GoogleCanonical string
	UserCanonical   string
	LastCrawlTime   time.Time
	ReferringURLs   []string

	RichResultsVerdict string
	RichResults        []RichResult
}

// API is the Search Console surface the tools are written against. *Client
// implements it; tests substitute fakes.
type API interface {
	analytics.QueryService

	ListSites(ctx context.Context) ([]Property, error)
	GetSite(ctx context.Context, siteURL string) (Property, error)
	ListSitemaps(ctx context.Context, siteURL, sitemapIndex string) ([]Sitemap, error)
	GetSitemap(ctx context.Context, siteURL, feedPath string) (Sitemap, error)
	SubmitSitemap(ctx context.Context, siteURL, feedPath string) error
	DeleteSitemap(ctx context.Context, siteURL, feedPath string) error
	InspectURL(ctx context.Context, siteURL, pageURL string) (Inspection, error)
}
