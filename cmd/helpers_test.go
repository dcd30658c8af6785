package cmd

import (
	"context"
	"testing"

	"github.com/chris-regnier/gscctl/internal/analytics"
	"github.com/chris-regnier/gscctl/internal/config"
	"github.com/chris-regnier/gscctl/internal/gsc"
)

// stubAPI implements gsc.API for command tests. Analytics rows are keyed by
// "start..end"; queryRows, when set, is returned for any date range.
type stubAPI struct {
	props     []gsc.Property
	rows      map[string][]analytics.MetricRow
	queryRows []analytics.MetricRow
	lastQuery *analytics.QueryRequest
	sitemaps  map[string]gsc.Sitemap
	deleted   []string
}

func (s *stubAPI) Query(ctx context.Context, siteURL string, req *analytics.QueryRequest) ([]analytics.MetricRow, error) {
	s.lastQuery = req
	if s.queryRows != nil {
		return s.queryRows, nil
	}
	return s.rows[req.StartDate+".."+req.EndDate], nil
}

func (s *stubAPI) ListSites(ctx context.Context) ([]gsc.Property, error) {
	return s.props, nil
}

func (s *stubAPI) GetSite(ctx context.Context, siteURL string) (gsc.Property, error) {
	for _, p := range s.props {
		if p.SiteURL == siteURL {
			return p, nil
		}
	}
	return gsc.Property{}, &gsc.APIError{Op: "get site", Code: 404, Message: "not found"}
}

func (s *stubAPI) ListSitemaps(ctx context.Context, siteURL, sitemapIndex string) ([]gsc.Sitemap, error) {
	var maps []gsc.Sitemap
	for _, m := range s.sitemaps {
		maps = append(maps, m)
	}
	return maps, nil
}

func (s *stubAPI) GetSitemap(ctx context.Context, siteURL, feedPath string) (gsc.Sitemap, error) {
	m, ok := s.sitemaps[feedPath]
	if !ok {
		return gsc.Sitemap{}, &gsc.APIError{Op: "get sitemap", Code: 404, Message: "not found"}
	}
	return m, nil
}

func (s *stubAPI) SubmitSitemap(ctx context.Context, siteURL, feedPath string) error {
	return nil
}

func (s *stubAPI) DeleteSitemap(ctx context.Context, siteURL, feedPath string) error {
	if _, ok := s.sitemaps[feedPath]; !ok {
		return &gsc.APIError{Op: "delete sitemap", Code: 404, Message: "not found"}
	}
	s.deleted = append(s.deleted, feedPath)
	return nil
}

func (s *stubAPI) InspectURL(ctx context.Context, siteURL, pageURL string) (gsc.Inspection, error) {
	return gsc.Inspection{}, gsc.ErrNoInspection
}

func setupTestEnv(t *testing.T, stub *stubAPI) {
	t.Helper()
	api = stub
	appConfig = &config.Config{LookbackDays: 28, RowLimit: 1000}
	jsonOutput = false
}
