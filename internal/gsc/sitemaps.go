package gsc

import (
	"context"

	"go.uber.org/zap"
	searchconsole "google.golang.org/api/searchconsole/v1"
)

// ListSitemaps lists a property's submitted sitemaps. A non-empty
// sitemapIndex restricts the listing to that index's children.
func (c *Client) ListSitemaps(ctx context.Context, siteURL, sitemapIndex string) ([]Sitemap, error) {
	call := c.svc.Sitemaps.List(siteURL)
	if sitemapIndex != "" {
		call = call.SitemapIndex(sitemapIndex)
	}
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, apiError("list sitemaps", err)
	}

	maps := make([]Sitemap, 0, len(resp.Sitemap))
	for _, s := range resp.Sitemap {
		maps = append(maps, sitemapFromAPI(s))
	}
	return maps, nil
}

// GetSitemap fetches one sitemap's processing state.
func (c *Client) GetSitemap(ctx context.Context, siteURL, feedPath string) (Sitemap, error) {
	s, err := c.svc.Sitemaps.Get(siteURL, feedPath).Context(ctx).Do()
	if err != nil {
		return Sitemap{}, apiError("get sitemap", err)
	}
	return sitemapFromAPI(s), nil
}

// SubmitSitemap submits a new sitemap or resubmits an existing one.
func (c *Client) SubmitSitemap(ctx context.Context, siteURL, feedPath string) error {
	if err := c.svc.Sitemaps.Submit(siteURL, feedPath).Context(ctx).Do(); err != nil {
		return apiError("submit sitemap", err)
	}
	c.log.Info("sitemap submitted", zap.String("site", siteURL), zap.String("sitemap", feedPath))
	return nil
}

// DeleteSitemap unsubmits a sitemap. URLs already indexed stay in the
// index; only the Search Console submission goes away.
func (c *Client) DeleteSitemap(ctx context.Context, siteURL, feedPath string) error {
	if err := c.svc.Sitemaps.Delete(siteURL, feedPath).Context(ctx).Do(); err != nil {
		return apiError("delete sitemap", err)
	}
	c.log.Info("sitemap deleted", zap.String("site", siteURL), zap.String("sitemap", feedPath))
	return nil
}

func sitemapFromAPI(s *searchconsole.WmxSitemap) Sitemap {
	m := Sitemap{
		Path:           s.Path,
		LastSubmitted:  parseTimestamp(s.LastSubmitted),
		LastDownloaded: parseTimestamp(s.LastDownloaded),
		IsIndex:        s.IsSitemapsIndex,
		IsPending:      s.IsPending,
		Errors:         s.Errors,
		Warnings:       s.Warnings,
	}
	for _, content := range s.Contents {
		m.Contents = append(m.Contents, SitemapContent{
			Type:      content.Type,
			Submitted: content.Submitted,
			Indexed:   content.Indexed,
		})
	}
	return m
}
