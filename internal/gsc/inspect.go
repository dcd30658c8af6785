package gsc

import (
	"context"

	"go.uber.org/zap"
	searchconsole "google.golang.org/api/searchconsole/v1"
)

// InspectURL runs a URL inspection for pageURL within the given property.
func (c *Client) InspectURL(ctx context.Context, siteURL, pageURL string) (Inspection, error) {
	c.log.Debug("url inspection", zap.String("site", siteURL), zap.String("url", pageURL))

	resp, err := c.svc.UrlInspection.Index.Inspect(&searchconsole.InspectUrlIndexRequest{
		SiteUrl:       siteURL,
		InspectionUrl: pageURL,
	}).Context(ctx).Do()
	if err != nil {
		return Inspection{}, apiError("inspect url", err)
	}
	if resp.InspectionResult == nil {
		return Inspection{}, ErrNoInspection
	}
	return inspectionFromAPI(resp.InspectionResult), nil
}

func inspectionFromAPI(r *searchconsole.UrlInspectionResult) Inspection {
	insp := Inspection{Link: r.InspectionResultLink}

	if idx := r.IndexStatusResult; idx != nil {
		insp.Verdict = idx.Verdict
		insp.CoverageState = idx.CoverageState
		insp.IndexingState = idx.IndexingState
		insp.PageFetchState = idx.PageFetchState
		insp.RobotsTxtState = idx.RobotsTxtState
		insp.CrawledAs = idx.CrawledAs
		insp.GoogleCanonical = idx.GoogleCanonical
		insp.UserCanonical = idx.UserCanonical
		insp.LastCrawlTime = parseTimestamp(idx.LastCrawlTime)
		insp.ReferringURLs = idx.ReferringUrls
	}

	if rich := r.RichResultsResult; rich != nil {
		insp.RichResultsVerdict = rich.Verdict
		for _, item := range rich.DetectedItems {
			rr := RichResult{Type: item.RichResultType}
			for _, it := range item.Items {
				if it.Name != "" {
					rr.Items = append(rr.Items, it.Name)
				}
				for _, issue := range it.Issues {
					rr.Issues = append(rr.Issues, RichResultIssue{
						Severity: issue.Severity,
						Message:  issue.IssueMessage,
					})
				}
			}
			insp.RichResults = append(insp.RichResults, rr)
		}
	}

	return insp
}
