package mcptools

// ListPropertiesInput is the input schema for the list_properties MCP tool.
type ListPropertiesInput struct{}

// SiteDetailsInput is the input schema for the get_site_details MCP tool.
type SiteDetailsInput struct {
	SiteURL string `json:"site_url" jsonschema-description:"Property URL, exact match; domain properties use sc-domain:example.com"`
}

// SearchAnalyticsInput is the input schema for the get_search_analytics MCP tool.
type SearchAnalyticsInput struct {
	SiteURL    string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	Days       int    `json:"days,omitempty" jsonschema-description:"Days to look back (default 28)"`
	Dimensions string `json:"dimensions,omitempty" jsonschema-description:"Comma-separated dimensions: query, page, device, country, date (default query)"`
}

// AdvancedSearchAnalyticsInput is the input schema for the
// get_advanced_search_analytics MCP tool.
type AdvancedSearchAnalyticsInput struct {
	SiteURL    string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	StartDate  string `json:"start_date,omitempty" jsonschema-description:"Start date YYYY-MM-DD (default 28 days ago)"`
	EndDate    string `json:"end_date,omitempty" jsonschema-description:"End date YYYY-MM-DD (default today)"`
	Dimensions string `json:"dimensions,omitempty" jsonschema-description:"Comma-separated dimensions (default query)"`
	SearchType string `json:"search_type,omitempty" jsonschema-description:"WEB, IMAGE, VIDEO, NEWS or DISCOVER (default WEB)"`
	RowLimit   int64  `json:"row_limit,omitempty" jsonschema-description:"Maximum rows to return, capped at 25000 (default 1000)"`
	StartRow   int64  `json:"start_row,omitempty" jsonschema-description:"Starting row for pagination"`

	SortBy        string `json:"sort_by,omitempty" jsonschema-description:"Metric to sort by: clicks, impressions, ctr, position (default clicks)"`
	SortDirection string `json:"sort_direction,omitempty" jsonschema-description:"ascending or descending (default descending)"`

	FilterDimension  string `json:"filter_dimension,omitempty" jsonschema-description:"Dimension to filter on: query, page, country, device"`
	FilterOperator   string `json:"filter_operator,omitempty" jsonschema-description:"contains, equals, notContains or notEquals (default contains)"`
	FilterExpression string `json:"filter_expression,omitempty" jsonschema-description:"Filter expression value"`
}

// ComparePeriodsInput is the input schema for the compare_search_periods MCP tool.
type ComparePeriodsInput struct {
	SiteURL      string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	Period1Start string `json:"period1_start" jsonschema-description:"Start date for period 1 (YYYY-MM-DD)"`
	Period1End   string `json:"period1_end" jsonschema-description:"End date for period 1 (YYYY-MM-DD)"`
	Period2Start string `json:"period2_start" jsonschema-description:"Start date for period 2 (YYYY-MM-DD)"`
	Period2End   string `json:"period2_end" jsonschema-description:"End date for period 2 (YYYY-MM-DD)"`
	Dimensions   string `json:"dimensions,omitempty" jsonschema-description:"Comma-separated dimensions to group by (default query)"`
	Limit        int    `json:"limit,omitempty" jsonschema-description:"Number of top results to show (default 10)"`
}

// PerformanceOverviewInput is the input schema for the
// get_performance_overview MCP tool.
type PerformanceOverviewInput struct {
	SiteURL string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	Days    int    `json:"days,omitempty" jsonschema-description:"Days to look back (default 28)"`
}

// PageQueriesInput is the input schema for the get_search_by_page_query MCP tool.
type PageQueriesInput struct {
	SiteURL string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	PageURL string `json:"page_url" jsonschema-description:"The specific page URL to analyze"`
	Days    int    `json:"days,omitempty" jsonschema-description:"Days to look back (default 28)"`
}

// InspectURLInput is the input schema for the inspect_url MCP tool.
type InspectURLInput struct {
	SiteURL string `json:"site_url" jsonschema-description:"Property URL, exact match; domain properties use sc-domain:example.com"`
	PageURL string `json:"page_url" jsonschema-description:"The specific URL to inspect"`
}

// BatchInspectInput is the input schema for the batch_url_inspection MCP tool.
type BatchInspectInput struct {
	SiteURL string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	URLs    string `json:"urls" jsonschema-description:"URLs to inspect, one per line, at most 10"`
}

// IndexingIssuesInput is the input schema for the check_indexing_issues MCP tool.
type IndexingIssuesInput struct {
	SiteURL string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	URLs    string `json:"urls" jsonschema-description:"URLs to check, one per line, at most 10"`
}

// ListSitemapsInput is the input schema for the list_sitemaps MCP tool.
type ListSitemapsInput struct {
	SiteURL      string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	SitemapIndex string `json:"sitemap_index,omitempty" jsonschema-description:"Optional sitemap index URL to list child sitemaps"`
}

// SitemapDetailsInput is the input schema for the get_sitemap_details MCP tool.
type SitemapDetailsInput struct {
	SiteURL    string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	SitemapURL string `json:"sitemap_url" jsonschema-description:"Full URL of the sitemap"`
}

// SubmitSitemapInput is the input schema for the submit_sitemap MCP tool.
type SubmitSitemapInput struct {
	SiteURL    string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	SitemapURL string `json:"sitemap_url" jsonschema-description:"Full URL of the sitemap to submit"`
}

// DeleteSitemapInput is the input schema for the delete_sitemap MCP tool.
type DeleteSitemapInput struct {
	SiteURL    string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	SitemapURL string `json:"sitemap_url" jsonschema-description:"Full URL of the sitemap to delete"`
}

// ManageSitemapsInput is the input schema for the manage_sitemaps MCP tool.
type ManageSitemapsInput struct {
	SiteURL      string `json:"site_url" jsonschema-description:"Property URL, exact match"`
	Action       string `json:"action" jsonschema-description:"One of: list, details, submit, delete"`
	SitemapURL   string `json:"sitemap_url,omitempty" jsonschema-description:"Sitemap URL (required for details, submit, delete)"`
	SitemapIndex string `json:"sitemap_index,omitempty" jsonschema-description:"Optional sitemap index URL (list only)"`
}

// ReportOutput is the common output format: a rendered plain-text report.
type ReportOutput struct {
	Report string `json:"report"`
}
