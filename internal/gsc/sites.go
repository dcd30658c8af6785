package gsc

import "context"

// ListSites returns all properties the credentials can see.
func (c *Client) ListSites(ctx context.Context) ([]Property, error) {
	resp, err := c.svc.Sites.List().Context(ctx).Do()
	if err != nil {
		return nil, apiError("list sites", err)
	}

	props := make([]Property, 0, len(resp.SiteEntry))
	for _, s := range resp.SiteEntry {
		props = append(props, Property{
			SiteURL:         s.SiteUrl,
			PermissionLevel: s.PermissionLevel,
		})
	}
	return props, nil
}

// GetSite returns one property. siteURL must be an exact match; domain
// properties use the sc-domain:example.com form.
func (c *Client) GetSite(ctx context.Context, siteURL string) (Property, error) {
	s, err := c.svc.Sites.Get(siteURL).Context(ctx).Do()
	if err != nil {
		return Property{}, apiError("get site", err)
	}
	return Property{SiteURL: s.SiteUrl, PermissionLevel: s.PermissionLevel}, nil
}
