package upstream

import (
	"context"
	"net/url"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// CompanyByName resolves a store by its public store name.
func (c *Client) CompanyByName(ctx context.Context, storeName string) (*models.Company, error) {
	env, err := c.get(ctx, "/in_online/companybyname", url.Values{"storename": {storeName}})
	if err != nil {
		return nil, err
	}
	var companies []models.Company
	if err := decodeData(env, "/in_online/companybyname", &companies); err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, &Error{Status: 404, Path: "/in_online/companybyname", Message: "store not found"}
	}
	return &companies[0], nil
}

// SearchCompanies finds stores whose name matches the given term.
func (c *Client) SearchCompanies(ctx context.Context, term string) ([]models.Company, error) {
	env, err := c.get(ctx, "/in_online/companies", url.Values{"searchTerms": {term}})
	if err != nil {
		return nil, err
	}
	var companies []models.Company
	if err := decodeData(env, "/in_online/companies", &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// Families returns the flat category list for a store. Tree assembly is the
// caller's concern.
func (c *Client) Families(ctx context.Context, companyID string) ([]models.Family, error) {
	env, err := c.get(ctx, "/in_online/families", url.Values{"cmp_id": {companyID}})
	if err != nil {
		return nil, err
	}
	var families []models.Family
	if err := decodeData(env, "/in_online/families", &families); err != nil {
		return nil, err
	}
	return families, nil
}

// Brands returns the brand list used for storefront filtering.
func (c *Client) Brands(ctx context.Context, companyID string) ([]models.Brand, error) {
	env, err := c.get(ctx, "/in_online/brands", url.Values{"cmp_id": {companyID}})
	if err != nil {
		return nil, err
	}
	var brands []models.Brand
	if err := decodeData(env, "/in_online/brands", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// TopSales returns the store's best sellers, optionally narrowed by brand
// ids and a search term.
func (c *Client) TopSales(ctx context.Context, companyID string, brands []string, search string) ([]models.Item, error) {
	q := url.Values{"cmp_id": {companyID}, "br_name": {brandFilter(brands)}, "searchTerms": {search}}
	env, err := c.get(ctx, "/in_online/topSales", q)
	if err != nil {
		return nil, err
	}
	var items []models.Item
	if err := decodeData(env, "/in_online/topSales", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Top10ByFamily returns up to ten items per family, the feed behind the
// storefront home sections.
func (c *Client) Top10ByFamily(ctx context.Context, companyID string, brands []string, search string) ([]models.Item, error) {
	q := url.Values{"cmp_id": {companyID}, "br_name": {brandFilter(brands)}, "searchTerms": {search}}
	env, err := c.get(ctx, "/in_online/top10itemsbyfamily", q)
	if err != nil {
		return nil, err
	}
	var items []models.Item
	if err := decodeData(env, "/in_online/top10itemsbyfamily", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ItemsByFamily returns one page of a family's items plus the total number
// of pages the query spans. The API reports that total in the count field.
func (c *Client) ItemsByFamily(ctx context.Context, companyID, familyName string, brands []string, search string, page, perPage int) ([]models.Item, int, error) {
	q := url.Values{
		"items_per_page": {itoa(perPage)},
		"page_number":    {itoa(page)},
		"cmp_id":         {companyID},
		"br_name":        {brandFilter(brands)},
		"fa_name":        {familyName},
		"searchTerms":    {search},
	}
	env, err := c.get(ctx, "/in_online/onlineitemsByFamily", q)
	if err != nil {
		return nil, 0, err
	}
	var items []models.Item
	if err := decodeData(env, "/in_online/onlineitemsByFamily", &items); err != nil {
		return nil, 0, err
	}
	return items, env.Count, nil
}
