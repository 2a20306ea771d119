package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"staybook/pkg/model"
)

const PropertiesPath = "/api/properties"

type PropertyClient struct {
	httpClient *HttpClient
}

func NewPropertyClient(httpClient *HttpClient) *PropertyClient {
	return &PropertyClient{httpClient: httpClient}
}

// GetAll lists the catalogue. A non-empty category narrows it to listings
// carrying that label.
func (c *PropertyClient) GetAll(ctx context.Context, category string) ([]model.Property, error) {
	path := PropertiesPath
	if category != "" {
		path += "?" + url.Values{"category": {category}}.Encode()
	}

	var properties []model.Property
	if err := c.get(ctx, path, &properties); err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}
	return properties, nil
}

func (c *PropertyClient) GetByID(ctx context.Context, id int) (*model.Property, error) {
	var property model.Property
	if err := c.get(ctx, PropertiesPath+"/"+strconv.Itoa(id), &property); err != nil {
		return nil, fmt.Errorf("failed to fetch property %d: %w", id, err)
	}
	return &property, nil
}

func (c *PropertyClient) GetReviews(ctx context.Context, id int) (*model.ReviewsResponse, error) {
	var reviews model.ReviewsResponse
	if err := c.get(ctx, PropertiesPath+"/"+strconv.Itoa(id)+"/reviews", &reviews); err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for property %d: %w", id, err)
	}
	return &reviews, nil
}

func (c *PropertyClient) GetQuote(ctx context.Context, id, nights int) (*model.Quote, error) {
	path := fmt.Sprintf("%s/%d/quote?nights=%d", PropertiesPath, id, nights)

	var quote model.Quote
	if err := c.get(ctx, path, &quote); err != nil {
		return nil, fmt.Errorf("failed to fetch quote for property %d: %w", id, err)
	}
	return &quote, nil
}

func (c *PropertyClient) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/api/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (c *PropertyClient) get(ctx context.Context, path string, target any) error {
	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp)
	}
	if err := resp.DecodeJSON(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
