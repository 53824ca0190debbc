package jisho

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://jisho.org"
	DefaultTimeout = 10 * time.Second

	searchPath = "/api/v1/search/words"
)

type Client struct {
	client *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// SearchRaw returns the undecoded body of one search result page.
func (c *Client) SearchRaw(ctx context.Context, keyword string, page int) ([]byte, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("keyword", keyword).
		SetQueryParam("page", strconv.Itoa(page)).
		Get(searchPath)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

func (c *Client) Search(ctx context.Context, keyword string, page int) (Response, error) {
	var response Response
	body, err := c.SearchRaw(ctx, keyword, page)
	if err != nil {
		return response, fmt.Errorf("c.SearchRaw > %w", err)
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return response, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return response, nil
}
