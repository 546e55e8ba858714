package dtone

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the DT One DVS API base URL.
const DefaultBaseURL = "https://dvs-api.dtone.com/v2"

// Client is a minimal HTTP client for the DT One DVS API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	debug      bool
}

// NewClient constructs a new DVS client with sane defaults.
func NewClient(baseURL, apiKey, apiSecret string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		debug:      os.Getenv("ENV") == "development",
	}
}

// GetProducts lists recharge products for a destination country
// (ISO 3166-1 alpha-3), walking every page.
func (c *Client) GetProducts(ctx context.Context, countryISO3 string, perPage int) ([]Product, error) {
	if perPage <= 0 {
		perPage = 100
	}

	var all []Product
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("country_iso_code", countryISO3)
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(perPage))

		var batch []Product
		if err := c.doRequest(ctx, "/products?"+q.Encode(), &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < perPage {
			return all, nil
		}
	}
}

// GetBalances returns the account balances.
func (c *Client) GetBalances(ctx context.Context) ([]Balance, error) {
	var out []Balance
	if err := c.doRequest(ctx, "/balances", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// doRequest performs a GET with basic auth and decodes the JSON
// response into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, result any) error {
	if c.debug {
		log.Debug().
			Str("endpoint", c.baseURL+endpoint).
			Msg("[DTONE] Outgoing request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if c.debug {
		log.Debug().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			RawJSON("response", respBody).
			Msg("[DTONE] Incoming response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr APIError
		if json.Unmarshal(respBody, &apiErr) == nil && len(apiErr.Errors) > 0 {
			return fmt.Errorf("dtone: %s (code %d)", apiErr.Errors[0].Message, apiErr.Errors[0].Code)
		}
		return fmt.Errorf("dtone: unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
