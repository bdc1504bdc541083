package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	// MaxPage is the highest page number the upstream API serves for the
	// paged list endpoints; requests beyond it are refused or clamped.
	MaxPage = 500

	defaultLanguage = "en-US"
)

// Client represents a TMDB API client
type Client struct {
	baseURL     string
	apiKey      string
	bearerToken string
	language    string
	httpClient  *http.Client
	logger      zerolog.Logger
}

// NewClient creates a new TMDB client. Either an API key or a bearer token
// must be supplied; both are attached when both are configured.
func NewClient(baseURL, apiKey, bearerToken, language string, logger zerolog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("tmdb URL is required")
	}
	if apiKey == "" && bearerToken == "" {
		return nil, fmt.Errorf("tmdb API key or bearer token is required")
	}
	if language == "" {
		language = defaultLanguage
	}

	// Ensure baseURL doesn't have trailing slash
	if baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}

	client := &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		bearerToken: bearerToken,
		language:    language,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	// Test the connection
	if err := client.TestConnection(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to TMDB: %w", err)
	}

	return client, nil
}

// doRequest performs an HTTP request with authentication
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}
	params.Set("language", c.language)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			StatusMessage string `json:"status_message"`
		}
		_ = json.Unmarshal(body, &errResp)
		if errResp.StatusMessage == "" {
			errResp.StatusMessage = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.StatusMessage,
			Body:       string(body),
		}
	}

	return body, nil
}

// TestConnection tests the connection and credentials against TMDB
func (c *Client) TestConnection(ctx context.Context) error {
	// /configuration is cheap and requires valid credentials
	_, err := c.doRequest(ctx, "/configuration", nil)
	return err
}

// GetPopular retrieves one page of the popular movies list
func (c *Client) GetPopular(ctx context.Context, page int) (*MovieList, error) {
	return c.getList(ctx, "/movie/popular", page)
}

// GetUpcoming retrieves one page of the upcoming movies list
func (c *Client) GetUpcoming(ctx context.Context, page int) (*MovieList, error) {
	return c.getList(ctx, "/movie/upcoming", page)
}

// GetNowPlaying retrieves one page of the now-playing stream. The stream is
// served by the top_rated endpoint upstream; kept as-is for compatibility
// with the deployed catalog wiring.
func (c *Client) GetNowPlaying(ctx context.Context, page int) (*MovieList, error) {
	return c.getList(ctx, "/movie/top_rated", page)
}

// getList fetches a paged list endpoint. Pages are 1-indexed and clamped to
// the documented upstream maximum.
func (c *Client) getList(ctx context.Context, endpoint string, page int) (*MovieList, error) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s page %d: %w", endpoint, page, err)
	}

	var list MovieList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("page", page).
		Int("count", len(list.Results)).
		Msg("Retrieved movie list page from TMDB")

	return &list, nil
}

// GetMovie retrieves the detail record for a single title
func (c *Client) GetMovie(ctx context.Context, id string) (*MovieDetails, error) {
	if id == "" {
		return nil, fmt.Errorf("movie id is required")
	}

	body, err := c.doRequest(ctx, "/movie/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %s: %w", id, err)
	}

	var details MovieDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &details, nil
}
