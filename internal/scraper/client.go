package scraper

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrNotFound means the page does not exist; retrying will not help.
var ErrNotFound = errors.New("page not found")

const (
	DefaultBaseURL = "https://j-archive.com"
	defaultDelay   = 1500 * time.Millisecond
	defaultBackoff = 2 * time.Second
	maxAttempts    = 3
)

// Client fetches J-Archive pages politely: one request at a time, a fixed
// delay between requests, and a bounded retry with doubling backoff on
// server and network errors.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	delay      time.Duration
	backoff    time.Duration
	lastFetch  time.Time
}

func NewClient(baseURL string, delay time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if delay <= 0 {
		delay = defaultDelay
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		userAgent:  "trivia-loader/1.0 (study tool; contact in repo)",
		delay:      delay,
		backoff:    defaultBackoff,
	}
}

func (c *Client) FetchGame(gameID int) ([]byte, error) {
	return c.fetch(fmt.Sprintf("%s/showgame.php?game_id=%d", c.baseURL, gameID))
}

func (c *Client) FetchSeason(seasonID string) ([]byte, error) {
	return c.fetch(fmt.Sprintf("%s/showseason.php?season=%s", c.baseURL, seasonID))
}

func (c *Client) FetchSeasonList() ([]byte, error) {
	return c.fetch(c.baseURL + "/listseasons.php")
}

func (c *Client) fetch(url string) ([]byte, error) {
	if wait := c.delay - time.Since(c.lastFetch); wait > 0 {
		time.Sleep(wait)
	}

	var lastErr error
	backoff := c.backoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, err := c.fetchOnce(url)
		c.lastFetch = time.Now()
		if err == nil {
			return body, nil
		}
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		lastErr = err

		if attempt < maxAttempts {
			slog.Warn("fetch failed, retrying", "url", url, "attempt", attempt, "err", err)
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return nil, fmt.Errorf("giving up on %s after %d attempts: %w", url, maxAttempts, lastErr)
}

func (c *Client) fetchOnce(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
