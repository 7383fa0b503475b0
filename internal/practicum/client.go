package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"homework_bot/internal/config"
	"homework_bot/internal/logger"
)

// StatusCodeError возвращается, когда API ответил не 200.
type StatusCodeError struct {
	Code int
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

type Client struct {
	endpoint string
	auth     string
	http     *http.Client
	log      zerolog.Logger
}

func New(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		auth:     cfg.AuthHeader(),
		http:     &http.Client{Timeout: cfg.HTTPTimeout},
		log:      log,
	}
}

// Fetch запрашивает статусы работ начиная с since (Unix, секунды) и
// возвращает декодированный JSON как есть.
func (c *Client) Fetch(ctx context.Context, since int64) (any, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(since, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.auth)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request homework statuses: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusCodeError{Code: resp.StatusCode}
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.log.Info().
		Int64("from_date", since).
		Dur("took", logger.Since(start)).
		Msg("Запрос отправлен к основному API")
	return body, nil
}
