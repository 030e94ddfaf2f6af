package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
)

const maxErrorBody = 4 << 10

// Client talks to the society's membership API. The request timeout is set
// here, at the transport boundary; callers above never add their own.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
	notFound error,
) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s, ok := domain.SessionFromContext(ctx); ok && s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrTransient, method, path, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	return nil, statusError(resp, notFound)
}

func statusError(resp *http.Response, notFound error) error {
	msg := resp.Status
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		if eb.Error != "" {
			msg = eb.Error
		} else if eb.Message != "" {
			msg = eb.Message
		}
	}

	var kind error
	switch resp.StatusCode {
	case http.StatusNotFound:
		kind = notFound
	case http.StatusConflict:
		kind = domain.ErrAlreadyAttended
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = domain.ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = domain.ErrUnauthorized
	default:
		kind = domain.ErrTransient
	}

	return fmt.Errorf("%w: %s", kind, msg)
}

func decode[T any](resp *http.Response) (T, error) {
	defer resp.Body.Close()

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, fmt.Errorf("%w: empty response body", domain.ErrTransient)
		}
		return v, fmt.Errorf("%w: decode response: %w", domain.ErrTransient, err)
	}
	return v, nil
}
