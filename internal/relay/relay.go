// Package relay forwards contact form submissions to a third-party form
// processing endpoint speaking the Web3Forms JSON protocol.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultEndpoint is the public Web3Forms submit URL.
const DefaultEndpoint = "https://api.web3forms.com/submit"

// ErrDeliveryFailure means the relay did not confirm the submission.
var ErrDeliveryFailure = errors.New("contact delivery failed")

// Submission is one contact form entry.
type Submission struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required"`
	Subject string `json:"subject" form:"subject" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

// Receipt identifies a delivered submission.
type Receipt struct {
	ID      string
	Message string
}

// Config configures the relay client.
type Config struct {
	Endpoint  string
	AccessKey string
	Timeout   time.Duration
}

// Client posts submissions to the relay endpoint.
type Client struct {
	endpoint  string
	accessKey string
	client    *http.Client
}

// New creates a relay client. An empty endpoint falls back to
// DefaultEndpoint and a zero timeout to ten seconds.
func New(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		endpoint:  cfg.Endpoint,
		accessKey: cfg.AccessKey,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

type submitRequest struct {
	AccessKey string `json:"access_key"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit sends one submission. It makes exactly one request and never
// retries; any outcome other than a JSON body with success set to true
// is reported as ErrDeliveryFailure.
func (c *Client) Submit(ctx context.Context, s Submission) (Receipt, error) {
	id := uuid.New().String()

	if c.accessKey == "" {
		return Receipt{}, fmt.Errorf("%w: access key not configured", ErrDeliveryFailure)
	}

	body, err := json.Marshal(submitRequest{
		AccessKey: c.accessKey,
		Name:      s.Name,
		Email:     s.Email,
		Subject:   s.Subject,
		Message:   s.Message,
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: marshal request: %v", ErrDeliveryFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: create request: %v", ErrDeliveryFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("relay: submission %s: send: %v", id, err)
		return Receipt{}, fmt.Errorf("%w: send request: %v", ErrDeliveryFailure, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: read response: %v", ErrDeliveryFailure, err)
	}

	var result submitResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		log.Printf("relay: submission %s: status %d, undecodable body", id, resp.StatusCode)
		return Receipt{}, fmt.Errorf("%w: status %d: decode response: %v", ErrDeliveryFailure, resp.StatusCode, err)
	}

	if !result.Success {
		log.Printf("relay: submission %s rejected: %s", id, result.Message)
		if result.Message != "" {
			return Receipt{}, fmt.Errorf("%w: %s", ErrDeliveryFailure, result.Message)
		}
		return Receipt{}, fmt.Errorf("%w: status %d", ErrDeliveryFailure, resp.StatusCode)
	}

	log.Printf("relay: submission %s delivered", id)
	return Receipt{ID: id, Message: result.Message}, nil
}
