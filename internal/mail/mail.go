// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mail delivers contact-form submissions through an HTTP email
// provider (Resend-compatible POST /emails API). The provider is a black
// box: it either accepts the message or returns an error, and this layer
// never retries.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Message is one outbound email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	ReplyTo string   `json:"reply_to,omitempty"`
	HTML    string   `json:"html"`
}

// Sender is the email-delivery collaborator interface. Handlers depend on
// this so tests can substitute a mock.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds the provider credentials and endpoint.
type Config struct {
	APIKey  string
	BaseURL string
}

// Client sends mail through the HTTP provider API.
type Client struct {
	config Config
	client *http.Client
}

// New creates a mail client for the configured provider.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.resend.com"
	}
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts the message to the provider. Any non-2xx response is an error;
// the caller decides how to surface it.
func (c *Client) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("mail marshal: %w", err)
	}

	url := c.config.BaseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("mail request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mail provider error (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
