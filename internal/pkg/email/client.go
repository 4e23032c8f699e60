package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config holds SendGrid configuration
type Config struct {
	APIKey      string
	FromEmail   string
	FromName    string
	FrontendURL string // footer link target, defaults to the production site
}

// Client sends emails via the SendGrid API
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new SendGrid email client
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Message represents an email to send
type Message struct {
	To          string
	ToName      string
	Subject     string
	HTMLContent string
	TextContent string
}

// sendGridRequest represents the SendGrid API request
type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridEmail             `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

type sendGridPersonalization struct {
	To []sendGridEmail `json:"to"`
}

type sendGridEmail struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send sends an email via SendGrid
func (c *Client) Send(ctx context.Context, msg *Message) error {
	request := sendGridRequest{
		Personalizations: []sendGridPersonalization{
			{
				To: []sendGridEmail{
					{Email: msg.To, Name: msg.ToName},
				},
			},
		},
		From: sendGridEmail{
			Email: c.config.FromEmail,
			Name:  c.config.FromName,
		},
		Subject: msg.Subject,
		Content: []sendGridContent{},
	}

	// HTML content first (preferred)
	if msg.HTMLContent != "" {
		request.Content = append(request.Content, sendGridContent{
			Type:  "text/html",
			Value: msg.HTMLContent,
		})
	}

	// Plain text as fallback
	if msg.TextContent != "" {
		request.Content = append(request.Content, sendGridContent{
			Type:  "text/plain",
			Value: msg.TextContent,
		})
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.sendgrid.com/v3/mail/send", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	return nil
}
