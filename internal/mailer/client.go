package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client sends transactional email through the notification API. Failures
// are reported to the caller; every workflow treats email as best-effort and
// never rolls back state because a send failed.
type Client struct {
	baseURL    string
	apiKey     string
	adminEmail string
	httpClient *http.Client
}

type sendNotificationIn struct {
	DeploymentToken string `json:"deployment_token"`
	Subject         string `json:"subject"`
	Body            string `json:"body"`
	IsHTML          bool   `json:"is_html"`
	RecipientEmail  string `json:"recipient_email"`
	SenderEmail     string `json:"sender_email"`
	SenderAlias     string `json:"sender_alias"`
}

type sendNotificationOut struct {
	Success              bool   `json:"success"`
	NotificationDisabled bool   `json:"notification_disabled"`
	Message              string `json:"message"`
}

func NewClient(baseURL, apiKey, adminEmail string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		adminEmail: adminEmail,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// AdminEmail is the review-team inbox for operational alerts.
func (c *Client) AdminEmail() string {
	return c.adminEmail
}

// Send delivers one HTML email. A recipient who has disabled notifications
// is treated as a successful send.
func (c *Client) Send(ctx context.Context, recipient, subject, body string) error {
	reqBody := sendNotificationIn{
		DeploymentToken: c.apiKey,
		Subject:         subject,
		Body:            body,
		IsHTML:          true,
		RecipientEmail:  recipient,
		SenderEmail:     "noreply@listinglift.app",
		SenderAlias:     "Listing Lift",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/api/sendNotificationEmail"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var result sendNotificationOut
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("failed to decode response: %w, body: %s", err, string(respBody))
	}

	if !result.Success {
		if result.NotificationDisabled {
			log.Info().Str("recipient", recipient).Msg("notification disabled by user, skipping email")
			return nil
		}
		if result.Message != "" {
			return fmt.Errorf("failed to send notification: %s", result.Message)
		}
		return fmt.Errorf("failed to send notification: status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin delivers an alert to the review-team inbox.
func (c *Client) SendToAdmin(ctx context.Context, subject, body string) error {
	if c.adminEmail == "" {
		log.Warn().Msg("no admin email configured, skipping alert")
		return nil
	}
	return c.Send(ctx, c.adminEmail, subject, body)
}
