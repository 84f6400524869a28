package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the EmailJS REST endpoint.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Payload is what the mail template receives.
type Payload struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	ToEmail   string `json:"to_email"`
}

// NewPayload builds the template parameters for a form addressed to to.
func NewPayload(f Form, to string) Payload {
	f = f.Trimmed()
	return Payload{
		FromName:  f.Name,
		FromEmail: f.Email,
		Subject:   f.Subject,
		Message:   f.Message,
		ToEmail:   to,
	}
}

// Sender delivers a payload.
type Sender interface {
	Send(ctx context.Context, p Payload) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, p Payload) error

func (fn SenderFunc) Send(ctx context.Context, p Payload) error { return fn(ctx, p) }

// EmailJS sends through the EmailJS REST API.
type EmailJS struct {
	Endpoint   string // DefaultEndpoint when empty
	ServiceID  string
	TemplateID string
	PublicKey  string
	Client     *http.Client
}

type emailJSRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	TemplateParams Payload `json:"template_params"`
}

// Configured reports whether the credentials needed to send are present.
func (e *EmailJS) Configured() bool {
	return e.ServiceID != "" && e.TemplateID != "" && e.PublicKey != ""
}

func (e *EmailJS) Send(ctx context.Context, p Payload) error {
	if !e.Configured() {
		return fmt.Errorf("emailjs: service id, template id and public key are required")
	}
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      e.ServiceID,
		TemplateID:     e.TemplateID,
		UserID:         e.PublicKey,
		TemplateParams: p,
	})
	if err != nil {
		return fmt.Errorf("emailjs: encoding request: %w", err)
	}

	endpoint := e.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("emailjs: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := e.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs: %s: %s", resp.Status, bytes.TrimSpace(msg))
	}
	return nil
}
