package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ContactMessage is a validated contact-form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactService relays contact-form submissions through a third-party
// email API. With no credentials configured the send is simulated after a
// fixed delay and reported as success, so demos work unconfigured.
type ContactService struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	Endpoint   string
	HTTP       *http.Client

	// SimulateDelay is the artificial latency of a simulated send.
	SimulateDelay time.Duration
}

func NewContactService(serviceID, templateID, publicKey string) *ContactService {
	return &ContactService{
		ServiceID:     serviceID,
		TemplateID:    templateID,
		PublicKey:     publicKey,
		Endpoint:      "https://api.emailjs.com/api/v1.0/email/send",
		HTTP:          &http.Client{Timeout: 10 * time.Second},
		SimulateDelay: 800 * time.Millisecond,
	}
}

func (s *ContactService) configured() bool {
	return s.ServiceID != "" && s.TemplateID != "" && s.PublicKey != ""
}

// Send relays the message, or simulates success when the relay is not
// configured.
func (s *ContactService) Send(ctx context.Context, m ContactMessage) error {
	if !s.configured() {
		select {
		case <-time.After(s.SimulateDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	}

	payload, err := json.Marshal(map[string]any{
		"service_id":  s.ServiceID,
		"template_id": s.TemplateID,
		"user_id":     s.PublicKey,
		"template_params": map[string]string{
			"from_name":  m.Name,
			"from_email": m.Email,
			"phone":      m.Phone,
			"message":    m.Message,
		},
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email relay: unexpected status %d", resp.StatusCode)
	}
	return nil
}
