package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// Sender delivers a message to a customer over an out-of-band channel.
type Sender interface {
	Send(ctx context.Context, recipient, message string) error
}

type smsSender struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   *zap.Logger
}

// NewSMSSender reads the gateway endpoint and key from SMS_GATEWAY_URL and
// SMS_API_KEY. Without them it degrades to log-only delivery, which keeps
// local environments working.
func NewSMSSender(logger *zap.Logger) Sender {
	return &smsSender{
		endpoint: os.Getenv("SMS_GATEWAY_URL"),
		apiKey:   os.Getenv("SMS_API_KEY"),
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

func (s *smsSender) Send(ctx context.Context, recipient, message string) error {
	if s.endpoint == "" {
		s.logger.Info("sms gateway not configured, message logged only",
			zap.String("recipient", recipient),
			zap.String("message", message))
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"to":      recipient,
		"message": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}

type pushSender struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   *zap.Logger
}

// NewPushSender reads PUSH_GATEWAY_URL and PUSH_API_KEY, with the same
// log-only fallback as the SMS sender.
func NewPushSender(logger *zap.Logger) Sender {
	return &pushSender{
		endpoint: os.Getenv("PUSH_GATEWAY_URL"),
		apiKey:   os.Getenv("PUSH_API_KEY"),
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

func (s *pushSender) Send(ctx context.Context, recipient, message string) error {
	if s.endpoint == "" {
		s.logger.Info("push gateway not configured, message logged only",
			zap.String("recipient", recipient),
			zap.String("message", message))
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"device_token": recipient,
		"body":         message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("push gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}
	return nil
}
