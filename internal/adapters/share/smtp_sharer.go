package share

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/mikey/ceknomor/internal/core"
	"go.uber.org/zap"
)

// SMTPConfig holds the relay used to share scan results
type SMTPConfig struct {
	Address  string
	Username string
	Password string
	From     string
	To       []string
	Timeout  time.Duration
}

// SMTPSharer shares scan results as a mail sent through an SMTP relay
type SMTPSharer struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

// NewSMTPSharer creates a new SMTP sharer
func NewSMTPSharer(cfg SMTPConfig, logger *zap.Logger) *SMTPSharer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &SMTPSharer{
		cfg:    cfg,
		logger: logger,
	}
}

// Share sends req to the configured recipients
func (s *SMTPSharer) Share(ctx context.Context, req core.ShareRequest) error {
	if len(s.cfg.To) == 0 {
		return fmt.Errorf("%w: no recipients configured", core.ErrShareUnavailable)
	}

	dialer := &net.Dialer{Timeout: s.cfg.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP relay: %w", err)
	}

	deadline := time.Now().Add(3 * s.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set connection deadline: %w", err)
	}

	c := smtp.NewClient(conn)
	defer c.Close()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	if err := c.Hello(hostname); err != nil {
		return fmt.Errorf("EHLO failed: %w", err)
	}

	if s.cfg.Username != "" {
		if err := c.Auth(sasl.NewPlainClient("", s.cfg.Username, s.cfg.Password)); err != nil {
			return fmt.Errorf("AUTH failed: %w", err)
		}
	}

	if err := c.Mail(s.cfg.From, nil); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}

	recipientOK := false
	for _, recipient := range s.cfg.To {
		if err := c.Rcpt(recipient, nil); err != nil {
			s.logger.Warn("RCPT TO failed for recipient",
				zap.String("recipient", recipient),
				zap.Error(err))
			continue
		}
		recipientOK = true
	}
	if !recipientOK {
		return fmt.Errorf("all recipients were rejected")
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA command failed: %w", err)
	}
	if _, err := wc.Write(s.message(req)); err != nil {
		wc.Close()
		return fmt.Errorf("failed to send share message: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	if err := c.Quit(); err != nil {
		// the message has already been accepted
		s.logger.Warn("QUIT command failed", zap.Error(err))
	}

	s.logger.Debug("Share message sent",
		zap.String("relay", s.cfg.Address),
		zap.Strings("recipients", s.cfg.To))
	return nil
}

func (s *SMTPSharer) message(req core.ShareRequest) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(s.cfg.To, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", req.Title))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	buf.WriteString("\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n%s\r\n", req.Text, req.URL)

	return buf.Bytes()
}
