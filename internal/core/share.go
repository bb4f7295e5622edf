package core

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"
)

// ShareService shares a scan through the platform, falling back to a link
type ShareService struct {
	sharer    Sharer
	publicURL string
	logger    *zap.Logger
}

// NewShareService creates a share service; sharer may be nil
func NewShareService(sharer Sharer, publicURL string, logger *zap.Logger) *ShareService {
	return &ShareService{
		sharer:    sharer,
		publicURL: publicURL,
		logger:    logger,
	}
}

// Share announces that raw was checked
func (s *ShareService) Share(ctx context.Context, raw string) (*ShareOutcome, error) {
	digits, err := ParsePhoneDigits(raw)
	if err != nil {
		return nil, err
	}

	formatted := FormatForDisplay(string(digits))
	req := ShareRequest{
		Number: formatted,
		Title:  msg(keyShareTitle),
		Text:   msg(keyShareText, formatted),
		URL:    s.linkFor(digits),
	}

	if s.sharer != nil {
		err := s.sharer.Share(ctx, req)
		switch {
		case err == nil:
			s.logger.Info("Shared scan result", zap.String("number", string(digits)))
			return &ShareOutcome{Method: ShareMethodPlatform, Text: req.Text, URL: req.URL}, nil
		case errors.Is(err, ErrShareUnavailable):
			s.logger.Debug("Platform share unavailable, offering link")
		default:
			s.logger.Warn("Platform share failed, offering link", zap.Error(err))
		}
	}

	return &ShareOutcome{
		Method: ShareMethodLink,
		Prompt: msg(keySharePrompt),
		Text:   req.Text,
		URL:    req.URL,
	}, nil
}

func (s *ShareService) linkFor(digits PhoneDigits) string {
	u, err := url.Parse(s.publicURL)
	if err != nil || s.publicURL == "" {
		return s.publicURL
	}
	q := u.Query()
	q.Set("nomor", string(digits))
	u.RawQuery = q.Encode()
	return u.String()
}
