package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/core/ports/driven"
	"github.com/custodia-labs/reliefdir/internal/core/ports/driving"
)

// Ensure RecordActionService implements the interface.
var _ driving.RecordActionService = (*RecordActionService)(nil)

// RecordActionService provides desktop actions on an organization.
type RecordActionService struct {
	clipboard driven.Clipboard
	opener    driven.URLOpener
}

// NewRecordActionService creates a new record action service.
func NewRecordActionService(clipboard driven.Clipboard, opener driven.URLOpener) *RecordActionService {
	return &RecordActionService{
		clipboard: clipboard,
		opener:    opener,
	}
}

// CopyContact copies the organization's contact text to the clipboard.
func (s *RecordActionService) CopyContact(ctx context.Context, org *domain.Organization) error {
	if org == nil {
		return fmt.Errorf("organization is nil: %w", domain.ErrInvalidInput)
	}
	if s.clipboard == nil {
		return fmt.Errorf("clipboard unavailable")
	}
	if strings.TrimSpace(org.Contact) == "" {
		return fmt.Errorf("no contact for %s: %w", org.Name, domain.ErrInvalidInput)
	}
	return s.clipboard.Copy(ctx, org.Contact)
}

// OpenSource opens the organization's source URL. Only http and https
// URLs are opened.
func (s *RecordActionService) OpenSource(ctx context.Context, org *domain.Organization) error {
	if org == nil {
		return fmt.Errorf("organization is nil: %w", domain.ErrInvalidInput)
	}
	if s.opener == nil {
		return fmt.Errorf("url opener unavailable")
	}

	target, err := webURL(org.Source)
	if err != nil {
		return err
	}
	return s.opener.Open(ctx, target)
}

// webURL validates that raw is an absolute http(s) URL.
func webURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("no source url: %w", domain.ErrInvalidInput)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse source url: %w", domain.ErrInvalidInput)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("source %q is not a web url: %w", raw, domain.ErrInvalidInput)
	}
	return u.String(), nil
}
