package driving

import (
	"context"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// RecordActionService provides actions on a single organization.
// This is used by the TUI detail view and the CLI.
type RecordActionService interface {
	// CopyContact copies the organization's contact text to the system clipboard.
	CopyContact(ctx context.Context, org *domain.Organization) error

	// OpenSource opens the organization's source URL in the default browser.
	OpenSource(ctx context.Context, org *domain.Organization) error
}
