package driven

import "context"

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// URLOpener opens a URL in the user's default application.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}
