package driving

import "context"

// BundleService converts a dataset into a read-only SQLite bundle.
type BundleService interface {
	// Bundle reads the dataset at src and writes it to the bundle at dst,
	// replacing its contents. It returns the number of organizations written.
	Bundle(ctx context.Context, src, dst string) (int, error)
}
