// Package dataset picks the loader for a configured dataset file.
package dataset
