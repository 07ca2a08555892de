package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/core/ports/driving"
	"github.com/custodia-labs/reliefdir/internal/logger"
)

// Ensure ViewEngine implements the interface.
var _ driving.ViewEngine = (*ViewEngine)(nil)

// ViewEngine turns a ViewState into a renderable Snapshot.
type ViewEngine struct {
	directory driving.DirectoryService
	link      domain.ExternalLink
}

// NewViewEngine creates a view engine backed by directory.
func NewViewEngine(directory driving.DirectoryService, link domain.ExternalLink) *ViewEngine {
	return &ViewEngine{
		directory: directory,
		link:      link,
	}
}

// Snapshot derives facets, the filtered list, the summary and the open record.
func (e *ViewEngine) Snapshot(ctx context.Context, state domain.ViewState) (*domain.Snapshot, error) {
	if e.directory == nil {
		return nil, errors.New("directory service unavailable")
	}
	logger.Section("Snapshot")

	var (
		facets  domain.Facets
		result  *domain.FilterResult
		summary domain.Summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if facets, err = e.directory.Facets(gctx); err != nil {
			return fmt.Errorf("facets: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if result, err = e.directory.Filter(gctx, state.Selection); err != nil {
			return fmt.Errorf("filter: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if summary, err = e.directory.Summary(gctx); err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{
		State:   state,
		Facets:  facets,
		Result:  result,
		Summary: summary,
		Link:    e.link,
	}

	if state.Detail.IsOpen() {
		org, err := e.directory.Get(ctx, state.Detail.RecordID())
		switch {
		case err == nil:
			snap.Detail = org
		case errors.Is(err, domain.ErrNotFound):
			logger.Warn("Detail refers to unknown organization %q", state.Detail.RecordID())
		default:
			return nil, fmt.Errorf("detail: %w", err)
		}
	}

	return snap, nil
}
