package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/garyellow/winston-hrbot-go/internal/logger"
	"github.com/garyellow/winston-hrbot-go/internal/metrics"
)

// Fetcher retrieves a named content object.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Load builds a Catalog by fetching every content object concurrently and
// falling back to base for objects the store does not have. Any other fetch
// or decode error fails the whole load so a bad bucket never half-applies.
// m may be nil.
func Load(ctx context.Context, store Fetcher, base *Catalog, log *logger.Logger, m *metrics.Metrics) (*Catalog, error) {
	next := &Catalog{
		jokes:      base.jokes,
		menus:      base.menus,
		activities: base.activities,
	}

	var jokes, activities []string
	var menus map[string]string

	g, gctx := errgroup.WithContext(ctx)
	for name, dst := range map[string]any{
		JokesFile:    &jokes,
		MenusFile:    &menus,
		WellnessFile: &activities,
	} {
		g.Go(func() error {
			data, err := store.Fetch(gctx, name)
			if errors.Is(err, ErrNotFound) {
				log.InfoContext(gctx, "Content object not in store, keeping default", "object", name)
				record(m, "embedded")
				return nil
			}
			if err != nil {
				return err
			}
			if err := json.Unmarshal(data, dst); err != nil {
				return fmt.Errorf("content: decode %s: %w", name, err)
			}
			log.InfoContext(gctx, "Loaded content object", "object", name, "bytes", len(data))
			record(m, "bucket")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if jokes != nil {
		next.jokes = jokes
	}
	if menus != nil {
		next.menus = menus
	}
	if activities != nil {
		next.activities = activities
	}
	if err := next.validate(); err != nil {
		return nil, err
	}
	return next, nil
}

func record(m *metrics.Metrics, source string) {
	if m != nil {
		m.RecordContentObject(source)
	}
}
