// Package dashboard composes the role dashboards. Each dashboard is a list of
// panels fetched concurrently; a panel that fails carries its own inline
// error and never takes its siblings down.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/apperr"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Variant string

const (
	Community Variant = "community"
	Clinician Variant = "clinician"
	Admin     Variant = "admin"
)

// Panel is one section of a dashboard.
type Panel struct {
	Name  string      `json:"name"`
	OK    bool        `json:"ok"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

type Dashboard struct {
	Variant     Variant   `json:"variant"`
	GeneratedAt time.Time `json:"generated_at"`
	Panels      []Panel   `json:"panels"`
}

// Panel returns the named panel, or false.
func (d *Dashboard) Panel(name string) (Panel, bool) {
	for _, p := range d.Panels {
		if p.Name == name {
			return p, true
		}
	}
	return Panel{}, false
}

// Params are the user-adjustable inputs of a dashboard.
type Params struct {
	Search   string // outbreak and clinic search
	Disease  string // prediction disease
	Location string // risk and tips location
}

type fetchFunc func(ctx context.Context, actor access.Actor, p Params) (interface{}, error)

type panelSpec struct {
	name  string
	fetch fetchFunc
}

type Composer struct {
	variants map[Variant][]panelSpec
	logger   *zap.Logger
}

// New builds a composer over src with the standard panel sets.
func New(src Sources, logger *zap.Logger) *Composer {
	return &Composer{
		variants: src.variants(),
		logger:   logger.Named("dashboard"),
	}
}

// Compose fetches every panel of v concurrently, all started at once. Each fetch is bound to ctx:
// once the request is gone, in-flight fetches are cancelled and the
// dashboard is discarded.
func (c *Composer) Compose(ctx context.Context, v Variant, actor access.Actor, p Params) (*Dashboard, error) {
	specs, ok := c.variants[v]
	if !ok {
		return nil, fmt.Errorf("unknown dashboard %q", v)
	}

	panels := make([]Panel, len(specs))
	g, gctx := errgroup.WithContext(ctx)

	for i, spec := range specs {
		g.Go(func() error {
			data, err := spec.fetch(gctx, actor, p)
			if err != nil {
				c.logger.Warn("panel failed",
					zap.String("dashboard", string(v)),
					zap.String("panel", spec.name),
					zap.Error(err),
				)
				panels[i] = Panel{Name: spec.name, Error: apperr.Message(err)}
				return nil
			}
			panels[i] = Panel{Name: spec.name, OK: true, Data: data}
			return nil
		})
	}
	_ = g.Wait() // panels never return errors

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Dashboard{Variant: v, GeneratedAt: time.Now().UTC(), Panels: panels}, nil
}
