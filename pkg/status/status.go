// Package status resolves status handles ("ready", "wip") into the
// descriptive records of the catalog's status taxonomy, including the
// aggregate mixed record used when an entity carries several distinct
// statuses at once.
package status

import (
	clone "github.com/huandu/go-clone"
	"github.com/rs/zerolog"

	"github.com/atelier-tools/vitrine/pkg/logging"
)

// Option is one status record of the taxonomy.
type Option struct {
	// Handle is the short identifier components reference
	Handle string

	// Label is the human-readable status name
	Label string

	// Color is the display color used by listings
	Color string

	// Description explains what the status means
	Description string

	// Statuses carries the resolved records a mixed result summarizes,
	// in input order. Empty on plain records.
	Statuses []*Option
}

// Taxonomy is the full status configuration of a catalog.
type Taxonomy struct {
	// Default is the handle unknown statuses fall back to
	Default string

	// Mixed is the aggregate record returned for entities whose
	// variants carry several distinct statuses
	Mixed *Option

	// Options maps handles to their records
	Options map[string]*Option
}

// Registry resolves status handles against a taxonomy.
type Registry struct {
	taxonomy Taxonomy
	logger   zerolog.Logger
}

// NewRegistry creates a registry for the given taxonomy.
func NewRegistry(taxonomy Taxonomy) *Registry {
	return &Registry{
		taxonomy: taxonomy,
		logger:   logging.GetLogger("status.registry"),
	}
}

// Info resolves zero or more status handles into a record.
//
// With no handles, or only empty ones, it returns nil. A single handle
// is looked up in the taxonomy; an unknown handle logs a warning and
// falls back to the default option rather than failing the caller. The
// mixed handle returns the mixed record verbatim. Several handles are
// deduplicated in order: one distinct handle resolves like a single
// one, more than one yields a copy of the mixed record carrying the
// resolved records under Statuses.
func (r *Registry) Info(handles ...string) *Option {
	distinct := dedupe(handles)

	switch len(distinct) {
	case 0:
		return nil
	case 1:
		return r.single(distinct[0])
	}

	resolved := make([]*Option, 0, len(distinct))
	for _, handle := range distinct {
		if opt := r.single(handle); opt != nil {
			resolved = append(resolved, opt)
		}
	}

	mixed := clone.Clone(r.taxonomy.Mixed).(*Option)
	mixed.Statuses = resolved
	return mixed
}

// single resolves one handle, falling back to the default option when
// the taxonomy does not know it.
func (r *Registry) single(handle string) *Option {
	if r.taxonomy.Mixed != nil && handle == r.taxonomy.Mixed.Handle {
		return r.taxonomy.Mixed
	}

	if opt, ok := r.taxonomy.Options[handle]; ok {
		return opt
	}

	r.logger.Warn().
		Str("handle", handle).
		Str("default", r.taxonomy.Default).
		Msg("Unknown status handle, falling back to default")

	if opt, ok := r.taxonomy.Options[r.taxonomy.Default]; ok {
		return opt
	}

	// Degenerate taxonomy without a default record; still never fail
	return &Option{Handle: r.taxonomy.Default}
}

// dedupe returns the distinct non-empty handles in first-seen order
func dedupe(handles []string) []string {
	seen := make(map[string]bool, len(handles))
	var out []string
	for _, h := range handles {
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}
