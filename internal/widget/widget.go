// Package widget wires the catalog, registry, and resolver into the surface
// the presentational layer calls. The widget owns no rendering; it accepts
// user intents, resolves them, and lets subscribers react.
package widget

import (
	"fmt"
	"sort"

	"github.com/kingrea/tagboard/internal/catalog"
	"github.com/kingrea/tagboard/internal/tag"
)

// Widget aggregates the tag-state core for one reviewed item.
type Widget struct {
	catalog  *catalog.Catalog
	registry *tag.Registry
	resolver *tag.Resolver
}

// New builds a widget from the fixed predefined catalog and the initial
// policy table. A malformed policy table is a configuration error and fails
// construction.
func New(predefined []tag.Tag, initial map[tag.Tag]tag.Policy) (*Widget, error) {
	registry := tag.NewRegistry()
	names := make([]tag.Tag, 0, len(initial))
	for name := range initial {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	for _, name := range names {
		if err := registry.Register(name, initial[name]); err != nil {
			return nil, fmt.Errorf("widget: seed policy table: %w", err)
		}
	}
	return &Widget{
		catalog:  catalog.New(predefined),
		registry: registry,
		resolver: tag.NewResolver(registry),
	}, nil
}

// Subscribe attaches a sink to the widget's notification channel.
func (w *Widget) Subscribe(s tag.Sink) {
	w.resolver.Subscribe(s)
}

// AddUserTag adds a name to the catalog and opts it into the permissive
// default policy. Reports whether the catalog grew.
func (w *Widget) AddUserTag(name tag.Tag) (bool, error) {
	if !w.catalog.AddUserTag(name) {
		return false, nil
	}
	if err := w.registry.RegisterDefault(name); err != nil {
		return false, err
	}
	return true, nil
}

// ClearUserTags empties the user-added catalog subset. Policies registered
// for those tags remain in the registry.
func (w *Widget) ClearUserTags() {
	w.catalog.ClearUserTags()
}

// SetPolicy replaces a tag's policy wholesale.
func (w *Widget) SetPolicy(t tag.Tag, p tag.Policy) error {
	return w.registry.Register(t, p)
}

// RequestAction resolves one user intent into effective actions, notifying
// subscribers of each in order.
func (w *Widget) RequestAction(t tag.Tag, kind tag.Kind) []tag.Action {
	return w.resolver.Resolve(t, kind)
}

// SelectTag echoes a selection to subscribers.
func (w *Widget) SelectTag(t tag.Tag) {
	w.resolver.EmitSelected(t)
}

// FocusTag echoes a focus change to subscribers.
func (w *Widget) FocusTag(t tag.Tag, focused bool) {
	w.resolver.EmitFocus(t, focused)
}

// Tags lists the catalog in display order.
func (w *Widget) Tags() []tag.Tag {
	return w.catalog.Tags()
}

// Contains reports catalog membership.
func (w *Widget) Contains(t tag.Tag) bool {
	return w.catalog.Contains(t)
}

// Policy exposes the registry's presence-checked lookup for display code
// that wants to render gates.
func (w *Widget) Policy(t tag.Tag) (tag.Policy, bool) {
	return w.registry.Lookup(t)
}

// IsApplicable reports whether the tag can be applied directly.
func (w *Widget) IsApplicable(t tag.Tag) bool {
	return w.registry.IsApplicable(t)
}

// IsRemovable reports whether the tag can be removed directly.
func (w *Widget) IsRemovable(t tag.Tag) bool {
	return w.registry.IsRemovable(t)
}
