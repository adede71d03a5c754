// Package board owns the authoritative applied-tag state for the page under
// review. The resolver never touches this state directly; the board listens
// for resolved actions and folds them in, in arrival order.
package board

import (
	"github.com/kingrea/tagboard/internal/tag"
)

// Board is the applied-tag set for one item. Per tag the state is binary:
// unset or applied. Application order is retained for display.
type Board struct {
	applied []tag.Tag
	index   map[tag.Tag]struct{}
}

// New returns an empty board.
func New() *Board {
	return &Board{index: map[tag.Tag]struct{}{}}
}

// OnEvent implements tag.Sink. Only resolved actions mutate the board; UI
// echo events on the shared channel are ignored.
func (b *Board) OnEvent(ev tag.Event) {
	resolved, ok := ev.(tag.ActionResolvedEvent)
	if !ok {
		return
	}
	b.apply(resolved.Action)
}

// Apply folds an ordered action sequence into the board. Useful for callers
// holding a resolved slice rather than a subscription.
func (b *Board) Apply(actions []tag.Action) {
	for _, a := range actions {
		b.apply(a)
	}
}

func (b *Board) apply(a tag.Action) {
	switch a.Kind {
	case tag.KindApply:
		if _, ok := b.index[a.Tag]; ok {
			return
		}
		b.index[a.Tag] = struct{}{}
		b.applied = append(b.applied, a.Tag)
	case tag.KindRemove:
		if _, ok := b.index[a.Tag]; !ok {
			return
		}
		delete(b.index, a.Tag)
		for i, t := range b.applied {
			if t == a.Tag {
				b.applied = append(b.applied[:i], b.applied[i+1:]...)
				break
			}
		}
	}
}

// IsApplied reports whether the tag is currently set.
func (b *Board) IsApplied(t tag.Tag) bool {
	_, ok := b.index[t]
	return ok
}

// Applied lists the applied tags in application order.
func (b *Board) Applied() []tag.Tag {
	return append([]tag.Tag{}, b.applied...)
}

// Reset clears every applied tag, e.g. when the reviewed item changes.
func (b *Board) Reset() {
	b.applied = nil
	b.index = map[tag.Tag]struct{}{}
}
