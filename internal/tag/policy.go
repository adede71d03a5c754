package tag

import "fmt"

// Tag identifies one categorical label. Identity is the raw string,
// case-sensitive, with no normalization applied.
type Tag string

// Kind enumerates the two actions a caller can request on a tag.
type Kind string

const (
	KindApply  Kind = "apply"
	KindRemove Kind = "remove"
)

// Action is one effective instruction produced by resolution: apply or
// remove a single tag. Listeners execute actions in the order they arrive.
type Action struct {
	Tag  Tag
	Kind Kind
}

// Policy governs whether a tag may be the direct target of an apply or
// remove request and which other tags must be cleared whenever it is
// successfully applied. A tag with no registered policy has no Policy value
// at all; callers distinguish that case through Registry.Lookup rather than
// a synthesized permissive struct.
type Policy struct {
	// Applicable permits the tag to be applied by direct user action.
	Applicable bool
	// Removable permits the tag to be removed by direct user action.
	Removable bool
	// Negates lists tags that receive a remove action whenever this tag is
	// applied. Order is preserved and meaningful downstream.
	Negates []Tag
}

// DefaultPolicy is what RegisterDefault installs for user-added tags:
// fully permissive with no negations.
func DefaultPolicy() Policy {
	return Policy{Applicable: true, Removable: true}
}

// Validate rejects malformed policy entries before they reach the registry.
// Self-negation and blank names indicate a mistake in the supplied policy
// table, not a runtime edge case, so they surface synchronously.
func (p Policy) Validate(owner Tag) error {
	if owner == "" {
		return fmt.Errorf("tag: name is required")
	}
	for _, n := range p.Negates {
		if n == "" {
			return fmt.Errorf("tag: %s negates a blank tag", owner)
		}
		if n == owner {
			return fmt.Errorf("tag: %s must not negate itself", owner)
		}
	}
	return nil
}

// clone guards the registry's stored Negates slice from caller aliasing.
func (p Policy) clone() Policy {
	out := p
	if len(p.Negates) > 0 {
		out.Negates = append([]Tag{}, p.Negates...)
	}
	return out
}
