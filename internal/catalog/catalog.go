// Package catalog tracks which tags the widget displays: a fixed predefined
// seed supplied at construction plus tags the user adds over the session.
// Membership here is a display concern; tag policies live in the registry
// and survive a catalog clear.
package catalog

import (
	"strings"

	"github.com/kingrea/tagboard/internal/tag"
)

// Catalog holds the ordered set of known tag names.
type Catalog struct {
	predefined []tag.Tag
	user       []tag.Tag
}

// New seeds the catalog with the predefined tags, preserving their order and
// dropping blanks and duplicates.
func New(predefined []tag.Tag) *Catalog {
	c := &Catalog{}
	seen := map[tag.Tag]struct{}{}
	for _, t := range predefined {
		trimmed := tag.Tag(strings.TrimSpace(string(t)))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		c.predefined = append(c.predefined, trimmed)
	}
	return c
}

// AddUserTag appends a tag to the user-added subset. It reports whether the
// tag was newly added; names already present anywhere in the catalog are
// left alone.
func (c *Catalog) AddUserTag(name tag.Tag) bool {
	trimmed := tag.Tag(strings.TrimSpace(string(name)))
	if trimmed == "" || c.Contains(trimmed) {
		return false
	}
	c.user = append(c.user, trimmed)
	return true
}

// ClearUserTags empties the user-added subset. Predefined tags and registry
// policies are untouched.
func (c *Catalog) ClearUserTags() {
	c.user = nil
}

// Contains reports catalog membership.
func (c *Catalog) Contains(name tag.Tag) bool {
	for _, t := range c.predefined {
		if t == name {
			return true
		}
	}
	for _, t := range c.user {
		if t == name {
			return true
		}
	}
	return false
}

// Tags lists the catalog in display order: predefined first, then user-added
// in insertion order.
func (c *Catalog) Tags() []tag.Tag {
	out := make([]tag.Tag, 0, len(c.predefined)+len(c.user))
	out = append(out, c.predefined...)
	out = append(out, c.user...)
	return out
}

// UserTags lists only the user-added subset.
func (c *Catalog) UserTags() []tag.Tag {
	return append([]tag.Tag{}, c.user...)
}
