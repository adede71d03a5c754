package catalog

import (
	"reflect"
	"testing"

	"github.com/kingrea/tagboard/internal/tag"
)

func TestNewDropsBlanksAndDuplicates(t *testing.T) {
	c := New([]tag.Tag{"Relevant", "", "Irrelevant", "Relevant", "  "})
	want := []tag.Tag{"Relevant", "Irrelevant"}
	if got := c.Tags(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tags() = %v, want %v", got, want)
	}
}

func TestAddUserTagGrowsCatalogOnce(t *testing.T) {
	c := New([]tag.Tag{"Relevant"})
	if !c.AddUserTag("Fishing") {
		t.Fatal("first add should report newly added")
	}
	if c.AddUserTag("Fishing") {
		t.Fatal("second add of same name should be a no-op")
	}
	if c.AddUserTag("Relevant") {
		t.Fatal("adding a predefined name should be a no-op")
	}
	if c.AddUserTag("   ") {
		t.Fatal("blank names are not added")
	}
	want := []tag.Tag{"Relevant", "Fishing"}
	if got := c.Tags(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tags() = %v, want %v", got, want)
	}
}

func TestClearUserTagsKeepsPredefined(t *testing.T) {
	c := New([]tag.Tag{"Relevant", "Neutral"})
	c.AddUserTag("Fishing")
	c.AddUserTag("Boats")
	c.ClearUserTags()
	if c.Contains("Fishing") || c.Contains("Boats") {
		t.Fatal("user tags should be gone after clear")
	}
	want := []tag.Tag{"Relevant", "Neutral"}
	if got := c.Tags(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tags() = %v, want %v", got, want)
	}
	// The subset grows again after a clear.
	if !c.AddUserTag("Fishing") {
		t.Fatal("re-adding after clear should succeed")
	}
}

func TestTagsOrderIsPredefinedThenUser(t *testing.T) {
	c := New([]tag.Tag{"Relevant", "Irrelevant"})
	c.AddUserTag("Zebra")
	c.AddUserTag("Apple")
	want := []tag.Tag{"Relevant", "Irrelevant", "Zebra", "Apple"}
	if got := c.Tags(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tags() = %v, want %v", got, want)
	}
}
