package board

import (
	"reflect"
	"testing"

	"github.com/kingrea/tagboard/internal/tag"
)

func TestApplySequenceClearsConflictsFirst(t *testing.T) {
	b := New()
	b.Apply([]tag.Action{{Tag: "Irrelevant", Kind: tag.KindApply}})

	// The resolver's contract: removals arrive before the apply.
	b.Apply([]tag.Action{
		{Tag: "Irrelevant", Kind: tag.KindRemove},
		{Tag: "Neutral", Kind: tag.KindRemove},
		{Tag: "Relevant", Kind: tag.KindApply},
	})

	if b.IsApplied("Irrelevant") {
		t.Fatal("Irrelevant should have been cleared")
	}
	if !b.IsApplied("Relevant") {
		t.Fatal("Relevant should be applied")
	}
	if got := b.Applied(); !reflect.DeepEqual(got, []tag.Tag{"Relevant"}) {
		t.Fatalf("Applied() = %v, want [Relevant]", got)
	}
}

func TestApplyIsIdempotentPerTag(t *testing.T) {
	b := New()
	b.Apply([]tag.Action{
		{Tag: "Relevant", Kind: tag.KindApply},
		{Tag: "Relevant", Kind: tag.KindApply},
	})
	if got := b.Applied(); len(got) != 1 {
		t.Fatalf("Applied() = %v, want a single entry", got)
	}
	b.Apply([]tag.Action{{Tag: "Ghost", Kind: tag.KindRemove}})
	if got := b.Applied(); len(got) != 1 {
		t.Fatalf("removing an unset tag should be a no-op, got %v", got)
	}
}

func TestAppliedRetainsApplicationOrder(t *testing.T) {
	b := New()
	b.Apply([]tag.Action{
		{Tag: "Fishing", Kind: tag.KindApply},
		{Tag: "Boats", Kind: tag.KindApply},
		{Tag: "Coastal", Kind: tag.KindApply},
		{Tag: "Boats", Kind: tag.KindRemove},
	})
	want := []tag.Tag{"Fishing", "Coastal"}
	if got := b.Applied(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Applied() = %v, want %v", got, want)
	}
}

func TestOnEventIgnoresUIEcho(t *testing.T) {
	b := New()
	var sink tag.Sink = b
	sink.OnEvent(tag.SelectedEvent{Tag: "Relevant"})
	sink.OnEvent(tag.FocusEvent{Tag: "Relevant", Focused: true})
	if len(b.Applied()) != 0 {
		t.Fatal("echo events must not mutate the board")
	}
	sink.OnEvent(tag.ActionResolvedEvent{Action: tag.Action{Tag: "Relevant", Kind: tag.KindApply}})
	if !b.IsApplied("Relevant") {
		t.Fatal("resolved action should apply the tag")
	}
}

func TestResetEmptiesBoard(t *testing.T) {
	b := New()
	b.Apply([]tag.Action{{Tag: "Relevant", Kind: tag.KindApply}})
	b.Reset()
	if len(b.Applied()) != 0 || b.IsApplied("Relevant") {
		t.Fatal("board should be empty after reset")
	}
}
