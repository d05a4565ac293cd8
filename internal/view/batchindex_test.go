package view

import (
	"testing"

	"github.com/open-agentic/viewengine/pkg/models"
)

func TestBuildActionBatchIndexGroupsByResponse(t *testing.T) {
	events := []models.Event{
		models.NewActionEvent("a1", at(0), "b1", "t1", "bash", nil),
		models.NewSystemEvent("e1", at(1), "noise"),
		models.NewActionEvent("a2", at(2), "b1", "t2", "bash", nil, models.ThinkingBlock{Content: "plan"}),
	}
	idx := BuildActionBatchIndex(events)
	min, max, ok := idx.Range("b1")
	if !ok || min != 0 || max != 2 {
		t.Fatalf("expected range [0,2], got min=%d max=%d ok=%v", min, max, ok)
	}
	// batch_has_thinking is decided by the first action in the batch
	// only; a2's thinking arriving later must not flip it.
	if idx.HasThinking["b1"] {
		t.Fatal("expected batch b1 not to carry thinking, since its first action has none")
	}
}

func TestBuildActionBatchIndexHasThinkingFromFirstAction(t *testing.T) {
	events := []models.Event{
		models.NewActionEvent("a1", at(0), "b1", "t1", "bash", nil, models.ThinkingBlock{Content: "plan"}),
		models.NewActionEvent("a2", at(1), "b1", "t2", "bash", nil),
	}
	idx := BuildActionBatchIndex(events)
	if !idx.HasThinking["b1"] {
		t.Fatal("expected batch b1 to carry thinking, since its first action has thinking blocks")
	}
}

func TestBuildActionBatchIndexMissingBatch(t *testing.T) {
	idx := BuildActionBatchIndex(nil)
	if _, _, ok := idx.Range("missing"); ok {
		t.Fatal("expected ok=false for absent batch")
	}
}

func TestMergeRangesNonOverlapping(t *testing.T) {
	got := mergeRanges([][2]int{{5, 6}, {0, 1}})
	want := [][2]int{{0, 1}, {5, 6}}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
