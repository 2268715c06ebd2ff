package thread

import (
	"reflect"
	"testing"

	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

// sampleForest builds:
//
//	c1
//	├── c2
//	│   └── c4
//	└── c3
//	c5
func sampleForest() []domain.Comment {
	return []domain.Comment{
		{ID: "c1", Text: "root one", Replies: []domain.Comment{
			{ID: "c2", Text: "first reply", Replies: []domain.Comment{
				{ID: "c4", Text: "nested"},
			}},
			{ID: "c3", Text: "second reply"},
		}},
		{ID: "c5", Text: "root two"},
	}
}

func sameBacking(a, b []domain.Comment) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func TestTopLevelSkipsReplyNodes(t *testing.T) {
	parent := &domain.ParentRef{ID: "c1"}
	forest := []domain.Comment{
		{ID: "c1"},
		{ID: "c2", Parent: parent},
		{ID: "c3"},
	}
	top := TopLevel(forest)
	if len(top) != 2 || top[0].ID != "c1" || top[1].ID != "c3" {
		t.Fatalf("unexpected top level: %#v", top)
	}
}

func TestInsertReplyTopLevelPrepends(t *testing.T) {
	forest := sampleForest()
	got := InsertReply(forest, "", domain.Comment{ID: "c6"})

	if len(got) != 3 || got[0].ID != "c6" {
		t.Fatalf("new top-level comment should be first, got %#v", got)
	}
	if top := TopLevel(got); top[0].ID != "c6" {
		t.Fatalf("TopLevel should lead with the new comment, got %q", top[0].ID)
	}
	if len(forest) != 2 {
		t.Fatalf("input forest must not change")
	}
}

func TestInsertReplyAppendsToNestedParent(t *testing.T) {
	forest := sampleForest()
	got := InsertReply(forest, "c2", domain.Comment{ID: "c6"})

	replies := got[0].Replies[0].Replies
	if len(replies) != 2 || replies[1].ID != "c6" {
		t.Fatalf("reply should be appended last, got %#v", replies)
	}
	// Input untouched.
	if len(forest[0].Replies[0].Replies) != 1 {
		t.Fatalf("input forest mutated")
	}
	// Off-path siblings are shared, on-path lists are new.
	if !sameBacking(got[1].Replies, forest[1].Replies) && len(forest[1].Replies) > 0 {
		t.Fatalf("untouched sibling subtree should be shared")
	}
	if sameBacking(got, forest) {
		t.Fatalf("root list on the path must be a new slice")
	}
}

func TestInsertReplyUnknownParentIsNoop(t *testing.T) {
	forest := sampleForest()
	got := InsertReply(forest, "missing", domain.Comment{ID: "c6"})
	if !reflect.DeepEqual(got, forest) {
		t.Fatalf("unknown parent should be a no-op")
	}
}

func TestEditTextChangesOnlyTarget(t *testing.T) {
	forest := sampleForest()
	got := EditText(forest, "c4", "edited")

	if got[0].Replies[0].Replies[0].Text != "edited" {
		t.Fatalf("target text not replaced")
	}
	if forest[0].Replies[0].Replies[0].Text != "nested" {
		t.Fatalf("input forest mutated")
	}
	target := got[0].Replies[0].Replies[0]
	if target.ID != "c4" || target.Deleted || len(target.Replies) != 0 {
		t.Fatalf("fields other than text changed: %#v", target)
	}
	// Sibling c3 is off the path and keeps its identity.
	if !sameBacking(got[0].Replies[1].Replies, forest[0].Replies[1].Replies) && len(forest[0].Replies[1].Replies) > 0 {
		t.Fatalf("off-path sibling should be shared")
	}
	if !reflect.DeepEqual(got[1], forest[1]) {
		t.Fatalf("unrelated root changed")
	}
}

func TestEditTextUnknownIDIsNoop(t *testing.T) {
	forest := sampleForest()
	if got := EditText(forest, "missing", "x"); !reflect.DeepEqual(got, forest) {
		t.Fatalf("unknown id should be a no-op")
	}
}

func TestSoftDeleteLeafRemovesNode(t *testing.T) {
	forest := sampleForest()
	got := SoftDelete(forest, "c3")

	if len(got[0].Replies) != 1 || got[0].Replies[0].ID != "c2" {
		t.Fatalf("leaf should be removed from parent replies, got %#v", got[0].Replies)
	}
	if len(forest[0].Replies) != 2 {
		t.Fatalf("input forest mutated")
	}
}

func TestSoftDeleteWithRepliesLeavesTombstone(t *testing.T) {
	forest := sampleForest()
	got := SoftDelete(forest, "c2")

	c2 := got[0].Replies[0]
	if !c2.Deleted || c2.Text != "" || c2.MediaURL != "" {
		t.Fatalf("expected cleared tombstone, got %#v", c2)
	}
	if len(c2.Replies) != 1 || c2.Replies[0].ID != "c4" {
		t.Fatalf("tombstone must keep its replies, got %#v", c2.Replies)
	}
	if !sameBacking(c2.Replies, forest[0].Replies[0].Replies) {
		t.Fatalf("kept replies should be shared with the input")
	}
}

func TestSoftDeleteIdempotent(t *testing.T) {
	forest := sampleForest()

	once := SoftDelete(forest, "c2")
	twice := SoftDelete(once, "c2")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second delete of a tombstone should change nothing")
	}

	onceLeaf := SoftDelete(forest, "c3")
	twiceLeaf := SoftDelete(onceLeaf, "c3")
	if !reflect.DeepEqual(onceLeaf, twiceLeaf) {
		t.Fatalf("second delete of a removed leaf should be a no-op")
	}
}

func TestSoftDeleteUnknownIDIsNoop(t *testing.T) {
	forest := sampleForest()
	if got := SoftDelete(forest, "missing"); !reflect.DeepEqual(got, forest) {
		t.Fatalf("unknown id should be a no-op")
	}
}

func TestFind(t *testing.T) {
	forest := sampleForest()
	if c, ok := Find(forest, "c4"); !ok || c.Text != "nested" {
		t.Fatalf("expected to find nested comment, got %#v ok=%v", c, ok)
	}
	if _, ok := Find(forest, "missing"); ok {
		t.Fatalf("should not find missing id")
	}
}

func TestThreadLifecycleScenario(t *testing.T) {
	var forest []domain.Comment

	forest = InsertReply(forest, "", domain.Comment{ID: "c1", Text: "hi"})
	if top := TopLevel(forest); len(top) != 1 || top[0].ID != "c1" {
		t.Fatalf("expected [c1], got %#v", top)
	}

	forest = InsertReply(forest, "c1", domain.Comment{ID: "c2", Text: "hello"})
	if r := forest[0].Replies; len(r) != 1 || r[0].ID != "c2" {
		t.Fatalf("expected c1.replies == [c2], got %#v", r)
	}

	// Deleting the parent while c2 exists leaves a tombstone in place.
	tombstoned := SoftDelete(forest, "c1")
	if top := TopLevel(tombstoned); len(top) != 1 || !top[0].Deleted || top[0].Text != "" {
		t.Fatalf("expected tombstoned c1 at top level, got %#v", top)
	}
	if r := tombstoned[0].Replies; len(r) != 1 || r[0].ID != "c2" {
		t.Fatalf("tombstone lost its replies: %#v", r)
	}

	// Deleting the leaf first, then the now-childless parent, empties the forest.
	forest = SoftDelete(forest, "c2")
	if len(forest[0].Replies) != 0 {
		t.Fatalf("expected c1.replies empty, got %#v", forest[0].Replies)
	}
	forest = SoftDelete(forest, "c1")
	if len(TopLevel(forest)) != 0 {
		t.Fatalf("expected empty forest, got %#v", forest)
	}
}
