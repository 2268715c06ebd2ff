// Package thread manipulates a comment forest without mutating it.
// Every operation returns a new forest in which the path from the root
// to the affected node is rebuilt; everything off that path is shared
// with the input, so renderers may rely on reference equality of
// untouched subtrees between snapshots.
package thread

import "github.com/Anime-Verse-backend/AnimeVerse/domain"

// TopLevel returns the root comments of a forest: nodes with no parent
// back-reference, in forest order. Server listings can interleave reply
// nodes at the top level; those are skipped here.
func TopLevel(forest []domain.Comment) []domain.Comment {
	out := make([]domain.Comment, 0, len(forest))
	for _, c := range forest {
		if c.Parent == nil {
			out = append(out, c)
		}
	}
	return out
}

// Find locates a comment by id anywhere in the forest, depth-first.
func Find(forest []domain.Comment, id string) (domain.Comment, bool) {
	for i := range forest {
		if forest[i].ID == id {
			return forest[i], true
		}
		if c, ok := Find(forest[i].Replies, id); ok {
			return c, true
		}
	}
	return domain.Comment{}, false
}

// InsertReply places node into the forest. With an empty parentID the
// node becomes the first top-level comment (the feed reads newest
// first at the root). Otherwise the parent is located anywhere in the
// forest and node is appended as its last reply (threads read oldest
// first). The order asymmetry is deliberate and matches the visible
// behavior of the site.
//
// An unknown parentID returns the forest unchanged; a correctly synced
// forest never takes that branch.
func InsertReply(forest []domain.Comment, parentID string, node domain.Comment) []domain.Comment {
	if parentID == "" {
		out := make([]domain.Comment, 0, len(forest)+1)
		out = append(out, node)
		return append(out, forest...)
	}
	out, _ := insertReply(forest, parentID, node)
	return out
}

func insertReply(list []domain.Comment, parentID string, node domain.Comment) ([]domain.Comment, bool) {
	for i := range list {
		if list[i].ID == parentID {
			out := clone(list)
			replies := make([]domain.Comment, 0, len(list[i].Replies)+1)
			replies = append(replies, list[i].Replies...)
			out[i].Replies = append(replies, node)
			return out, true
		}
		if replies, ok := insertReply(list[i].Replies, parentID, node); ok {
			out := clone(list)
			out[i].Replies = replies
			return out, true
		}
	}
	return list, false
}

// EditText replaces the text of the comment with the given id, leaving
// every other field, including Replies, untouched. No-op when the id
// is not present.
func EditText(forest []domain.Comment, id, text string) []domain.Comment {
	out, _ := editText(forest, id, text)
	return out
}

func editText(list []domain.Comment, id, text string) ([]domain.Comment, bool) {
	for i := range list {
		if list[i].ID == id {
			out := clone(list)
			out[i].Text = text
			return out, true
		}
		if replies, ok := editText(list[i].Replies, id, text); ok {
			out := clone(list)
			out[i].Replies = replies
			return out, true
		}
	}
	return list, false
}

// SoftDelete removes the comment with the given id. A comment with
// replies becomes a tombstone (Deleted set, Text and MediaURL cleared,
// Replies kept) so the reply chain stays addressable; a leaf is
// removed from its containing list entirely. Applying it twice is the
// same as applying it once.
func SoftDelete(forest []domain.Comment, id string) []domain.Comment {
	out, _ := softDelete(forest, id)
	return out
}

func softDelete(list []domain.Comment, id string) ([]domain.Comment, bool) {
	for i := range list {
		if list[i].ID == id {
			if len(list[i].Replies) == 0 {
				out := make([]domain.Comment, 0, len(list)-1)
				out = append(out, list[:i]...)
				return append(out, list[i+1:]...), true
			}
			out := clone(list)
			out[i].Deleted = true
			out[i].Text = ""
			out[i].MediaURL = ""
			return out, true
		}
		if replies, ok := softDelete(list[i].Replies, id); ok {
			out := clone(list)
			out[i].Replies = replies
			return out, true
		}
	}
	return list, false
}

// clone copies the list so one element can be rewritten. Sibling
// values keep pointing at their original Replies backing arrays, which
// is what gives untouched subtrees reference equality across
// snapshots.
func clone(list []domain.Comment) []domain.Comment {
	out := make([]domain.Comment, len(list))
	copy(out, list)
	return out
}
