package thread

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

func TestComposePhasesAreMutuallyExclusive(t *testing.T) {
	m := newTestModel(&stubComments{}, domain.User{ID: "u1", Role: domain.RoleAdmin})
	m = loadForest(t, m, []domain.Comment{
		{ID: "c1", Text: "first", Author: domain.Author{ID: "u2"}},
	})

	m, _ = m.Update(keyRune('r'))
	if m.compose.phase != phaseReply || m.compose.targetID != "c1" {
		t.Fatalf("expected reply to c1, got phase=%d target=%q", m.compose.phase, m.compose.targetID)
	}
	m.compose.attachment = "/tmp/pic.png"

	// Leaving reply for edit drops both the reply target and the
	// pending attachment.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = m.Update(keyRune('e'))
	if m.compose.phase != phaseEdit || m.compose.targetID != "c1" {
		t.Fatalf("expected edit of c1, got phase=%d target=%q", m.compose.phase, m.compose.targetID)
	}
	if m.compose.attachment != "" {
		t.Fatalf("entering a composing phase must clear the attachment")
	}
	if m.compose.input.Value() != "first" {
		t.Fatalf("edit should prefill the current text, got %q", m.compose.input.Value())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = m.Update(keyRune('n'))
	if m.compose.phase != phaseNew || m.compose.targetID != "" {
		t.Fatalf("new comment carries no target, got phase=%d target=%q", m.compose.phase, m.compose.targetID)
	}
}

func TestEscCancelsComposeWithoutSubmitting(t *testing.T) {
	m := newTestModel(&stubComments{}, domain.User{ID: "u1"})
	m = loadForest(t, m, nil)

	m, _ = m.Update(keyRune('n'))
	m.compose.input.SetValue("never sent")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.compose.phase != phaseIdle {
		t.Fatalf("esc should return to idle")
	}
	if cmd != nil {
		t.Fatalf("cancel must not issue a command")
	}
}

func TestEmptySubmissionRejectedLocally(t *testing.T) {
	m := newTestModel(&stubComments{}, domain.User{ID: "u1"})
	m = loadForest(t, m, nil)

	m, _ = m.Update(keyRune('n'))
	m.compose.input.SetValue("   \n  ")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if cmd != nil {
		t.Fatalf("whitespace-only draft must not reach the server")
	}
	if m.compose.submitting {
		t.Fatalf("rejected draft should not flip the in-flight flag")
	}
	if m.notice == "" {
		t.Fatalf("user should be told why nothing happened")
	}
}

func TestAttachmentAloneIsSubmittable(t *testing.T) {
	m := newTestModel(&stubComments{}, domain.User{ID: "u1"})
	m = loadForest(t, m, nil)

	m, _ = m.Update(keyRune('n'))
	m.compose.attachment = "/tmp/pic.png"
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if cmd == nil {
		t.Fatalf("an image-only comment is valid")
	}
	if !m.compose.submitting {
		t.Fatalf("submission should mark the compose as in flight")
	}
}

func TestSubmittingDisablesComposeKeys(t *testing.T) {
	m := newTestModel(&stubComments{}, domain.User{ID: "u1"})
	m = loadForest(t, m, nil)

	m, _ = m.Update(keyRune('n'))
	m.compose.input.SetValue("draft")
	m.compose.submitting = true

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if cmd != nil {
		t.Fatalf("a second submit while one is in flight must be ignored")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.compose.phase != phaseNew {
		t.Fatalf("compose cannot be abandoned while a submission is in flight")
	}
}

func TestAttachPromptDisabledForEdits(t *testing.T) {
	m := newTestModel(&stubComments{}, domain.User{ID: "u1"})
	m = loadForest(t, m, []domain.Comment{
		{ID: "c1", Text: "mine", Author: domain.Author{ID: "u1"}},
	})

	m, _ = m.Update(keyRune('e'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	if m.compose.attaching {
		t.Fatalf("edits replace text only; no attachment prompt")
	}
}

func TestAttachPromptConfirmAndCancel(t *testing.T) {
	m := newTestModel(&stubComments{}, domain.User{ID: "u1"})
	m = loadForest(t, m, nil)

	m, _ = m.Update(keyRune('n'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	if !m.compose.attaching {
		t.Fatalf("ctrl+a should open the attachment prompt")
	}
	m.compose.attach.SetValue("  /tmp/pic.png ")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.compose.attaching || m.compose.attachment != "/tmp/pic.png" {
		t.Fatalf("enter should confirm the trimmed path, got %q", m.compose.attachment)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m.compose.attach.SetValue("/tmp/other.png")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.compose.attaching {
		t.Fatalf("esc should close the prompt")
	}
	if m.compose.attachment != "/tmp/pic.png" {
		t.Fatalf("cancelling the prompt keeps the previous attachment")
	}
}

func TestDeleteBlockedOnTombstonesAndForeignComments(t *testing.T) {
	m := newTestModel(&stubComments{}, domain.User{ID: "u1", Role: domain.RoleUser})
	m = loadForest(t, m, []domain.Comment{
		{ID: "c1", Author: domain.Author{ID: "u2"}},
	})

	m, _ = m.Update(keyRune('d'))
	if m.confirmDelete {
		t.Fatalf("plain user must not be offered delete on another's comment")
	}

	m = loadForest(t, m, []domain.Comment{
		{ID: "c1", Author: domain.Author{ID: "u1"}, Deleted: true, Replies: []domain.Comment{{ID: "c2"}}},
	})
	m, _ = m.Update(keyRune('d'))
	if m.confirmDelete {
		t.Fatalf("tombstones cannot be deleted again")
	}
}
