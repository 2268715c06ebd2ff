package thread

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// BackMsg is sent when the user leaves the thread view.
type BackMsg struct{}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.compose.phase != phaseIdle {
		return m.updateComposeKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		if m.confirmDelete {
			m.confirmDelete = false
			return m, nil
		}
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.reqSeq++
		return m, m.fetchForest(m.reqSeq)

	case key.Matches(msg, m.keys.Up):
		m.confirmDelete = false
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}

	case key.Matches(msg, m.keys.Down):
		m.confirmDelete = false
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.ensureCursorVisible()
		}

	case key.Matches(msg, m.keys.New):
		m.startCompose(phaseNew, "")
		return m, textarea.Blink

	case key.Matches(msg, m.keys.Reply):
		r, ok := m.selectedRow()
		if !ok || r.comment.Deleted {
			break
		}
		m.startCompose(phaseReply, r.comment.ID)
		return m, textarea.Blink

	case key.Matches(msg, m.keys.Edit):
		r, ok := m.selectedRow()
		if !ok || r.comment.Deleted || !m.canModify(r.comment) {
			break
		}
		m.startCompose(phaseEdit, r.comment.ID)
		m.compose.input.SetValue(r.comment.Text)
		return m, textarea.Blink

	case key.Matches(msg, m.keys.Delete):
		r, ok := m.selectedRow()
		if !ok || r.comment.Deleted || !m.canModify(r.comment) {
			break
		}
		m.confirmDelete = true

	case msg.String() == "y":
		if m.confirmDelete && !m.deleting {
			r, ok := m.selectedRow()
			if !ok {
				m.confirmDelete = false
				break
			}
			m.deleting = true
			return m, m.submitDelete(r.comment.ID)
		}

	case msg.String() == "n":
		if m.confirmDelete {
			m.confirmDelete = false
		}
	}

	return m, nil
}

// startCompose enters a composing phase. The transition rule is that
// entering any composing phase clears the pending attachment and the
// other phase's target, so "replying to X" and "editing Y" are
// mutually exclusive.
func (m *Model) startCompose(phase composePhase, targetID string) {
	ta := textarea.New()
	ta.Placeholder = "Write a comment..."
	ta.CharLimit = 2000
	ta.SetWidth(min(max(m.width-8, 40), 76))
	ta.SetHeight(5)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "path/to/image.png"

	m.compose = composeState{
		phase:    phase,
		targetID: targetID,
		input:    ta,
		attach:   ti,
	}
	m.confirmDelete = false
	m.notice = ""
}

func (m *Model) resetCompose() {
	m.compose = composeState{}
}

func (m Model) updateComposeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.compose.submitting {
		return m, nil // The submit control is disabled while in flight.
	}

	if m.compose.attaching {
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(m.compose.attach.Value())
			m.compose.attaching = false
			m.compose.attachment = path
			return m, nil
		case "esc":
			m.compose.attaching = false
			m.compose.attach.SetValue("")
			return m, nil
		}
		var cmd tea.Cmd
		m.compose.attach, cmd = m.compose.attach.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.resetCompose()
		return m, nil

	case "ctrl+d":
		text := strings.TrimSpace(m.compose.input.Value())
		if text == "" && m.compose.attachment == "" {
			m.notice = "Comment cannot be empty."
			return m, nil
		}
		if m.compose.phase == phaseEdit && text == "" {
			m.notice = "Comment cannot be empty."
			return m, nil
		}
		m.compose.submitting = true
		m.notice = ""
		if m.compose.phase == phaseEdit {
			return m, m.submitEdit(m.compose.targetID, text)
		}
		return m, m.submitNew(text, m.compose.targetID, m.compose.attachment)

	case "ctrl+a":
		// Edits replace text only; the attachment is immutable after
		// creation, so the prompt is offered for new comments and
		// replies.
		if m.compose.phase == phaseEdit {
			return m, nil
		}
		m.compose.attaching = true
		m.compose.attach.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.compose.input, cmd = m.compose.input.Update(msg)
	return m, cmd
}

// updateComposeInputs forwards non-key messages (blinks and the like)
// to whichever compose input has focus.
func (m Model) updateComposeInputs(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.compose.attaching {
		m.compose.attach, cmd = m.compose.attach.Update(msg)
		return m, cmd
	}
	m.compose.input, cmd = m.compose.input.Update(msg)
	return m, cmd
}
