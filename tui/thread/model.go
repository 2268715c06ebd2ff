// Package thread renders one comment forest (a series thread, an
// episode thread, or the staff channel) and owns the transient
// compose state for it. Confirmed comments are folded into the forest
// with the thread engine; nothing enters the forest before the server
// answers.
package thread

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
	"github.com/Anime-Verse-backend/AnimeVerse/domain"
	"github.com/Anime-Verse-backend/AnimeVerse/thread"
	"github.com/Anime-Verse-backend/AnimeVerse/tui/common"
)

// Every async message carries the entity key (and for fetches a
// request sequence) so a response that arrives after the user moved to
// a different thread is discarded instead of applied.

// ForestLoadedMsg is sent when a forest fetch completes successfully.
type ForestLoadedMsg struct {
	EntityKey string
	ReqSeq    int
	Forest    []domain.Comment
}

// ForestErrorMsg is sent when a forest fetch fails.
type ForestErrorMsg struct {
	EntityKey string
	ReqSeq    int
	Err       error
}

// PostResultMsg is sent after a comment submission attempt.
type PostResultMsg struct {
	EntityKey string
	ParentID  string
	Comment   domain.Comment
	Err       error
}

// EditResultMsg is sent after an edit attempt.
type EditResultMsg struct {
	EntityKey string
	ID        string
	Comment   domain.Comment
	Err       error
}

// DeleteResultMsg is sent after a delete attempt.
type DeleteResultMsg struct {
	EntityKey string
	ID        string
	Err       error
}

type pollTickMsg struct {
	EntityKey string
}

// composePhase is the explicit compose state machine. Entering any
// composing phase clears the attachment and the other phase's target.
type composePhase int

const (
	phaseIdle composePhase = iota
	phaseNew
	phaseReply
	phaseEdit
)

type composeState struct {
	phase      composePhase
	targetID   string // reply parent or edit target
	input      textarea.Model
	attach     textinput.Model
	attaching  bool   // attachment path prompt has focus
	attachment string // confirmed local file path
	submitting bool   // one in-flight submission per thread view
}

type row struct {
	comment domain.Comment
	depth   int
}

// Model holds the state for one thread view.
type Model struct {
	comments app.CommentService
	entity   app.Entity
	title    string
	viewer   domain.User
	poll     time.Duration // zero disables polling

	forest     []domain.Comment
	rows       []row
	cursor     int
	startIndex int
	loading    bool
	err        error
	notice     string
	reqSeq     int

	confirmDelete bool
	deleting      bool
	compose       composeState

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a thread view. A non-zero poll interval makes the view
// refresh itself on that cadence (used by the staff channel, which has
// no push transport).
func New(comments app.CommentService, entity app.Entity, title string, viewer domain.User, poll time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#C678DD"))

	return Model{
		comments: comments,
		entity:   entity,
		title:    title,
		viewer:   viewer,
		poll:     poll,
		loading:  true,
		keys:     common.DefaultKeyMap(),
		spinner:  s,
	}
}

// Init starts the initial forest fetch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchForest(m.reqSeq), m.spinner.Tick}
	if m.poll > 0 {
		cmds = append(cmds, m.schedulePoll())
	}
	return tea.Batch(cmds...)
}

// Entity returns the entity this view is bound to.
func (m Model) Entity() app.Entity {
	return m.entity
}

// Forest returns the current confirmed forest.
func (m Model) Forest() []domain.Comment {
	return m.forest
}

// Update handles messages for the thread view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ForestLoadedMsg:
		if msg.EntityKey != m.entity.Key() || msg.ReqSeq != m.reqSeq {
			return m, nil // Stale: the user is looking at something else now.
		}
		m.setForest(msg.Forest)
		m.loading = false
		m.err = nil
		return m, nil

	case ForestErrorMsg:
		if msg.EntityKey != m.entity.Key() || msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case PostResultMsg:
		if msg.EntityKey != m.entity.Key() {
			return m, nil
		}
		m.compose.submitting = false
		if msg.Err != nil {
			// Compose state stays intact so the user can retry.
			m.notice = "Could not send: " + msg.Err.Error()
			return m, nil
		}
		m.setForest(thread.InsertReply(m.forest, msg.ParentID, msg.Comment))
		m.resetCompose()
		m.notice = "Comment posted."
		return m, nil

	case EditResultMsg:
		if msg.EntityKey != m.entity.Key() {
			return m, nil
		}
		m.compose.submitting = false
		if msg.Err != nil {
			m.notice = "Could not save: " + msg.Err.Error()
			return m, nil
		}
		m.setForest(thread.EditText(m.forest, msg.ID, msg.Comment.Text))
		m.resetCompose()
		m.notice = "Comment updated."
		return m, nil

	case DeleteResultMsg:
		if msg.EntityKey != m.entity.Key() {
			return m, nil
		}
		m.deleting = false
		m.confirmDelete = false
		if msg.Err != nil {
			// Delete is never applied locally before the server
			// confirms, so a rejection leaves the forest as it was.
			m.notice = "Could not delete: " + msg.Err.Error()
			return m, nil
		}
		m.setForest(thread.SoftDelete(m.forest, msg.ID))
		m.notice = "Comment deleted."
		return m, nil

	case pollTickMsg:
		if msg.EntityKey != m.entity.Key() || m.poll <= 0 {
			return m, nil
		}
		// Last server snapshot wins over whatever local merges happened
		// in between.
		m.reqSeq++
		return m, tea.Batch(m.fetchForest(m.reqSeq), m.schedulePoll())

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.compose.phase != phaseIdle {
		return m.updateComposeInputs(msg)
	}
	return m, nil
}

// setForest normalizes and installs a forest snapshot, rebuilding the
// flattened rows. Server listings repeat reply nodes at the top level;
// keeping only the roots avoids rendering duplicates.
func (m *Model) setForest(forest []domain.Comment) {
	m.forest = thread.TopLevel(forest)
	m.rows = flatten(m.forest)
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
	m.ensureCursorVisible()
}

func flatten(forest []domain.Comment) []row {
	var out []row
	var walk func(list []domain.Comment, depth int)
	walk = func(list []domain.Comment, depth int) {
		for _, c := range list {
			out = append(out, row{comment: c, depth: depth})
			walk(c.Replies, depth+1)
		}
	}
	walk(forest, 0)
	return out
}

func (m Model) selectedRow() (row, bool) {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// canModify reports whether the viewer may edit or delete a comment:
// their own, or anyone's when their role is privileged.
func (m Model) canModify(c domain.Comment) bool {
	return c.Author.ID == m.viewer.ID || domain.IsPrivileged(m.viewer.Role)
}

func (m *Model) ensureCursorVisible() {
	slots := max(m.visibleSlots(), 1)
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
	}
	if m.cursor >= m.startIndex+slots {
		m.startIndex = m.cursor - slots + 1
	}
	if m.startIndex < 0 {
		m.startIndex = 0
	}
}

func (m Model) visibleSlots() int {
	h := max(m.height-10, 12)
	return max(h/4, 3)
}
