package thread

import (
	"fmt"
	"strings"
	"time"

	"github.com/Anime-Verse-backend/AnimeVerse/domain"
	"github.com/Anime-Verse-backend/AnimeVerse/tui/common"
)

// View renders the thread as nested cards plus the compose area.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("AnimeVerse"))
	b.WriteString(common.TaglineStyle.Render(m.title))
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.rows) == 0:
		b.WriteString(fmt.Sprintf("  %s loading thread...\n", m.spinner.View()))
	case m.err != nil && len(m.rows) == 0:
		b.WriteString(common.ErrorStyle.Render("  Error: "+m.err.Error()) + "\n")
	case len(m.rows) == 0:
		b.WriteString(common.TimestampStyle.Render("  No comments yet.") + "\n")
	default:
		m.renderRows(&b)
	}

	if m.compose.phase != phaseIdle {
		b.WriteString("\n")
		m.renderCompose(&b)
	} else if m.confirmDelete {
		b.WriteString("\n")
		b.WriteString(common.ConfirmStyle.Render("Delete this comment? (y/n)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(common.StatusBarStyle.Render("  " + m.notice))
	} else {
		b.WriteString(common.StatusBarStyle.Render(m.hints()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRows(b *strings.Builder) {
	slots := max(m.visibleSlots(), 1)
	end := min(m.startIndex+slots, len(m.rows))

	if m.startIndex > 0 {
		b.WriteString(common.TimestampStyle.Render(fmt.Sprintf("  ↑ %d more", m.startIndex)) + "\n")
	}
	for i := m.startIndex; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[i], i == m.cursor))
		b.WriteString("\n")
	}
	if end < len(m.rows) {
		b.WriteString(common.TimestampStyle.Render(fmt.Sprintf("  ↓ %d more", len(m.rows)-end)) + "\n")
	}
}

func (m Model) renderRow(r row, selected bool) string {
	width := max(min(m.width-4-r.depth*2, 80), 32)

	header := common.AvatarStyle.Render(avatarLabel(r.comment.Author)) + " " +
		common.AuthorStyle.Render(authorLabel(r.comment.Author))
	if domain.IsPrivileged(r.comment.Author.Role) {
		header += common.RoleBadgeStyle.Render("[" + r.comment.Author.Role + "]")
	}
	header += "  " + common.TimestampStyle.Render(common.RelativeTime(r.comment.Timestamp, time.Now()))

	lines := []string{header}
	if p := r.comment.Parent; p != nil {
		label := p.Author.Name
		if p.Deleted {
			label += " (deleted)"
		}
		lines = append(lines, common.ReplyToStyle.Render("↪ replying to "+label))
	}

	switch {
	case r.comment.Deleted:
		lines = append(lines, common.DeletedStyle.Render("[deleted]"))
	default:
		if r.comment.Text != "" {
			lines = append(lines, common.ContentStyle.Render(common.TruncateLine(r.comment.Text, width-4)))
		}
		if r.comment.MediaURL != "" {
			lines = append(lines, common.MediaStyle.Render("⎘ image attached"))
		}
	}

	card := strings.Join(lines, "\n")
	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return indent(style.Width(width).Render(card), r.depth*2)
}

func (m Model) renderCompose(b *strings.Builder) {
	switch m.compose.phase {
	case phaseNew:
		b.WriteString(common.AuthorStyle.Render("  New comment"))
	case phaseReply:
		label := m.compose.targetID
		if c, ok := findRow(m.rows, m.compose.targetID); ok {
			label = authorLabel(c.Author)
		}
		b.WriteString(common.AuthorStyle.Render("  Replying to " + label))
	case phaseEdit:
		b.WriteString(common.AuthorStyle.Render("  Editing comment"))
	}
	b.WriteString("\n")
	b.WriteString(m.compose.input.View())
	b.WriteString("\n")

	switch {
	case m.compose.attaching:
		b.WriteString("  Attach: " + m.compose.attach.View() + "\n")
	case m.compose.attachment != "":
		b.WriteString(common.MediaStyle.Render("  ⎘ "+m.compose.attachment) + "\n")
	}

	if m.compose.submitting {
		b.WriteString(fmt.Sprintf("  %s sending...\n", m.spinner.View()))
	} else {
		b.WriteString(common.StatusBarStyle.Render("  ctrl+d: send • ctrl+a: attach • esc: cancel") + "\n")
	}
}

func (m Model) hints() string {
	return "  n: new • r: reply • e: edit • d: delete • R: refresh • esc: back"
}

func findRow(rows []row, id string) (domain.Comment, bool) {
	for _, r := range rows {
		if r.comment.ID == id {
			return r.comment, true
		}
	}
	return domain.Comment{}, false
}

func authorLabel(a domain.Author) string {
	if a.Name != "" {
		return a.Name
	}
	return a.Username
}

// avatarLabel falls back to initials; terminals have no image avatars.
func avatarLabel(a domain.Author) string {
	if ini := domain.Initials(authorLabel(a)); ini != "" {
		return ini
	}
	return "?"
}

func indent(block string, by int) string {
	if by <= 0 {
		return block
	}
	pad := strings.Repeat(" ", by)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
