package status

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/xthreads-cli/internal/application"
	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now        time.Time
	StaleAfter time.Duration
}

func renderView(statuses []application.Status, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Posting Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(statuses))),
	}

	if len(statuses) == 0 {
		lines = append(lines, s.empty.Render("No accounts configured. Run `xt auth set` to add one."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, status := range statuses {
		lines = append(lines, s.section.Render(renderAccount(status, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(status application.Status, opts RenderOptions, s styles) string {
	title := s.account.Render(accountTitle(status.Account))
	if status.Active {
		title = s.active.Render("* ") + title + " " + s.active.Render("[active]")
	}

	parts := []string{
		title,
		s.detail.Render(identityLine(status.Account)),
		connectionLine(status.Account.Connection, opts, s),
		settingsLine(status.Account.Settings, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func accountTitle(account domain.Account) string {
	name := strings.TrimSpace(account.Name)
	if name == "" || name == string(account.ID) {
		return string(account.ID)
	}
	return fmt.Sprintf("%s (%s)", name, account.ID)
}

func identityLine(account domain.Account) string {
	server := strings.TrimSpace(account.Metadata.Server)
	if server == "" {
		server = "no server"
	}

	handle := account.Metadata.Handle
	if handle == "" {
		handle = "unknown handle"
	} else {
		handle = "@" + strings.TrimPrefix(handle, "@")
	}

	return fmt.Sprintf("%s on %s (auth: %s)", handle, server, authLabel(account.Auth.Method))
}

func authLabel(method domain.AuthMethod) string {
	if method == "" {
		return "none"
	}

	return string(method)
}

func connectionLine(state domain.ConnectionState, opts RenderOptions, s styles) string {
	label := s.key.Render("connection:")
	value := statusStyle(state.Status, s).Render(statusLabel(state.Status))

	line := lipgloss.JoinHorizontal(lipgloss.Top, label, " ", value)
	if !state.LastTestedAt.IsZero() {
		line += " " + s.meta.Render(fmt.Sprintf("(tested %s)", formatTestedRelative(state.LastTestedAt, opts.Now)))
	}

	if !opts.Now.IsZero() && state.IsStale(opts.Now, opts.StaleAfter) {
		line += " " + s.warning.Render("[stale]")
	}

	if state.Status == domain.ConnectionFailed && state.LastError != "" {
		line = lipgloss.JoinVertical(lipgloss.Left, line, s.warning.Render("  last error: "+state.LastError))
	}

	return line
}

func statusLabel(status domain.ConnectionStatus) string {
	if status == "" {
		return string(domain.ConnectionUntested)
	}
	return string(status)
}

func statusStyle(status domain.ConnectionStatus, s styles) lipgloss.Style {
	switch status {
	case domain.ConnectionConnected:
		return s.connected
	case domain.ConnectionFailed:
		return s.failed
	default:
		return s.untested
	}
}

func settingsLine(settings domain.PostingSettings, s styles) string {
	autoSplit := "off"
	if settings.AutoSplit {
		autoSplit = "on"
	}

	tag := settings.PostTag
	if tag == "" {
		tag = "none"
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render("auto-split:"), " ", s.detail.Render(autoSplit),
		"  ",
		s.key.Render("post tag:"), " ", s.detail.Render(tag),
	)
}

func formatTestedRelative(testedAt, now time.Time) string {
	if now.IsZero() {
		return testedAt.Format(time.RFC3339)
	}

	elapsed := now.Sub(testedAt)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour") + " ago"
	default:
		return plural(int(math.Floor(elapsed.Hours()/24)), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func renderDraft(draft application.Draft, opts RenderOptions, s styles) string {
	parts := []string{}
	if draft.Composition != nil {
		parts = draft.Composition.Parts()
	}

	header := fmt.Sprintf("strategy: %s  posts: %d", draft.Strategy, len(parts))
	if draft.Composition != nil {
		header += fmt.Sprintf("  account: %s", draft.Composition.Target())
	}

	lines := []string{
		s.title.Render("Thread Preview"),
		s.header.Render(header),
	}

	if scheduled, ok := draft.Composition.(domain.Scheduled); ok {
		lines = append(lines, s.detail.Render("scheduled for "+formatScheduled(scheduled.PostAt, opts.Now)))
	}

	for i, part := range parts {
		count := utf8.RuneCountInString(part)
		meta := s.meta.Render(fmt.Sprintf("%d/%d", count, domain.SegmentBudget))
		if count > domain.SegmentBudget {
			meta = s.warning.Render(fmt.Sprintf("%d/%d over budget", count, domain.SegmentBudget))
		}

		heading := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render(fmt.Sprintf("[%d/%d]", i+1, len(parts))),
			" ",
			renderBudgetBar(count, 24, s),
			" ",
			meta,
		)
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, heading, s.detail.Render(part))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatScheduled(at, now time.Time) string {
	if now.IsZero() || !at.After(now) {
		return at.Format("15:04 on 02 Jan 2006 MST")
	}

	remaining := at.Sub(now)
	if remaining < 24*time.Hour {
		hours := int(math.Ceil(remaining.Hours()))
		return fmt.Sprintf("%s (in %s)", at.Format("15:04 MST"), plural(hours, "hour"))
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	return fmt.Sprintf("%s (in %s)", at.Format("15:04 on 02 Jan MST"), plural(days, "day"))
}

// renderBudgetBar fills in proportion to how much of the per-post budget a
// segment uses.
func renderBudgetBar(used, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fill := s.barFill
	if used > domain.SegmentBudget {
		fill = s.barOver
		used = domain.SegmentBudget
	}

	filled := int(math.Round(float64(width) * float64(used) / float64(domain.SegmentBudget)))
	if filled < 0 {
		filled = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
