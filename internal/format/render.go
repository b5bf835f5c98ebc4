package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/views"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	overdueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	priorityStyles = map[model.Priority]lipgloss.Style{
		model.PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		model.PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		model.PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		model.PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

func priorityBadge(p model.Priority) string {
	s, ok := priorityStyles[p]
	if !ok {
		return string(p)
	}
	return s.Render(string(p))
}

func taskLine(t model.Task) string {
	mark := "[ ]"
	title := t.Title
	switch {
	case t.Status == model.TaskDone:
		mark = "[x]"
		title = doneStyle.Render(title)
	case t.Status == model.TaskInProgress:
		mark = "[~]"
	case t.Status == model.TaskBlocked:
		mark = "[!]"
	}
	line := fmt.Sprintf("  %s %s %s", mark, priorityBadge(t.Priority), title)
	if len(t.ChecklistItems) > 0 {
		done := 0
		for _, c := range t.ChecklistItems {
			if c.Done {
				done++
			}
		}
		line += dimStyle.Render(fmt.Sprintf(" (%d/%d)", done, len(t.ChecklistItems)))
	}
	return line
}

// RenderTaskList renders a heading followed by one line per task.
func RenderTaskList(heading string, tasks []model.Task) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(dimStyle.Render("  no tasks"))
		b.WriteString("\n")
		return b.String()
	}
	for _, t := range tasks {
		b.WriteString(taskLine(t))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderWeek renders the weekly agenda: an overdue section when non-empty,
// then one section per day.
func RenderWeek(w views.WeekAgenda) string {
	var b strings.Builder
	if len(w.Overdue) > 0 {
		b.WriteString(overdueStyle.Render("Overdue"))
		b.WriteString("\n")
		for _, t := range w.Overdue {
			b.WriteString(taskLine(t))
			b.WriteString("\n")
		}
	}
	for _, d := range w.Days {
		b.WriteString(labelStyle.Render(d.Label))
		b.WriteString("\n")
		if len(d.Tasks) == 0 {
			b.WriteString(dimStyle.Render("  -"))
			b.WriteString("\n")
			continue
		}
		for _, t := range d.Tasks {
			b.WriteString(taskLine(t))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderCompleted renders completed tasks grouped by day, newest first.
func RenderCompleted(groups []views.DayGroup) string {
	if len(groups) == 0 {
		return dimStyle.Render("no completed tasks") + "\n"
	}
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(labelStyle.Render(g.Label))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d)", len(g.Tasks))))
		b.WriteString("\n")
		for _, t := range g.Tasks {
			b.WriteString(taskLine(t))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// progressBar renders a completion fraction (0..1) as a fixed-width bar
// with a percent suffix.
func progressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3.0f%%", bar, progress*100)
}

// RenderAreaStats renders one line per area with its progress bar.
func RenderAreaStats(stats []views.AreaStat) string {
	var b strings.Builder
	for _, s := range stats {
		b.WriteString(headingStyle.Render(s.Area.Name))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			progressBar(s.Progress, 20),
			dimStyle.Render(fmt.Sprintf("%d projects, %d/%d tasks", s.Projects, s.CompletedTasks, s.TotalTasks))))
	}
	return b.String()
}

// RenderBoard renders one section per status column.
func RenderBoard(cols []views.BoardColumn) string {
	var b strings.Builder
	for _, c := range cols {
		b.WriteString(labelStyle.Render(string(c.Status)))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d)", len(c.Tasks))))
		b.WriteString("\n")
		for _, t := range c.Tasks {
			b.WriteString(taskLine(t))
			b.WriteString("\n")
		}
	}
	return b.String()
}
