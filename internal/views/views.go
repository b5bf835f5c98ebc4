// Package views holds the derived read models: stateless computations over
// a single profile, recomputed on every call. Nothing here mutates state;
// callers pass now explicitly so agenda math is deterministic under test.
package views

import (
	"sort"
	"time"

	"lifepm-cli/internal/model"
)

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return startOfDay(a).Equal(startOfDay(b))
}

// TodayTasks returns unfinished tasks flagged for today, highest priority
// first, ties broken by oldest creation first.
func TodayTasks(p *model.Profile) []model.Task {
	out := []model.Task{}
	for _, t := range p.Tasks {
		if t.IsToday && t.Status != model.TaskDone {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if d := out[i].Priority.Rank() - out[j].Priority.Rank(); d != 0 {
			return d < 0
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// CompletedToday returns tasks whose completedAt falls on now's date.
func CompletedToday(p *model.Profile, now time.Time) []model.Task {
	out := []model.Task{}
	for _, t := range p.Tasks {
		if t.CompletedAt != nil && sameDay(*t.CompletedAt, now) {
			out = append(out, t)
		}
	}
	return out
}

// FocusProjects returns non-archived projects flagged for focus.
func FocusProjects(p *model.Profile) []model.Project {
	out := []model.Project{}
	for _, pr := range p.Projects {
		if pr.IsFocus && !pr.Archived {
			out = append(out, pr)
		}
	}
	return out
}

// BacklogTasks returns unscheduled unfinished tasks that are not flagged
// for today, highest priority first, ties broken by newest creation first.
func BacklogTasks(p *model.Profile) []model.Task {
	out := []model.Task{}
	for _, t := range p.Tasks {
		if t.DueDate == nil && t.Status != model.TaskDone && !t.IsToday {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if d := out[i].Priority.Rank() - out[j].Priority.Rank(); d != 0 {
			return d < 0
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ProjectTasks returns a project's tasks in working order: in-progress
// first, done last, ties broken by oldest creation first.
func ProjectTasks(p *model.Profile, projectID string) []model.Task {
	order := map[model.TaskStatus]int{
		model.TaskInProgress: 0,
		model.TaskTodo:       1,
		model.TaskBacklog:    2,
		model.TaskBlocked:    3,
		model.TaskDone:       4,
	}
	out := []model.Task{}
	for _, t := range p.Tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if d := order[out[i].Status] - order[out[j].Status]; d != 0 {
			return d < 0
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
