package views

import (
	"testing"
	"time"

	"lifepm-cli/internal/model"
)

func tp(t time.Time) *time.Time { return &t }

func TestTodayTasksFilterAndOrder(t *testing.T) {
	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	p := &model.Profile{
		Tasks: []model.Task{
			{ID: "t-low", IsToday: true, Status: model.TaskTodo, Priority: model.PriorityLow, CreatedAt: base},
			{ID: "t-done", IsToday: true, Status: model.TaskDone, Priority: model.PriorityCritical, CreatedAt: base},
			{ID: "t-crit", IsToday: true, Status: model.TaskTodo, Priority: model.PriorityCritical, CreatedAt: base.Add(time.Hour)},
			{ID: "t-crit-old", IsToday: true, Status: model.TaskInProgress, Priority: model.PriorityCritical, CreatedAt: base},
			{ID: "t-off", IsToday: false, Status: model.TaskTodo, Priority: model.PriorityCritical, CreatedAt: base},
		},
	}

	got := TodayTasks(p)
	want := []string{"t-crit-old", "t-crit", "t-low"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestBacklogTasksFilterAndOrder(t *testing.T) {
	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	due := base.Add(24 * time.Hour)
	p := &model.Profile{
		Tasks: []model.Task{
			{ID: "t-old", Status: model.TaskTodo, Priority: model.PriorityHigh, CreatedAt: base},
			{ID: "t-new", Status: model.TaskBacklog, Priority: model.PriorityHigh, CreatedAt: base.Add(time.Hour)},
			{ID: "t-due", Status: model.TaskTodo, Priority: model.PriorityHigh, CreatedAt: base, DueDate: tp(due)},
			{ID: "t-today", Status: model.TaskTodo, Priority: model.PriorityHigh, CreatedAt: base, IsToday: true},
			{ID: "t-done", Status: model.TaskDone, Priority: model.PriorityHigh, CreatedAt: base},
		},
	}

	got := BacklogTasks(p)
	// Same priority: newest first.
	want := []string{"t-new", "t-old"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d: %+v", len(got), len(want), got)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestWeekBucketsAndLabels(t *testing.T) {
	// A Friday.
	now := time.Date(2026, 1, 2, 15, 30, 0, 0, time.UTC)
	p := &model.Profile{
		Tasks: []model.Task{
			{ID: "t-overdue", Status: model.TaskTodo, DueDate: tp(now.AddDate(0, 0, -2))},
			{ID: "t-today", Status: model.TaskTodo, DueDate: tp(now.Add(2 * time.Hour))},
			{ID: "t-tomorrow", Status: model.TaskTodo, DueDate: tp(now.AddDate(0, 0, 1))},
			{ID: "t-sixth", Status: model.TaskTodo, DueDate: tp(now.AddDate(0, 0, 6))},
			{ID: "t-eighth", Status: model.TaskTodo, DueDate: tp(now.AddDate(0, 0, 8))},
			{ID: "t-done", Status: model.TaskDone, DueDate: tp(now)},
			{ID: "t-undated", Status: model.TaskTodo},
		},
	}

	w := Week(p, now)
	if len(w.Overdue) != 1 || w.Overdue[0].ID != "t-overdue" {
		t.Fatalf("overdue = %+v", w.Overdue)
	}
	if len(w.Days[0].Tasks) != 1 || w.Days[0].Tasks[0].ID != "t-today" {
		t.Fatalf("day 0 = %+v", w.Days[0].Tasks)
	}
	if len(w.Days[1].Tasks) != 1 || w.Days[1].Tasks[0].ID != "t-tomorrow" {
		t.Fatalf("day 1 = %+v", w.Days[1].Tasks)
	}
	if len(w.Days[6].Tasks) != 1 || w.Days[6].Tasks[0].ID != "t-sixth" {
		t.Fatalf("day 6 = %+v", w.Days[6].Tasks)
	}

	if w.Days[0].Label != "Today - January 2" {
		t.Fatalf("day 0 label = %q", w.Days[0].Label)
	}
	if w.Days[1].Label != "Tomorrow - January 3" {
		t.Fatalf("day 1 label = %q", w.Days[1].Label)
	}
	if w.Days[2].Label != "Sunday, January 4" {
		t.Fatalf("day 2 label = %q", w.Days[2].Label)
	}

	// Beyond the window and done/undated tasks are excluded entirely.
	if w.TotalTasks() != 4 {
		t.Fatalf("TotalTasks = %d, want 4", w.TotalTasks())
	}
}

func TestCompletedByDayGroupsAndLabels(t *testing.T) {
	now := time.Date(2026, 1, 2, 18, 0, 0, 0, time.UTC)
	p := &model.Profile{
		Tasks: []model.Task{
			{ID: "t-a", Status: model.TaskDone, CompletedAt: tp(now.Add(-time.Hour))},
			{ID: "t-b", Status: model.TaskDone, CompletedAt: tp(now.Add(-2 * time.Hour))},
			{ID: "t-c", Status: model.TaskDone, CompletedAt: tp(now.AddDate(0, 0, -1))},
			{ID: "t-d", Status: model.TaskDone, CompletedAt: tp(now.AddDate(0, 0, -9))},
			{ID: "t-open", Status: model.TaskTodo},
		},
	}

	groups := CompletedByDay(p, now)
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	if groups[0].Label != "Today" || len(groups[0].Tasks) != 2 {
		t.Fatalf("group 0 = %q with %d tasks", groups[0].Label, len(groups[0].Tasks))
	}
	// Within a day, most recent completion first.
	if groups[0].Tasks[0].ID != "t-a" || groups[0].Tasks[1].ID != "t-b" {
		t.Fatalf("group 0 order = %+v", groups[0].Tasks)
	}
	if groups[1].Label != "Yesterday" {
		t.Fatalf("group 1 label = %q", groups[1].Label)
	}
	if groups[2].Label != "Wednesday, December 24" {
		t.Fatalf("group 2 label = %q", groups[2].Label)
	}
}

func TestAreaStats(t *testing.T) {
	p := &model.Profile{
		Areas: []model.Area{
			{ID: "area-1", Name: "Health"},
			{ID: "area-empty", Name: "Empty"},
		},
		Projects: []model.Project{
			{ID: "proj-1", AreaID: "area-1"},
			{ID: "proj-archived", AreaID: "area-1", Archived: true},
		},
		Tasks: []model.Task{
			{ID: "t-1", ProjectID: "proj-1", Status: model.TaskDone},
			{ID: "t-2", ProjectID: "proj-1", Status: model.TaskTodo},
			{ID: "t-3", AreaID: "area-1", Status: model.TaskDone},
			{ID: "t-other", Status: model.TaskTodo},
		},
	}

	stats := AreaStats(p)
	if len(stats) != 2 {
		t.Fatalf("stats = %d, want 2", len(stats))
	}

	health := stats[0]
	if health.Projects != 1 {
		t.Fatalf("projects = %d, want 1 (archived excluded)", health.Projects)
	}
	if health.TotalTasks != 3 || health.CompletedTasks != 2 {
		t.Fatalf("tasks = %d/%d, want 2/3", health.CompletedTasks, health.TotalTasks)
	}
	if health.Progress < 0.66 || health.Progress > 0.67 {
		t.Fatalf("progress = %v", health.Progress)
	}

	empty := stats[1]
	if empty.TotalTasks != 0 || empty.Progress != 0 {
		t.Fatalf("empty area stat = %+v", empty)
	}
}

func TestProjectProgress(t *testing.T) {
	p := &model.Profile{
		Tasks: []model.Task{
			{ID: "t-1", ProjectID: "proj-1", Status: model.TaskDone},
			{ID: "t-2", ProjectID: "proj-1", Status: model.TaskTodo},
		},
	}

	completed, total, progress := ProjectProgress(p, "proj-1")
	if completed != 1 || total != 2 || progress != 0.5 {
		t.Fatalf("progress = %d/%d %v", completed, total, progress)
	}

	completed, total, progress = ProjectProgress(p, "proj-empty")
	if completed != 0 || total != 0 || progress != 0 {
		t.Fatalf("empty project progress = %d/%d %v", completed, total, progress)
	}
}

func TestProjectTasksOrder(t *testing.T) {
	p := &model.Profile{
		Tasks: []model.Task{
			{ID: "t-done", ProjectID: "proj-1", Status: model.TaskDone, Priority: model.PriorityCritical},
			{ID: "t-todo", ProjectID: "proj-1", Status: model.TaskTodo, Priority: model.PriorityLow},
			{ID: "t-wip", ProjectID: "proj-1", Status: model.TaskInProgress, Priority: model.PriorityLow},
			{ID: "t-elsewhere", ProjectID: "proj-2", Status: model.TaskTodo},
		},
	}

	got := ProjectTasks(p, "proj-1")
	want := []string{"t-wip", "t-todo", "t-done"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestBoardGroupsAndFilters(t *testing.T) {
	p := &model.Profile{
		Projects: []model.Project{
			{ID: "proj-1", AreaID: "area-1"},
		},
		Tasks: []model.Task{
			{ID: "t-1", ProjectID: "proj-1", Status: model.TaskTodo},
			{ID: "t-2", AreaID: "area-1", Status: model.TaskInProgress},
			{ID: "t-3", AreaID: "area-2", Status: model.TaskTodo},
		},
	}

	cols := Board(p, BoardFilter{})
	if len(cols) != len(model.TaskStatuses) {
		t.Fatalf("columns = %d", len(cols))
	}
	var todo BoardColumn
	for _, c := range cols {
		if c.Status == model.TaskTodo {
			todo = c
		}
	}
	if len(todo.Tasks) != 2 {
		t.Fatalf("todo column = %+v", todo.Tasks)
	}

	// Area filter matches directly and via the task's project.
	cols = Board(p, BoardFilter{AreaID: "area-1"})
	total := 0
	for _, c := range cols {
		total += len(c.Tasks)
	}
	if total != 2 {
		t.Fatalf("area-filtered total = %d, want 2", total)
	}

	cols = Board(p, BoardFilter{ProjectID: "proj-1"})
	total = 0
	for _, c := range cols {
		total += len(c.Tasks)
	}
	if total != 1 {
		t.Fatalf("project-filtered total = %d, want 1", total)
	}
}
