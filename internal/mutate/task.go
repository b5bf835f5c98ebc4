package mutate

import (
	"strings"
	"time"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/store"
)

type TaskFields struct {
	ProjectID       string
	ParentTaskID    string
	Title           string
	Description     string
	Status          model.TaskStatus
	Priority        model.Priority
	Tags            []string
	AreaID          string
	EstimateMinutes int
	DueDate         *time.Time
	IsToday         bool
	ChecklistItems  []model.ChecklistItem
}

type TaskPatch struct {
	ProjectID        *string
	ParentTaskID     *string
	Title            *string
	Description      *string
	Status           *model.TaskStatus
	Priority         *model.Priority
	Tags             *[]string
	AreaID           *string
	EstimateMinutes  *int
	TimeSpentMinutes *int
	DueDate          *time.Time
	ClearDue         bool
	IsToday          *bool
	ChecklistItems   *[]model.ChecklistItem
}

func CreateTask(db *store.DB, now time.Time, fields TaskFields) (model.Task, error) {
	p := db.CurrentProfile()
	if p == nil {
		return model.Task{}, ErrNoProfile
	}
	t := model.Task{
		ID:              store.NextID(db, "task"),
		ProjectID:       fields.ProjectID,
		ParentTaskID:    fields.ParentTaskID,
		Title:           strings.TrimSpace(fields.Title),
		Description:     fields.Description,
		Status:          fields.Status,
		Priority:        fields.Priority,
		Tags:            fields.Tags,
		AreaID:          fields.AreaID,
		EstimateMinutes: fields.EstimateMinutes,
		DueDate:         fields.DueDate,
		IsToday:         fields.IsToday,
		CreatedAt:       now,
		UpdatedAt:       now,
		ChecklistItems:  fields.ChecklistItems,
	}
	if t.Status == "" {
		t.Status = model.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.ChecklistItems == nil {
		t.ChecklistItems = []model.ChecklistItem{}
	}
	p.Tasks = append(p.Tasks, t)
	return t, nil
}

// UpdateTask merges the patch into the matching task and refreshes
// updatedAt. completedAt is stamped exactly when status transitions into
// done from a non-done value; it is never cleared when status moves away
// from done again.
func UpdateTask(db *store.DB, now time.Time, id string, patch TaskPatch) (*model.Task, error) {
	id = strings.TrimSpace(id)
	t, ok := db.FindTask(id)
	if !ok {
		return nil, NotFoundError{Kind: "task", ID: id}
	}

	prevStatus := t.Status

	if patch.ProjectID != nil {
		t.ProjectID = *patch.ProjectID
	}
	if patch.ParentTaskID != nil {
		t.ParentTaskID = *patch.ParentTaskID
	}
	if patch.Title != nil {
		t.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Tags != nil {
		t.Tags = *patch.Tags
	}
	if patch.AreaID != nil {
		t.AreaID = *patch.AreaID
	}
	if patch.EstimateMinutes != nil {
		t.EstimateMinutes = *patch.EstimateMinutes
	}
	if patch.TimeSpentMinutes != nil {
		t.TimeSpentMinutes = *patch.TimeSpentMinutes
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	if patch.ClearDue {
		t.DueDate = nil
	}
	if patch.IsToday != nil {
		t.IsToday = *patch.IsToday
	}
	if patch.ChecklistItems != nil {
		t.ChecklistItems = *patch.ChecklistItems
	}

	t.UpdatedAt = now
	if patch.Status != nil && *patch.Status == model.TaskDone && prevStatus != model.TaskDone {
		completed := now
		t.CompletedAt = &completed
	}
	return t, nil
}

func DeleteTask(db *store.DB, id string) error {
	id = strings.TrimSpace(id)
	p := db.CurrentProfile()
	if p == nil {
		return ErrNoProfile
	}
	if _, ok := db.FindTask(id); !ok {
		return NotFoundError{Kind: "task", ID: id}
	}
	kept := p.Tasks[:0:0]
	for _, t := range p.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	p.Tasks = kept
	return nil
}

func SetTaskStatus(db *store.DB, now time.Time, id string, status model.TaskStatus) (*model.Task, error) {
	return UpdateTask(db, now, id, TaskPatch{Status: &status})
}

// ToggleTaskToday flips the task's isToday flag (absent means false).
func ToggleTaskToday(db *store.DB, now time.Time, id string) (*model.Task, error) {
	id = strings.TrimSpace(id)
	t, ok := db.FindTask(id)
	if !ok {
		return nil, NotFoundError{Kind: "task", ID: id}
	}
	today := !t.IsToday
	return UpdateTask(db, now, id, TaskPatch{IsToday: &today})
}

func AddChecklistItem(db *store.DB, now time.Time, taskID, content string) (*model.Task, error) {
	taskID = strings.TrimSpace(taskID)
	t, ok := db.FindTask(taskID)
	if !ok {
		return nil, NotFoundError{Kind: "task", ID: taskID}
	}
	items := append(append([]model.ChecklistItem{}, t.ChecklistItems...), model.ChecklistItem{
		ID:      store.NextID(db, "chk"),
		Content: strings.TrimSpace(content),
	})
	return UpdateTask(db, now, taskID, TaskPatch{ChecklistItems: &items})
}

func ToggleChecklistItem(db *store.DB, now time.Time, taskID, itemID string) (*model.Task, error) {
	taskID = strings.TrimSpace(taskID)
	itemID = strings.TrimSpace(itemID)
	t, ok := db.FindTask(taskID)
	if !ok {
		return nil, NotFoundError{Kind: "task", ID: taskID}
	}
	items := append([]model.ChecklistItem{}, t.ChecklistItems...)
	found := false
	for i := range items {
		if items[i].ID == itemID {
			items[i].Done = !items[i].Done
			found = true
			break
		}
	}
	if !found {
		return nil, NotFoundError{Kind: "checklist item", ID: itemID}
	}
	return UpdateTask(db, now, taskID, TaskPatch{ChecklistItems: &items})
}

func RemoveChecklistItem(db *store.DB, now time.Time, taskID, itemID string) (*model.Task, error) {
	taskID = strings.TrimSpace(taskID)
	itemID = strings.TrimSpace(itemID)
	t, ok := db.FindTask(taskID)
	if !ok {
		return nil, NotFoundError{Kind: "task", ID: taskID}
	}
	items := []model.ChecklistItem{}
	found := false
	for _, it := range t.ChecklistItems {
		if it.ID == itemID {
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		return nil, NotFoundError{Kind: "checklist item", ID: itemID}
	}
	return UpdateTask(db, now, taskID, TaskPatch{ChecklistItems: &items})
}
