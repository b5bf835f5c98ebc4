package mutate

import (
	"strings"
	"time"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/store"
)

type ProjectFields struct {
	Title       string
	Description string
	AreaID      string
	Status      model.ProjectStatus
	Priority    model.Priority
	Tags        []string
	StartDate   *time.Time
	DueDate     *time.Time
	GoalType    model.GoalType
	IsFocus     bool
}

type ProjectPatch struct {
	Title       *string
	Description *string
	AreaID      *string
	Status      *model.ProjectStatus
	Priority    *model.Priority
	Tags        *[]string
	StartDate   *time.Time
	ClearStart  bool
	DueDate     *time.Time
	ClearDue    bool
	GoalType    *model.GoalType
	Archived    *bool
	IsFocus     *bool
}

func CreateProject(db *store.DB, now time.Time, fields ProjectFields) (model.Project, error) {
	p := db.CurrentProfile()
	if p == nil {
		return model.Project{}, ErrNoProfile
	}
	pr := model.Project{
		ID:          store.NextID(db, "proj"),
		Title:       strings.TrimSpace(fields.Title),
		Description: fields.Description,
		AreaID:      fields.AreaID,
		Status:      fields.Status,
		Priority:    fields.Priority,
		Tags:        fields.Tags,
		StartDate:   fields.StartDate,
		DueDate:     fields.DueDate,
		GoalType:    fields.GoalType,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsFocus:     fields.IsFocus,
	}
	if pr.Status == "" {
		pr.Status = model.ProjectBacklog
	}
	if pr.Priority == "" {
		pr.Priority = model.PriorityMedium
	}
	if pr.Tags == nil {
		pr.Tags = []string{}
	}
	p.Projects = append(p.Projects, pr)
	return pr, nil
}

// UpdateProject merges the patch into the matching project and refreshes
// updatedAt.
func UpdateProject(db *store.DB, now time.Time, id string, patch ProjectPatch) (*model.Project, error) {
	id = strings.TrimSpace(id)
	pr, ok := db.FindProject(id)
	if !ok {
		return nil, NotFoundError{Kind: "project", ID: id}
	}
	if patch.Title != nil {
		pr.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		pr.Description = *patch.Description
	}
	if patch.AreaID != nil {
		pr.AreaID = *patch.AreaID
	}
	if patch.Status != nil {
		pr.Status = *patch.Status
	}
	if patch.Priority != nil {
		pr.Priority = *patch.Priority
	}
	if patch.Tags != nil {
		pr.Tags = *patch.Tags
	}
	if patch.StartDate != nil {
		pr.StartDate = patch.StartDate
	}
	if patch.ClearStart {
		pr.StartDate = nil
	}
	if patch.DueDate != nil {
		pr.DueDate = patch.DueDate
	}
	if patch.ClearDue {
		pr.DueDate = nil
	}
	if patch.GoalType != nil {
		pr.GoalType = *patch.GoalType
	}
	if patch.Archived != nil {
		pr.Archived = *patch.Archived
	}
	if patch.IsFocus != nil {
		pr.IsFocus = *patch.IsFocus
	}
	pr.UpdatedAt = now
	return pr, nil
}

type DeleteProjectResult struct {
	DeletedTasks int
}

// DeleteProject removes the project and every task attached to it in one
// state transition, so no intermediate state with dangling tasks can ever
// be observed or persisted.
func DeleteProject(db *store.DB, id string) (DeleteProjectResult, error) {
	id = strings.TrimSpace(id)
	p := db.CurrentProfile()
	if p == nil {
		return DeleteProjectResult{}, ErrNoProfile
	}
	if _, ok := db.FindProject(id); !ok {
		return DeleteProjectResult{}, NotFoundError{Kind: "project", ID: id}
	}

	keptProjects := p.Projects[:0:0]
	for _, pr := range p.Projects {
		if pr.ID != id {
			keptProjects = append(keptProjects, pr)
		}
	}
	keptTasks := p.Tasks[:0:0]
	deleted := 0
	for _, t := range p.Tasks {
		if t.ProjectID == id {
			deleted++
			continue
		}
		keptTasks = append(keptTasks, t)
	}
	p.Projects = keptProjects
	p.Tasks = keptTasks
	return DeleteProjectResult{DeletedTasks: deleted}, nil
}

// ArchiveProject marks the project archived and completed.
func ArchiveProject(db *store.DB, now time.Time, id string) (*model.Project, error) {
	archived := true
	status := model.ProjectCompleted
	return UpdateProject(db, now, id, ProjectPatch{Archived: &archived, Status: &status})
}

func ToggleProjectFocus(db *store.DB, now time.Time, id string) (*model.Project, error) {
	id = strings.TrimSpace(id)
	pr, ok := db.FindProject(id)
	if !ok {
		return nil, NotFoundError{Kind: "project", ID: id}
	}
	focus := !pr.IsFocus
	return UpdateProject(db, now, id, ProjectPatch{IsFocus: &focus})
}
