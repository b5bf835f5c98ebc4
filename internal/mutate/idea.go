package mutate

import (
	"strings"
	"time"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/store"
)

type IdeaFields struct {
	Title  string
	Notes  string
	AreaID string
	Tags   []string
}

type IdeaPatch struct {
	Title    *string
	Notes    *string
	AreaID   *string
	Tags     *[]string
	Archived *bool
}

func CreateIdea(db *store.DB, now time.Time, fields IdeaFields) (model.Idea, error) {
	p := db.CurrentProfile()
	if p == nil {
		return model.Idea{}, ErrNoProfile
	}
	idea := model.Idea{
		ID:        store.NextID(db, "idea"),
		Title:     strings.TrimSpace(fields.Title),
		Notes:     fields.Notes,
		AreaID:    fields.AreaID,
		Tags:      fields.Tags,
		CreatedAt: now,
	}
	if idea.Tags == nil {
		idea.Tags = []string{}
	}
	p.Ideas = append(p.Ideas, idea)
	return idea, nil
}

func UpdateIdea(db *store.DB, id string, patch IdeaPatch) (*model.Idea, error) {
	id = strings.TrimSpace(id)
	idea, ok := db.FindIdea(id)
	if !ok {
		return nil, NotFoundError{Kind: "idea", ID: id}
	}
	if patch.Title != nil {
		idea.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Notes != nil {
		idea.Notes = *patch.Notes
	}
	if patch.AreaID != nil {
		idea.AreaID = *patch.AreaID
	}
	if patch.Tags != nil {
		idea.Tags = *patch.Tags
	}
	if patch.Archived != nil {
		idea.Archived = *patch.Archived
	}
	return idea, nil
}

func DeleteIdea(db *store.DB, id string) error {
	id = strings.TrimSpace(id)
	p := db.CurrentProfile()
	if p == nil {
		return ErrNoProfile
	}
	if _, ok := db.FindIdea(id); !ok {
		return NotFoundError{Kind: "idea", ID: id}
	}
	p.Ideas = removeIdea(p.Ideas, id)
	return nil
}

func ArchiveIdea(db *store.DB, id string) (*model.Idea, error) {
	archived := true
	return UpdateIdea(db, id, IdeaPatch{Archived: &archived})
}

// ConvertIdeaToProject consumes the idea and creates a project carrying
// over title, notes (as description), area, and tags, in one transition.
// The project lands in backlog with medium priority. When the idea has no
// area the profile's first area is used, or empty when none exist.
func ConvertIdeaToProject(db *store.DB, now time.Time, ideaID string) (model.Project, error) {
	ideaID = strings.TrimSpace(ideaID)
	p := db.CurrentProfile()
	if p == nil {
		return model.Project{}, ErrNoProfile
	}
	idea, ok := db.FindIdea(ideaID)
	if !ok {
		return model.Project{}, NotFoundError{Kind: "idea", ID: ideaID}
	}

	areaID := idea.AreaID
	if areaID == "" && len(p.Areas) > 0 {
		areaID = p.Areas[0].ID
	}
	pr := model.Project{
		ID:          store.NextID(db, "proj"),
		Title:       idea.Title,
		Description: idea.Notes,
		AreaID:      areaID,
		Status:      model.ProjectBacklog,
		Priority:    model.PriorityMedium,
		Tags:        append([]string{}, idea.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.Projects = append(p.Projects, pr)
	p.Ideas = removeIdea(p.Ideas, ideaID)
	return pr, nil
}

// ConvertIdeaToTask consumes the idea and creates a todo task, optionally
// attached to a project.
func ConvertIdeaToTask(db *store.DB, now time.Time, ideaID, projectID string) (model.Task, error) {
	ideaID = strings.TrimSpace(ideaID)
	p := db.CurrentProfile()
	if p == nil {
		return model.Task{}, ErrNoProfile
	}
	idea, ok := db.FindIdea(ideaID)
	if !ok {
		return model.Task{}, NotFoundError{Kind: "idea", ID: ideaID}
	}

	t := model.Task{
		ID:             store.NextID(db, "task"),
		ProjectID:      strings.TrimSpace(projectID),
		Title:          idea.Title,
		Description:    idea.Notes,
		Status:         model.TaskTodo,
		Priority:       model.PriorityMedium,
		Tags:           append([]string{}, idea.Tags...),
		AreaID:         idea.AreaID,
		CreatedAt:      now,
		UpdatedAt:      now,
		ChecklistItems: []model.ChecklistItem{},
	}
	p.Tasks = append(p.Tasks, t)
	p.Ideas = removeIdea(p.Ideas, ideaID)
	return t, nil
}

func removeIdea(ideas []model.Idea, id string) []model.Idea {
	kept := ideas[:0:0]
	for _, i := range ideas {
		if i.ID != id {
			kept = append(kept, i)
		}
	}
	return kept
}
