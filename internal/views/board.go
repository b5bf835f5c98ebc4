package views

import (
	"lifepm-cli/internal/model"
)

type BoardFilter struct {
	// ProjectID keeps only tasks of one project when set.
	ProjectID string
	// AreaID keeps only tasks in one area (directly or through their
	// project) when set.
	AreaID string
}

type BoardColumn struct {
	Status model.TaskStatus
	Tasks  []model.Task
}

// Board groups the profile's tasks into one column per task status, in
// board order, after applying the optional filters.
func Board(p *model.Profile, f BoardFilter) []BoardColumn {
	projectArea := map[string]string{}
	for _, pr := range p.Projects {
		projectArea[pr.ID] = pr.AreaID
	}

	byStatus := map[model.TaskStatus][]model.Task{}
	for _, t := range p.Tasks {
		if f.ProjectID != "" && t.ProjectID != f.ProjectID {
			continue
		}
		if f.AreaID != "" {
			area := t.AreaID
			if area == "" {
				area = projectArea[t.ProjectID]
			}
			if area != f.AreaID {
				continue
			}
		}
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	cols := make([]BoardColumn, 0, len(model.TaskStatuses))
	for _, st := range model.TaskStatuses {
		tasks := byStatus[st]
		if tasks == nil {
			tasks = []model.Task{}
		}
		cols = append(cols, BoardColumn{Status: st, Tasks: tasks})
	}
	return cols
}
