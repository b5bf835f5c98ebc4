package views

import (
	"lifepm-cli/internal/model"
)

type AreaStat struct {
	Area           model.Area
	Projects       int
	TotalTasks     int
	CompletedTasks int
	Progress       float64
}

// AreaStats aggregates per area: non-archived projects filed under it, and
// tasks belonging to it either directly or through their project. Progress
// is the completed/total fraction, 0 when the area has no tasks.
func AreaStats(p *model.Profile) []AreaStat {
	projectArea := map[string]string{}
	for _, pr := range p.Projects {
		projectArea[pr.ID] = pr.AreaID
	}

	out := []AreaStat{}
	for _, a := range p.Areas {
		stat := AreaStat{Area: a}
		for _, pr := range p.Projects {
			if pr.AreaID == a.ID && !pr.Archived {
				stat.Projects++
			}
		}
		for _, t := range p.Tasks {
			if t.AreaID != a.ID && projectArea[t.ProjectID] != a.ID {
				continue
			}
			stat.TotalTasks++
			if t.Status == model.TaskDone {
				stat.CompletedTasks++
			}
		}
		if stat.TotalTasks > 0 {
			stat.Progress = float64(stat.CompletedTasks) / float64(stat.TotalTasks)
		}
		out = append(out, stat)
	}
	return out
}

// ProjectProgress returns the completed/total task counts for a project
// and the completed/total fraction, 0 when the project has no tasks.
func ProjectProgress(p *model.Profile, projectID string) (completed, total int, progress float64) {
	for _, t := range p.Tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == model.TaskDone {
			completed++
		}
	}
	if total > 0 {
		progress = float64(completed) / float64(total)
	}
	return completed, total, progress
}

// ChecklistProgress returns the fraction of a task's checklist items that
// are done, 0 for an empty checklist.
func ChecklistProgress(t model.Task) float64 {
	if len(t.ChecklistItems) == 0 {
		return 0
	}
	done := 0
	for _, c := range t.ChecklistItems {
		if c.Done {
			done++
		}
	}
	return float64(done) / float64(len(t.ChecklistItems))
}
