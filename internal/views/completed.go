package views

import (
	"sort"
	"time"

	"lifepm-cli/internal/model"
)

type DayGroup struct {
	Date  time.Time
	Label string
	Tasks []model.Task
}

// CompletedByDay groups finished tasks by completion day, most recent day
// first. The two most recent calendar days get "Today"/"Yesterday" labels
// when they match.
func CompletedByDay(p *model.Profile, now time.Time) []DayGroup {
	done := []model.Task{}
	for _, t := range p.Tasks {
		if t.Status == model.TaskDone && t.CompletedAt != nil {
			done = append(done, t)
		}
	}
	sort.SliceStable(done, func(i, j int) bool {
		return done[i].CompletedAt.After(*done[j].CompletedAt)
	})

	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	groups := []DayGroup{}
	for _, t := range done {
		day := startOfDay(*t.CompletedAt)
		idx := -1
		for i := range groups {
			if groups[i].Date.Equal(day) {
				idx = i
				break
			}
		}
		if idx < 0 {
			label := day.Format("Monday, January 2")
			switch {
			case day.Equal(today):
				label = "Today"
			case day.Equal(yesterday):
				label = "Yesterday"
			}
			groups = append(groups, DayGroup{Date: day, Label: label})
			idx = len(groups) - 1
		}
		groups[idx].Tasks = append(groups[idx].Tasks, t)
	}
	return groups
}
