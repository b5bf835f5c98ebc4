package views

import (
	"time"

	"lifepm-cli/internal/model"
)

type WeekDay struct {
	Date  time.Time
	Label string
	Tasks []model.Task
}

type WeekAgenda struct {
	// Overdue holds unfinished tasks due strictly before today.
	Overdue []model.Task
	// Days covers today plus the next six days.
	Days [7]WeekDay
}

func (w WeekAgenda) TotalTasks() int {
	n := len(w.Overdue)
	for _, d := range w.Days {
		n += len(d.Tasks)
	}
	return n
}

// Week buckets unfinished due tasks into the seven days starting today,
// plus a separate overdue bucket.
func Week(p *model.Profile, now time.Time) WeekAgenda {
	today := startOfDay(now)

	var agenda WeekAgenda
	agenda.Overdue = []model.Task{}
	for _, t := range p.Tasks {
		if t.DueDate == nil || t.Status == model.TaskDone {
			continue
		}
		if startOfDay(*t.DueDate).Before(today) {
			agenda.Overdue = append(agenda.Overdue, t)
		}
	}

	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i)
		label := date.Format("Monday, January 2")
		switch i {
		case 0:
			label = "Today - " + date.Format("January 2")
		case 1:
			label = "Tomorrow - " + date.Format("January 2")
		}

		tasks := []model.Task{}
		for _, t := range p.Tasks {
			if t.DueDate == nil || t.Status == model.TaskDone {
				continue
			}
			if startOfDay(*t.DueDate).Equal(date) {
				tasks = append(tasks, t)
			}
		}
		agenda.Days[i] = WeekDay{Date: date, Label: label, Tasks: tasks}
	}
	return agenda
}
