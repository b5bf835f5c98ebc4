package store

import (
	"time"

	"lifepm-cli/internal/model"
)

// DefaultProfile builds the example profile generated the first time no
// data exists. The structure is fixed; only ids and timestamps vary.
// All cross-references (areaId, tags, projectId) point at ids generated
// within this call.
func DefaultProfile(now time.Time) model.Profile {
	areas := []model.Area{
		{ID: seedID("area"), Name: "Work & Career", Description: "Professional goals and tasks", Color: "area-work", Icon: "briefcase"},
		{ID: seedID("area"), Name: "Health & Fitness", Description: "Physical and mental wellness", Color: "area-health", Icon: "heart"},
		{ID: seedID("area"), Name: "Relationships", Description: "Family, friends, and social connections", Color: "area-relationships", Icon: "users"},
		{ID: seedID("area"), Name: "Learning", Description: "Education and skill development", Color: "area-learning", Icon: "book"},
		{ID: seedID("area"), Name: "Finances", Description: "Money management and investments", Color: "area-finances", Icon: "wallet"},
		{ID: seedID("area"), Name: "Home", Description: "Living space and environment", Color: "area-home", Icon: "home"},
		{ID: seedID("area"), Name: "Personal Growth", Description: "Self-improvement and habits", Color: "area-personal", Icon: "sparkles"},
	}

	tags := []model.Tag{
		{ID: seedID("tag"), Name: "Deep Work", Color: "#3b82f6"},
		{ID: seedID("tag"), Name: "Errand", Color: "#f59e0b"},
		{ID: seedID("tag"), Name: "High Impact", Color: "#ef4444"},
		{ID: seedID("tag"), Name: "Low Energy", Color: "#10b981"},
		{ID: seedID("tag"), Name: "Quick Win", Color: "#8b5cf6"},
	}

	workArea := areaByName(areas, "Work & Career")
	healthArea := areaByName(areas, "Health & Fitness")
	learningArea := areaByName(areas, "Learning")
	homeArea := areaByName(areas, "Home")

	deepWorkTag := tagByName(tags, "Deep Work")
	highImpactTag := tagByName(tags, "High Impact")
	quickWinTag := tagByName(tags, "Quick Win")

	startDate := now
	projects := []model.Project{
		{
			ID:          seedID("proj"),
			Title:       "Build 3-Day Workout Routine",
			Description: "Design and test a sustainable workout routine that fits my schedule",
			AreaID:      healthArea,
			Status:      model.ProjectActive,
			Priority:    model.PriorityHigh,
			Tags:        []string{highImpactTag},
			StartDate:   &startDate,
			CreatedAt:   now,
			UpdatedAt:   now,
			IsFocus:     true,
		},
		{
			ID:          seedID("proj"),
			Title:       "Update Resume & LinkedIn",
			Description: "Refresh professional profiles with recent achievements and skills",
			AreaID:      workArea,
			Status:      model.ProjectActive,
			Priority:    model.PriorityMedium,
			Tags:        []string{deepWorkTag},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          seedID("proj"),
			Title:       "Declutter Bedroom",
			Description: "Marie Kondo style cleanup and organization",
			AreaID:      homeArea,
			Status:      model.ProjectBacklog,
			Priority:    model.PriorityLow,
			Tags:        []string{quickWinTag},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	completedAt := now
	dueDate := now.Add(7 * 24 * time.Hour)
	tasks := []model.Task{
		{
			ID:             seedID("task"),
			ProjectID:      projects[0].ID,
			Title:          "Research workout split options",
			Description:    "Look into push/pull/legs vs upper/lower splits",
			Status:         model.TaskDone,
			Priority:       model.PriorityMedium,
			Tags:           []string{},
			CreatedAt:      now,
			UpdatedAt:      now,
			CompletedAt:    &completedAt,
			ChecklistItems: []model.ChecklistItem{},
		},
		{
			ID:          seedID("task"),
			ProjectID:   projects[0].ID,
			Title:       "Create Day 1 routine (Push)",
			Description: "Chest, shoulders, triceps exercises",
			Status:      model.TaskInProgress,
			Priority:    model.PriorityHigh,
			Tags:        []string{},
			IsToday:     true,
			CreatedAt:   now,
			UpdatedAt:   now,
			ChecklistItems: []model.ChecklistItem{
				{ID: seedID("chk"), Content: "Choose chest exercises", Done: true},
				{ID: seedID("chk"), Content: "Add shoulder exercises", Done: false},
				{ID: seedID("chk"), Content: "Add tricep finishers", Done: false},
			},
		},
		{
			ID:             seedID("task"),
			ProjectID:      projects[0].ID,
			Title:          "Create Day 2 routine (Pull)",
			Status:         model.TaskTodo,
			Priority:       model.PriorityHigh,
			Tags:           []string{},
			CreatedAt:      now,
			UpdatedAt:      now,
			ChecklistItems: []model.ChecklistItem{},
		},
		{
			ID:              seedID("task"),
			ProjectID:       projects[1].ID,
			Title:           "List recent accomplishments",
			Status:          model.TaskInProgress,
			Priority:        model.PriorityHigh,
			Tags:            []string{deepWorkTag},
			EstimateMinutes: 60,
			CreatedAt:       now,
			UpdatedAt:       now,
			ChecklistItems:  []model.ChecklistItem{},
		},
		{
			ID:             seedID("task"),
			ProjectID:      projects[1].ID,
			Title:          "Update skills section",
			Status:         model.TaskTodo,
			Priority:       model.PriorityMedium,
			Tags:           []string{},
			CreatedAt:      now,
			UpdatedAt:      now,
			ChecklistItems: []model.ChecklistItem{},
		},
		{
			ID:              seedID("task"),
			ProjectID:       projects[2].ID,
			Title:           "Sort through clothes",
			Status:          model.TaskBacklog,
			Priority:        model.PriorityLow,
			Tags:            []string{quickWinTag},
			EstimateMinutes: 120,
			CreatedAt:       now,
			UpdatedAt:       now,
			ChecklistItems:  []model.ChecklistItem{},
		},
		{
			ID:             seedID("task"),
			Title:          "Schedule dentist appointment",
			Status:         model.TaskTodo,
			Priority:       model.PriorityMedium,
			Tags:           []string{},
			AreaID:         healthArea,
			DueDate:        &dueDate,
			CreatedAt:      now,
			UpdatedAt:      now,
			ChecklistItems: []model.ChecklistItem{},
		},
	}

	ideas := []model.Idea{
		{
			ID:        seedID("idea"),
			Title:     "Learn a new programming language",
			Notes:     "Maybe Rust or Go? Check job market demand.",
			AreaID:    learningArea,
			Tags:      []string{deepWorkTag},
			CreatedAt: now,
		},
		{
			ID:        seedID("idea"),
			Title:     "Start a side project podcast",
			Notes:     "Interview people about their side projects and how they manage time",
			Tags:      []string{},
			CreatedAt: now,
		},
		{
			ID:        seedID("idea"),
			Title:     "Plan summer road trip",
			Notes:     "National parks tour - Yellowstone, Grand Canyon, Zion",
			Tags:      []string{},
			CreatedAt: now,
		},
	}

	return model.Profile{
		ID:        seedID("prof"),
		Name:      "My Life",
		CreatedAt: now,
		Areas:     areas,
		Projects:  projects,
		Tasks:     tasks,
		Ideas:     ideas,
		Tags:      tags,
		Settings:  model.DefaultSettings(),
	}
}

func seedID(prefix string) string {
	id, err := newRandomID(prefix)
	if err != nil {
		// crypto/rand failing is not survivable for seeding; ids must be unique.
		panic(err)
	}
	return id
}

func areaByName(areas []model.Area, name string) string {
	for _, a := range areas {
		if a.Name == name {
			return a.ID
		}
	}
	return ""
}

func tagByName(tags []model.Tag, name string) string {
	for _, t := range tags {
		if t.Name == name {
			return t.ID
		}
	}
	return ""
}
