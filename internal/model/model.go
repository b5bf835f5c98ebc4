package model

import (
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank orders priorities for list sorting: critical first, low last.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "critical":
		return PriorityCritical, nil
	default:
		return "", fmt.Errorf("invalid priority: %q (expected low|medium|high|critical)", s)
	}
}

type TaskStatus string

const (
	TaskBacklog    TaskStatus = "backlog"
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskBlocked    TaskStatus = "blocked"
	TaskDone       TaskStatus = "done"
)

// TaskStatuses lists all task statuses in board-column order.
var TaskStatuses = []TaskStatus{TaskBacklog, TaskTodo, TaskInProgress, TaskBlocked, TaskDone}

func ParseTaskStatus(s string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backlog":
		return TaskBacklog, nil
	case "todo":
		return TaskTodo, nil
	case "in-progress", "inprogress", "doing":
		return TaskInProgress, nil
	case "blocked":
		return TaskBlocked, nil
	case "done":
		return TaskDone, nil
	default:
		return "", fmt.Errorf("invalid task status: %q (expected backlog|todo|in-progress|blocked|done)", s)
	}
}

type ProjectStatus string

const (
	ProjectBacklog   ProjectStatus = "backlog"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backlog":
		return ProjectBacklog, nil
	case "active":
		return ProjectActive, nil
	case "on-hold", "onhold":
		return ProjectOnHold, nil
	case "completed":
		return ProjectCompleted, nil
	case "cancelled", "canceled":
		return ProjectCancelled, nil
	default:
		return "", fmt.Errorf("invalid project status: %q (expected backlog|active|on-hold|completed|cancelled)", s)
	}
}

type GoalType string

const (
	GoalHabit     GoalType = "habit"
	GoalOneTime   GoalType = "one-time"
	GoalMilestone GoalType = "milestone"
)

type ChecklistItem struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Done    bool   `json:"done"`
}

type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Area struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type Idea struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	AreaID    string    `json:"areaId,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	Archived  bool      `json:"archived,omitempty"`
}

type Task struct {
	ID               string          `json:"id"`
	ProjectID        string          `json:"projectId,omitempty"`
	ParentTaskID     string          `json:"parentTaskId,omitempty"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	Status           TaskStatus      `json:"status"`
	Priority         Priority        `json:"priority"`
	Tags             []string        `json:"tags"`
	AreaID           string          `json:"areaId,omitempty"`
	EstimateMinutes  int             `json:"estimateMinutes,omitempty"`
	TimeSpentMinutes int             `json:"timeSpentMinutes,omitempty"`
	DueDate          *time.Time      `json:"dueDate,omitempty"`
	IsToday          bool            `json:"isToday,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	CompletedAt      *time.Time      `json:"completedAt,omitempty"`
	ChecklistItems   []ChecklistItem `json:"checklistItems"`
}

type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	AreaID      string        `json:"areaId"`
	Status      ProjectStatus `json:"status"`
	Priority    Priority      `json:"priority"`
	Tags        []string      `json:"tags"`
	StartDate   *time.Time    `json:"startDate,omitempty"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
	GoalType    GoalType      `json:"goalType,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Archived    bool          `json:"archived,omitempty"`
	IsFocus     bool          `json:"isFocus,omitempty"`
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type ViewType string

const (
	ViewToday    ViewType = "today"
	ViewBoard    ViewType = "board"
	ViewProjects ViewType = "projects"
	ViewIdeas    ViewType = "ideas"
)

type TaskGrouping string

const (
	GroupByProject TaskGrouping = "project"
	GroupByArea    TaskGrouping = "area"
	GroupByDueDate TaskGrouping = "dueDate"
)

type ProfileSettings struct {
	Theme               Theme        `json:"theme"`
	DefaultView         ViewType     `json:"defaultView"`
	DefaultTaskGrouping TaskGrouping `json:"defaultTaskGrouping"`
	HideCompletedTasks  bool         `json:"hideCompletedTasks"`
}

// DefaultSettings returns the settings assigned to newly created profiles.
func DefaultSettings() ProfileSettings {
	return ProfileSettings{
		Theme:               ThemeDark,
		DefaultView:         ViewToday,
		DefaultTaskGrouping: GroupByProject,
		HideCompletedTasks:  false,
	}
}

// Profile is an isolated namespace holding one user's complete dataset.
// All collections are exclusively owned; nothing is shared across profiles.
type Profile struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"createdAt"`
	Areas     []Area          `json:"areas"`
	Projects  []Project       `json:"projects"`
	Tasks     []Task          `json:"tasks"`
	Ideas     []Idea          `json:"ideas"`
	Tags      []Tag           `json:"tags"`
	Settings  ProfileSettings `json:"settings"`
}
