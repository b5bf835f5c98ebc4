package cli

import (
	"time"

	"github.com/spf13/cobra"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/mutate"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksCreateCmd(app))
	cmd.AddCommand(newTasksUpdateCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	cmd.AddCommand(newTasksStatusCmd(app))
	cmd.AddCommand(newTasksDoneCmd(app))
	cmd.AddCommand(newTasksTodayCmd(app))
	cmd.AddCommand(newTasksCheckCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var projectID, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in the active profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}

			var st model.TaskStatus
			if status != "" {
				if st, err = model.ParseTaskStatus(status); err != nil {
					return writeErr(cmd, err)
				}
			}

			tasks := make([]model.Task, 0, len(p.Tasks))
			for _, t := range p.Tasks {
				if projectID != "" && t.ProjectID != projectID {
					continue
				}
				if status != "" && t.Status != st {
					continue
				}
				tasks = append(tasks, t)
			}
			return writeOut(cmd, app, map[string]any{"data": tasks})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Only tasks of this project")
	cmd.Flags().StringVar(&status, "status", "", "Only tasks with this status")
	return cmd
}

func newTasksCreateCmd(app *App) *cobra.Command {
	var (
		title, description, projectID, areaID, status, priority, due string
		tags                                                         []string
		estimate                                                     int
		today                                                        bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			fields := mutate.TaskFields{
				ProjectID:       projectID,
				Title:           title,
				Description:     description,
				Tags:            tags,
				AreaID:          areaID,
				EstimateMinutes: estimate,
				IsToday:         today,
			}
			if status != "" {
				st, err := model.ParseTaskStatus(status)
				if err != nil {
					return writeErr(cmd, err)
				}
				fields.Status = st
			}
			if priority != "" {
				pr, err := model.ParsePriority(priority)
				if err != nil {
					return writeErr(cmd, err)
				}
				fields.Priority = pr
			}
			if fields.DueDate, err = dateFlag(due); err != nil {
				return writeErr(cmd, err)
			}

			t, err := mutate.CreateTask(db, time.Now().UTC(), fields)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().StringVar(&areaID, "area", "", "Area id (for standalone tasks)")
	cmd.Flags().StringVar(&status, "status", "", "Status (backlog|todo|in-progress|blocked|done)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag id (repeatable)")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimate in minutes")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&today, "today", false, "Put the task on today's list")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTasksUpdateCmd(app *App) *cobra.Command {
	var (
		title, description, projectID, areaID, status, priority, due string
		tags                                                         []string
		estimate, spent                                              int
		clearDue                                                     bool
	)

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var patch mutate.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("project") {
				patch.ProjectID = &projectID
			}
			if cmd.Flags().Changed("area") {
				patch.AreaID = &areaID
			}
			if cmd.Flags().Changed("status") {
				st, err := model.ParseTaskStatus(status)
				if err != nil {
					return writeErr(cmd, err)
				}
				patch.Status = &st
			}
			if cmd.Flags().Changed("priority") {
				pr, err := model.ParsePriority(priority)
				if err != nil {
					return writeErr(cmd, err)
				}
				patch.Priority = &pr
			}
			if cmd.Flags().Changed("tag") {
				patch.Tags = &tags
			}
			if cmd.Flags().Changed("estimate") {
				patch.EstimateMinutes = &estimate
			}
			if cmd.Flags().Changed("spent") {
				patch.TimeSpentMinutes = &spent
			}
			if cmd.Flags().Changed("due") {
				if patch.DueDate, err = dateFlag(due); err != nil {
					return writeErr(cmd, err)
				}
			}
			patch.ClearDue = clearDue

			t, err := mutate.UpdateTask(db, time.Now().UTC(), args[0], patch)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().StringVar(&areaID, "area", "", "Area id")
	cmd.Flags().StringVar(&status, "status", "", "Status (backlog|todo|in-progress|blocked|done)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag id (repeatable; replaces the tag list)")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimate in minutes")
	cmd.Flags().IntVar(&spent, "spent", 0, "Time spent in minutes")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Clear the due date")
	return cmd
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.DeleteTask(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": args[0]}})
		},
	}
}

func newTasksStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <task-id> <status>",
		Short: "Set a task's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, err := model.ParseTaskStatus(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := mutate.SetTaskStatus(db, time.Now().UTC(), args[0], st)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}

func newTasksDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task done (shortcut for: tasks status <task-id> done)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := mutate.SetTaskStatus(db, time.Now().UTC(), args[0], model.TaskDone)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}

func newTasksTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today <task-id>",
		Short: "Toggle a task on or off today's list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := mutate.ToggleTaskToday(db, time.Now().UTC(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}

func newTasksCheckCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Checklist commands",
	}
	cmd.AddCommand(newTasksCheckAddCmd(app))
	cmd.AddCommand(newTasksCheckToggleCmd(app))
	cmd.AddCommand(newTasksCheckRmCmd(app))
	return cmd
}

func newTasksCheckAddCmd(app *App) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "add <task-id>",
		Short: "Add a checklist item to a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := mutate.AddChecklistItem(db, time.Now().UTC(), args[0], content)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Checklist item text")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newTasksCheckToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id> <item-id>",
		Short: "Toggle a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := mutate.ToggleChecklistItem(db, time.Now().UTC(), args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}

func newTasksCheckRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id> <item-id>",
		Short: "Remove a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := mutate.RemoveChecklistItem(db, time.Now().UTC(), args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}
