package cli

import (
	"time"

	"github.com/spf13/cobra"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/mutate"
	"lifepm-cli/internal/views"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsUpdateCmd(app))
	cmd.AddCommand(newProjectsDeleteCmd(app))
	cmd.AddCommand(newProjectsArchiveCmd(app))
	cmd.AddCommand(newProjectsFocusCmd(app))
	cmd.AddCommand(newProjectsTasksCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects in the active profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}
			projects := p.Projects
			if !includeArchived {
				projects = make([]model.Project, 0, len(p.Projects))
				for _, pr := range p.Projects {
					if !pr.Archived {
						projects = append(projects, pr)
					}
				}
			}
			return writeOut(cmd, app, map[string]any{"data": projects})
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "archived", false, "Include archived projects")
	return cmd
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	var (
		title, description, areaID, status, priority, goal, start, due string
		tags                                                           []string
		focus                                                          bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			fields := mutate.ProjectFields{
				Title:       title,
				Description: description,
				AreaID:      areaID,
				Tags:        tags,
				GoalType:    model.GoalType(goal),
				IsFocus:     focus,
			}
			if status != "" {
				st, err := model.ParseProjectStatus(status)
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
			if fields.StartDate, err = dateFlag(start); err != nil {
				return writeErr(cmd, err)
			}
			if fields.DueDate, err = dateFlag(due); err != nil {
				return writeErr(cmd, err)
			}

			pr, err := mutate.CreateProject(db, time.Now().UTC(), fields)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": pr})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&areaID, "area", "", "Area id")
	cmd.Flags().StringVar(&status, "status", "", "Status (backlog|active|on-hold|completed|cancelled)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag id (repeatable)")
	cmd.Flags().StringVar(&goal, "goal", "", "Goal type (habit|one-time|milestone)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&focus, "focus", false, "Mark as a focus project")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newProjectsUpdateCmd(app *App) *cobra.Command {
	var (
		title, description, areaID, status, priority, goal, start, due string
		tags                                                           []string
		clearStart, clearDue                                           bool
	)

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var patch mutate.ProjectPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("area") {
				patch.AreaID = &areaID
			}
			if cmd.Flags().Changed("status") {
				st, err := model.ParseProjectStatus(status)
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
			if cmd.Flags().Changed("goal") {
				gt := model.GoalType(goal)
				patch.GoalType = &gt
			}
			if cmd.Flags().Changed("start") {
				if patch.StartDate, err = dateFlag(start); err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("due") {
				if patch.DueDate, err = dateFlag(due); err != nil {
					return writeErr(cmd, err)
				}
			}
			patch.ClearStart = clearStart
			patch.ClearDue = clearDue

			pr, err := mutate.UpdateProject(db, time.Now().UTC(), args[0], patch)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": pr})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&areaID, "area", "", "Area id")
	cmd.Flags().StringVar(&status, "status", "", "Status (backlog|active|on-hold|completed|cancelled)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag id (repeatable; replaces the tag list)")
	cmd.Flags().StringVar(&goal, "goal", "", "Goal type (habit|one-time|milestone)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearStart, "clear-start", false, "Clear the start date")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Clear the due date")
	return cmd
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project and all of its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := mutate.DeleteProject(db, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"deleted": args[0], "deletedTasks": res.DeletedTasks},
			})
		},
	}
}

func newProjectsArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <project-id>",
		Short: "Archive a project (marks it completed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			pr, err := mutate.ArchiveProject(db, time.Now().UTC(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": pr})
		},
	}
}

func newProjectsFocusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "focus <project-id>",
		Short: "Toggle a project's focus flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			pr, err := mutate.ToggleProjectFocus(db, time.Now().UTC(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": pr})
		},
	}
}

func newProjectsTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks <project-id>",
		Short: "List a project's tasks with completion progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := db.FindProject(args[0]); !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "project", ID: args[0]})
			}
			tasks := views.ProjectTasks(p, args[0])
			completed, total, progress := views.ProjectProgress(p, args[0])
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"tasks":     tasks,
					"completed": completed,
					"total":     total,
					"progress":  progress,
				},
			})
		},
	}
}
