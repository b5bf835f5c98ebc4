package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifepm-cli/internal/format"
	"lifepm-cli/internal/views"
)

func newViewCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Derived views over the active profile",
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Emit JSON instead of styled text")

	cmd.AddCommand(newViewTodayCmd(app, &asJSON))
	cmd.AddCommand(newViewWeekCmd(app, &asJSON))
	cmd.AddCommand(newViewBacklogCmd(app, &asJSON))
	cmd.AddCommand(newViewCompletedCmd(app, &asJSON))
	cmd.AddCommand(newViewAreasCmd(app, &asJSON))
	cmd.AddCommand(newViewBoardCmd(app, &asJSON))
	return cmd
}

func newViewTodayCmd(app *App, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Today's tasks, completions and focus projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}

			now := time.Now()
			today := views.TodayTasks(p)
			completed := views.CompletedToday(p, now)
			focus := views.FocusProjects(p)

			if *asJSON {
				return writeOut(cmd, app, map[string]any{
					"data": map[string]any{
						"tasks":          today,
						"completedToday": completed,
						"focusProjects":  focus,
					},
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, format.RenderTaskList(fmt.Sprintf("Today - %s", now.Format("January 2")), today))
			if len(completed) > 0 {
				fmt.Fprint(out, format.RenderTaskList("Completed today", completed))
			}
			for _, pr := range focus {
				completedCount, total, progress := views.ProjectProgress(p, pr.ID)
				fmt.Fprintf(out, "Focus: %s (%d/%d, %.0f%%)\n", pr.Title, completedCount, total, progress*100)
			}
			return nil
		},
	}
}

func newViewWeekCmd(app *App, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Seven-day agenda with an overdue section",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}

			w := views.Week(p, time.Now())
			if *asJSON {
				return writeOut(cmd, app, map[string]any{"data": w})
			}
			fmt.Fprint(cmd.OutOrStdout(), format.RenderWeek(w))
			return nil
		},
	}
}

func newViewBacklogCmd(app *App, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "backlog",
		Short: "Undated, unfinished tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}

			tasks := views.BacklogTasks(p)
			if *asJSON {
				return writeOut(cmd, app, map[string]any{"data": tasks})
			}
			fmt.Fprint(cmd.OutOrStdout(), format.RenderTaskList("Backlog", tasks))
			return nil
		},
	}
}

func newViewCompletedCmd(app *App, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "completed",
		Short: "Completed tasks grouped by day, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}

			groups := views.CompletedByDay(p, time.Now())
			if *asJSON {
				return writeOut(cmd, app, map[string]any{"data": groups})
			}
			fmt.Fprint(cmd.OutOrStdout(), format.RenderCompleted(groups))
			return nil
		},
	}
}

func newViewAreasCmd(app *App, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "Per-area project counts and task progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}

			stats := views.AreaStats(p)
			if *asJSON {
				return writeOut(cmd, app, map[string]any{"data": stats})
			}
			fmt.Fprint(cmd.OutOrStdout(), format.RenderAreaStats(stats))
			return nil
		},
	}
}

func newViewBoardCmd(app *App, asJSON *bool) *cobra.Command {
	var projectID, areaID string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Tasks grouped by status, optionally filtered by project or area",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}

			cols := views.Board(p, views.BoardFilter{ProjectID: projectID, AreaID: areaID})
			if *asJSON {
				return writeOut(cmd, app, map[string]any{"data": cols})
			}
			fmt.Fprint(cmd.OutOrStdout(), format.RenderBoard(cols))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Only tasks of this project")
	cmd.Flags().StringVar(&areaID, "area", "", "Only tasks in this area (directly or via their project)")
	return cmd
}
