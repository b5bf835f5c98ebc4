package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/mutate"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Profile settings commands",
	}
	cmd.AddCommand(newSettingsShowCmd(app))
	cmd.AddCommand(newSettingsSetCmd(app))
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active profile's settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": p.Settings})
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var theme, view, grouping string
	var hideCompleted bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the active profile's settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var patch mutate.SettingsPatch
			if cmd.Flags().Changed("theme") {
				switch model.Theme(theme) {
				case model.ThemeDark, model.ThemeLight:
				default:
					return writeErr(cmd, fmt.Errorf("invalid theme: %s", theme))
				}
				t := model.Theme(theme)
				patch.Theme = &t
			}
			if cmd.Flags().Changed("view") {
				switch model.ViewType(view) {
				case model.ViewToday, model.ViewBoard, model.ViewProjects, model.ViewIdeas:
				default:
					return writeErr(cmd, fmt.Errorf("invalid view: %s", view))
				}
				v := model.ViewType(view)
				patch.DefaultView = &v
			}
			if cmd.Flags().Changed("grouping") {
				switch model.TaskGrouping(grouping) {
				case model.GroupByProject, model.GroupByArea, model.GroupByDueDate:
				default:
					return writeErr(cmd, fmt.Errorf("invalid grouping: %s", grouping))
				}
				g := model.TaskGrouping(grouping)
				patch.DefaultTaskGrouping = &g
			}
			if cmd.Flags().Changed("hide-completed") {
				patch.HideCompletedTasks = &hideCompleted
			}

			settings, err := mutate.UpdateSettings(db, patch)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": settings})
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Theme (dark|light)")
	cmd.Flags().StringVar(&view, "view", "", "Default view (today|board|projects|ideas)")
	cmd.Flags().StringVar(&grouping, "grouping", "", "Default task grouping (project|area|dueDate)")
	cmd.Flags().BoolVar(&hideCompleted, "hide-completed", false, "Hide completed tasks")
	return cmd
}
