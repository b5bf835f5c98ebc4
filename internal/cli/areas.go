package cli

import (
	"github.com/spf13/cobra"

	"lifepm-cli/internal/mutate"
)

func newAreasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "areas",
		Short: "Life area commands",
	}
	cmd.AddCommand(newAreasListCmd(app))
	cmd.AddCommand(newAreasCreateCmd(app))
	cmd.AddCommand(newAreasUpdateCmd(app))
	cmd.AddCommand(newAreasDeleteCmd(app))
	return cmd
}

func newAreasListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List areas in the active profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": p.Areas})
		},
	}
}

func newAreasCreateCmd(app *App) *cobra.Command {
	var name, description, color, icon string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an area",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			a, err := mutate.CreateArea(db, name, description, color, icon)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": a})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Area name")
	cmd.Flags().StringVar(&description, "description", "", "Area description")
	cmd.Flags().StringVar(&color, "color", "", "Accent color (hex)")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAreasUpdateCmd(app *App) *cobra.Command {
	var name, description, color, icon string

	cmd := &cobra.Command{
		Use:   "update <area-id>",
		Short: "Update an area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var patch mutate.AreaPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("icon") {
				patch.Icon = &icon
			}

			a, err := mutate.UpdateArea(db, args[0], patch)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": a})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Area name")
	cmd.Flags().StringVar(&description, "description", "", "Area description")
	cmd.Flags().StringVar(&color, "color", "", "Accent color (hex)")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon name")
	return cmd
}

func newAreasDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <area-id>",
		Short: "Delete an area (projects and tasks keep their area reference)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.DeleteArea(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": args[0]}})
		},
	}
}
