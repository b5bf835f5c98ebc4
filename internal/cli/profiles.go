package cli

import (
	"time"

	"github.com/spf13/cobra"

	"lifepm-cli/internal/mutate"
)

func newProfilesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Profile commands",
	}
	cmd.AddCommand(newProfilesListCmd(app))
	cmd.AddCommand(newProfilesCreateCmd(app))
	cmd.AddCommand(newProfilesRenameCmd(app))
	cmd.AddCommand(newProfilesUseCmd(app))
	cmd.AddCommand(newProfilesDeleteCmd(app))
	return cmd
}

func newProfilesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"profiles":         db.Profiles,
					"currentProfileId": db.CurrentProfileID,
				},
			})
		},
	}
}

func newProfilesCreateCmd(app *App) *cobra.Command {
	var name string
	var use bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := mutate.CreateProfile(db, time.Now().UTC(), name)
			if err != nil {
				return writeErr(cmd, err)
			}
			if use {
				if err := mutate.SwitchProfile(db, p.ID); err != nil {
					return writeErr(cmd, err)
				}
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Profile name")
	cmd.Flags().BoolVar(&use, "use", false, "Switch to the new profile")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProfilesRenameCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename <profile-id>",
		Short: "Rename a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := mutate.RenameProfile(db, args[0], name)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New profile name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProfilesUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <profile-id>",
		Short: "Switch the active profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.SwitchProfile(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"currentProfileId": db.CurrentProfileID},
			})
		},
	}
}

func newProfilesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <profile-id>",
		Short: "Delete a profile (the last profile cannot be deleted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.DeleteProfile(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"deleted":          args[0],
					"currentProfileId": db.CurrentProfileID,
				},
			})
		},
	}
}
