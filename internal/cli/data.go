package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"lifepm-cli/internal/store"
)

func newDataCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Backup, restore and reset",
	}
	cmd.AddCommand(newDataExportCmd(app))
	cmd.AddCommand(newDataImportCmd(app))
	cmd.AddCommand(newDataResetCmd(app))
	return cmd
}

func newDataExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data to a JSON backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			// loadDB seeds and writes through on a first run, so the export
			// reflects persisted state even then.
			_, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			text, err := s.ExportJSON()
			if err != nil {
				return writeErr(cmd, err)
			}
			path := out
			if path == "" {
				path = store.BackupFileName(time.Now())
			}
			if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"path": path, "bytes": len(text)},
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default: life-pm-backup-YYYY-MM-DD.json)")
	return cmd
}

func newDataImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a JSON backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			b, err := os.ReadFile(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.ImportJSON(string(b)); err != nil {
				return writeErr(cmd, err)
			}
			db := s.Load()
			if db == nil {
				return writeErr(cmd, errSaveFailed)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"profiles":         len(db.Profiles),
					"currentProfileId": db.CurrentProfileID,
				},
			})
		},
	}
}

func newDataResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data and re-seed the default profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return writeErr(cmd, errResetNeedsForce)
			}
			_, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			db := s.Reset()
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"profiles":         len(db.Profiles),
					"currentProfileId": db.CurrentProfileID,
				},
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deleting all data")
	return cmd
}
