package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"lifepm-cli/internal/store"
)

func newInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize local storage (seeds default data on first run)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}

			// Remember the chosen data dir so later invocations find it
			// without --dir.
			if cfg, err := store.LoadConfig(); err == nil && cfg.DataDir == "" {
				cfg.DataDir = app.Dir
				_ = store.SaveConfig(cfg)
			}

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"dir":              app.Dir,
					"sqlitePath":       filepath.Join(app.Dir, "lifepm.sqlite"),
					"profiles":         len(db.Profiles),
					"currentProfileId": db.CurrentProfileID,
				},
			})
		},
	}
	return cmd
}
