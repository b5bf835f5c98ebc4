package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lifepm-cli/internal/format"
	"lifepm-cli/internal/model"
	"lifepm-cli/internal/store"
)

type App struct {
	Dir        string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "lifepm",
		Short:        "Life PM (local-first) personal project manager CLI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # What's on for today
  lifepm view today

  # Scriptable commands
  lifepm tasks list
  lifepm tasks create --title "Book dentist" --due 2026-09-07

  # Weekly agenda
  lifepm view week
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("LIFEPM_DIR", ""), "Path to data dir (default: resolved from ~/.lifepm/config.json)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newProfilesCmd(app))
	cmd.AddCommand(newAreasCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newIdeasCmd(app))
	cmd.AddCommand(newTagsCmd(app))
	cmd.AddCommand(newSettingsCmd(app))
	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newDataCmd(app))

	return cmd
}

// errSaveFailed is returned when the storage backend rejected a write; the
// in-memory state is still current, but it was not persisted.
var errSaveFailed = errors.New("failed to persist data (storage unavailable?)")

func loadDB(app *App) (*store.DB, store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}

	s := store.Store{Dir: dir}
	if err := s.Ensure(); err != nil {
		return nil, s, err
	}
	// Initialize seeds default data on first run and repairs a dangling
	// active-profile pointer on every run.
	db := s.Initialize()
	return db, s, nil
}

func saveDB(s store.Store, db *store.DB) error {
	if !s.Save(db) {
		return errSaveFailed
	}
	if !s.SetActiveProfileID(db.CurrentProfileID) {
		return errSaveFailed
	}
	return nil
}

func currentProfile(db *store.DB) (*model.Profile, error) {
	p := db.CurrentProfile()
	if p == nil {
		return nil, errors.New("no profile available; run `lifepm init`")
	}
	return p, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
