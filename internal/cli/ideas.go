package cli

import (
	"time"

	"github.com/spf13/cobra"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/mutate"
)

func newIdeasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Idea inbox commands",
	}
	cmd.AddCommand(newIdeasListCmd(app))
	cmd.AddCommand(newIdeasCreateCmd(app))
	cmd.AddCommand(newIdeasUpdateCmd(app))
	cmd.AddCommand(newIdeasDeleteCmd(app))
	cmd.AddCommand(newIdeasArchiveCmd(app))
	cmd.AddCommand(newIdeasToProjectCmd(app))
	cmd.AddCommand(newIdeasToTaskCmd(app))
	return cmd
}

func newIdeasListCmd(app *App) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ideas in the active profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := currentProfile(db)
			if err != nil {
				return writeErr(cmd, err)
			}
			ideas := p.Ideas
			if !includeArchived {
				ideas = make([]model.Idea, 0, len(p.Ideas))
				for _, i := range p.Ideas {
					if !i.Archived {
						ideas = append(ideas, i)
					}
				}
			}
			return writeOut(cmd, app, map[string]any{"data": ideas})
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "archived", false, "Include archived ideas")
	return cmd
}

func newIdeasCreateCmd(app *App) *cobra.Command {
	var title, notes, areaID string
	var tags []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Capture an idea",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			i, err := mutate.CreateIdea(db, time.Now().UTC(), mutate.IdeaFields{
				Title:  title,
				Notes:  notes,
				AreaID: areaID,
				Tags:   tags,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": i})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Idea title")
	cmd.Flags().StringVar(&notes, "notes", "", "Idea notes")
	cmd.Flags().StringVar(&areaID, "area", "", "Area id")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag id (repeatable)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newIdeasUpdateCmd(app *App) *cobra.Command {
	var title, notes, areaID string
	var tags []string

	cmd := &cobra.Command{
		Use:   "update <idea-id>",
		Short: "Update an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var patch mutate.IdeaPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}
			if cmd.Flags().Changed("area") {
				patch.AreaID = &areaID
			}
			if cmd.Flags().Changed("tag") {
				patch.Tags = &tags
			}

			i, err := mutate.UpdateIdea(db, args[0], patch)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": i})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Idea title")
	cmd.Flags().StringVar(&notes, "notes", "", "Idea notes")
	cmd.Flags().StringVar(&areaID, "area", "", "Area id")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag id (repeatable; replaces the tag list)")
	return cmd
}

func newIdeasDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <idea-id>",
		Short: "Delete an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.DeleteIdea(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": args[0]}})
		},
	}
}

func newIdeasArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <idea-id>",
		Short: "Archive an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			i, err := mutate.ArchiveIdea(db, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": i})
		},
	}
}

func newIdeasToProjectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "to-project <idea-id>",
		Short: "Convert an idea into a backlog project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			pr, err := mutate.ConvertIdeaToProject(db, time.Now().UTC(), args[0])
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

func newIdeasToTaskCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "to-task <idea-id>",
		Short: "Convert an idea into a todo task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := mutate.ConvertIdeaToTask(db, time.Now().UTC(), args[0], projectID)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Attach the task to this project")
	return cmd
}
