package mutate

import (
	"lifepm-cli/internal/model"
	"lifepm-cli/internal/store"
)

type SettingsPatch struct {
	Theme               *model.Theme
	DefaultView         *model.ViewType
	DefaultTaskGrouping *model.TaskGrouping
	HideCompletedTasks  *bool
}

// UpdateSettings merges the patch into the active profile's settings.
func UpdateSettings(db *store.DB, patch SettingsPatch) (model.ProfileSettings, error) {
	p := db.CurrentProfile()
	if p == nil {
		return model.ProfileSettings{}, ErrNoProfile
	}
	if patch.Theme != nil {
		p.Settings.Theme = *patch.Theme
	}
	if patch.DefaultView != nil {
		p.Settings.DefaultView = *patch.DefaultView
	}
	if patch.DefaultTaskGrouping != nil {
		p.Settings.DefaultTaskGrouping = *patch.DefaultTaskGrouping
	}
	if patch.HideCompletedTasks != nil {
		p.Settings.HideCompletedTasks = *patch.HideCompletedTasks
	}
	return p.Settings, nil
}
