package config

// mergeSettings overlays the non-empty values of overlay onto base.
func mergeSettings(base, overlay *Settings) *Settings {
	if overlay == nil {
		return base
	}
	merged := *base

	merged.DefaultUser = pick(base.DefaultUser, overlay.DefaultUser)
	merged.Shell = pick(base.Shell, overlay.Shell)
	merged.ColorProfile = pick(base.ColorProfile, overlay.ColorProfile)

	merged.Theme = Theme{
		NameFG:    pick(base.Theme.NameFG, overlay.Theme.NameFG),
		NameBG:    pick(base.Theme.NameBG, overlay.Theme.NameBG),
		PathFG:    pick(base.Theme.PathFG, overlay.Theme.PathFG),
		PathBG:    pick(base.Theme.PathBG, overlay.Theme.PathBG),
		JobsFG:    pick(base.Theme.JobsFG, overlay.Theme.JobsFG),
		JobsBG:    pick(base.Theme.JobsBG, overlay.Theme.JobsBG),
		RepoFG:    pick(base.Theme.RepoFG, overlay.Theme.RepoFG),
		RepoBG:    pick(base.Theme.RepoBG, overlay.Theme.RepoBG),
		StatusFG:  pick(base.Theme.StatusFG, overlay.Theme.StatusFG),
		FailureFG: pick(base.Theme.FailureFG, overlay.Theme.FailureFG),
		FailureBG: pick(base.Theme.FailureBG, overlay.Theme.FailureBG),
	}
	merged.Glyphs = Glyphs{
		Separator:      pick(base.Glyphs.Separator, overlay.Glyphs.Separator),
		SeparatorRight: pick(base.Glyphs.SeparatorRight, overlay.Glyphs.SeparatorRight),
		Branch:         pick(base.Glyphs.Branch, overlay.Glyphs.Branch),
	}

	if len(base.Extensions) > 0 || len(overlay.Extensions) > 0 {
		merged.Extensions = make(map[string]interface{}, len(base.Extensions)+len(overlay.Extensions))
		for k, v := range base.Extensions {
			merged.Extensions[k] = v
		}
		for k, v := range overlay.Extensions {
			merged.Extensions[k] = v
		}
	}

	return &merged
}

func pick(base, overlay string) string {
	if overlay != "" {
		return overlay
	}
	return base
}
