package alfred

import (
	"strings"
	"unicode"

	"jdex/internal/application/commands"
)

// MaxResults caps how many search rows a Script Filter shows.
// Display truncation only; the underlying search is uncapped.
const MaxResults = 50

// EntryItem builds the row for one index entry. Section dividers are
// rendered as non-actionable visual rows; entries with a resolved path
// get the folder's own icon and the standard modifier actions.
func EntryItem(e commands.Entry, autocomplete string) Item {
	if e.Section {
		return Item{
			Title:    e.Name,
			Subtitle: "Section header",
			UID:      "section-" + e.Code,
			Valid:    Invalid(),
			Icon:     &Icon{Path: "icons/section.png"},
		}
	}

	item := Item{
		Title:        e.Name,
		UID:          e.Tier.String() + "-" + e.Code,
		Autocomplete: autocomplete,
		Match:        matchString(e.Name, e.Code),
	}

	if e.Subtitle != "" {
		item.Subtitle = e.Subtitle
	} else if e.Path != "" {
		item.Subtitle = e.Path
	} else {
		item.Subtitle = "JD " + e.Tier.String()
	}

	if e.Path != "" {
		item.Arg = e.Path
		item.Type = "file"
		item.Icon = &Icon{Type: "fileicon", Path: e.Path}
		item.QuicklookURL = e.Path
		item.Text = &Text{Copy: e.Path, LargeType: e.Name}
		item.Mods = folderMods(e.Path)
	} else {
		item.Icon = &Icon{Path: "icons/" + e.Tier.String() + ".png"}
	}

	return item
}

// BackItem builds the ".. Back to X" navigation row
func BackItem(title, subtitle, autocomplete string, tier string) Item {
	return Item{
		Title:        title,
		Subtitle:     subtitle,
		Autocomplete: autocomplete,
		Valid:        Invalid(),
		Icon:         &Icon{Path: "icons/" + tier + ".png"},
	}
}

// folderMods wires the standard modifier actions for a folder:
// cmd browses in Alfred, alt copies the path, ctrl opens a terminal.
func folderMods(path string) map[string]*Mod {
	return map[string]*Mod{
		"cmd": {
			Subtitle:  "Browse in Alfred",
			Arg:       path,
			Variables: map[string]string{"action": "browse"},
		},
		"alt": {
			Subtitle:  "Copy path to clipboard",
			Arg:       path,
			Variables: map[string]string{"action": "copy"},
		},
		"ctrl": {
			Subtitle:  "Open in Terminal",
			Arg:       path,
			Variables: map[string]string{"action": "terminal"},
		},
	}
}

// matchString feeds Alfred's own filtering: the code plus the name
// stripped to alphanumerics, spaces, dots, and dashes.
func matchString(name, code string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(code + " " + b.String())
}
