package alfred

import (
	"encoding/json"
	"io"
)

// Script Filter JSON types.
// https://www.alfredapp.com/help/workflows/inputs/script-filter/json/

// Icon is an item icon, either a path or a fileicon reference
type Icon struct {
	Type string `json:"type,omitempty"`
	Path string `json:"path"`
}

// Text holds the copy/large-type payloads of an item
type Text struct {
	Copy      string `json:"copy,omitempty"`
	LargeType string `json:"largetype,omitempty"`
}

// Mod describes a modifier key behavior (cmd, alt, ctrl, shift, fn)
type Mod struct {
	Subtitle  string            `json:"subtitle,omitempty"`
	Arg       string            `json:"arg,omitempty"`
	Valid     *bool             `json:"valid,omitempty"`
	Icon      *Icon             `json:"icon,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
}

// Item is a single Script Filter result row
type Item struct {
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle,omitempty"`
	Arg          string            `json:"arg,omitempty"`
	UID          string            `json:"uid,omitempty"`
	Autocomplete string            `json:"autocomplete,omitempty"`
	Type         string            `json:"type,omitempty"`
	Match        string            `json:"match,omitempty"`
	Valid        *bool             `json:"valid,omitempty"`
	Icon         *Icon             `json:"icon,omitempty"`
	Mods         map[string]*Mod   `json:"mods,omitempty"`
	Variables    map[string]string `json:"variables,omitempty"`
	QuicklookURL string            `json:"quicklookurl,omitempty"`
	Text         *Text             `json:"text,omitempty"`
}

// Output is the top-level Script Filter response
type Output struct {
	Items     []Item            `json:"items"`
	Variables map[string]string `json:"variables,omitempty"`
	Rerun     float64           `json:"rerun,omitempty"`
}

// Write serializes the output as a single JSON document.
// Alfred reads it from the script's stdout.
func (o Output) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if o.Items == nil {
		o.Items = []Item{}
	}
	return enc.Encode(o)
}

// Invalid marks an item or mod as non-actionable.
// Alfred treats a missing valid field as true.
func Invalid() *bool {
	v := false
	return &v
}

// ErrorItem builds a non-actionable error/warning row
func ErrorItem(title, subtitle string) Item {
	return Item{
		Title:    title,
		Subtitle: subtitle,
		Valid:    Invalid(),
		Icon:     &Icon{Path: "icons/error.png"},
	}
}
