package commands

import (
	"context"
	"fmt"
	"regexp"

	"jdex/internal/application"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// Entry is a presentation-ready row for one index entry
type Entry struct {
	Code     string
	Name     string
	Path     string // "" when nothing resolves (sections, renamed folders)
	Tier     domain.Tier
	Subtitle string
	Section  bool
}

// BrowseResult carries the rows for a query plus the entry being browsed
// into, when the query navigated inside one (for back-navigation hints).
type BrowseResult struct {
	Entries []Entry
	Parent  *Entry
}

// Navigation query patterns, mirroring the launcher keywords:
// "10-19" lists an area, "11" or "11." lists a category, "11.01" shows
// one ID; anything else is a text search.
var (
	areaQueryRe      = regexp.MustCompile(`^([0-9]0-[0-9]9)\s*$`)
	categoryQueryRe  = regexp.MustCompile(`^([0-9]{2})\s*$`)
	partialIDQueryRe = regexp.MustCompile(`^([0-9]{2})\.\s*$`)
	idQueryRe        = regexp.MustCompile(`^([0-9]{2}\.[0-9]{2})\s*$`)
)

// BrowseCommand navigates and searches the index
type BrowseCommand struct {
	index    *domain.Index
	resolver ports.PathResolver
	Query    string
	Level    domain.Tier // TierUnknown browses; any other tier searches that tier only
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(index *domain.Index, resolver ports.PathResolver, query string, level domain.Tier) *BrowseCommand {
	return &BrowseCommand{
		index:    index,
		resolver: resolver,
		Query:    query,
		Level:    level,
	}
}

// Execute dispatches the query to navigation or search
func (c *BrowseCommand) Execute(ctx context.Context) (*BrowseResult, error) {
	// A level filter skips navigation and goes straight to search
	if c.Level != domain.TierUnknown {
		return &BrowseResult{Entries: c.search(c.Query, c.Level)}, nil
	}

	if c.Query == "" {
		return &BrowseResult{Entries: c.areas()}, nil
	}

	if m := areaQueryRe.FindStringSubmatch(c.Query); m != nil {
		return c.categoriesInArea(m[1])
	}
	if m := categoryQueryRe.FindStringSubmatch(c.Query); m != nil {
		return c.idsInCategory(m[1])
	}
	if m := partialIDQueryRe.FindStringSubmatch(c.Query); m != nil {
		return c.idsInCategory(m[1])
	}
	if m := idQueryRe.FindStringSubmatch(c.Query); m != nil {
		return c.specificID(m[1])
	}

	return &BrowseResult{Entries: c.search(c.Query, domain.TierUnknown)}, nil
}

func (c *BrowseCommand) areas() []Entry {
	var entries []Entry
	for _, area := range c.index.Areas() {
		path, _ := c.resolver.Resolve(area.Code, c.index)
		entries = append(entries, Entry{
			Code:     area.Code,
			Name:     area.Name,
			Path:     path,
			Tier:     domain.TierArea,
			Subtitle: fmt.Sprintf("%d categories", area.Len()),
		})
	}
	return entries
}

func (c *BrowseCommand) categoriesInArea(areaCode string) (*BrowseResult, error) {
	area := c.index.GetArea(areaCode)
	if area == nil {
		return nil, &application.NotFoundError{Code: areaCode}
	}

	result := &BrowseResult{Parent: &Entry{
		Code: area.Code,
		Name: area.Name,
		Tier: domain.TierArea,
	}}

	for _, cat := range area.Categories() {
		path, _ := c.resolver.Resolve(cat.Code, c.index)
		result.Entries = append(result.Entries, Entry{
			Code:     cat.Code,
			Name:     cat.Name,
			Path:     path,
			Tier:     domain.TierCategory,
			Subtitle: fmt.Sprintf("%d items", cat.Len()),
		})
	}
	return result, nil
}

func (c *BrowseCommand) idsInCategory(catCode string) (*BrowseResult, error) {
	cat := c.index.GetCategory(catCode)
	if cat == nil || cat.Area() == nil {
		return nil, &application.NotFoundError{Code: catCode}
	}

	result := &BrowseResult{Parent: &Entry{
		Code: cat.Code,
		Name: cat.Name,
		Tier: domain.TierCategory,
	}}

	for _, id := range cat.IDs() {
		entry := Entry{
			Code:    id.Code,
			Name:    id.Name,
			Tier:    domain.TierID,
			Section: id.Section,
		}
		// Section dividers are not actionable and get no path
		if !id.Section {
			entry.Path, _ = c.resolver.Resolve(id.Code, c.index)
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

func (c *BrowseCommand) specificID(idCode string) (*BrowseResult, error) {
	id := c.index.GetID(idCode)
	if id == nil || id.Category() == nil {
		return nil, &application.NotFoundError{Code: idCode}
	}

	entry := Entry{
		Code:    id.Code,
		Name:    id.Name,
		Tier:    domain.TierID,
		Section: id.Section,
	}
	if !id.Section {
		entry.Path, _ = c.resolver.Resolve(id.Code, c.index)
	}

	return &BrowseResult{
		Entries: []Entry{entry},
		Parent: &Entry{
			Code: id.Category().Code,
			Name: id.Category().Name,
			Tier: domain.TierCategory,
		},
	}, nil
}

func (c *BrowseCommand) search(query string, level domain.Tier) []Entry {
	results := c.index.Search(query, domain.SearchOptions{Level: level})

	var entries []Entry
	for _, r := range results {
		entry := Entry{
			Code:     r.Code,
			Name:     r.Name,
			Tier:     r.Tier,
			Subtitle: c.subtitleFor(r),
		}
		entry.Path, _ = c.resolver.Resolve(r.Code, c.index)
		entries = append(entries, entry)
	}
	return entries
}

// subtitleFor builds the breadcrumb shown under a search hit:
// area for categories, area → category (→ section) for IDs.
func (c *BrowseCommand) subtitleFor(r domain.SearchResult) string {
	switch r.Tier {
	case domain.TierCategory:
		if area := c.index.AreaForCategory(r.Code); area != nil {
			return area.Name
		}
	case domain.TierID:
		id := c.index.GetID(r.Code)
		if id == nil || id.Category() == nil || id.Category().Area() == nil {
			return ""
		}
		subtitle := id.Category().Area().Name + " → " + id.Category().Name
		if section := id.SectionName(); section != "" {
			subtitle += " → " + section
		}
		return subtitle
	}
	return ""
}
