package domain

import "sort"

// ID represents a single Johnny Decimal folder (e.g., "11.01 Inbox").
// The atomic unit of the system.
type ID struct {
	Code    string // e.g., "11.01"
	Name    string // full folder name, e.g., "11.01 Inbox"
	Section bool   // true for decade dividers marked with ■

	category *Category // non-owning back-reference
}

// Category returns the owning category, nil if detached
func (id *ID) Category() *Category {
	return id.category
}

// CategoryCode extracts the category code from the ID code
func (id *ID) CategoryCode() string {
	return CategoryCodeOf(id.Code)
}

// Number returns the numeric suffix (0-99)
func (id *ID) Number() int {
	return IDNumber(id.Code)
}

// Decade returns the decade (0, 10, ..., 90) this ID belongs to
func (id *ID) Decade() int {
	return id.Number() / 10 * 10
}

// SectionHeader returns the section divider governing this ID, if any.
// IDs in decade 0 never have one.
func (id *ID) SectionHeader() *ID {
	if id.category == nil {
		return nil
	}
	return id.category.SectionHeaderFor(id.Number())
}

// SectionName returns the governing section's name stripped of markers,
// or "" when the ID has no section header.
func (id *ID) SectionName() string {
	header := id.SectionHeader()
	if header == nil {
		return ""
	}
	return CleanSectionName(header.Name)
}

// Category represents a Johnny Decimal category (e.g., "11 Me").
// Holds up to 100 IDs organized by decade sections.
type Category struct {
	Code string // e.g., "11"
	Name string // full folder name, e.g., "11 Me"

	ids  map[string]*ID
	area *Area // non-owning back-reference
}

// Area returns the owning area, nil if detached
func (c *Category) Area() *Area {
	return c.area
}

// Len returns the number of IDs in the category
func (c *Category) Len() int {
	return len(c.ids)
}

// GetID returns the ID with the given code, nil if absent
func (c *Category) GetID(code string) *ID {
	return c.ids[code]
}

// IDs returns all IDs in ascending code order
func (c *Category) IDs() []*ID {
	out := make([]*ID, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// AddID adds an ID to the category, taking ownership
func (c *Category) AddID(id *ID) {
	if c.ids == nil {
		c.ids = make(map[string]*ID)
	}
	id.category = c
	c.ids[id.Code] = id
	if c.area != nil && c.area.index != nil {
		c.area.index.InvalidateCaches()
	}
}

// RemoveID detaches and returns the ID with the given code, nil if absent
func (c *Category) RemoveID(code string) *ID {
	id := c.ids[code]
	if id != nil {
		id.category = nil
		delete(c.ids, code)
		if c.area != nil && c.area.index != nil {
			c.area.index.InvalidateCaches()
		}
	}
	return id
}

// usedSlots reports every ID number in use, sections included
func (c *Category) usedSlots() map[int]bool {
	used := make(map[int]bool, len(c.ids))
	for _, id := range c.ids {
		used[id.Number()] = true
	}
	return used
}

// sectionDecades reports the decades that have a section divider
func (c *Category) sectionDecades() map[int]bool {
	decades := make(map[int]bool)
	for _, id := range c.ids {
		if id.Section {
			decades[id.Decade()] = true
		}
	}
	return decades
}

// Area represents a Johnny Decimal area (e.g., "10-19 Life admin").
type Area struct {
	Code string // e.g., "10-19"
	Name string // full folder name, e.g., "10-19 Life admin"

	categories map[string]*Category
	index      *Index // non-owning back-reference
}

// Decade returns the decade this area covers (10, 20, ..., 90)
func (a *Area) Decade() int {
	return AreaDecade(a.Code)
}

// Len returns the number of categories in the area
func (a *Area) Len() int {
	return len(a.categories)
}

// GetCategory returns the category with the given code, nil if absent
func (a *Area) GetCategory(code string) *Category {
	return a.categories[code]
}

// Categories returns all categories in ascending code order
func (a *Area) Categories() []*Category {
	out := make([]*Category, 0, len(a.categories))
	for _, c := range a.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// AddCategory adds a category to the area, taking ownership
func (a *Area) AddCategory(c *Category) {
	if a.categories == nil {
		a.categories = make(map[string]*Category)
	}
	c.area = a
	a.categories[c.Code] = c
	if a.index != nil {
		a.index.InvalidateCaches()
	}
}

// RemoveCategory detaches and returns the category with the given code
func (a *Area) RemoveCategory(code string) *Category {
	c := a.categories[code]
	if c != nil {
		c.area = nil
		delete(a.categories, code)
		if a.index != nil {
			a.index.InvalidateCaches()
		}
	}
	return c
}

// Index is the root of the Johnny Decimal tree.
// Built wholesale by a scan and read-only afterwards; the flattened
// lookup maps are derived caches invalidated on any mutation.
type Index struct {
	areas map[string]*Area

	catsByCode map[string]*Category
	idsByCode  map[string]*ID
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{areas: make(map[string]*Area)}
}

// Len returns the number of areas
func (x *Index) Len() int {
	return len(x.areas)
}

// GetArea returns the area with the given code, nil if absent
func (x *Index) GetArea(code string) *Area {
	return x.areas[code]
}

// Areas returns all areas in ascending code order
func (x *Index) Areas() []*Area {
	out := make([]*Area, 0, len(x.areas))
	for _, a := range x.areas {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// AddArea adds an area to the index, taking ownership
func (x *Index) AddArea(a *Area) {
	if x.areas == nil {
		x.areas = make(map[string]*Area)
	}
	a.index = x
	x.areas[a.Code] = a
	x.InvalidateCaches()
}

// GetCategory returns the category with the given code from any area
func (x *Index) GetCategory(code string) *Category {
	if x.catsByCode == nil {
		x.catsByCode = make(map[string]*Category)
		for _, a := range x.areas {
			for _, c := range a.categories {
				x.catsByCode[c.Code] = c
			}
		}
	}
	return x.catsByCode[code]
}

// GetID returns the ID with the given code from any category
func (x *Index) GetID(code string) *ID {
	if x.idsByCode == nil {
		x.idsByCode = make(map[string]*ID)
		for _, a := range x.areas {
			for _, c := range a.categories {
				for _, id := range c.ids {
					x.idsByCode[id.Code] = id
				}
			}
		}
	}
	return x.idsByCode[code]
}

// AreaForCategory finds the area owning a category code, nil if unknown
func (x *Index) AreaForCategory(catCode string) *Area {
	c := x.GetCategory(catCode)
	if c == nil {
		return nil
	}
	return c.Area()
}

// InvalidateCaches drops the flattened lookup maps.
// Must be called (or is called by Add/Remove) after any tree mutation.
func (x *Index) InvalidateCaches() {
	x.catsByCode = nil
	x.idsByCode = nil
}

// Count returns the number of areas, categories, and IDs
func (x *Index) Count() (areas, categories, ids int) {
	areas = len(x.areas)
	for _, a := range x.areas {
		categories += len(a.categories)
		for _, c := range a.categories {
			ids += len(c.ids)
		}
	}
	return areas, categories, ids
}
