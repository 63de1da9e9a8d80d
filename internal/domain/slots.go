package domain

import "sort"

// DefaultSlotLimit is the number of slots offered in decade 0 by
// AvailableSlots when no explicit limit is given.
const DefaultSlotLimit = 3

// SectionHeaderFor returns the section divider governing slot num, if any.
// Slots in decade 0 never have one.
func (c *Category) SectionHeaderFor(num int) *ID {
	decade := num / 10 * 10
	if decade == 0 {
		return nil
	}
	header := c.GetID(FormatIDCode(c.Code, decade))
	if header == nil || !header.Section {
		return nil
	}
	return header
}

// NextFreeID returns the first unused ID number in the category,
// formatted as a full code. Section positions count as used.
// The second return is false when all 100 numbers are taken.
func (c *Category) NextFreeID() (string, bool) {
	used := c.usedSlots()
	for num := 0; num < 100; num++ {
		if !used[num] {
			return FormatIDCode(c.Code, num), true
		}
	}
	return "", false
}

// AvailableSlots returns a curated list of free ID codes: up to limit
// free slots in decade 0, plus the first free slot in each decade that
// has a section divider. Decades without a divider contribute nothing,
// preserving deliberate navigational gaps. The result is sorted ascending.
func (c *Category) AvailableSlots(limit int) []string {
	used := c.usedSlots()
	sections := c.sectionDecades()

	var available []string
	initial := 0
	covered := make(map[int]bool)

	for num := 0; num < 100; num++ {
		if used[num] {
			continue
		}

		decade := num / 10 * 10

		if decade == 0 && initial < limit {
			available = append(available, FormatIDCode(c.Code, num))
			initial++
		} else if sections[decade] && !covered[decade] {
			available = append(available, FormatIDCode(c.Code, num))
			covered[decade] = true
		}
	}

	sort.Strings(available)
	return available
}
