package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Tier represents the level of a Johnny Decimal code
type Tier int

const (
	TierUnknown  Tier = iota
	TierArea          // 10-19
	TierCategory      // 11
	TierID            // 11.01
)

func (t Tier) String() string {
	switch t {
	case TierArea:
		return "area"
	case TierCategory:
		return "category"
	case TierID:
		return "id"
	default:
		return "unknown"
	}
}

// SectionMarker flags a folder as a non-navigable divider.
// The marker may appear anywhere in the name; restricting it to a fixed
// prefix is a possible future tightening.
const SectionMarker = "■"

var (
	areaFolderRe     = regexp.MustCompile(`^([0-9]0-[0-9]9)\s+(.*)$`)
	categoryFolderRe = regexp.MustCompile(`^([0-9]{2})\s+(.*)$`)
	idFolderRe       = regexp.MustCompile(`^([0-9]{2}\.[0-9]{2})\s+(.*)$`)

	areaCodeRe     = regexp.MustCompile(`^[0-9]0-[0-9]9$`)
	categoryCodeRe = regexp.MustCompile(`^[0-9]{2}$`)
	idCodeRe       = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}$`)
)

// ParseTier determines the tier of a bare code string
func ParseTier(code string) Tier {
	code = strings.TrimSpace(code)

	switch {
	case areaCodeRe.MatchString(code):
		return TierArea
	case categoryCodeRe.MatchString(code):
		return TierCategory
	case idCodeRe.MatchString(code):
		return TierID
	default:
		return TierUnknown
	}
}

// ParseAreaFolder matches a folder name like "10-19 Life admin".
// Returns the area code; the folder name itself is carried as the
// entry's display name.
func ParseAreaFolder(name string) (string, bool) {
	m := areaFolderRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseCategoryFolder matches a folder name like "11 Me".
func ParseCategoryFolder(name string) (string, bool) {
	m := categoryFolderRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseIDFolder matches a folder name like "11.01 Inbox".
// The second return reports whether the name carries the section marker.
func ParseIDFolder(name string) (string, bool, bool) {
	m := idFolderRe.FindStringSubmatch(name)
	if m == nil {
		return "", false, false
	}
	return m[1], strings.Contains(name, SectionMarker), true
}

// CategoryCodeOf extracts the category code from an ID code
// e.g., "11.01" -> "11"
func CategoryCodeOf(idCode string) string {
	return strings.SplitN(idCode, ".", 2)[0]
}

// IDNumber extracts the numeric suffix of an ID code (0-99)
func IDNumber(idCode string) int {
	parts := strings.SplitN(idCode, ".", 2)
	if len(parts) != 2 {
		return 0
	}
	n, _ := strconv.Atoi(parts[1])
	return n
}

// AreaDecade returns the decade an area code covers
// e.g., "10-19" -> 10
func AreaDecade(areaCode string) int {
	n, _ := strconv.Atoi(strings.SplitN(areaCode, "-", 2)[0])
	return n
}

// FormatIDCode builds a zero-padded ID code from a category code and number
func FormatIDCode(catCode string, num int) string {
	return fmt.Sprintf("%s.%02d", catCode, num)
}

// CleanSectionName strips the section marker for cleaner display
func CleanSectionName(name string) string {
	return strings.ReplaceAll(name, SectionMarker+" ", "")
}
