package commands

import (
	"context"
	"path/filepath"
	"strings"

	"jdex/internal/application"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// CategoryChoice is a category offered as a destination for a new item
type CategoryChoice struct {
	Code   string
	Name   string
	Path   string
	NextID string // next free slot, "" when the category is full
	Full   bool
}

// SlotChoice is a free ID slot offered for a new item, with the
// breadcrumb of where it would land.
type SlotChoice struct {
	Code     string
	Subtitle string
}

// Plan describes the folder a new item would occupy. Planning only:
// creating the folder is the caller's job.
type Plan struct {
	FolderName string
	Path       string
	Subtitle   string
}

// NewItemCommand drives the pick-category → pick-slot → name flow
// for placing a new item.
type NewItemCommand struct {
	index    *domain.Index
	resolver ports.PathResolver
}

// NewNewItemCommand creates a new NewItemCommand
func NewNewItemCommand(index *domain.Index, resolver ports.PathResolver) *NewItemCommand {
	return &NewItemCommand{index: index, resolver: resolver}
}

// Categories lists destination categories, filtered by a substring query.
// Categories whose folder cannot be resolved are skipped.
func (c *NewItemCommand) Categories(ctx context.Context, query string) ([]CategoryChoice, error) {
	query = strings.ToLower(query)

	var choices []CategoryChoice
	for _, area := range c.index.Areas() {
		for _, cat := range area.Categories() {
			if query != "" && !strings.Contains(strings.ToLower(cat.Name), query) {
				continue
			}

			path, ok := c.resolver.Resolve(cat.Code, c.index)
			if !ok {
				continue
			}

			choice := CategoryChoice{Code: cat.Code, Name: cat.Name, Path: path}
			if next, ok := cat.NextFreeID(); ok {
				choice.NextID = next
			} else {
				choice.Full = true
			}
			choices = append(choices, choice)
		}
	}
	return choices, nil
}

// Slots lists the curated free slots of a category. filter narrows the
// list by substring (users type a number to jump to a slot).
func (c *NewItemCommand) Slots(ctx context.Context, catCode, filter string) ([]SlotChoice, error) {
	cat := c.index.GetCategory(catCode)
	if cat == nil || cat.Area() == nil {
		return nil, &application.NotFoundError{Code: catCode}
	}

	var choices []SlotChoice
	for _, code := range cat.AvailableSlots(domain.DefaultSlotLimit) {
		if filter != "" && !strings.Contains(code, filter) {
			continue
		}
		choices = append(choices, SlotChoice{
			Code:     code,
			Subtitle: c.slotSubtitle(cat, code),
		})
	}
	return choices, nil
}

// PlanFolder computes the folder a new item would occupy
func (c *NewItemCommand) PlanFolder(ctx context.Context, catCode, slotCode, name string) (*Plan, error) {
	cat := c.index.GetCategory(catCode)
	if cat == nil || cat.Area() == nil {
		return nil, &application.NotFoundError{Code: catCode}
	}

	catPath, ok := c.resolver.Resolve(catCode, c.index)
	if !ok {
		return nil, &application.NotFoundError{Code: catCode}
	}

	folderName := slotCode + " " + name
	return &Plan{
		FolderName: folderName,
		Path:       filepath.Join(catPath, folderName),
		Subtitle:   c.slotSubtitle(cat, slotCode),
	}, nil
}

// slotSubtitle builds "area → category (→ section)" for a prospective slot
func (c *NewItemCommand) slotSubtitle(cat *domain.Category, slotCode string) string {
	subtitle := cat.Area().Name + " → " + cat.Name
	if header := cat.SectionHeaderFor(domain.IDNumber(slotCode)); header != nil {
		subtitle += " → " + domain.CleanSectionName(header.Name)
	}
	return subtitle
}
