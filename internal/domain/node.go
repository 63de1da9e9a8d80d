package domain

import "time"

// IndexNode is a flattened cache row for a single tree entry
type IndexNode struct {
	Code       string // primary key, e.g., "11.01"
	Tier       Tier
	Name       string
	Section    bool
	ParentCode string // owning area or category code; "" for areas
}

// SyncStats holds statistics from a cache sync
type SyncStats struct {
	NodesWritten int
	Duration     time.Duration
}

// FindByCode looks up any entry by its bare code, dispatching on the
// code's shape. The result is a flattened view, nil when nothing matches.
func (x *Index) FindByCode(code string) *IndexNode {
	switch ParseTier(code) {
	case TierArea:
		if a := x.GetArea(code); a != nil {
			return &IndexNode{Code: a.Code, Tier: TierArea, Name: a.Name}
		}
	case TierCategory:
		if c := x.GetCategory(code); c != nil {
			node := &IndexNode{Code: c.Code, Tier: TierCategory, Name: c.Name}
			if c.Area() != nil {
				node.ParentCode = c.Area().Code
			}
			return node
		}
	case TierID:
		if id := x.GetID(code); id != nil {
			node := &IndexNode{Code: id.Code, Tier: TierID, Name: id.Name, Section: id.Section}
			if id.Category() != nil {
				node.ParentCode = id.Category().Code
			}
			return node
		}
	}
	return nil
}

// FlattenNodes converts the tree into cache rows, parents before children
func (x *Index) FlattenNodes() []IndexNode {
	var nodes []IndexNode
	for _, area := range x.Areas() {
		nodes = append(nodes, IndexNode{
			Code: area.Code,
			Tier: TierArea,
			Name: area.Name,
		})
		for _, cat := range area.Categories() {
			nodes = append(nodes, IndexNode{
				Code:       cat.Code,
				Tier:       TierCategory,
				Name:       cat.Name,
				ParentCode: area.Code,
			})
			for _, id := range cat.IDs() {
				nodes = append(nodes, IndexNode{
					Code:       id.Code,
					Tier:       TierID,
					Name:       id.Name,
					Section:    id.Section,
					ParentCode: cat.Code,
				})
			}
		}
	}
	return nodes
}
