package domain

import "testing"

// buildTestIndex builds a small tree:
//
//	10-19 Life admin
//	  11 Me
//	    11.00 Meta, 11.01 Inbox, 11.10 ■ Finance (section), 11.11 Taxes
//	  12 Health
//	20-29 Work
func buildTestIndex() *Index {
	idx := NewIndex()

	life := &Area{Code: "10-19", Name: "10-19 Life admin"}
	idx.AddArea(life)

	me := &Category{Code: "11", Name: "11 Me"}
	life.AddCategory(me)
	me.AddID(&ID{Code: "11.00", Name: "11.00 Meta"})
	me.AddID(&ID{Code: "11.01", Name: "11.01 Inbox"})
	me.AddID(&ID{Code: "11.10", Name: "11.10 ■ Finance", Section: true})
	me.AddID(&ID{Code: "11.11", Name: "11.11 Taxes"})

	health := &Category{Code: "12", Name: "12 Health"}
	life.AddCategory(health)

	work := &Area{Code: "20-29", Name: "20-29 Work"}
	idx.AddArea(work)

	return idx
}

func TestIndexTraversalOrder(t *testing.T) {
	idx := buildTestIndex()

	areas := idx.Areas()
	if len(areas) != 2 || areas[0].Code != "10-19" || areas[1].Code != "20-29" {
		t.Fatalf("unexpected area order: %+v", areas)
	}

	cats := areas[0].Categories()
	if len(cats) != 2 || cats[0].Code != "11" || cats[1].Code != "12" {
		t.Fatalf("unexpected category order: %+v", cats)
	}

	ids := cats[0].IDs()
	want := []string{"11.00", "11.01", "11.10", "11.11"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i, id := range ids {
		if id.Code != want[i] {
			t.Errorf("ids[%d] = %s, want %s", i, id.Code, want[i])
		}
	}
}

func TestParentBackReferences(t *testing.T) {
	idx := buildTestIndex()

	id := idx.GetID("11.01")
	if id == nil {
		t.Fatal("11.01 not found")
	}
	if id.Category() == nil || id.Category().Code != "11" {
		t.Error("ID back-reference not wired to category 11")
	}
	if id.Category().Area() == nil || id.Category().Area().Code != "10-19" {
		t.Error("category back-reference not wired to area 10-19")
	}
}

func TestRemoveDetachesChild(t *testing.T) {
	idx := buildTestIndex()
	cat := idx.GetCategory("11")

	removed := cat.RemoveID("11.01")
	if removed == nil {
		t.Fatal("expected removed ID")
	}
	if removed.Category() != nil {
		t.Error("removed ID still holds a parent reference")
	}
	if cat.GetID("11.01") != nil {
		t.Error("removed ID still present in category")
	}
}

func TestFlattenedCachesInvalidatedOnMutation(t *testing.T) {
	idx := buildTestIndex()

	// Populate the caches
	if idx.GetCategory("11") == nil {
		t.Fatal("category 11 not found")
	}
	if idx.GetID("11.11") == nil {
		t.Fatal("ID 11.11 not found")
	}

	// Mutate: a new category must be visible through the flattened view
	area := idx.GetArea("20-29")
	area.AddCategory(&Category{Code: "21", Name: "21 Clients"})

	if idx.GetCategory("21") == nil {
		t.Error("new category not visible after mutation")
	}

	// Same for IDs: adding and removing through the category must be
	// reflected by the flattened lookup
	me := idx.GetCategory("11")
	me.AddID(&ID{Code: "11.02", Name: "11.02 Calendar"})
	if idx.GetID("11.02") == nil {
		t.Error("new ID not visible after mutation")
	}

	me.RemoveID("11.02")
	if idx.GetID("11.02") != nil {
		t.Error("removed ID still visible through the flattened view")
	}
}

func TestAreaForCategory(t *testing.T) {
	idx := buildTestIndex()

	area := idx.AreaForCategory("12")
	if area == nil || area.Code != "10-19" {
		t.Errorf("expected area 10-19, got %+v", area)
	}
	if idx.AreaForCategory("99") != nil {
		t.Error("unknown category should have no area")
	}
}

func TestSectionHeader(t *testing.T) {
	idx := buildTestIndex()

	taxes := idx.GetID("11.11")
	header := taxes.SectionHeader()
	if header == nil || header.Code != "11.10" {
		t.Fatalf("expected section header 11.10, got %+v", header)
	}
	if name := taxes.SectionName(); name != "11.10 Finance" {
		t.Errorf("expected cleaned section name, got %q", name)
	}

	// Decade 0 IDs never have a section header
	if idx.GetID("11.01").SectionHeader() != nil {
		t.Error("decade-0 ID should have no section header")
	}

	// A section ID whose decade slot is itself is its own header candidate;
	// the header must be section-flagged to count
	me := idx.GetCategory("11")
	me.AddID(&ID{Code: "11.20", Name: "11.20 Plain folder"})
	me.AddID(&ID{Code: "11.21", Name: "11.21 Thing"})
	if idx.GetID("11.21").SectionHeader() != nil {
		t.Error("non-section decade folder must not act as a header")
	}
}

func TestCount(t *testing.T) {
	idx := buildTestIndex()
	areas, cats, ids := idx.Count()
	if areas != 2 || cats != 2 || ids != 4 {
		t.Errorf("Count() = (%d, %d, %d), want (2, 2, 4)", areas, cats, ids)
	}
}

func TestFindByCode(t *testing.T) {
	idx := buildTestIndex()

	tests := []struct {
		code   string
		tier   Tier
		parent string
	}{
		{"10-19", TierArea, ""},
		{"11", TierCategory, "10-19"},
		{"11.10", TierID, "11"},
	}
	for _, tt := range tests {
		node := idx.FindByCode(tt.code)
		if node == nil {
			t.Fatalf("FindByCode(%q) = nil", tt.code)
		}
		if node.Tier != tt.tier || node.ParentCode != tt.parent {
			t.Errorf("FindByCode(%q) = %+v, want tier %v parent %q", tt.code, node, tt.tier, tt.parent)
		}
	}

	if node := idx.FindByCode("11.10"); node != nil && !node.Section {
		t.Error("section flag lost in flattened lookup")
	}
	for _, code := range []string{"30-39", "99", "11.99", "garbage"} {
		if idx.FindByCode(code) != nil {
			t.Errorf("FindByCode(%q) should be nil", code)
		}
	}
}

func TestFlattenNodes(t *testing.T) {
	idx := buildTestIndex()
	nodes := idx.FlattenNodes()

	if len(nodes) != 8 {
		t.Fatalf("expected 8 nodes, got %d", len(nodes))
	}
	if nodes[0].Code != "10-19" || nodes[0].Tier != TierArea {
		t.Errorf("first node should be area 10-19, got %+v", nodes[0])
	}
	// Children carry their parent code
	for _, n := range nodes {
		if n.Code == "11.10" {
			if !n.Section || n.ParentCode != "11" {
				t.Errorf("11.10 node not flattened correctly: %+v", n)
			}
		}
	}
}
