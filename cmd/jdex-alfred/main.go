package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"jdex/internal/adapters/alfred"
	"jdex/internal/adapters/filesystem"
	"jdex/internal/adapters/jsonstore"
	"jdex/internal/application"
	"jdex/internal/application/commands"
	"jdex/internal/config"
)

// deps are shared by all Script Filter modes
type deps struct {
	index    *application.Index
	resolver *filesystem.Resolver
}

func main() {
	level := flag.String("level", "", "restrict browse to one tier: area, category or id")
	flag.Parse()

	args := flag.Args()
	mode := "browse"
	if len(args) > 0 {
		mode = args[0]
		args = args[1:]
	}
	query := strings.TrimSpace(strings.Join(args, " "))

	switch mode {
	case "browse":
		runBrowse(query, *level)
	case "new":
		runNew(query)
	case "build":
		runBuild()
	default:
		fmt.Fprintf(os.Stderr, "jdex-alfred: unknown mode %q (want browse, new or build)\n", mode)
		os.Exit(2)
	}
}

func emit(items []alfred.Item) {
	if err := (alfred.Output{Items: items}).Write(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "jdex-alfred: %v\n", err)
		os.Exit(1)
	}
}

// loadDeps loads the persisted index. The error items double as the
// "rebuild first" hint the launcher shows on a missing index.
func loadDeps() (*deps, []alfred.Item) {
	root := config.Root()
	store := jsonstore.NewStore(config.IndexPath())

	index, err := store.Load()
	if err != nil {
		return nil, []alfred.Item{
			alfred.ErrorItem("Index unavailable", err.Error()),
			{
				Title:    "Rebuild Index",
				Subtitle: fmt.Sprintf("Use 'jdb' to scan %s", root),
				Valid:    alfred.Invalid(),
				Icon:     &alfred.Icon{Path: "icons/build.png"},
			},
		}
	}
	return &deps{index: index, resolver: filesystem.NewResolver(root)}, nil
}

// --- browse mode ---

var specificIDQueryRe = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\s*$`)

func runBrowse(query, level string) {
	d, errItems := loadDeps()
	if errItems != nil {
		emit(errItems)
		return
	}

	tier, ok := parseLevel(level)
	if !ok {
		emit([]alfred.Item{alfred.ErrorItem("Invalid level "+level, "Want area, category or id")})
		return
	}

	// A level filter searches only; prompt until something is typed
	if tier != application.TierUnknown && query == "" {
		plural := map[application.Tier]string{
			application.TierArea:     "areas",
			application.TierCategory: "categories",
			application.TierID:       "IDs",
		}
		emit([]alfred.Item{{
			Title:    "Search " + plural[tier] + "...",
			Subtitle: "Start typing to search",
			Valid:    alfred.Invalid(),
		}})
		return
	}

	browse := commands.NewBrowseCommand(d.index, d.resolver, query, tier)
	result, err := browse.Execute(context.Background())
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			emit([]alfred.Item{alfred.ErrorItem(err.Error(), "Run 'jdb' to rebuild index")})
			return
		}
		emit([]alfred.Item{alfred.ErrorItem("Browse failed", err.Error())})
		return
	}

	var items []alfred.Item
	if back := backItem(d.index, result.Parent, query); back != nil {
		items = append(items, *back)
	}

	for i, e := range result.Entries {
		if i >= alfred.MaxResults {
			break
		}
		items = append(items, alfred.EntryItem(e, autocompleteFor(e)))
	}

	if len(result.Entries) == 0 {
		if query == "" {
			items = append(items, alfred.ErrorItem("No areas found", "Run 'jdb' to rebuild index"))
		} else {
			items = append(items, alfred.ErrorItem(fmt.Sprintf("No results for %q", query), "Try a different search term"))
		}
	}

	emit(items)
}

// autocompleteFor lets areas and categories drill down on tab;
// IDs are actioned directly.
func autocompleteFor(e commands.Entry) string {
	switch e.Tier {
	case application.TierArea, application.TierCategory:
		return e.Code + " "
	default:
		return ""
	}
}

// backItem builds the ".. Back to X" row above a navigated listing
func backItem(index *application.Index, parent *commands.Entry, query string) *alfred.Item {
	if parent == nil {
		return nil
	}

	switch {
	case parent.Tier == application.TierArea:
		item := alfred.BackItem(".. Back to all areas", "Currently in "+parent.Name, "", "area")
		return &item

	case specificIDQueryRe.MatchString(query):
		// Viewing one ID, back to its category
		item := alfred.BackItem(".. Back to "+parent.Name, "Currently viewing "+query, parent.Code+" ", "id")
		return &item

	default:
		// Listing a category's IDs, back to the owning area
		area := index.AreaForCategory(parent.Code)
		if area == nil {
			return nil
		}
		item := alfred.BackItem(".. Back to "+area.Name, "Currently in "+parent.Name, area.Code+" ", "category")
		return &item
	}
}

func parseLevel(level string) (application.Tier, bool) {
	switch level {
	case "":
		return application.TierUnknown, true
	case "area":
		return application.TierArea, true
	case "category":
		return application.TierCategory, true
	case "id":
		return application.TierID, true
	default:
		return application.TierUnknown, false
	}
}

// --- new mode ---

// runNew drives the three-step create flow. Alfred passes the state of
// earlier steps back in via workflow variables in the environment.
func runNew(query string) {
	categoryCode := os.Getenv("jd_category")
	categoryPath := os.Getenv("jd_category_path")
	selectedID := os.Getenv("jd_selected_id")

	d, errItems := loadDeps()
	if errItems != nil {
		emit(errItems)
		return
	}

	newItem := commands.NewNewItemCommand(d.index, d.resolver)
	ctx := context.Background()

	switch {
	case categoryCode == "":
		emit(newCategoryItems(ctx, newItem, query))
	case selectedID == "":
		emit(newSlotItems(ctx, newItem, categoryCode, categoryPath, query))
	default:
		emit(newNameItems(ctx, newItem, categoryCode, categoryPath, selectedID, query))
	}
}

// newCategoryItems is step 1: pick a category
func newCategoryItems(ctx context.Context, newItem *commands.NewItemCommand, query string) []alfred.Item {
	choices, err := newItem.Categories(ctx, query)
	if err != nil {
		return []alfred.Item{alfred.ErrorItem("Listing categories failed", err.Error())}
	}

	var items []alfred.Item
	for _, c := range choices {
		subtitle := "Next available: " + c.NextID
		if c.Full {
			subtitle = "Category full"
		}
		items = append(items, alfred.Item{
			Title:    c.Name,
			Subtitle: subtitle,
			UID:      "new-cat-" + c.Code,
			Icon:     &alfred.Icon{Type: "fileicon", Path: c.Path},
			Variables: map[string]string{
				"jd_category":      c.Code,
				"jd_category_path": c.Path,
			},
		})
	}

	if len(items) == 0 {
		if query != "" {
			return []alfred.Item{alfred.ErrorItem(
				fmt.Sprintf("No categories matching %q", query), "Try a different search term")}
		}
		return []alfred.Item{alfred.ErrorItem("No categories found", "Run 'jdb' to rebuild index")}
	}
	return items
}

// newSlotItems is step 2: pick a free ID slot
func newSlotItems(ctx context.Context, newItem *commands.NewItemCommand, categoryCode, categoryPath, query string) []alfred.Item {
	choices, err := newItem.Slots(ctx, categoryCode, query)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return []alfred.Item{alfred.ErrorItem(
				fmt.Sprintf("Category %s not found", categoryCode), "Run 'jdb' to rebuild index")}
		}
		return []alfred.Item{alfred.ErrorItem("Listing slots failed", err.Error())}
	}

	if len(choices) == 0 {
		if query != "" {
			return []alfred.Item{alfred.ErrorItem(
				fmt.Sprintf("No available IDs matching %q", query), "Try a different number")}
		}
		return []alfred.Item{alfred.ErrorItem(
			fmt.Sprintf("Category %s is full", categoryCode), "All 100 IDs are in use")}
	}

	var items []alfred.Item
	for _, c := range choices {
		items = append(items, alfred.Item{
			Title:    c.Code,
			Subtitle: c.Subtitle,
			UID:      "new-id-" + c.Code,
			Icon:     &alfred.Icon{Path: "icons/id.png"},
			Variables: map[string]string{
				"jd_category":      categoryCode,
				"jd_category_path": categoryPath,
				"jd_selected_id":   c.Code,
			},
		})
	}
	return items
}

// newNameItems is step 3: name the folder and offer to create it
func newNameItems(ctx context.Context, newItem *commands.NewItemCommand, categoryCode, categoryPath, selectedID, name string) []alfred.Item {
	plan, err := newItem.PlanFolder(ctx, categoryCode, selectedID, name)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return []alfred.Item{alfred.ErrorItem(
				fmt.Sprintf("Category %s not found", categoryCode), "Run 'jdb' to rebuild index")}
		}
		return []alfred.Item{alfred.ErrorItem("Planning folder failed", err.Error())}
	}

	if name == "" {
		return []alfred.Item{{
			Title:    "Type a name for " + selectedID,
			Subtitle: plan.Subtitle,
			Valid:    alfred.Invalid(),
			Icon:     &alfred.Icon{Path: "icons/id.png"},
		}}
	}

	return []alfred.Item{
		{
			Title:    "Create: " + plan.FolderName,
			Subtitle: plan.Subtitle,
			Arg:      plan.Path,
			UID:      "create-" + selectedID,
			Icon:     &alfred.Icon{Path: "icons/id.png"},
			Variables: map[string]string{
				"action":        "create",
				"jd_open_after": "false",
			},
			Mods: map[string]*alfred.Mod{
				"alt": {
					Subtitle: "Create and open in Finder",
					Arg:      plan.Path,
					Variables: map[string]string{
						"action":        "create",
						"jd_open_after": "true",
					},
				},
			},
		},
		{
			Title:    "Path: " + plan.Path,
			Subtitle: "Alt+Enter to create and open",
			Valid:    alfred.Invalid(),
			Icon:     &alfred.Icon{Type: "fileicon", Path: categoryPath},
		},
	}
}

// --- build mode ---

// runBuild rescans the root and replaces the persisted index.
// Plain text output, the launcher shows it as a notification.
func runBuild() {
	root := config.Root()
	rebuild := commands.NewRebuildCommand(
		filesystem.NewScanner(root),
		jsonstore.NewStore(config.IndexPath()),
	)

	_, stats, err := rebuild.Execute(context.Background())
	if err != nil {
		if errors.Is(err, application.ErrEmptyScan) {
			fmt.Printf("No JD folders found in %s\n", root)
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}

	fmt.Printf("Index rebuilt: %s\n", stats)
}
