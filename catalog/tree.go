package catalog

import (
	"log"
	"sort"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var collator = collate.New(language.English, collate.IgnoreCase)

// BuildCategoryTree transforms a flat family list into a hierarchical
// category tree. Families whose fa_parent points at a family that is not in
// the list are promoted to roots with a diagnostic warning. Self-parented
// families and families trapped in a parent cycle are malformed input: they
// are excluded from the tree and returned in dropped. Every level of the
// tree is sorted by fa_newname.
func BuildCategoryTree(families []models.Family) (roots []*models.Category, dropped []models.Family) {
	nodes := make(map[string]*models.Category, len(families))
	order := make([]string, 0, len(families))

	for _, fam := range families {
		if _, exists := nodes[fam.Name]; exists {
			log.Printf("[catalog.tree] duplicate family id '%s', keeping first occurrence", fam.Name)
			continue
		}
		nodes[fam.Name] = &models.Category{Family: fam}
		order = append(order, fam.Name)
	}

	roots = make([]*models.Category, 0, len(order))
	for _, name := range order {
		node := nodes[name]
		parent := node.Family.Parent
		switch {
		case parent == "":
			roots = append(roots, node)
		case parent == name:
			log.Printf("[catalog.tree] family '%s' is its own parent, dropping", name)
			dropped = append(dropped, node.Family)
		default:
			if p, ok := nodes[parent]; ok {
				p.Subcategories = append(p.Subcategories, node)
			} else {
				log.Printf("[catalog.tree] parent '%s' not found for family '%s', promoting to root",
					parent, node.Family.NewName)
				roots = append(roots, node)
			}
		}
	}

	// Families linked only under a parent cycle are unreachable from any
	// root. Report them instead of silently producing a partial tree.
	reachable := make(map[string]bool, len(order))
	var mark func(n *models.Category)
	mark = func(n *models.Category) {
		if reachable[n.Family.Name] {
			return
		}
		reachable[n.Family.Name] = true
		for _, child := range n.Subcategories {
			mark(child)
		}
	}
	for _, root := range roots {
		mark(root)
	}
	for _, name := range order {
		node := nodes[name]
		if !reachable[name] && node.Family.Parent != name {
			log.Printf("[catalog.tree] family '%s' is part of a parent cycle, dropping", name)
			dropped = append(dropped, node.Family)
		}
	}

	sortLevel(roots)
	return roots, dropped
}

func sortLevel(cats []*models.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		return collator.CompareString(cats[i].Family.NewName, cats[j].Family.NewName) < 0
	})
	for _, cat := range cats {
		if len(cat.Subcategories) > 0 {
			sortLevel(cat.Subcategories)
		}
	}
}
