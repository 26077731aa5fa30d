package catalog

import (
	"testing"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fam(name, parent, newname string) models.Family {
	return models.Family{Name: name, Parent: parent, NewName: newname, CompanyID: "cmp1"}
}

func TestBuildCategoryTreeLinksChildrenUnderParents(t *testing.T) {
	families := []models.Family{
		fam("a", "", "Apparel"),
		fam("b", "a", "Boots"),
		fam("c", "zzz", "Candles"),
	}

	roots, dropped := BuildCategoryTree(families)

	require.Empty(t, dropped)
	require.Len(t, roots, 2)
	// "c" has a missing parent and is promoted to a root.
	assert.Equal(t, "Apparel", roots[0].Family.NewName)
	assert.Equal(t, "Candles", roots[1].Family.NewName)
	require.Len(t, roots[0].Subcategories, 1)
	assert.Equal(t, "b", roots[0].Subcategories[0].Family.Name)
}

func TestBuildCategoryTreeEveryRecordAppearsExactlyOnce(t *testing.T) {
	families := []models.Family{
		fam("root1", "", "Zoo"),
		fam("root2", "", "Aquarium"),
		fam("kid1", "root1", "Birds"),
		fam("kid2", "root1", "Apes"),
		fam("grandkid", "kid1", "Parrots"),
		fam("orphan", "missing", "Orphan"),
	}

	roots, dropped := BuildCategoryTree(families)
	require.Empty(t, dropped)

	seen := map[string]int{}
	var walk func(nodes []*models.Category, parent string)
	walk = func(nodes []*models.Category, parent string) {
		for _, n := range nodes {
			seen[n.Family.Name]++
			if parent != "" {
				assert.Equal(t, parent, n.Family.Parent)
			}
			walk(n.Subcategories, n.Family.Name)
		}
	}
	walk(roots, "")

	require.Len(t, seen, len(families))
	for _, f := range families {
		assert.Equal(t, 1, seen[f.Name], "family %s", f.Name)
	}
}

func TestBuildCategoryTreeSortsEveryLevelByDisplayName(t *testing.T) {
	families := []models.Family{
		fam("z", "", "Zebra"),
		fam("a", "", "apple"),
		fam("m", "", "Mango"),
		fam("z2", "z", "Wings"),
		fam("z1", "z", "claws"),
	}

	roots, _ := BuildCategoryTree(families)

	require.Len(t, roots, 3)
	assert.Equal(t, "apple", roots[0].Family.NewName)
	assert.Equal(t, "Mango", roots[1].Family.NewName)
	assert.Equal(t, "Zebra", roots[2].Family.NewName)
	require.Len(t, roots[2].Subcategories, 2)
	assert.Equal(t, "claws", roots[2].Subcategories[0].Family.NewName)
	assert.Equal(t, "Wings", roots[2].Subcategories[1].Family.NewName)
}

func TestBuildCategoryTreeDropsSelfParentedFamilies(t *testing.T) {
	families := []models.Family{
		fam("a", "", "Apparel"),
		fam("loop", "loop", "Loop"),
	}

	roots, dropped := BuildCategoryTree(families)

	require.Len(t, roots, 1)
	require.Len(t, dropped, 1)
	assert.Equal(t, "loop", dropped[0].Name)
}

func TestBuildCategoryTreeDropsParentCycles(t *testing.T) {
	families := []models.Family{
		fam("a", "", "Apparel"),
		fam("x", "y", "Xylophones"),
		fam("y", "x", "Yarns"),
		fam("under", "x", "Under a cycle"),
	}

	roots, dropped := BuildCategoryTree(families)

	require.Len(t, roots, 1)
	assert.Equal(t, "a", roots[0].Family.Name)

	droppedNames := make([]string, len(dropped))
	for i, f := range dropped {
		droppedNames[i] = f.Name
	}
	assert.ElementsMatch(t, []string{"x", "y", "under"}, droppedNames)
}

func TestBuildCategoryTreeEmptyInput(t *testing.T) {
	roots, dropped := BuildCategoryTree(nil)
	assert.Empty(t, roots)
	assert.Empty(t, dropped)
}
