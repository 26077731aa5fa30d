package catalog

import (
	"testing"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionItem(id, family string) models.Item {
	return models.Item{ID: id, FamilyName: family, FamilyNewName: family, CompanyID: "cmp1"}
}

func TestGroupItemsByFamilyPreservesFirstSeenOrder(t *testing.T) {
	items := []models.Item{
		sectionItem("1", "shoes"),
		sectionItem("2", "hats"),
		sectionItem("3", "shoes"),
		sectionItem("4", "belts"),
		sectionItem("5", "hats"),
	}

	sections := GroupItemsByFamily(items)

	require.Len(t, sections, 3)
	assert.Equal(t, "shoes", sections[0].FamilyName)
	assert.Equal(t, "hats", sections[1].FamilyName)
	assert.Equal(t, "belts", sections[2].FamilyName)

	assert.Equal(t, []string{"1", "3"}, itemIDs(sections[0].Items))
	assert.Equal(t, []string{"2", "5"}, itemIDs(sections[1].Items))
	assert.Equal(t, []string{"4"}, itemIDs(sections[2].Items))
}

func TestGroupItemsByFamilyIsDeterministic(t *testing.T) {
	items := []models.Item{
		sectionItem("9", "b"),
		sectionItem("8", "a"),
		sectionItem("7", "b"),
		sectionItem("6", "c"),
	}

	first := GroupItemsByFamily(items)
	second := GroupItemsByFamily(items)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].FamilyName, second[i].FamilyName)
		assert.Equal(t, itemIDs(first[i].Items), itemIDs(second[i].Items))
	}
}

func TestGroupItemsByFamilyEmptyInput(t *testing.T) {
	assert.Empty(t, GroupItemsByFamily(nil))
}

func itemIDs(items []models.Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
