package catalog

import "github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"

// GroupItemsByFamily buckets items into one section per family, preserving
// the first-seen order of distinct families and the original item order
// within each section.
func GroupItemsByFamily(items []models.Item) []models.Section {
	index := make(map[string]int, len(items))
	sections := make([]models.Section, 0)

	for _, item := range items {
		i, ok := index[item.FamilyName]
		if !ok {
			i = len(sections)
			index[item.FamilyName] = i
			sections = append(sections, models.Section{
				FamilyName:    item.FamilyName,
				FamilyParent:  item.FamilyParent,
				FamilyGroup:   item.FamilyGroup,
				FamilyNewName: item.FamilyNewName,
				CompanyID:     item.CompanyID,
			})
		}
		sections[i].Items = append(sections[i].Items, item)
	}

	return sections
}
