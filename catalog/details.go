package catalog

import (
	"strings"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// PlaceholderImageURL is shown when an item has no photos at all.
const PlaceholderImageURL = "https://placehold.co/150x150/cccccc/000000?text=No+Image"

// DescriptionSeparator joins description fragments on list views. Detail
// screens pass ParagraphSeparator instead.
const (
	DescriptionSeparator = " "
	ParagraphSeparator   = "\n\n"
)

// Details projects a raw item into its detail view model. A nil item yields
// a non-nil "Unknown" placeholder with zero price and no images.
func Details(item *models.Item) models.ItemDetails {
	return DetailsWithSeparator(item, DescriptionSeparator)
}

// DetailsWithSeparator is Details with a caller-chosen separator between
// description fragments.
func DetailsWithSeparator(item *models.Item, separator string) models.ItemDetails {
	if item == nil {
		return models.ItemDetails{
			ItemID:    "~",
			Name:      "Unknown",
			Code:      "~",
			ImageURL:  PlaceholderImageURL,
			ImageURLs: []string{},
		}
	}

	images := imageList(item)
	primary := PlaceholderImageURL
	if len(images) > 0 {
		primary = images[0]
	}

	return models.ItemDetails{
		ID:              item.ID,
		ItemID:          item.ItemID,
		Name:            item.Name,
		Code:            item.Code,
		Category:        item.FamilyNewName,
		Price:           item.UnitPrice,
		Tax:             item.Tax,
		Tax1:            item.Tax1,
		Tax2:            item.Tax2,
		Discount:        item.Discount,
		DiscountedPrice: item.DiscountedPrice(),
		RemainingQty:    item.RemainingQty,
		ImageURL:        primary,
		ImageURLs:       images,
		Description:     joinDescriptions(separator, item.Desc, item.Desc1, item.Desc2, item.Desc3, item.Desc4),
	}
}

// imageList collects the non-empty photo fields in fixed field order,
// photo1 through photo9.
func imageList(item *models.Item) []string {
	images := make([]string, 0, 9)
	for _, url := range []string{
		item.Photo1, item.Photo2, item.Photo3,
		item.Photo4, item.Photo5, item.Photo6,
		item.Photo7, item.Photo8, item.Photo9,
	} {
		if url != "" {
			images = append(images, url)
		}
	}
	return images
}

func joinDescriptions(separator string, fragments ...string) string {
	valid := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		if frag != "" {
			valid = append(valid, frag)
		}
	}
	return strings.Join(valid, separator)
}
