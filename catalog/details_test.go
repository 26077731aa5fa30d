package catalog

import (
	"testing"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsNilItemYieldsPlaceholder(t *testing.T) {
	d := Details(nil)

	assert.Equal(t, "Unknown", d.Name)
	assert.Equal(t, "~", d.ItemID)
	assert.Zero(t, d.Price)
	assert.Zero(t, d.DiscountedPrice)
	assert.Empty(t, d.ImageURLs)
	assert.Equal(t, PlaceholderImageURL, d.ImageURL)
}

func TestDetailsImageListKeepsFieldOrderAndSkipsGaps(t *testing.T) {
	item := &models.Item{
		ID:     "i1",
		Photo2: "https://cdn.example.com/b.jpg",
		Photo5: "https://cdn.example.com/e.jpg",
		Photo9: "https://cdn.example.com/i.jpg",
	}

	d := Details(item)

	require.Equal(t, []string{
		"https://cdn.example.com/b.jpg",
		"https://cdn.example.com/e.jpg",
		"https://cdn.example.com/i.jpg",
	}, d.ImageURLs)
	assert.Equal(t, "https://cdn.example.com/b.jpg", d.ImageURL)
	assert.LessOrEqual(t, len(d.ImageURLs), 9)
}

func TestDetailsPlaceholderOnlyWhenNoImages(t *testing.T) {
	d := Details(&models.Item{ID: "i1"})
	assert.Empty(t, d.ImageURLs)
	assert.Equal(t, PlaceholderImageURL, d.ImageURL)

	d = Details(&models.Item{ID: "i2", Photo1: "https://cdn.example.com/a.jpg"})
	assert.NotEqual(t, PlaceholderImageURL, d.ImageURL)
}

func TestDetailsDiscountedPrice(t *testing.T) {
	d := Details(&models.Item{ID: "i1", UnitPrice: 50, Discount: 20})
	assert.InDelta(t, 40.0, d.DiscountedPrice, 1e-9)
	assert.InDelta(t, 50.0, d.Price, 1e-9)

	// A zero discount leaves the price untouched.
	d = Details(&models.Item{ID: "i2", UnitPrice: 10})
	assert.InDelta(t, 10.0, d.DiscountedPrice, 1e-9)
}

func TestDetailsJoinsNonEmptyDescriptions(t *testing.T) {
	item := &models.Item{
		ID:    "i1",
		Desc:  "Soft",
		Desc2: "warm",
		Desc4: "durable",
	}

	d := Details(item)
	assert.Equal(t, "Soft warm durable", d.Description)

	d = DetailsWithSeparator(item, ParagraphSeparator)
	assert.Equal(t, "Soft\n\nwarm\n\ndurable", d.Description)
}
