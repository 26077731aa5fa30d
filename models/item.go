package models

// Item is a raw online catalog item as returned by the commerce API.
// Up to nine photo URLs and five description fragments may be populated.
type Item struct {
	ID            string  `json:"ioi_id"`
	ItemID        string  `json:"it_id"`
	Name          string  `json:"ioi_name"`
	Code          string  `json:"it_code,omitempty"`
	FamilyName    string  `json:"fa_name"`
	FamilyParent  string  `json:"fa_parent,omitempty"`
	FamilyGroup   string  `json:"fa_group,omitempty"`
	FamilyNewName string  `json:"fa_newname"`
	CompanyID     string  `json:"fa_cmp_id"`
	BrandName     string  `json:"br_name,omitempty"`
	UnitPrice     float64 `json:"ioi_unitprice"`
	Discount      float64 `json:"ioi_disc"`
	RemainingQty  float64 `json:"ioi_remqty"`
	Tax           float64 `json:"ioi_tax,omitempty"`
	Tax1          float64 `json:"it_tax1,omitempty"`
	Tax2          float64 `json:"it_tax2,omitempty"`

	Photo1 string `json:"ioi_photo1,omitempty"`
	Photo2 string `json:"ioi_photo2,omitempty"`
	Photo3 string `json:"ioi_photo3,omitempty"`
	Photo4 string `json:"ioi_photo4,omitempty"`
	Photo5 string `json:"ioi_photo5,omitempty"`
	Photo6 string `json:"ioi_photo6,omitempty"`
	Photo7 string `json:"ioi_photo7,omitempty"`
	Photo8 string `json:"ioi_photo8,omitempty"`
	Photo9 string `json:"ioi_photo9,omitempty"`

	Desc  string `json:"ioi_desc,omitempty"`
	Desc1 string `json:"ioi_desc1,omitempty"`
	Desc2 string `json:"ioi_desc2,omitempty"`
	Desc3 string `json:"ioi_desc3,omitempty"`
	Desc4 string `json:"ioi_desc4,omitempty"`
}

// DiscountedPrice applies ioi_disc as a percentage off the unit price.
func (it Item) DiscountedPrice() float64 {
	if it.Discount > 0 {
		return it.UnitPrice * (1 - it.Discount/100)
	}
	return it.UnitPrice
}

// ItemDetails is the read-only projection of an Item used by detail views:
// resolved image list, discounted price and a joined description.
type ItemDetails struct {
	ID              string   `json:"id"`
	ItemID          string   `json:"item_id"`
	Name            string   `json:"name"`
	Code            string   `json:"code"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	Tax             float64  `json:"tax"`
	Tax1            float64  `json:"tax1"`
	Tax2            float64  `json:"tax2"`
	Discount        float64  `json:"discount"`
	DiscountedPrice float64  `json:"discounted_price"`
	RemainingQty    float64  `json:"remaining_qty"`
	ImageURL        string   `json:"image_url"`
	ImageURLs       []string `json:"image_urls"`
	Description     string   `json:"description"`
}

// Section is a named bucket of items shown together in a listing, one per
// family, in first-seen order of the source item list.
type Section struct {
	FamilyName    string `json:"fa_name"`
	FamilyParent  string `json:"fa_parent,omitempty"`
	FamilyGroup   string `json:"fa_group,omitempty"`
	FamilyNewName string `json:"fa_newname"`
	CompanyID     string `json:"fa_cmp_id"`
	Items         []Item `json:"items"`
}
