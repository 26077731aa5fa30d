package models

// Family is one catalog grouping record as the commerce API returns it.
// fa_name doubles as the record id, fa_parent points at the parent family's
// fa_name (empty for roots) and fa_newname carries the display label.
type Family struct {
	Name      string `json:"fa_name"`
	Parent    string `json:"fa_parent"`
	Group     string `json:"fa_group,omitempty"`
	NewName   string `json:"fa_newname"`
	CompanyID string `json:"fa_cmp_id"`
	Order     *int   `json:"ifa_order,omitempty"`
}

// Category is one node of the hierarchical category tree built from the flat
// family list. Subcategories hold exactly the families whose fa_parent equals
// this node's fa_name.
type Category struct {
	Family        Family      `json:"family"`
	Subcategories []*Category `json:"subcategories,omitempty"`
}
