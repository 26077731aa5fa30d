package models

// Company is a store record as returned by the commerce API.
type Company struct {
	ID      string  `json:"cmp_id"`
	Name    string  `json:"cmp_name"`
	Tax1    float64 `json:"cmp_tax1"`
	Tax2    float64 `json:"cmp_tax2"`
	Image1  string  `json:"ioe_image1,omitempty"`
	Image2  string  `json:"ioe_image2,omitempty"`
	Image3  string  `json:"ioe_image3,omitempty"`
	Country string  `json:"cmp_country,omitempty"`
}

// Banner is one home-screen carousel entry derived from a company image.
type Banner struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
}

// Banners returns one banner per populated company image, in field order.
func (c Company) Banners() []Banner {
	var banners []Banner
	for i, img := range []string{c.Image1, c.Image2, c.Image3} {
		if img != "" {
			banners = append(banners, Banner{
				ID:       "banner" + string(rune('1'+i)),
				ImageURL: img,
			})
		}
	}
	return banners
}

// Brand is a brand record; br_name doubles as its id in item queries.
type Brand struct {
	Name    string `json:"br_name"`
	NewName string `json:"br_newname"`
}
