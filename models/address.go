package models

// Address is one delivery address of a registered user.
type Address struct {
	ID       string `json:"da_id,omitempty"`
	UserID   string `json:"da_ireg_id"`
	Contact  string `json:"da_contact"`
	Phone1   string `json:"da_phone1"`
	Phone2   string `json:"da_phone2,omitempty"`
	Phone3   string `json:"da_phone3,omitempty"`
	Address  string `json:"da_address"`
	City     string `json:"da_city"`
	Street   string `json:"da_street,omitempty"`
	Building string `json:"da_building,omitempty"`
	Floor    string `json:"da_floor,omitempty"`
	Map      string `json:"da_map,omitempty"`
}
