package models

// Address is a shipping destination
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// DefaultCountry is filled in when a submitted address leaves the field blank
const DefaultCountry = "United States"

// User is the authenticated shopper identity persisted across restarts
type User struct {
	ID      string   `json:"id"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Address *Address `json:"address,omitempty"`
}
