package api

import "time"

// Product is a catalog product record as returned by the backend.
// The client holds transient copies only; price is captured into the cart
// at add time and never re-validated client-side.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Price     float64   `json:"price"`
	Active    bool      `json:"active"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the authenticated user record from the who-am-I endpoint
type Profile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`

	// Customer data (optional, admin listings). Field names mirror the
	// backend's wire contract: the street lives under "address", the
	// postal code under "cep".
	DocType    string `json:"doc_type,omitempty"`
	DocNumber  string `json:"doc_number,omitempty"`
	Phone      string `json:"phone,omitempty"`
	CEP        string `json:"cep,omitempty"`
	State      string `json:"state,omitempty"`
	City       string `json:"city,omitempty"`
	District   string `json:"district,omitempty"`
	Address    string `json:"address,omitempty"`
	Number     string `json:"number,omitempty"`
	Complement string `json:"complement,omitempty"`
}

// DisplayName returns the best label for the user: name, else email
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Email
}

// Order is an order record with nested line items
type Order struct {
	ID          int64       `json:"id"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"items"`
}

// OrderItem is one line of an order
type OrderItem struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}
