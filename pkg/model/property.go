package model

import (
	"slices"
	"strconv"
	"strings"
)

type Address struct {
	State   string `json:"state" bson:"state"`
	City    string `json:"city" bson:"city"`
	Country string `json:"country" bson:"country"`
}

type Offers struct {
	Bed       string `json:"bed" bson:"bed"`
	Shower    string `json:"shower" bson:"shower"`
	Occupants string `json:"occupants" bson:"occupants"`
}

// Property is a rentable listing. ID is only populated on single-property
// responses, where it equals the listing's position in the catalogue.
type Property struct {
	ID       *int     `json:"id,omitempty" bson:"-"`
	Name     string   `json:"name" bson:"name"`
	Address  Address  `json:"address" bson:"address"`
	Rating   float64  `json:"rating" bson:"rating"`
	Category []string `json:"category" bson:"category"`
	Price    float64  `json:"price" bson:"price"`
	Offers   Offers   `json:"offers" bson:"offers"`
	Image    string   `json:"image" bson:"image"`
	Discount string   `json:"discount" bson:"discount"`
}

// WithID returns a copy of p carrying the given id.
func (p Property) WithID(id int) Property {
	out := p.Clone()
	out.ID = &id
	return out
}

func (p Property) Clone() Property {
	out := p
	out.Category = slices.Clone(p.Category)
	if p.ID != nil {
		id := *p.ID
		out.ID = &id
	}
	return out
}

func (p Property) HasCategory(category string) bool {
	return slices.Contains(p.Category, category)
}

// DiscountPercent parses the discount field. An empty or non-numeric
// discount reports false.
func (p Property) DiscountPercent() (float64, bool) {
	raw := strings.TrimSuffix(strings.TrimSpace(p.Discount), "%")
	if raw == "" {
		return 0, false
	}
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil || pct <= 0 {
		return 0, false
	}
	return pct, true
}

// Quote is the order summary shown next to the booking form.
type Quote struct {
	PropertyName   string  `json:"propertyName"`
	Price          float64 `json:"price"`
	Discount       string  `json:"discount,omitempty"`
	BookingFee     float64 `json:"bookingFee"`
	TotalNights    int     `json:"totalNights"`
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
}
