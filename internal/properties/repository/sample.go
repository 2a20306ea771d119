package repository

import "staybook/pkg/model"

// Categories is the fixed set of filter labels offered on the listing page.
var Categories = []string{
	"Top Villa",
	"Self Checkin",
	"Pet Friendly",
	"Free Parking",
	"Luxury Villa",
	"Beachfront",
	"Mountain View",
	"Private Pool",
	"City Center",
	"Countryside",
}

// SampleProperties returns the built-in demo catalogue.
func SampleProperties() []model.Property {
	return cloneAll(sampleProperties)
}

var sampleProperties = []model.Property{
	{
		Name:     "Villa Ocean Breeze",
		Address:  model.Address{State: "Seminyak", City: "Bali", Country: "Indonesia"},
		Rating:   4.89,
		Category: []string{"Luxury Villa", "Private Pool", "Beachfront"},
		Price:    3200,
		Offers:   model.Offers{Bed: "3", Shower: "3", Occupants: "4-6"},
		Image:    "https://example.com/image1.jpg",
		Discount: "",
	},
	{
		Name:     "Mountain Escape Chalet",
		Address:  model.Address{State: "Aspen", City: "Colorado", Country: "USA"},
		Rating:   4.7,
		Category: []string{"Mountain View", "Self Checkin", "Free Parking"},
		Price:    1800,
		Offers:   model.Offers{Bed: "4", Shower: "2", Occupants: "5-7"},
		Image:    "https://example.com/image2.jpg",
		Discount: "30",
	},
	{
		Name:     "Cozy Desert Retreat",
		Address:  model.Address{State: "Palm Springs", City: "California", Country: "USA"},
		Rating:   4.5,
		Category: []string{"Top Villa", "Pet Friendly", "Private Pool"},
		Price:    1500,
		Offers:   model.Offers{Bed: "2", Shower: "1", Occupants: "2-3"},
		Image:    "https://example.com/image3.jpg",
		Discount: "",
	},
	{
		Name:     "City Lights Penthouse",
		Address:  model.Address{State: "New York", City: "New York", Country: "USA"},
		Rating:   4.85,
		Category: []string{"City Center", "Luxury Villa", "Self Checkin"},
		Price:    4500,
		Offers:   model.Offers{Bed: "2", Shower: "2", Occupants: "2-4"},
		Image:    "https://example.com/image4.jpg",
		Discount: "15",
	},
	{
		Name:     "Riverside Cabin",
		Address:  model.Address{State: "Queenstown", City: "Otago", Country: "New Zealand"},
		Rating:   4.77,
		Category: []string{"Countryside", "Pet Friendly", "Free Parking"},
		Price:    2800,
		Offers:   model.Offers{Bed: "3", Shower: "2", Occupants: "4-6"},
		Image:    "https://example.com/image5.jpg",
		Discount: "20",
	},
	{
		Name:     "Modern Beachfront Villa",
		Address:  model.Address{State: "Sydney", City: "New South Wales", Country: "Australia"},
		Rating:   4.95,
		Category: []string{"Beachfront", "Top Villa", "Private Pool"},
		Price:    5000,
		Offers:   model.Offers{Bed: "5", Shower: "4", Occupants: "8-10"},
		Image:    "https://example.com/image6.jpg",
		Discount: "",
	},
	{
		Name:     "Lakeview Cottage",
		Address:  model.Address{State: "Lake District", City: "Cumbria", Country: "United Kingdom"},
		Rating:   4.6,
		Category: []string{"Countryside", "Mountain View", "Pet Friendly"},
		Price:    2200,
		Offers:   model.Offers{Bed: "3", Shower: "2", Occupants: "4-5"},
		Image:    "https://example.com/image7.jpg",
		Discount: "10",
	},
	{
		Name:     "Tropical Garden Bungalow",
		Address:  model.Address{State: "Phuket", City: "Phuket", Country: "Thailand"},
		Rating:   4.8,
		Category: []string{"Beachfront", "Free Parking", "Self Checkin"},
		Price:    1900,
		Offers:   model.Offers{Bed: "2", Shower: "1", Occupants: "2-4"},
		Image:    "https://example.com/image8.jpg",
		Discount: "25",
	},
}
