package model

type Review struct {
	ID         string `json:"id"`
	PropertyID int    `json:"propertyId"`
	GuestName  string `json:"guestName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
	Helpful    int    `json:"helpful"`
}

type ReviewsResponse struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
	TotalReviews  int      `json:"totalReviews"`
}
