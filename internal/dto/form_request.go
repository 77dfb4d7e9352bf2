package dto

import "github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"

// BasicInfoRequest is a partial update; omitted fields keep their value.
type BasicInfoRequest struct {
	ProductID      *string `json:"productId"`
	Title          *string `json:"title"`
	Country        *string `json:"country"`
	City           *string `json:"city"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	DurationNights *string `json:"durationNights"`
	DurationDays   *string `json:"durationDays"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

// CourseRequest arrives as multipart form fields next to the "image" file.
type CourseRequest struct {
	Title     string `form:"title"`
	TimeCost  string `form:"timeCost"`
	Latitude  string `form:"latitude"`
	Longitude string `form:"longitude"`
	Content   string `form:"content"`
}

type TicketRequest struct {
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	PriceList []domain.PriceRule `json:"priceList"`
}

type RichTextRequest struct {
	HTML string `json:"html"`
}

// GuideRequest arrives as multipart form fields next to the optional "image" file.
type GuideRequest struct {
	Name         string `form:"name"`
	Email        string `form:"email"`
	GuideCode    string `form:"guideCode"`
	Introduction string `form:"introduction"`
}
