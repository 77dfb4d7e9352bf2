package domain

// ImageRecord is an uploaded image carried inline as a data URL.
type ImageRecord struct {
	FileName   string `json:"fileName"`
	Base64Data string `json:"base64Data"`
}

type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type Course struct {
	Title    string      `json:"title"`
	TimeCost string      `json:"timeCost"`
	Location Location    `json:"location"`
	Content  string      `json:"content"`
	Image    ImageRecord `json:"image"`
}

// PriceRule prices a ticket per weekday label within a date range.
type PriceRule struct {
	StartDate     string            `json:"startDate"`
	EndDate       string            `json:"endDate"`
	WeekdayPrices map[string]string `json:"weekdayPrices"`
}

type Ticket struct {
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	PriceList []PriceRule `json:"priceList"`
}

type ProductLocation struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

// Product is the composite record submitted to the backend.
type Product struct {
	ProductID  string          `json:"productId"`
	Category   []string        `json:"category"`
	Title      string          `json:"title"`
	StartPrice int64           `json:"startPrice"`
	Admin      string          `json:"admin"`
	Location   ProductLocation `json:"location"`
	Duration   string          `json:"duration"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	MainImg    []ImageRecord   `json:"mainImg"`
	Ticket     []Ticket        `json:"ticket"`
	MainInfo   string          `json:"mainInfo"`
	Course     []Course        `json:"course"`
	ExtraInfo  string          `json:"extraInfo"`
}

type Guide struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	GuideCode    string       `json:"guideCode"`
	Introduction string       `json:"introduction"`
	Image        *ImageRecord `json:"image,omitempty"`
}
