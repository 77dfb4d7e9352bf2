package form

import "github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"

// Event is a finalized record reported by a section to its parent.
type Event interface {
	eventName() string
}

// Emitter delivers a section's events upward.
type Emitter func(Event)

// BasicInfo is a partial update of the product's scalar fields. Nil fields are left as is.
type BasicInfo struct {
	ProductID      *string `json:"productId"`
	Title          *string `json:"title"`
	Country        *string `json:"country"`
	City           *string `json:"city"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	DurationNights *string `json:"durationNights"`
	DurationDays   *string `json:"durationDays"`
}

type BasicInfoChanged struct {
	Info BasicInfo
}

type CategorySelected struct {
	Name string
}

type MainImagesAdded struct {
	Images []domain.ImageRecord
}

type MainImageRemoved struct {
	FileName string
}

type TicketAdded struct {
	Ticket domain.Ticket
}

type CourseAdded struct {
	Course domain.Course
}

type MainInfoChanged struct {
	HTML string
}

type ExtraInfoChanged struct {
	HTML string
}

type GuideAdded struct {
	Guide domain.Guide
}

func (BasicInfoChanged) eventName() string { return "basic_info_changed" }
func (CategorySelected) eventName() string { return "category_selected" }
func (MainImagesAdded) eventName() string  { return "main_images_added" }
func (MainImageRemoved) eventName() string { return "main_image_removed" }
func (TicketAdded) eventName() string      { return "ticket_added" }
func (CourseAdded) eventName() string      { return "course_added" }
func (MainInfoChanged) eventName() string  { return "main_info_changed" }
func (ExtraInfoChanged) eventName() string { return "extra_info_changed" }
func (GuideAdded) eventName() string       { return "guide_added" }
