package dto

import (
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/form"
)

// SectionResponse reports whether a section change reached the product. A rejected change
// leaves the form untouched.
type SectionResponse struct {
	Committed bool          `json:"committed"`
	Form      form.Snapshot `json:"form"`
}

type GuideResponse struct {
	Committed bool          `json:"committed"`
	Guide     *domain.Guide `json:"guide"`
}

const (
	AlertStatusSuccess = "success"
	AlertStatusFailure = "failure"
)

// Alert is the user-facing outcome of a product submission.
type Alert struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail"`
}
