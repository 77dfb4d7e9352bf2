package service

import (
	"context"
	"encoding/json"

	"github.com/amusetravel-BackEnd/amuseAdmin/internal/dto"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/encoder"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/form"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/gateway"
	"github.com/segmentio/kafka-go"
)

type FormService interface {
	Categories() []string
	CreateForm(ctx context.Context) (snapshot form.Snapshot, err error)
	GetForm(ctx context.Context, id string) (snapshot form.Snapshot, err error)
	DeleteForm(ctx context.Context, id string) (err error)
	UpdateBasicInfo(ctx context.Context, id string, req dto.BasicInfoRequest) (snapshot form.Snapshot, err error)
	SelectCategory(ctx context.Context, id string, req dto.CategoryRequest) (resp dto.SectionResponse, err error)
	AddMainImages(ctx context.Context, id string, files []encoder.File) (resp dto.SectionResponse, err error)
	RemoveMainImage(ctx context.Context, id string, fileName string) (resp dto.SectionResponse, err error)
	AddCourse(ctx context.Context, id string, req dto.CourseRequest, image encoder.File) (resp dto.SectionResponse, err error)
	AddTicket(ctx context.Context, id string, req dto.TicketRequest) (resp dto.SectionResponse, err error)
	ChangeMainInfo(ctx context.Context, id string, req dto.RichTextRequest) (snapshot form.Snapshot, err error)
	ChangeExtraInfo(ctx context.Context, id string, req dto.RichTextRequest) (snapshot form.Snapshot, err error)
	SubmitForm(ctx context.Context, id string) (alert dto.Alert, err error)
	SweepIdleForms(ctx context.Context) (removed int)
}

type GuideService interface {
	CreateGuide(ctx context.Context, req dto.GuideRequest, image encoder.File) (resp dto.GuideResponse, err error)
}

type ComponentService interface {
	ListComponents(ctx context.Context) (data json.RawMessage, err error)
	GetComponent(ctx context.Context, id string) (data json.RawMessage, err error)
	RegisterTile(ctx context.Context, tile json.RawMessage) (data json.RawMessage, err error)
	EditTile(ctx context.Context, tile json.RawMessage) (data json.RawMessage, err error)
	DeleteComponent(ctx context.Context, id string) (data json.RawMessage, err error)
	ListMainPage(ctx context.Context) (data json.RawMessage, err error)
	GetMainPage(ctx context.Context, id string) (data json.RawMessage, err error)
	CreateMainPage(ctx context.Context, component json.RawMessage) (resp *gateway.Response, err error)
}

// EventPublisher is satisfied by *kafka.Writer.
type EventPublisher interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}
