package form

import (
	"strings"

	"github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/encoder"
)

// Committer is a section whose local state is finalized by an explicit user action.
type Committer interface {
	Commit() bool
}

type CourseSection struct {
	Title    string
	TimeCost string
	Location domain.Location
	Content  string

	image *domain.ImageRecord
	emit  Emitter
}

func NewCourseSection(emit Emitter) *CourseSection {
	return &CourseSection{emit: emit}
}

// AttachImage waits for the encoding and keeps its result. "No image" clears the slot.
func (s *CourseSection) AttachImage(future *encoder.Future) {
	record, ok := future.Wait()
	if !ok {
		s.image = nil
		return
	}
	s.image = &record
}

func (s *CourseSection) Image() *domain.ImageRecord {
	return s.image
}

// Commit emits the course when title, content, time cost and image are present.
func (s *CourseSection) Commit() bool {
	if s.Title == "" || s.Content == "" || s.TimeCost == "" || s.image == nil {
		return false
	}

	s.emit(CourseAdded{Course: domain.Course{
		Title:    s.Title,
		TimeCost: s.TimeCost,
		Location: s.Location,
		Content:  s.Content,
		Image:    *s.image,
	}})
	return true
}

type TicketSection struct {
	Title   string
	Content string

	priceList []domain.PriceRule
	emit      Emitter
}

func NewTicketSection(emit Emitter) *TicketSection {
	return &TicketSection{emit: emit}
}

func (s *TicketSection) AddPriceRule(rule domain.PriceRule) {
	prices := make(map[string]string, len(rule.WeekdayPrices))
	for weekday, price := range rule.WeekdayPrices {
		prices[weekday] = price
	}
	rule.WeekdayPrices = prices
	s.priceList = append(s.priceList, rule)
}

func (s *TicketSection) Commit() bool {
	if s.Title == "" {
		return false
	}

	priceList := make([]domain.PriceRule, len(s.priceList))
	copy(priceList, s.priceList)

	s.emit(TicketAdded{Ticket: domain.Ticket{
		Title:     s.Title,
		Content:   s.Content,
		PriceList: priceList,
	}})
	return true
}

// MainImageSection keeps the ordered list of main images shown in the form.
type MainImageSection struct {
	images []domain.ImageRecord
	emit   Emitter
}

func NewMainImageSection(emit Emitter) *MainImageSection {
	return &MainImageSection{images: []domain.ImageRecord{}, emit: emit}
}

// Add appends records after the existing ones. An empty batch changes nothing.
func (s *MainImageSection) Add(records []domain.ImageRecord) bool {
	if len(records) == 0 {
		return false
	}

	added := make([]domain.ImageRecord, len(records))
	copy(added, records)

	s.images = append(s.images, added...)
	s.emit(MainImagesAdded{Images: added})
	return true
}

// AddBatch waits for every encoding of the batch before touching the list.
func (s *MainImageSection) AddBatch(future *encoder.BatchFuture) bool {
	return s.Add(future.Wait())
}

// Remove drops every image named fileName, keeping the others in order.
func (s *MainImageSection) Remove(fileName string) bool {
	kept := make([]domain.ImageRecord, 0, len(s.images))
	for _, img := range s.images {
		if img.FileName != fileName {
			kept = append(kept, img)
		}
	}

	if len(kept) == len(s.images) {
		return false
	}

	s.images = kept
	s.emit(MainImageRemoved{FileName: fileName})
	return true
}

func (s *MainImageSection) Images() []domain.ImageRecord {
	images := make([]domain.ImageRecord, len(s.images))
	copy(images, s.images)
	return images
}

type richTextKind int

const (
	mainInfo richTextKind = iota
	extraInfo
)

type RichTextSection struct {
	kind richTextKind
	html string
	emit Emitter
}

func NewMainInfoSection(emit Emitter) *RichTextSection {
	return &RichTextSection{kind: mainInfo, emit: emit}
}

func NewExtraInfoSection(emit Emitter) *RichTextSection {
	return &RichTextSection{kind: extraInfo, emit: emit}
}

func (s *RichTextSection) Change(html string) {
	s.html = html
	switch s.kind {
	case mainInfo:
		s.emit(MainInfoChanged{HTML: html})
	case extraInfo:
		s.emit(ExtraInfoChanged{HTML: html})
	}
}

func (s *RichTextSection) HTML() string {
	return s.html
}

type BasicInfoSection struct {
	emit Emitter
}

func NewBasicInfoSection(emit Emitter) *BasicInfoSection {
	return &BasicInfoSection{emit: emit}
}

func (s *BasicInfoSection) Update(info BasicInfo) {
	s.emit(BasicInfoChanged{Info: info})
}

// CategorySection only accepts names from the category list loaded at startup.
type CategorySection struct {
	allowed map[string]struct{}
	emit    Emitter
}

func NewCategorySection(categories []string, emit Emitter) *CategorySection {
	allowed := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		allowed[category] = struct{}{}
	}
	return &CategorySection{allowed: allowed, emit: emit}
}

func (s *CategorySection) Select(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if _, ok := s.allowed[name]; !ok {
		return false
	}

	s.emit(CategorySelected{Name: name})
	return true
}

type GuideSection struct {
	Name         string
	Email        string
	GuideCode    string
	Introduction string

	image *domain.ImageRecord
	emit  Emitter
}

func NewGuideSection(emit Emitter) *GuideSection {
	return &GuideSection{emit: emit}
}

func (s *GuideSection) AttachImage(future *encoder.Future) {
	record, ok := future.Wait()
	if !ok {
		s.image = nil
		return
	}
	s.image = &record
}

// Commit requires a name and a staff code; the photo is optional.
func (s *GuideSection) Commit() bool {
	if s.Name == "" || s.GuideCode == "" {
		return false
	}

	s.emit(GuideAdded{Guide: domain.Guide{
		Name:         s.Name,
		Email:        s.Email,
		GuideCode:    s.GuideCode,
		Introduction: s.Introduction,
		Image:        s.image,
	}})
	return true
}
