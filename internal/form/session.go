package form

import (
	"sync"
	"time"

	"github.com/amusetravel-BackEnd/amuseAdmin/config"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"
)

// Session is one admin's product form. Every mutation holds the session lock, so the
// aggregator only ever sees one writer.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	touchedAt  time.Time
	aggregator *Aggregator
	basicInfo  *BasicInfoSection
	categories *CategorySection
	mainImages *MainImageSection
	mainInfo   *RichTextSection
	extraInfo  *RichTextSection
}

// Snapshot is a consistent view of a session.
type Snapshot struct {
	ID          string         `json:"id"`
	Product     domain.Product `json:"product"`
	Missing     []string       `json:"missing"`
	Submittable bool           `json:"submittable"`
}

func NewSession(id string, conf config.ProductConfig, now time.Time) *Session {
	s := &Session{
		ID:         id,
		CreatedAt:  now,
		touchedAt:  now,
		aggregator: NewAggregator(conf),
	}

	s.basicInfo = NewBasicInfoSection(s.emit)
	s.categories = NewCategorySection(conf.Categories, s.emit)
	s.mainImages = NewMainImageSection(s.emit)
	s.mainInfo = NewMainInfoSection(s.emit)
	s.extraInfo = NewExtraInfoSection(s.emit)

	return s
}

// emit must only run while the session lock is held.
func (s *Session) emit(ev Event) {
	s.aggregator.Apply(ev)
}

func (s *Session) lock() func() {
	s.mu.Lock()
	s.touchedAt = time.Now()
	return s.mu.Unlock
}

func (s *Session) NewCourseSection() *CourseSection {
	return NewCourseSection(s.emit)
}

func (s *Session) NewTicketSection() *TicketSection {
	return NewTicketSection(s.emit)
}

// Commit finalizes a section created from this session.
func (s *Session) Commit(section Committer) bool {
	defer s.lock()()
	return section.Commit()
}

func (s *Session) UpdateBasicInfo(info BasicInfo) {
	defer s.lock()()
	s.basicInfo.Update(info)
}

func (s *Session) SelectCategory(name string) bool {
	defer s.lock()()
	return s.categories.Select(name)
}

func (s *Session) AddMainImages(records []domain.ImageRecord) bool {
	defer s.lock()()
	return s.mainImages.Add(records)
}

func (s *Session) RemoveMainImage(fileName string) bool {
	defer s.lock()()
	return s.mainImages.Remove(fileName)
}

func (s *Session) ChangeMainInfo(html string) {
	defer s.lock()()
	s.mainInfo.Change(html)
}

func (s *Session) ChangeExtraInfo(html string) {
	defer s.lock()()
	s.extraInfo.Change(html)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	missing := s.aggregator.Missing()
	return Snapshot{
		ID:          s.ID,
		Product:     s.aggregator.Composite(),
		Missing:     missing,
		Submittable: len(missing) == 0,
	}
}

func (s *Session) TouchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}
