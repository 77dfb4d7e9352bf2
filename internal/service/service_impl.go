package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amusetravel-BackEnd/amuseAdmin/config"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/dto"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/encoder"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/form"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/gateway"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/repository"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const (
	submitSuccessMessage = "여행 상품 등록에 성공했습니다."
	submitFailureMessage = "여행 상품 등록에 실패했습니다."
	incompleteMessage    = "필수 항목이 입력되지 않았습니다."

	maxPublishRetries     = 3
	defaultPublishTimeout = 2 * time.Second
)

type FormServiceImpl struct {
	repository repository.FormRepository
	gateway    gateway.RemoteGateway
	encoder    *encoder.Encoder
	publisher  EventPublisher
	config     *config.Config

	publishBackoff time.Duration
	publishTimeout time.Duration
}

// CreateFormService wires the form workflow. publisher may be nil, in which case submit
// outcomes are only logged.
func CreateFormService(repository repository.FormRepository, gateway gateway.RemoteGateway, encoder *encoder.Encoder, publisher EventPublisher, config *config.Config) FormService {
	publishTimeout := config.KafkaConfig.PublishTimeout
	if publishTimeout <= 0 {
		publishTimeout = defaultPublishTimeout
	}

	return &FormServiceImpl{
		repository:     repository,
		gateway:        gateway,
		encoder:        encoder,
		publisher:      publisher,
		config:         config,
		publishBackoff: 500 * time.Millisecond,
		publishTimeout: publishTimeout,
	}
}

func (s *FormServiceImpl) Categories() []string {
	return append([]string{}, s.config.ProductConfig.Categories...)
}

func (s *FormServiceImpl) CreateForm(ctx context.Context) (snapshot form.Snapshot, err error) {
	session := form.NewSession(ulid.Make().String(), s.config.ProductConfig, time.Now())

	err = s.repository.AddForm(ctx, session)
	if err != nil {
		return
	}

	log.Ctx(ctx).Info().Str("form_id", session.ID).Str("component", "CreateForm").Msg("form session opened")
	return session.Snapshot(), nil
}

func (s *FormServiceImpl) GetForm(ctx context.Context, id string) (snapshot form.Snapshot, err error) {
	session, err := s.repository.GetFormByID(ctx, id)
	if err != nil {
		return
	}

	return session.Snapshot(), nil
}

func (s *FormServiceImpl) DeleteForm(ctx context.Context, id string) (err error) {
	return s.repository.DeleteForm(ctx, id)
}

func (s *FormServiceImpl) UpdateBasicInfo(ctx context.Context, id string, req dto.BasicInfoRequest) (snapshot form.Snapshot, err error) {
	session, err := s.repository.GetFormByID(ctx, id)
	if err != nil {
		return
	}

	session.UpdateBasicInfo(form.BasicInfo{
		ProductID:      req.ProductID,
		Title:          req.Title,
		Country:        req.Country,
		City:           req.City,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DurationNights: req.DurationNights,
		DurationDays:   req.DurationDays,
	})

	return session.Snapshot(), nil
}

func (s *FormServiceImpl) SelectCategory(ctx context.Context, id string, req dto.CategoryRequest) (resp dto.SectionResponse, err error) {
	session, err := s.repository.GetFormByID(ctx, id)
	if err != nil {
		return
	}

	resp.Committed = session.SelectCategory(req.Name)
	resp.Form = session.Snapshot()
	return resp, nil
}

// AddMainImages encodes every file before touching the form, so the list grows in one step.
func (s *FormServiceImpl) AddMainImages(ctx context.Context, id string, files []encoder.File) (resp dto.SectionResponse, err error) {
	if len(files) == 0 {
		return resp, errs.ErrEmptyUploadRequest
	}

	session, err := s.repository.GetFormByID(ctx, id)
	if err != nil {
		return
	}

	records := s.encoder.EncodeBatch(ctx, files).Wait()
	log.Ctx(ctx).Info().Str("form_id", id).Int("uploaded", len(files)).Int("encoded", len(records)).Str("component", "AddMainImages").Msg("")

	resp.Committed = session.AddMainImages(records)
	resp.Form = session.Snapshot()
	return resp, nil
}

func (s *FormServiceImpl) RemoveMainImage(ctx context.Context, id string, fileName string) (resp dto.SectionResponse, err error) {
	if fileName == "" {
		return resp, errs.ErrMissingIdentifier
	}

	session, err := s.repository.GetFormByID(ctx, id)
	if err != nil {
		return
	}

	resp.Committed = session.RemoveMainImage(fileName)
	resp.Form = session.Snapshot()
	return resp, nil
}

func (s *FormServiceImpl) AddCourse(ctx context.Context, id string, req dto.CourseRequest, image encoder.File) (resp dto.SectionResponse, err error) {
	session, err := s.repository.GetFormByID(ctx, id)
	if err != nil {
		return
	}

	section := session.NewCourseSection()
	section.Title = req.Title
	section.TimeCost = req.TimeCost
	section.Location = domain.Location{Latitude: req.Latitude, Longitude: req.Longitude}
	section.Content = req.Content
	section.AttachImage(s.encoder.Encode(ctx, image))

	resp.Committed = session.Commit(section)
	if !resp.Committed {
		log.Ctx(ctx).Info().Str("form_id", id).Bool("has_image", section.Image() != nil).Str("component", "AddCourse").Msg("course is incomplete, nothing added")
	}

	resp.Form = session.Snapshot()
	return resp, nil
}

func (s *FormServiceImpl) AddTicket(ctx context.Context, id string, req dto.TicketRequest) (resp dto.SectionResponse, err error) {
	session, err := s.repository.GetFormByID(ctx, id)
	if err != nil {
		return
	}

	section := session.NewTicketSection()
	section.Title = req.Title
	section.Content = req.Content
	for _, rule := range req.PriceList {
		section.AddPriceRule(rule)
	}

	resp.Committed = session.Commit(section)
	resp.Form = session.Snapshot()
	return resp, nil
}

func (s *FormServiceImpl) ChangeMainInfo(ctx context.Context, id string, req dto.RichTextRequest) (snapshot form.Snapshot, err error) {
	session, err := s.repository.GetFormByID(ctx, id)
	if err != nil {
		return
	}

	session.ChangeMainInfo(req.HTML)
	return session.Snapshot(), nil
}

func (s *FormServiceImpl) ChangeExtraInfo(ctx context.Context, id string, req dto.RichTextRequest) (snapshot form.Snapshot, err error) {
	session, err := s.repository.GetFormByID(ctx, id)
	if err != nil {
		return
	}

	session.ChangeExtraInfo(req.HTML)
	return session.Snapshot(), nil
}

// SubmitForm hands the composite product to the backend exactly once. A remote failure is
// returned both as a failure alert and as the error; the form state is left as it was.
func (s *FormServiceImpl) SubmitForm(ctx context.Context, id string) (alert dto.Alert, err error) {
	session, err := s.repository.GetFormByID(ctx, id)
	if err != nil {
		return
	}

	snapshot := session.Snapshot()
	if !snapshot.Submittable {
		log.Ctx(ctx).Warn().Str("form_id", id).Strs("missing", snapshot.Missing).Str("component", "SubmitForm").Msg("form is not submittable")
		alert = dto.Alert{Status: dto.AlertStatusFailure, Message: incompleteMessage, Detail: snapshot.Missing}
		return alert, fmt.Errorf("%w: %s", errs.ErrIncompleteProduct, strings.Join(snapshot.Missing, ", "))
	}

	body, err := json.Marshal(snapshot.Product)
	if err != nil {
		return alert, fmt.Errorf("error marshalling product: %w", err)
	}
	log.Ctx(ctx).Info().Str("form_id", id).Int("byte_size", len(body)).Str("component", "SubmitForm").Msg("submitting product")

	event := dto.ProductRegistrationEvent{
		FormID:     id,
		ProductID:  snapshot.Product.ProductID,
		Title:      snapshot.Product.Title,
		ByteSize:   len(body),
		OccurredAt: time.Now().Unix(),
	}

	resp, err := s.gateway.CreateProduct(ctx, snapshot.Product)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("form_id", id).Str("component", "SubmitForm").Msg("")

		var remoteErr *gateway.RemoteError
		if errors.As(err, &remoteErr) {
			event.StatusCode = remoteErr.StatusCode
		}
		event.Error = err.Error()
		s.publish(ctx, dto.EventProductRegistrationFailed, id, event)

		alert = dto.Alert{Status: dto.AlertStatusFailure, Message: submitFailureMessage, Detail: err.Error()}
		return alert, err
	}

	event.StatusCode = resp.StatusCode
	s.publish(ctx, dto.EventProductRegistered, id, event)

	alert = dto.Alert{Status: dto.AlertStatusSuccess, Message: submitSuccessMessage, Detail: resp.Payload()}
	return alert, nil
}

func (s *FormServiceImpl) SweepIdleForms(ctx context.Context) (removed int) {
	idleSince := time.Now().Add(-s.config.FormConfig.SessionTTL)
	removed = s.repository.DeleteIdleForms(ctx, idleSince)
	if removed > 0 {
		log.Ctx(ctx).Info().Int("removed", removed).Int("remaining", s.repository.CountForms(ctx)).Str("component", "SweepIdleForms").Msg("idle form sessions discarded")
	}

	return removed
}

// publish reports a submit outcome. Failures are logged and never change the outcome. All
// attempts together are bounded by publishTimeout.
func (s *FormServiceImpl) publish(ctx context.Context, eventType string, key string, data interface{}) {
	if s.publisher == nil {
		return
	}

	jsonMsg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publish").Msg("failed to marshal Kafka message")
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	attempt := 1
	for ; attempt <= maxPublishRetries; attempt++ {
		err = s.publisher.WriteMessages(ctx, kafka.Message{
			Key:   []byte(key),
			Value: jsonMsg,
		})
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Int("attempt", attempt).Str("component", "publish").Msg("")

		if attempt == maxPublishRetries || !sleepContext(ctx, s.publishBackoff*time.Duration(attempt)) {
			break
		}
	}

	log.Ctx(ctx).Error().Err(err).Str("event_type", eventType).Str("component", "publish").Msgf("failed to write Kafka message after %d attempts", attempt)
}

// sleepContext waits for d and reports false if ctx ends first.
func sleepContext(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
