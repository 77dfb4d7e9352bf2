package repository

import (
	"context"
	"sync"
	"time"

	"github.com/amusetravel-BackEnd/amuseAdmin/internal/form"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/errs"
	"github.com/rs/zerolog/log"
)

type MemoryFormRepositoryImpl struct {
	mu    sync.RWMutex
	forms map[string]*form.Session
}

func CreateMemoryFormRepository() FormRepository {
	return &MemoryFormRepositoryImpl{
		forms: make(map[string]*form.Session),
	}
}

func (r *MemoryFormRepositoryImpl) AddForm(ctx context.Context, session *form.Session) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.forms[session.ID]; exists {
		log.Ctx(ctx).Error().Str("form_id", session.ID).Str("component", "AddForm").Msg("duplicate form id")
		return errs.ErrInternalServer
	}

	r.forms[session.ID] = session
	return nil
}

func (r *MemoryFormRepositoryImpl) GetFormByID(ctx context.Context, id string) (session *form.Session, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.forms[id]
	if !ok {
		return nil, errs.ErrFormNotFound
	}

	return session, nil
}

func (r *MemoryFormRepositoryImpl) DeleteForm(ctx context.Context, id string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.forms[id]; !ok {
		return errs.ErrFormNotFound
	}

	delete(r.forms, id)
	return nil
}

func (r *MemoryFormRepositoryImpl) DeleteIdleForms(ctx context.Context, idleSince time.Time) (removed int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, session := range r.forms {
		if session.TouchedAt().Before(idleSince) {
			delete(r.forms, id)
			removed++
		}
	}

	return removed
}

func (r *MemoryFormRepositoryImpl) CountForms(ctx context.Context) (count int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.forms)
}
