package repository

import (
	"context"
	"time"

	"github.com/amusetravel-BackEnd/amuseAdmin/internal/form"
)

// FormRepository keeps open form sessions in memory for the lifetime of the process.
type FormRepository interface {
	AddForm(ctx context.Context, session *form.Session) (err error)
	GetFormByID(ctx context.Context, id string) (session *form.Session, err error)
	DeleteForm(ctx context.Context, id string) (err error)
	DeleteIdleForms(ctx context.Context, idleSince time.Time) (removed int)
	CountForms(ctx context.Context) (count int)
}
