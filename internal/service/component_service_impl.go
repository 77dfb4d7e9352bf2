package service

import (
	"context"
	"encoding/json"

	"github.com/amusetravel-BackEnd/amuseAdmin/internal/gateway"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/errs"
)

// ComponentServiceImpl passes component and main page documents through to the backend.
type ComponentServiceImpl struct {
	gateway gateway.RemoteGateway
}

func CreateComponentService(gateway gateway.RemoteGateway) ComponentService {
	return &ComponentServiceImpl{
		gateway: gateway,
	}
}

func (s *ComponentServiceImpl) ListComponents(ctx context.Context) (data json.RawMessage, err error) {
	return s.gateway.ListComponents(ctx)
}

func (s *ComponentServiceImpl) GetComponent(ctx context.Context, id string) (data json.RawMessage, err error) {
	return s.gateway.GetComponent(ctx, id)
}

func (s *ComponentServiceImpl) RegisterTile(ctx context.Context, tile json.RawMessage) (data json.RawMessage, err error) {
	if err = validateDocument(tile); err != nil {
		return
	}
	return s.gateway.RegisterTile(ctx, tile)
}

func (s *ComponentServiceImpl) EditTile(ctx context.Context, tile json.RawMessage) (data json.RawMessage, err error) {
	if err = validateDocument(tile); err != nil {
		return
	}
	return s.gateway.EditTile(ctx, tile)
}

func (s *ComponentServiceImpl) DeleteComponent(ctx context.Context, id string) (data json.RawMessage, err error) {
	return s.gateway.DeleteComponent(ctx, id)
}

func (s *ComponentServiceImpl) ListMainPage(ctx context.Context) (data json.RawMessage, err error) {
	return s.gateway.ListMainPage(ctx)
}

func (s *ComponentServiceImpl) GetMainPage(ctx context.Context, id string) (data json.RawMessage, err error) {
	return s.gateway.GetMainPage(ctx, id)
}

func (s *ComponentServiceImpl) CreateMainPage(ctx context.Context, component json.RawMessage) (resp *gateway.Response, err error) {
	if err = validateDocument(component); err != nil {
		return
	}
	return s.gateway.CreateMainPage(ctx, component)
}

func validateDocument(doc json.RawMessage) error {
	if len(doc) == 0 || !json.Valid(doc) {
		return errs.ErrClient
	}
	return nil
}
