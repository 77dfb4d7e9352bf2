package gateway

import (
	"context"
	"encoding/json"

	"github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"
)

// RemoteGateway wraps the backend API. Each call is exactly one request; nothing is cached,
// batched or retried.
type RemoteGateway interface {
	ListComponents(ctx context.Context) (data json.RawMessage, err error)
	GetComponent(ctx context.Context, id string) (data json.RawMessage, err error)
	RegisterTile(ctx context.Context, tile json.RawMessage) (data json.RawMessage, err error)
	EditTile(ctx context.Context, tile json.RawMessage) (data json.RawMessage, err error)
	DeleteComponent(ctx context.Context, id string) (data json.RawMessage, err error)

	ListMainPage(ctx context.Context) (data json.RawMessage, err error)
	GetMainPage(ctx context.Context, id string) (data json.RawMessage, err error)
	CreateMainPage(ctx context.Context, component json.RawMessage) (resp *Response, err error)

	CreateProduct(ctx context.Context, product domain.Product) (resp *Response, err error)
}
