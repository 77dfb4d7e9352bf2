package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/amusetravel-BackEnd/amuseAdmin/config"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/errs"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const (
	componentPath       = "/test/api/component"
	registerTilePath    = "/test/api/component/register/tile"
	editTilePath        = "/test/api/component/edit/tile"
	deleteComponentPath = "/test/api/component/delete"
	mainPageListPath    = "/test/api/mainPage/list"
	mainPagePath        = "/test/api/mainPage"
	mainPageCreatePath  = "/test/api/mainPage/create"
	productCreatePath   = "/test/api/product/create"
)

type GatewayImpl struct {
	client *httpclient.Client
	cb     *gobreaker.CircuitBreaker[*httpclient.HttpResponse]
	config config.BackendConfig
}

func CreateRemoteGateway(client *httpclient.Client, cb *gobreaker.CircuitBreaker[*httpclient.HttpResponse], config config.BackendConfig) RemoteGateway {
	return &GatewayImpl{
		client: client,
		cb:     cb,
		config: config,
	}
}

// IsSuccessful tells the circuit breaker which outcomes are the backend's fault. Client
// errors are the caller's problem and do not count.
func IsSuccessful(err error) bool {
	if err == nil {
		return true
	}

	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode < http.StatusInternalServerError
	}

	return false
}

func (g *GatewayImpl) ListComponents(ctx context.Context) (data json.RawMessage, err error) {
	return g.fetchData(ctx, http.MethodGet, componentPath, nil, false)
}

func (g *GatewayImpl) GetComponent(ctx context.Context, id string) (data json.RawMessage, err error) {
	if id == "" {
		return nil, errs.ErrMissingIdentifier
	}
	return g.fetchData(ctx, http.MethodGet, componentPath+"/"+url.PathEscape(id), nil, false)
}

func (g *GatewayImpl) RegisterTile(ctx context.Context, tile json.RawMessage) (data json.RawMessage, err error) {
	return g.fetchData(ctx, http.MethodPost, registerTilePath, tile, true)
}

func (g *GatewayImpl) EditTile(ctx context.Context, tile json.RawMessage) (data json.RawMessage, err error) {
	return g.fetchData(ctx, http.MethodPost, editTilePath, tile, true)
}

// DeleteComponent uses GET because that is what the backend exposes for deletion.
func (g *GatewayImpl) DeleteComponent(ctx context.Context, id string) (data json.RawMessage, err error) {
	if id == "" {
		return nil, errs.ErrMissingIdentifier
	}
	return g.fetchData(ctx, http.MethodGet, deleteComponentPath+"/"+url.PathEscape(id), nil, false)
}

func (g *GatewayImpl) ListMainPage(ctx context.Context) (data json.RawMessage, err error) {
	return g.fetchData(ctx, http.MethodGet, mainPageListPath, nil, false)
}

func (g *GatewayImpl) GetMainPage(ctx context.Context, id string) (data json.RawMessage, err error) {
	if id == "" {
		return nil, errs.ErrMissingIdentifier
	}
	return g.fetchData(ctx, http.MethodGet, mainPagePath+"/"+url.PathEscape(id), nil, false)
}

func (g *GatewayImpl) CreateMainPage(ctx context.Context, component json.RawMessage) (resp *Response, err error) {
	return g.send(ctx, http.MethodPost, mainPageCreatePath, component, false)
}

func (g *GatewayImpl) CreateProduct(ctx context.Context, product domain.Product) (resp *Response, err error) {
	body, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("error marshalling product: %w", err)
	}

	return g.send(ctx, http.MethodPost, productCreatePath, body, false)
}

func (g *GatewayImpl) fetchData(ctx context.Context, method, path string, body []byte, withAPIKey bool) (json.RawMessage, error) {
	resp, err := g.send(ctx, method, path, body, withAPIKey)
	if err != nil {
		return nil, err
	}

	return unwrapData(resp.Body)
}

// send performs one request. The inbound request's cancellation is deliberately not
// inherited: once started, a remote call runs to completion.
func (g *GatewayImpl) send(ctx context.Context, method, path string, body []byte, withAPIKey bool) (*Response, error) {
	ctx = context.WithoutCancel(ctx)

	headers := map[string]string{}
	if body != nil {
		headers["Content-Type"] = "application/json"
	}
	if withAPIKey && g.config.ComponentAPIKey != "" {
		headers["Authorization"] = g.config.ComponentAPIKey
	}

	req := httpclient.HttpRequest{
		URL:     strings.TrimRight(g.config.Host, "/") + path,
		Method:  method,
		Body:    body,
		Headers: headers,
	}

	httpResp, err := g.cb.Execute(func() (*httpclient.HttpResponse, error) {
		resp, err := g.client.SendRequest(ctx, req)
		if err != nil {
			return resp, fmt.Errorf("%w: %v", errs.ErrRemoteRequest, err)
		}
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return resp, &RemoteError{StatusCode: resp.StatusCode, Body: resp.Body}
		}
		return resp, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		log.Ctx(ctx).Warn().Str("method", method).Str("path", path).Str("component", "RemoteGateway").Msg("circuit breaker rejected the call")
		return nil, fmt.Errorf("%w: %v", errs.ErrRemoteUnavailable, err)
	}

	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("method", method).Str("path", path).Str("component", "RemoteGateway").Msg("")
		return nil, err
	}

	log.Ctx(ctx).Info().Str("method", method).Str("path", path).Int("status", httpResp.StatusCode).Str("component", "RemoteGateway").Msg("remote call complete")

	return &Response{StatusCode: httpResp.StatusCode, Body: httpResp.Body}, nil
}
