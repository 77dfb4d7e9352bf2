package service

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/amusetravel-BackEnd/amuseAdmin/config"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/encoder"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/gateway"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/repository"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) ListComponents(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	return rawArg(args, 0), args.Error(1)
}

func (m *mockGateway) GetComponent(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	return rawArg(args, 0), args.Error(1)
}

func (m *mockGateway) RegisterTile(ctx context.Context, tile json.RawMessage) (json.RawMessage, error) {
	args := m.Called(ctx, tile)
	return rawArg(args, 0), args.Error(1)
}

func (m *mockGateway) EditTile(ctx context.Context, tile json.RawMessage) (json.RawMessage, error) {
	args := m.Called(ctx, tile)
	return rawArg(args, 0), args.Error(1)
}

func (m *mockGateway) DeleteComponent(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	return rawArg(args, 0), args.Error(1)
}

func (m *mockGateway) ListMainPage(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	return rawArg(args, 0), args.Error(1)
}

func (m *mockGateway) GetMainPage(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	return rawArg(args, 0), args.Error(1)
}

func (m *mockGateway) CreateMainPage(ctx context.Context, component json.RawMessage) (*gateway.Response, error) {
	args := m.Called(ctx, component)
	return responseArg(args, 0), args.Error(1)
}

func (m *mockGateway) CreateProduct(ctx context.Context, product domain.Product) (*gateway.Response, error) {
	args := m.Called(ctx, product)
	return responseArg(args, 0), args.Error(1)
}

func rawArg(args mock.Arguments, i int) json.RawMessage {
	if v, ok := args.Get(i).(json.RawMessage); ok {
		return v
	}
	return nil
}

func responseArg(args mock.Arguments, i int) *gateway.Response {
	if v, ok := args.Get(i).(*gateway.Response); ok {
		return v
	}
	return nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		ProductConfig: config.ProductConfig{
			AdminIdentity:     "daw916@naver.com",
			DefaultStartPrice: 9999,
			Categories:        []string{"국내여행", "해외여행", "당일치기"},
		},
		ImageConfig: config.ImageConfig{EncodeConcurrency: 2},
	}
}

func newTestFormService(gw gateway.RemoteGateway, publisher EventPublisher) (*FormServiceImpl, repository.FormRepository) {
	conf := testConfig()
	repo := repository.CreateMemoryFormRepository()
	svc := CreateFormService(repo, gw, encoder.NewEncoder(conf.ImageConfig), publisher, conf).(*FormServiceImpl)
	svc.publishBackoff = 0
	return svc, repo
}

func testPNG(t *testing.T, name string) encoder.File {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return encoder.FromBytes(name, buf.Bytes())
}
