package controllers

import (
	"context"
	"errors"
	"testing"

	"stylistapi/config"
	"stylistapi/models"
	"stylistapi/services"
	"stylistapi/storage"
	"stylistapi/test"

	"github.com/labstack/echo/v4"
)

var errBroken = errors.New("connection reset by peer")

type serverDeps struct {
	store      storage.Storage
	analyzer   services.StyleAnalyzer
	awsService services.AWSServiceProvider
	urlCache   services.URLCacheServiceProvider
	cfg        config.Config
}

func newTestServer(t *testing.T, configure ...func(*serverDeps)) *echo.Echo {
	t.Helper()
	deps := &serverDeps{
		store:      storage.NewMemStorage(),
		analyzer:   &test.StyleAnalyzerMock{},
		awsService: test.AWSProviderMock{},
		urlCache:   test.URLCacheMock{},
		cfg:        test.Config(),
	}
	for _, fn := range configure {
		fn(deps)
	}
	log, _ := test.Logger()
	return SetupServer(deps.store, deps.analyzer, deps.awsService, deps.urlCache, deps.cfg, log)
}

func withStore(store storage.Storage) func(*serverDeps) {
	return func(d *serverDeps) { d.store = store }
}

func withAnalyzer(analyzer services.StyleAnalyzer) func(*serverDeps) {
	return func(d *serverDeps) { d.analyzer = analyzer }
}

// brokenStorage fails every read and write. Only the methods the tests reach
// are overridden.
type brokenStorage struct {
	storage.Storage
}

func (brokenStorage) ListClothingItems(ctx context.Context) ([]models.ClothingItem, error) {
	return nil, errBroken
}

func (brokenStorage) GetOutfit(ctx context.Context, id uint) (*models.Outfit, error) {
	return nil, errBroken
}

func (brokenStorage) CreateColorPalette(ctx context.Context, in *models.InsertColorPalette) (*models.ColorPalette, error) {
	return nil, errBroken
}

func (brokenStorage) ListStyleAnalyses(ctx context.Context) ([]models.StyleAnalysis, error) {
	return nil, errBroken
}

func (brokenStorage) CreateStyleAnalysis(ctx context.Context, in *models.InsertStyleAnalysis) (*models.StyleAnalysis, error) {
	return nil, errBroken
}

func (brokenStorage) Backend() string {
	return "postgres"
}

func (brokenStorage) Ping(ctx context.Context) error {
	return errBroken
}

func clothingPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":     "Navy Blazer",
		"category": "Business Casual",
		"type":     "top",
		"imageUrl": "https://example.com/blazer.jpg",
		"colors":   []string{"navy"},
	}
}
