package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"stylistapi/config"
	"stylistapi/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	return NewRawJSONRequest(method, target, JsonString(param))
}

func NewRawJSONRequest(method string, target string, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

// Do runs req through e and returns the recorder.
func Do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func DecodeJSON[T any](rec *httptest.ResponseRecorder) (T, error) {
	var out T
	err := json.Unmarshal(rec.Body.Bytes(), &out)
	return out, err
}

func Config() config.Config {
	return config.Config{
		Port:           "0",
		Env:            "test",
		LogLevel:       "debug",
		AllowedOrigins: []string{"*"},
		StorageBackend: config.BackendMemory,
		Analysis: config.AnalysisConfig{
			APIKey:          "test-key",
			Model:           "gemini-2.5-flash",
			Timeout:         5 * time.Second,
			MaxOutputTokens: 1500,
		},
		Uploads: config.UploadsConfig{
			AccountID:       "account",
			AccessKeyID:     "key",
			AccessKeySecret: "secret",
			BucketName:      "looks",
			URLExpiration:   15 * time.Minute,
		},
	}
}

// Logger discards output and records entries on the returned hook.
func Logger() (*logrus.Logger, *logtest.Hook) {
	return logtest.NewNullLogger()
}

func StringPointer(s string) *string {
	return &s
}

// StyleAnalyzerMock returns Result or Err and records every image it saw.
type StyleAnalyzerMock struct {
	Result *services.StyleAnalysisResult
	Err    error

	mu    sync.Mutex
	Calls []string
}

func (m *StyleAnalyzerMock) AnalyzePhoto(ctx context.Context, base64Image string) (*services.StyleAnalysisResult, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, base64Image)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result != nil {
		return m.Result, nil
	}
	return SampleAnalysisResult(), nil
}

func SampleAnalysisResult() *services.StyleAnalysisResult {
	return &services.StyleAnalysisResult{
		BodyType:             "Athletic",
		SkinTone:             "Warm",
		RecommendedStyles:    []string{"Casual"},
		ColorRecommendations: []string{"Navy"},
		OutfitSuggestions:    []string{"Jeans + tee"},
		ImprovementTips:      []string{"Add layers"},
	}
}

type AWSProviderMock struct {
	MockUrl string
	Err     error
}

func (awsService AWSProviderMock) PresignUploadURL(ctx context.Context, objectKey string) (string, error) {
	if awsService.Err != nil {
		return "", awsService.Err
	}
	return fmt.Sprintf("https://fakebucketurl.com/%s?X-Amz-Signature=upload", objectKey), nil
}

func (awsService AWSProviderMock) GetPresignedReadURL(ctx context.Context, objectKey string) (string, error) {
	if awsService.Err != nil {
		return "", awsService.Err
	}
	if awsService.MockUrl != "" {
		return awsService.MockUrl, nil
	}
	return fmt.Sprintf("https://fakebucketurl.com/%s?X-Amz-Signature=read", objectKey), nil
}

type URLCacheMock struct {
	Err error
}

func (m URLCacheMock) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if objectKey == "" {
		return "", nil
	}
	return "https://cached.example.com/" + objectKey, nil
}
