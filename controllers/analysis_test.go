package controllers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"testing"
	"time"

	"stylistapi/models"
	"stylistapi/services"
	"stylistapi/storage"
	"stylistapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var photoBase64 = base64.StdEncoding.EncodeToString(append([]byte("\xff\xd8\xff\xe0"), make([]byte, 32)...))

var photoDataURL = "data:image/jpeg;base64," + photoBase64

func TestAnalyzePhotoOk(t *testing.T) {
	analyzer := &test.StyleAnalyzerMock{}
	e := newTestServer(t, withAnalyzer(analyzer))

	before := time.Now().Add(-time.Second)
	rec := test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/style-analysis", map[string]string{"imageData": photoDataURL}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	analysis, err := test.DecodeJSON[models.StyleAnalysis](rec)
	require.NoError(t, err)
	assert.NotZero(t, analysis.ID)
	assert.True(t, analysis.CreatedAt.After(before))
	assert.Equal(t, photoDataURL, analysis.ImageURL)
	assert.Equal(t, "Athletic", analysis.BodyType)
	assert.Equal(t, "Warm", analysis.SkinTone)
	assert.Nil(t, analysis.CurrentStyle)
	assert.Equal(t, []string{"Casual"}, []string(analysis.RecommendedStyles))
	assert.Equal(t, []string{"Navy"}, []string(analysis.ColorRecommendations))
	assert.Equal(t, []string{"Jeans + tee"}, []string(analysis.OutfitSuggestions))
	assert.Equal(t, []string{"Add layers"}, []string(analysis.ImprovementTips))

	require.Len(t, analyzer.Calls, 1)
	assert.Equal(t, photoBase64, analyzer.Calls[0])

	rec = test.Do(e, test.NewJSONRequest(http.MethodGet, fmt.Sprintf("/api/style-analysis/%d", analysis.ID), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	fetched, err := test.DecodeJSON[models.StyleAnalysis](rec)
	require.NoError(t, err)
	assert.Equal(t, analysis.ID, fetched.ID)
	assert.True(t, analysis.CreatedAt.Equal(fetched.CreatedAt))
}

func TestAnalyzePhotoRawBase64(t *testing.T) {
	analyzer := &test.StyleAnalyzerMock{}
	e := newTestServer(t, withAnalyzer(analyzer))

	rec := test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/style-analysis", map[string]string{"imageData": photoBase64}))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, analyzer.Calls, 1)
	assert.Equal(t, photoBase64, analyzer.Calls[0])
}

func TestAnalyzePhotoRequiresImageData(t *testing.T) {
	analyzer := &test.StyleAnalyzerMock{}
	e := newTestServer(t, withAnalyzer(analyzer))

	for _, body := range []string{`{"imageData": ""}`, `{}`, ``} {
		rec := test.Do(e, test.NewRawJSONRequest(http.MethodPost, "/api/style-analysis", body))
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		response, err := test.DecodeJSON[ValidationErrorResponse](rec)
		require.NoError(t, err)
		require.Len(t, response.Errors, 1)
		assert.Equal(t, "Image data is required", response.Errors[0].Message)
	}
	assert.Empty(t, analyzer.Calls)
}

func TestAnalyzePhotoUpstreamFailures(t *testing.T) {
	cases := []struct {
		err  error
		kind string
	}{
		{fmt.Errorf("%w: 503 unavailable", services.ErrUpstream), "upstream_error"},
		{fmt.Errorf("%w after 1m0s", services.ErrUpstreamTimeout), "timeout"},
		{services.ErrEmptyResponse, "empty_response"},
		{fmt.Errorf("%w: unexpected end of JSON input", services.ErrMalformedResponse), "parse_error"},
	}
	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			store := storage.NewMemStorage()
			e := newTestServer(t, withStore(store), withAnalyzer(&test.StyleAnalyzerMock{Err: tc.err}))

			rec := test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/style-analysis", map[string]string{"imageData": photoDataURL}))

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			response, err := test.DecodeJSON[ErrorResponse](rec)
			require.NoError(t, err)
			assert.Equal(t, "Error analyzing photo", response.Message)
			assert.Equal(t, tc.err.Error(), response.Error)
			assert.Equal(t, tc.kind, response.Kind)

			analyses, err := store.ListStyleAnalyses(t.Context())
			require.NoError(t, err)
			assert.Empty(t, analyses)
		})
	}
}

func TestAnalyzePhotoInvalidImage(t *testing.T) {
	e := newTestServer(t, withAnalyzer(&test.StyleAnalyzerMock{Err: fmt.Errorf("%w: not valid base64", services.ErrInvalidImage)}))

	rec := test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/style-analysis", map[string]string{"imageData": "data:image/png;base64,@@@"}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	response, err := test.DecodeJSON[ErrorResponse](rec)
	require.NoError(t, err)
	assert.Equal(t, "Error analyzing photo", response.Message)
	assert.Equal(t, "invalid_image", response.Kind)
}

func TestAnalyzePhotoWithoutAPIKeyFailsEveryRequest(t *testing.T) {
	cfg := test.Config()
	cfg.Analysis.APIKey = ""
	log, _ := test.Logger()
	e := newTestServer(t, withAnalyzer(services.NewGeminiStyleAnalyzer(cfg.Analysis, log)))

	images := []string{
		"data:image/heic;base64,AAAAGGZ0eXBoZWljAAAAAG1pZjFoZWlj",
		"aGVsbG8gd29ybGQ=",
		photoDataURL,
	}
	for _, image := range images {
		rec := test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/style-analysis", map[string]string{"imageData": image}))

		require.Equal(t, http.StatusInternalServerError, rec.Code, image)
		response, err := test.DecodeJSON[ErrorResponse](rec)
		require.NoError(t, err)
		assert.Equal(t, "upstream_error", response.Kind)
		assert.Contains(t, response.Error, "GOOGLE_API_KEY")
	}
}

func TestAnalyzePhotoListMinimumAppliesToReply(t *testing.T) {
	result := test.SampleAnalysisResult()
	result.ImprovementTips = []string{}
	e := newTestServer(t,
		withAnalyzer(&test.StyleAnalyzerMock{Result: result}),
		func(d *serverDeps) { d.cfg.ListMinLength = 1 },
	)

	rec := test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/style-analysis", map[string]string{"imageData": photoDataURL}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	response, err := test.DecodeJSON[ErrorResponse](rec)
	require.NoError(t, err)
	assert.Equal(t, "parse_error", response.Kind)
	assert.Contains(t, response.Error, "improvementTips")
}

func TestAnalyzePhotoStorageFailure(t *testing.T) {
	e := newTestServer(t, withStore(brokenStorage{}))

	rec := test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/style-analysis", map[string]string{"imageData": photoDataURL}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	response, err := test.DecodeJSON[ErrorResponse](rec)
	require.NoError(t, err)
	assert.Equal(t, "Error analyzing photo", response.Message)
	assert.Equal(t, errBroken.Error(), response.Error)
}

func TestListStyleAnalysesNewestFirst(t *testing.T) {
	analyzer := &test.StyleAnalyzerMock{}
	e := newTestServer(t, withAnalyzer(analyzer))
	for i := 0; i < 3; i++ {
		rec := test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/style-analysis", map[string]string{"imageData": photoDataURL}))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := test.Do(e, test.NewJSONRequest(http.MethodGet, "/api/style-analysis", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	analyses, err := test.DecodeJSON[[]models.StyleAnalysis](rec)
	require.NoError(t, err)
	require.Len(t, analyses, 3)
	for i := 1; i < len(analyses); i++ {
		assert.False(t, analyses[i].CreatedAt.After(analyses[i-1].CreatedAt))
		assert.Less(t, analyses[i].ID, analyses[i-1].ID)
	}
}

func TestListStyleAnalysesStorageFailure(t *testing.T) {
	e := newTestServer(t, withStore(brokenStorage{}))

	rec := test.Do(e, test.NewJSONRequest(http.MethodGet, "/api/style-analysis", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	response, err := test.DecodeJSON[ErrorResponse](rec)
	require.NoError(t, err)
	assert.Equal(t, "Error retrieving style analyses", response.Message)
}

func TestGetStyleAnalysisErrors(t *testing.T) {
	e := newTestServer(t)

	rec := test.Do(e, test.NewJSONRequest(http.MethodGet, "/api/style-analysis/nope", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = test.Do(e, test.NewJSONRequest(http.MethodGet, "/api/style-analysis/5", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message": "Style analysis not found"}`, rec.Body.String())
}
