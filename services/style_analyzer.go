package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"stylistapi/models"
)

var (
	ErrInvalidImage      = errors.New("invalid image")
	ErrUpstream          = errors.New("analysis service error")
	ErrUpstreamTimeout   = errors.New("analysis service timed out")
	ErrEmptyResponse     = errors.New("empty response from analysis service")
	ErrMalformedResponse = errors.New("malformed analysis response")

	ErrMissingAPIKey = fmt.Errorf("%w: GOOGLE_API_KEY is not configured", ErrUpstream)
)

// ErrorKind classifies an analysis failure for responses and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidImage):
		return "invalid_image"
	case errors.Is(err, ErrUpstreamTimeout):
		return "timeout"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, ErrMalformedResponse):
		return "parse_error"
	case errors.Is(err, ErrUpstream):
		return "upstream_error"
	}
	return "internal_error"
}

type StyleAnalysisResult struct {
	BodyType             string   `json:"bodyType"`
	SkinTone             string   `json:"skinTone"`
	CurrentStyle         string   `json:"currentStyle"`
	RecommendedStyles    []string `json:"recommendedStyles"`
	ColorRecommendations []string `json:"colorRecommendations"`
	OutfitSuggestions    []string `json:"outfitSuggestions"`
	ImprovementTips      []string `json:"improvementTips"`
}

// ToInsert keeps imageURL exactly as the client sent it.
func (r *StyleAnalysisResult) ToInsert(imageURL string) *models.InsertStyleAnalysis {
	return &models.InsertStyleAnalysis{
		ImageURL:             imageURL,
		BodyType:             r.BodyType,
		SkinTone:             r.SkinTone,
		CurrentStyle:         models.OptionalString(&r.CurrentStyle),
		RecommendedStyles:    r.RecommendedStyles,
		ColorRecommendations: r.ColorRecommendations,
		OutfitSuggestions:    r.OutfitSuggestions,
		ImprovementTips:      r.ImprovementTips,
	}
}

// StyleAnalyzer sends one photo to a vision model and returns its advice.
// base64Image carries no data URL prefix.
type StyleAnalyzer interface {
	AnalyzePhoto(ctx context.Context, base64Image string) (*StyleAnalysisResult, error)
}

// ParseStyleAnalysis decodes a model reply. Missing text fields or lists are
// treated as a malformed reply.
func ParseStyleAnalysis(text string) (*StyleAnalysisResult, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var result StyleAnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var missing []string
	if strings.TrimSpace(result.BodyType) == "" {
		missing = append(missing, "bodyType")
	}
	if strings.TrimSpace(result.SkinTone) == "" {
		missing = append(missing, "skinTone")
	}
	if result.RecommendedStyles == nil {
		missing = append(missing, "recommendedStyles")
	}
	if result.ColorRecommendations == nil {
		missing = append(missing, "colorRecommendations")
	}
	if result.OutfitSuggestions == nil {
		missing = append(missing, "outfitSuggestions")
	}
	if result.ImprovementTips == nil {
		missing = append(missing, "improvementTips")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedResponse, strings.Join(missing, ", "))
	}
	return &result, nil
}
