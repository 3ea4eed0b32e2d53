package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stylistapi/config"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const analysisSystemPrompt = `You are a professional fashion stylist. Study the person in the photo and give specific, personal fashion advice.
Consider their body type, skin tone and, when visible, the outfit they are wearing, then recommend styles, colors and complete outfits that suit them.
Reply with JSON only, using exactly these fields:
{
  "bodyType": "description of the body type",
  "skinTone": "description of the skin tone",
  "currentStyle": "analysis of the current outfit, or an empty string when none is visible",
  "recommendedStyles": ["style", "..."],
  "colorRecommendations": ["color", "..."],
  "outfitSuggestions": ["detailed outfit", "..."],
  "improvementTips": ["specific improvement", "..."]
}`

const analysisUserPrompt = "Analyze the person in this photo and provide detailed fashion advice."

func floatPointer(f float32) *float32 {
	return &f
}

var stringList = &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}

var analysisResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"bodyType":             {Type: genai.TypeString},
		"skinTone":             {Type: genai.TypeString},
		"currentStyle":         {Type: genai.TypeString},
		"recommendedStyles":    stringList,
		"colorRecommendations": stringList,
		"outfitSuggestions":    stringList,
		"improvementTips":      stringList,
	},
	Required: []string{
		"bodyType", "skinTone", "recommendedStyles",
		"colorRecommendations", "outfitSuggestions", "improvementTips",
	},
}

// GeminiStyleAnalyzer runs photo analysis on the Gemini API. A client is
// created per call; there is no retry.
type GeminiStyleAnalyzer struct {
	APIKey          string
	Model           string
	Timeout         time.Duration
	MaxOutputTokens int32
	// overrides the API endpoint, used by tests
	BaseURL string
	Log     logrus.FieldLogger
}

func NewGeminiStyleAnalyzer(cfg config.AnalysisConfig, log logrus.FieldLogger) *GeminiStyleAnalyzer {
	return &GeminiStyleAnalyzer{
		APIKey:          cfg.APIKey,
		Model:           cfg.Model,
		Timeout:         cfg.Timeout,
		MaxOutputTokens: int32(cfg.MaxOutputTokens),
		Log:             log,
	}
}

func (a *GeminiStyleAnalyzer) AnalyzePhoto(ctx context.Context, base64Image string) (*StyleAnalysisResult, error) {
	if a.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	data, mimeType, err := DecodeBase64Image(base64Image)
	if err != nil {
		return nil, err
	}

	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  a.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if a.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: a.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	parts := []*genai.Part{
		{Text: analysisUserPrompt},
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
	}
	start := time.Now()
	result, err := client.Models.GenerateContent(ctx, a.Model, []*genai.Content{{Role: "user", Parts: parts}}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisResponseSchema,
		CandidateCount:   1,
		MaxOutputTokens:  a.MaxOutputTokens,
		Temperature:      floatPointer(0.4),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: analysisSystemPrompt}},
		},
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrUpstreamTimeout, a.Timeout)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	entry := a.logger().WithFields(logrus.Fields{
		"model":    a.Model,
		"duration": time.Since(start).String(),
	})
	if result.UsageMetadata != nil {
		entry = entry.WithFields(logrus.Fields{
			"input_tokens":  result.UsageMetadata.PromptTokenCount,
			"output_tokens": result.UsageMetadata.CandidatesTokenCount,
			"total_tokens":  result.UsageMetadata.TotalTokenCount,
		})
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		entry.WithField("block_reason", result.PromptFeedback.BlockReason).Warn("photo analysis blocked")
		return nil, fmt.Errorf("%w: content blocked: %s %s", ErrUpstream, result.PromptFeedback.BlockReason, result.PromptFeedback.BlockReasonMessage)
	}

	analysis, err := ParseStyleAnalysis(result.Text())
	if err != nil {
		entry.WithError(err).Warn("photo analysis reply rejected")
		return nil, err
	}
	entry.Info("photo analysis completed")
	return analysis, nil
}

func (a *GeminiStyleAnalyzer) logger() logrus.FieldLogger {
	if a.Log == nil {
		return logrus.StandardLogger()
	}
	return a.Log
}
