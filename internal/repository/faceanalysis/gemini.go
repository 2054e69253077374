package faceanalysis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"glowSkincare/domain"
	"glowSkincare/pkg/logger"
	"glowSkincare/pkg/metrics"

	"github.com/goccy/go-json"
	"github.com/google/generative-ai-go/genai"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/api/option"
)

const breakerName = "gemini-face-analyzer"

const analyzePrompt = `Analyze the face in this photo and estimate the person's skin.
Respond with a single JSON object and nothing else:
{
	"skin_tone": one of "Light", "Medium", "Dark",
	"skin_type": one of "Oily", "Dry", "Combination", "Normal", "Sensitive",
	"confidence": number between 0 and 1,
	"error": "string, only set when no face can be analyzed"
}`

// GeminiAnalyzer asks a Gemini vision model for the estimate. Calls go
// through a circuit breaker so an unavailable API fails fast.
type GeminiAnalyzer struct {
	client *genai.Client
	model  *genai.GenerativeModel
	cb     *gobreaker.CircuitBreaker[domain.FaceScanEstimate]
}

func NewGeminiAnalyzer(ctx context.Context, apiKey, modelName string) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0)

	return &GeminiAnalyzer{
		client: client,
		model:  model,
		cb:     newBreaker(),
	}, nil
}

func newBreaker() *gobreaker.CircuitBreaker[domain.FaceScanEstimate] {
	metrics.FaceAnalyzerBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[domain.FaceScanEstimate](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// a face the model cannot read is not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errNoFace)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("face analyzer circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.FaceAnalyzerBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})
}

var errNoFace = errors.New("no analyzable face in image")

func (a *GeminiAnalyzer) Analyze(ctx context.Context, image []byte) (domain.FaceScanEstimate, error) {
	if len(image) == 0 {
		return domain.FaceScanEstimate{}, fmt.Errorf("%w: empty image", domain.ErrAnalysisFailed)
	}

	estimate, err := a.cb.Execute(func() (domain.FaceScanEstimate, error) {
		return a.generate(ctx, image)
	})
	if err != nil {
		return domain.FaceScanEstimate{}, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}

	return estimate, nil
}

func (a *GeminiAnalyzer) generate(ctx context.Context, image []byte) (domain.FaceScanEstimate, error) {
	resp, err := a.model.GenerateContent(ctx, genai.Text(analyzePrompt), genai.ImageData(imageFormat(image), image))
	if err != nil {
		return domain.FaceScanEstimate{}, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return domain.FaceScanEstimate{}, errors.New("no content generated")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	return parseEstimate(text.String())
}

type geminiEstimate struct {
	SkinTone   string   `json:"skin_tone"`
	SkinType   string   `json:"skin_type"`
	Confidence *float64 `json:"confidence"`
	Error      string   `json:"error"`
}

// parseEstimate decodes the model's JSON answer, tolerating a markdown fence.
func parseEstimate(text string) (domain.FaceScanEstimate, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if text == "" {
		return domain.FaceScanEstimate{}, errors.New("empty model response")
	}

	var out geminiEstimate
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return domain.FaceScanEstimate{}, fmt.Errorf("failed to parse model response: %w", err)
	}

	if out.Error != "" {
		return domain.FaceScanEstimate{}, fmt.Errorf("%w: %s", errNoFace, out.Error)
	}

	tone, err := domain.ParseSkinTone(out.SkinTone)
	if err != nil {
		return domain.FaceScanEstimate{}, err
	}
	skinType, err := domain.ParseSkinType(out.SkinType)
	if err != nil {
		return domain.FaceScanEstimate{}, err
	}
	if out.Confidence == nil || *out.Confidence < 0 || *out.Confidence > 1 {
		return domain.FaceScanEstimate{}, errors.New("model returned no usable confidence")
	}

	return domain.FaceScanEstimate{
		SkinTone:   tone,
		SkinType:   skinType,
		Confidence: *out.Confidence,
	}, nil
}

// imageFormat maps the sniffed content type to the format genai expects.
func imageFormat(image []byte) string {
	switch http.DetectContentType(image) {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	default:
		return "jpeg"
	}
}

func (a *GeminiAnalyzer) Close() error {
	return a.client.Close()
}
