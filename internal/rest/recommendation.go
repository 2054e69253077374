package rest

import (
	"context"
	"net/http"
	"time"

	"glowSkincare/business/profile"
	"glowSkincare/domain"
	"glowSkincare/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate *validator.Validate
		service  RecommendationService
		timeout  time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context, userID uint, profile domain.SkinProfile) (domain.RecommendationResult, error)
		RecommendLatest(ctx context.Context, userID uint) (domain.RecommendationResult, error)
	}

	RecommendationInput struct {
		Source           string   `json:"source" validate:"required,oneof=questionnaire face_scan"`
		SkinType         string   `json:"skin_type" validate:"required"`
		MainConcerns     []string `json:"main_concerns"`
		AgeGroup         string   `json:"age_group"`
		SkincareGoal     string   `json:"skincare_goal"`
		DetectedSkinTone string   `json:"detected_skin_tone"`
		Confidence       *float64 `json:"confidence"`
	}
)

func NewRecommendationHandler(service RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate: validator.New(),
		service:  service,
		timeout:  10 * time.Second,
	}
}

// toProfile runs the request through the same normalization as the capture
// flows, so out-of-domain values are rejected before ranking.
func (in RecommendationInput) toProfile() (domain.SkinProfile, error) {
	if domain.ProfileSource(in.Source) == domain.SourceFaceScan {
		if in.DetectedSkinTone == "" || in.Confidence == nil {
			return domain.SkinProfile{}, &domain.ValidationError{
				Fields: []string{"detected_skin_tone", "confidence"},
				Reason: "incomplete face scan profile",
			}
		}
		tone, err := domain.ParseSkinTone(in.DetectedSkinTone)
		if err != nil {
			return domain.SkinProfile{}, err
		}
		skinType, err := domain.ParseSkinType(in.SkinType)
		if err != nil {
			return domain.SkinProfile{}, err
		}
		if *in.Confidence < 0 || *in.Confidence > 1 {
			return domain.SkinProfile{}, &domain.ValidationError{Fields: []string{"confidence"}, Reason: "confidence must be between 0 and 1"}
		}
		return profile.SubmitFaceScan(domain.FaceScanEstimate{
			SkinTone:   tone,
			SkinType:   skinType,
			Confidence: *in.Confidence,
		}, domain.FaceScanOverrides{})
	}

	partial := domain.SkinProfile{
		SkinType:     domain.SkinType(in.SkinType),
		AgeGroup:     domain.AgeGroup(in.AgeGroup),
		SkincareGoal: domain.Goal(in.SkincareGoal),
		Source:       domain.SourceQuestionnaire,
	}
	for _, c := range in.MainConcerns {
		partial.MainConcerns = append(partial.MainConcerns, domain.Concern(c))
	}
	return profile.NormalizeQuestionnaire(partial)
}

func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var request RecommendationInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate recommendation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	skinProfile, err := request.toProfile()
	if err != nil {
		return respondError(c, "Invalid skin profile", err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.service.Recommend(ctx, currentUserID(c), skinProfile)
	if err != nil {
		return respondError(c, "Failed to build recommendation", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *RecommendationHandler) Latest(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.service.RecommendLatest(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, "Failed to build recommendation for latest profile", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
