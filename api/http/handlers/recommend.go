package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/pcbuild/api/http/presenter"
	"github.com/artem13815/pcbuild/pkg/recommend"
)

// RecommendHandler exposes the two AI recommendation flows.
type RecommendHandler struct {
	uc recommend.UseCase
}

func NewRecommendHandler(uc recommend.UseCase) *RecommendHandler {
	return &RecommendHandler{uc: uc}
}

// GenerateBuild asks the model for Good/Better/Best builds within a budget.
// The completion is returned exactly as the model produced it.
// @Summary Generate PC builds
// @Tags    recommendations
// @Accept  json
// @Produce json
// @Param   input body recommend.BuildRequest true "budget, use case and optional requirements"
// @Success 200 {object} map[string]any "model completion: {builds: [...]}"
// @Failure 402 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /functions/v1/generate-pc-build [post]
func (h *RecommendHandler) GenerateBuild(c *fiber.Ctx) error {
	var req recommend.BuildRequest
	if err := decode(c, &req); err != nil {
		return failure(c, err, recommend.BuildMessages)
	}
	out, err := h.uc.GenerateBuilds(c.Context(), req)
	if err != nil {
		return failure(c, err, recommend.BuildMessages)
	}
	return presenter.Raw(c, fiber.StatusOK, out)
}

// RecommendPeripherals asks the model for peripherals matching a chosen build.
// @Summary Recommend peripherals
// @Tags    recommendations
// @Accept  json
// @Produce json
// @Param   input body recommend.PeripheralRequest true "remaining budget, build snapshot and use case"
// @Success 200 {object} map[string]any "model completion: {peripherals: [...]}"
// @Failure 402 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /functions/v1/recommend-peripherals [post]
func (h *RecommendHandler) RecommendPeripherals(c *fiber.Ctx) error {
	var req recommend.PeripheralRequest
	if err := decode(c, &req); err != nil {
		return failure(c, err, recommend.PeripheralMessages)
	}
	out, err := h.uc.RecommendPeripherals(c.Context(), req)
	if err != nil {
		return failure(c, err, recommend.PeripheralMessages)
	}
	return presenter.Raw(c, fiber.StatusOK, out)
}

// decode reads a JSON body whatever the declared content type.
func decode(c *fiber.Ctx, v any) error {
	if err := c.App().Config().JSONDecoder(c.Body(), v); err != nil {
		return fmt.Errorf("%w: %v", recommend.ErrMalformedRequest, err)
	}
	return nil
}

func failure(c *fiber.Ctx, err error, msgs recommend.Messages) error {
	f := recommend.Classify(err, msgs)
	return presenter.Error(c, f.Status, f.Message)
}
