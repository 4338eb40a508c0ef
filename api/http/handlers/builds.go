package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/pcbuild/api/http/presenter"
	"github.com/artem13815/pcbuild/pkg/build"
)

// BuildsHandler serves saved, shared and compared builds.
// uc is nil when no database is configured; comparison still works.
type BuildsHandler struct {
	uc build.UseCase
}

func NewBuildsHandler(uc build.UseCase) *BuildsHandler { return &BuildsHandler{uc: uc} }

type saveBuildRequest struct {
	Name               string          `json:"name"`
	Budget             float64         `json:"budget"`
	UseCase            string          `json:"useCase"`
	CustomRequirements string          `json:"customRequirements"`
	BuildData          json.RawMessage `json:"buildData" swaggertype:"object"`
	SelectedTier       string          `json:"selectedTier"`
	Share              bool            `json:"share"`
}

type compareRequest struct {
	Build1 build.TierSummary `json:"build1"`
	Build2 build.TierSummary `json:"build2"`
}

func (h *BuildsHandler) unavailable(c *fiber.Ctx) error {
	return presenter.Error(c, http.StatusServiceUnavailable, "saved builds are not available")
}

// Save сохраняет сборку; с share=true выдаёт токен для публичной ссылки.
// @Summary Save a build
// @Tags    builds
// @Accept  json
// @Produce json
// @Param   input body saveBuildRequest true "build to save"
// @Success 201 {object} build.Build
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /api/v1/builds [post]
func (h *BuildsHandler) Save(c *fiber.Ctx) error {
	if h.uc == nil {
		return h.unavailable(c)
	}
	var req saveBuildRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	out, err := h.uc.Save(c.Context(), build.Build{
		Name:               req.Name,
		Budget:             req.Budget,
		UseCase:            req.UseCase,
		CustomRequirements: req.CustomRequirements,
		BuildData:          req.BuildData,
		SelectedTier:       req.SelectedTier,
	}, req.Share)
	if err != nil {
		var verr build.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to save build")
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// Get returns a saved build by id.
// @Summary Get a build
// @Tags    builds
// @Produce json
// @Param   id path string true "build id (UUID)"
// @Success 200 {object} build.Build
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/v1/builds/{id} [get]
func (h *BuildsHandler) Get(c *fiber.Ctx) error {
	if h.uc == nil {
		return h.unavailable(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, build.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "build not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load build")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// List returns saved builds, newest first.
// @Summary List builds
// @Tags    builds
// @Produce json
// @Param   limit  query int false "page size (1..200, default 20)"
// @Param   offset query int false "offset"
// @Success 200 {array} build.Build
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /api/v1/builds [get]
func (h *BuildsHandler) List(c *fiber.Ctx) error {
	if h.uc == nil {
		return h.unavailable(c)
	}
	limit, offset := parseLimitOffset(c, 20)
	items, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list builds")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Shared returns a build by its public share token.
// @Summary Get a shared build
// @Tags    builds
// @Produce json
// @Param   token path string true "share token"
// @Success 200 {object} build.Build
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/v1/shared/{token} [get]
func (h *BuildsHandler) Shared(c *fiber.Ctx) error {
	if h.uc == nil {
		return h.unavailable(c)
	}
	out, err := h.uc.GetShared(c.Context(), c.Params("token"))
	if err != nil {
		if errors.Is(err, build.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Invalid share link")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load shared build")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Compare shows how the second tier stacks up against the first.
// @Summary Compare two tiers
// @Tags    builds
// @Accept  json
// @Produce json
// @Param   input body compareRequest true "two tier summaries"
// @Success 200 {object} build.Comparison
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /api/v1/builds/compare [post]
func (h *BuildsHandler) Compare(c *fiber.Ctx) error {
	var req compareRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	return presenter.JSON(c, http.StatusOK, build.Compare(req.Build1, req.Build2))
}
