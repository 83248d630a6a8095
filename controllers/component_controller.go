package controllers

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/dtos"
	"github.com/rusko124/sbomify/services"
	"github.com/rusko124/sbomify/shared"
	"github.com/rusko124/sbomify/transformer"
	"github.com/rusko124/sbomify/utils"
)

// uploads larger than this are rejected before parsing
const maxSbomUploadBytes = 32 << 20 // 32 MiB

type ComponentController struct {
	componentRepository shared.ComponentRepository
	sbomRepository      shared.SbomRepository
	documentRepository  shared.DocumentRepository
	sbomService         shared.SbomService
}

func NewComponentController(componentRepository shared.ComponentRepository, sbomRepository shared.SbomRepository, documentRepository shared.DocumentRepository, sbomService shared.SbomService) *ComponentController {
	return &ComponentController{
		componentRepository: componentRepository,
		sbomRepository:      sbomRepository,
		documentRepository:  documentRepository,
		sbomService:         sbomService,
	}
}

func (h *ComponentController) readComponent(c shared.Context) (models.Component, error) {
	team := shared.GetTeam(c)
	slug := shared.GetParam(c, "componentSlug")

	component, err := h.componentRepository.ReadBySlug(team.ID, slug)
	if err != nil {
		return models.Component{}, echo.NewHTTPError(404, "component not found").WithInternal(err)
	}
	return component, nil
}

func (h *ComponentController) List(c shared.Context) error {
	team := shared.GetTeam(c)

	components, err := h.componentRepository.GetByTeamID(team.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list components").WithInternal(err)
	}

	return c.JSON(http.StatusOK, utils.Map(components, transformer.ComponentToDTO))
}

func (h *ComponentController) Create(c shared.Context) error {
	var req dtos.ComponentCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "invalid payload").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	team := shared.GetTeam(c)
	component := transformer.ComponentFromName(req.Name, team)

	if err := h.componentRepository.Create(nil, &component); err != nil {
		return echo.NewHTTPError(500, "could not create component").WithInternal(err)
	}

	return c.JSON(http.StatusCreated, transformer.ComponentToDTO(component))
}

func (h *ComponentController) ListSboms(c shared.Context) error {
	component, err := h.readComponent(c)
	if err != nil {
		return err
	}

	sboms, err := h.sbomRepository.GetByComponentID(component.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list sboms").WithInternal(err)
	}

	return c.JSON(http.StatusOK, utils.Map(sboms, transformer.SbomToDTO))
}

// UploadSbom accepts a raw cyclonedx or spdx json document.
func (h *ComponentController) UploadSbom(c shared.Context) error {
	component, err := h.readComponent(c)
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxSbomUploadBytes))
	if err != nil {
		return echo.NewHTTPError(400, "could not read request body").WithInternal(err)
	}

	sbom, err := h.sbomService.ImportSbom(component, raw)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSbom) {
			return echo.NewHTTPError(400, err.Error()).WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not import sbom").WithInternal(err)
	}

	return c.JSON(http.StatusCreated, transformer.SbomToDTO(sbom))
}

// DownloadSbom returns the raw document of a single sbom upload.
func (h *ComponentController) DownloadSbom(c shared.Context) error {
	component, err := h.readComponent(c)
	if err != nil {
		return err
	}

	sbomIDParam := shared.GetParam(c, "sbomID")
	sbomID, err := uuid.Parse(sbomIDParam)
	if err != nil {
		return echo.NewHTTPError(400, "invalid sbom id")
	}

	sbom, err := h.sbomRepository.Read(sbomID)
	if err != nil || sbom.ComponentID != component.ID {
		return echo.NewHTTPError(404, "sbom not found").WithInternal(err)
	}

	return c.Blob(http.StatusOK, "application/json", sbom.Data)
}

func (h *ComponentController) ListDocuments(c shared.Context) error {
	component, err := h.readComponent(c)
	if err != nil {
		return err
	}

	documents, err := h.documentRepository.GetByComponentID(component.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list documents").WithInternal(err)
	}

	return c.JSON(http.StatusOK, utils.Map(documents, transformer.DocumentToDTO))
}

func (h *ComponentController) CreateDocument(c shared.Context) error {
	component, err := h.readComponent(c)
	if err != nil {
		return err
	}

	var req dtos.DocumentCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "invalid payload").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	document := transformer.DocumentCreateRequestToModel(req, component)
	if err := h.documentRepository.Create(nil, &document); err != nil {
		return echo.NewHTTPError(500, "could not create document").WithInternal(err)
	}

	return c.JSON(http.StatusCreated, transformer.DocumentToDTO(document))
}
