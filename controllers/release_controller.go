package controllers

import (
	"fmt"
	"net/http"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/dtos"
	"github.com/rusko124/sbomify/services"
	"github.com/rusko124/sbomify/shared"
	"github.com/rusko124/sbomify/transformer"
	"github.com/rusko124/sbomify/utils"
)

type ReleaseController struct {
	service shared.ReleaseService
}

func NewReleaseController(service shared.ReleaseService) *ReleaseController {
	return &ReleaseController{service: service}
}

// releaseErrToHTTP maps the business errors of the release lifecycle to
// HTTP responses. Unknown errors become a 500.
func releaseErrToHTTP(err error, fallback string) error {
	var dupFormat *services.DuplicateSbomFormatError

	switch {
	case errors.Is(err, services.ErrReservedReleaseName),
		errors.Is(err, services.ErrReleaseNameTaken),
		errors.Is(err, services.ErrLatestReleaseImmutable),
		errors.Is(err, services.ErrLatestReleaseUndeletable),
		errors.Is(err, services.ErrExactlyOneArtifact),
		errors.Is(err, services.ErrArtifactAlreadyLinked):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	case errors.As(err, &dupFormat):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	case errors.Is(err, services.ErrCrossTeamArtifact):
		return echo.NewHTTPError(http.StatusForbidden, err.Error()).WithInternal(err)
	case errors.Is(err, services.ErrEmptyRelease):
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).WithInternal(err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found").WithInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, fallback).WithInternal(err)
	}
}

func (h *ReleaseController) List(c shared.Context) error {
	product := shared.GetProduct(c)

	// paged listing is opt-in, the plain listing returns everything
	if c.QueryParam("page") != "" {
		pageInfo := shared.GetPageInfo(c)
		search := c.QueryParam("search")

		paged, err := h.service.ListByProductPaged(product.ID, pageInfo, search)
		if err != nil {
			return releaseErrToHTTP(err, "could not list releases")
		}

		return c.JSON(http.StatusOK, paged.Map(func(r models.Release) any {
			return transformer.ReleaseToDTO(r)
		}))
	}

	releases, err := h.service.ListByProduct(product.ID)
	if err != nil {
		return releaseErrToHTTP(err, "could not list releases")
	}

	return c.JSON(http.StatusOK, utils.Map(releases, transformer.ReleaseToDTO))
}

func (h *ReleaseController) Read(c shared.Context) error {
	release := shared.GetRelease(c)

	// reload with artifacts - the middleware only resolves the bare release
	rel, err := h.service.Read(release.ID)
	if err != nil {
		return echo.NewHTTPError(404, "release not found").WithInternal(err)
	}

	return c.JSON(http.StatusOK, transformer.ReleaseToDTO(rel))
}

func (h *ReleaseController) Create(c shared.Context) error {
	var req dtos.ReleaseCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "invalid payload").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	product := shared.GetProduct(c)
	model := transformer.ReleaseCreateRequestToModel(req, product.ID)

	if err := h.service.Create(&model); err != nil {
		return releaseErrToHTTP(err, "could not create release")
	}

	return c.JSON(http.StatusCreated, transformer.ReleaseToDTO(model))
}

func (h *ReleaseController) Update(c shared.Context) error {
	var req dtos.ReleaseUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "invalid payload").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	release := shared.GetRelease(c)

	if err := h.service.Update(&release, req); err != nil {
		return releaseErrToHTTP(err, "could not update release")
	}

	return c.JSON(http.StatusOK, transformer.ReleaseToDTO(release))
}

func (h *ReleaseController) Delete(c shared.Context) error {
	release := shared.GetRelease(c)

	if err := h.service.Delete(release); err != nil {
		return releaseErrToHTTP(err, "could not delete release")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ReleaseController) AttachArtifact(c shared.Context) error {
	var req dtos.ReleaseArtifactCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "invalid payload").WithInternal(err)
	}

	release := shared.GetRelease(c)

	artifact, err := h.service.AttachArtifact(release, req.SbomID, req.DocumentID)
	if err != nil {
		return releaseErrToHTTP(err, "could not attach artifact")
	}

	return c.JSON(http.StatusCreated, transformer.ReleaseArtifactToDTO(artifact))
}

func (h *ReleaseController) DetachArtifact(c shared.Context) error {
	artifactIDParam := shared.GetParam(c, "artifactID")
	artifactID, err := uuid.Parse(artifactIDParam)
	if err != nil {
		return echo.NewHTTPError(400, "invalid artifact id")
	}

	release := shared.GetRelease(c)

	if err := h.service.DetachArtifact(release, artifactID); err != nil {
		return releaseErrToHTTP(err, "could not detach artifact")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ReleaseController) AvailableArtifacts(c shared.Context) error {
	release := shared.GetRelease(c)

	sboms, documents, err := h.service.AvailableArtifacts(release)
	if err != nil {
		return releaseErrToHTTP(err, "could not list available artifacts")
	}

	dto := dtos.AvailableArtifactsDTO{
		Sboms:     utils.Map(sboms, transformer.SbomToDTO),
		Documents: utils.Map(documents, transformer.DocumentToDTO),
	}

	return c.JSON(http.StatusOK, dto)
}

// DownloadSbom streams the consolidated cyclonedx sbom of the release.
func (h *ReleaseController) DownloadSbom(c shared.Context) error {
	release := shared.GetRelease(c)

	bom, err := h.service.GenerateReleaseSbom(release)
	if err != nil {
		return releaseErrToHTTP(err, "Error generating release SBOM")
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/json")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", release.Name+".cdx.json"))
	return cdx.NewBOMEncoder(c.Response().Writer, cdx.BOMFileFormatJSON).Encode(bom)
}
