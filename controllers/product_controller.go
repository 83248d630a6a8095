package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rusko124/sbomify/dtos"
	"github.com/rusko124/sbomify/shared"
	"github.com/rusko124/sbomify/transformer"
	"github.com/rusko124/sbomify/utils"
)

type ProductController struct {
	productRepository shared.ProductRepository
	releaseService    shared.ReleaseService
}

func NewProductController(productRepository shared.ProductRepository, releaseService shared.ReleaseService) *ProductController {
	return &ProductController{productRepository: productRepository, releaseService: releaseService}
}

func (h *ProductController) List(c shared.Context) error {
	team := shared.GetTeam(c)

	products, err := h.productRepository.GetByTeamID(team.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list products").WithInternal(err)
	}

	return c.JSON(http.StatusOK, utils.Map(products, transformer.ProductToDTO))
}

func (h *ProductController) Read(c shared.Context) error {
	product := shared.GetProduct(c)

	// reading a product materializes its latest release
	if _, err := h.releaseService.EnsureLatestRelease(product.ID); err != nil {
		return echo.NewHTTPError(500, "could not ensure latest release").WithInternal(err)
	}

	return c.JSON(http.StatusOK, transformer.ProductToDTO(product))
}

func (h *ProductController) Create(c shared.Context) error {
	var req dtos.ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "invalid payload").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	team := shared.GetTeam(c)
	model := transformer.ProductCreateRequestToModel(req, team)

	if err := h.productRepository.Create(nil, &model); err != nil {
		return echo.NewHTTPError(500, "could not create product").WithInternal(err)
	}

	return c.JSON(http.StatusCreated, transformer.ProductToDTO(model))
}

func (h *ProductController) Update(c shared.Context) error {
	var req dtos.ProductPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "invalid payload").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	product := shared.GetProduct(c)

	if updated := transformer.ApplyProductPatchRequestToModel(req, &product); updated {
		if err := h.productRepository.Save(nil, &product); err != nil {
			return echo.NewHTTPError(500, "could not update product").WithInternal(err)
		}
	}

	return c.JSON(http.StatusOK, transformer.ProductToDTO(product))
}

func (h *ProductController) Delete(c shared.Context) error {
	product := shared.GetProduct(c)

	// releases and artifact links cascade on the database level
	if err := h.productRepository.Delete(nil, product.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "product not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not delete product").WithInternal(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Components lists the components reachable from the product hierarchy.
func (h *ProductController) Components(c shared.Context) error {
	product := shared.GetProduct(c)

	components, err := h.productRepository.GetProductComponents(product.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list product components").WithInternal(err)
	}

	return c.JSON(http.StatusOK, utils.Map(components, transformer.ComponentToDTO))
}
