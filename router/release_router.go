// Copyright (C) 2024 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rusko124/sbomify/controllers"
	"github.com/rusko124/sbomify/middlewares"
	"github.com/rusko124/sbomify/shared"
)

type ReleaseRouter struct {
	*echo.Group
}

func NewReleaseRouter(
	productRouter ProductRouter,
	releaseController *controllers.ReleaseController,
	releaseRepository shared.ReleaseRepository,
	productRepository shared.ProductRepository,
) ReleaseRouter {
	productScopedRBAC := middlewares.ProductAccessControlFactory(productRepository)

	releasesRouter := productRouter.Group.Group("/releases")
	releasesRouter.GET("/", releaseController.List)
	releasesRouter.POST("/", releaseController.Create,
		middlewares.NeededScope([]string{"manage"}),
		productScopedRBAC(shared.ObjectRelease, shared.ActionCreate))

	/**
	Release scoped router
	The release middleware verifies the release belongs to the product.
	*/
	releaseRouter := releasesRouter.Group("/:releaseID",
		middlewares.ReleaseMiddleware(releaseRepository))

	releaseMutation := releaseRouter.Group("", middlewares.NeededScope([]string{"manage"}))

	releaseRouter.GET("/", releaseController.Read)
	releaseRouter.GET("/available-artifacts/", releaseController.AvailableArtifacts)
	releaseRouter.GET("/download/", releaseController.DownloadSbom)

	releaseMutation.PUT("/", releaseController.Update,
		productScopedRBAC(shared.ObjectRelease, shared.ActionUpdate))
	releaseMutation.PATCH("/", releaseController.Update,
		productScopedRBAC(shared.ObjectRelease, shared.ActionUpdate))
	releaseMutation.DELETE("/", releaseController.Delete,
		productScopedRBAC(shared.ObjectRelease, shared.ActionDelete))

	releaseMutation.POST("/artifacts/", releaseController.AttachArtifact,
		productScopedRBAC(shared.ObjectRelease, shared.ActionUpdate))
	releaseMutation.DELETE("/artifacts/:artifactID/", releaseController.DetachArtifact,
		productScopedRBAC(shared.ObjectRelease, shared.ActionUpdate))

	return ReleaseRouter{Group: releaseRouter}
}
