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

type TeamRouter struct {
	*echo.Group
}

func NewTeamRouter(
	sessionGroup SessionRouter,
	teamController *controllers.TeamController,
	productController *controllers.ProductController,
	componentController *controllers.ComponentController,
	teamService shared.TeamService,
	casbinRBACProvider shared.RBACProvider,
) TeamRouter {
	/**
	Team router
	*/
	teamsRouter := sessionGroup.Group.Group("/teams", middlewares.SessionRequired())
	teamsRouter.GET("/", teamController.List)
	teamsRouter.POST("/", teamController.Create, middlewares.NeededScope([]string{"manage"}))

	/**
	Team scoped router
	All routes below this line are scoped to a specific team.
	*/
	teamRouter := teamsRouter.Group("/:teamSlug",
		middlewares.MultiTeamMiddlewareRBAC(casbinRBACProvider, teamService),
		middlewares.TeamAccessControlMiddleware(shared.ObjectTeam, shared.ActionRead))

	teamRouter.GET("/", teamController.Read)

	teamRouter.GET("/products/", productController.List)
	teamRouter.POST("/products/", productController.Create,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.TeamAccessControlMiddleware(shared.ObjectProduct, shared.ActionCreate))

	teamRouter.GET("/components/", componentController.List)
	teamRouter.POST("/components/", componentController.Create,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.TeamAccessControlMiddleware(shared.ObjectComponent, shared.ActionCreate))

	/**
	Component scoped router - components own the uploaded sboms and documents.
	*/
	componentRouter := teamRouter.Group("/components/:componentSlug")
	componentUpdateRequired := componentRouter.Group("",
		middlewares.NeededScope([]string{"manage"}),
		middlewares.TeamAccessControlMiddleware(shared.ObjectComponent, shared.ActionUpdate))

	componentRouter.GET("/sboms/", componentController.ListSboms)
	componentRouter.GET("/sboms/:sbomID/download/", componentController.DownloadSbom)
	componentUpdateRequired.POST("/sboms/", componentController.UploadSbom)

	componentRouter.GET("/documents/", componentController.ListDocuments)
	componentUpdateRequired.POST("/documents/", componentController.CreateDocument)

	return TeamRouter{Group: teamRouter}
}
