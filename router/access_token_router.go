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
)

type AccessTokenRouter struct {
	*echo.Group
}

func NewAccessTokenRouter(
	sessionGroup SessionRouter,
	accessTokenController *controllers.AccessTokenController,
) AccessTokenRouter {
	/**
	Access token router
	This does not happen in a team scope. We only need to make sure that the
	user is logged in.
	*/
	tokenRouter := sessionGroup.Group.Group("/access-tokens", middlewares.SessionRequired(), middlewares.NeededScope([]string{"manage"}))
	tokenRouter.GET("/", accessTokenController.List)
	tokenRouter.POST("/", accessTokenController.Create)
	tokenRouter.DELETE("/:tokenID/", accessTokenController.Delete)

	return AccessTokenRouter{Group: tokenRouter}
}
