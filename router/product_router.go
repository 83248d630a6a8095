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

type ProductRouter struct {
	*echo.Group
}

func NewProductRouter(
	teamRouter TeamRouter,
	productController *controllers.ProductController,
	productRepository shared.ProductRepository,
) ProductRouter {
	productScopedRBAC := middlewares.ProductAccessControlFactory(productRepository)

	/**
	Product scoped router
	All routes below this line are scoped to a specific product of the team.
	*/
	productRouter := teamRouter.Group.Group("/products/:productID",
		productScopedRBAC(shared.ObjectProduct, shared.ActionRead))

	productRouter.GET("/", productController.Read)
	productRouter.GET("/components/", productController.Components)

	productRouter.PATCH("/", productController.Update,
		middlewares.NeededScope([]string{"manage"}),
		productScopedRBAC(shared.ObjectProduct, shared.ActionUpdate))
	productRouter.DELETE("/", productController.Delete,
		middlewares.NeededScope([]string{"manage"}),
		productScopedRBAC(shared.ObjectProduct, shared.ActionDelete))

	return ProductRouter{Group: productRouter}
}
