// Copyright (C) 2025 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package middlewares

// middlewares which fetch data referenced by url parameters and attach it to
// the request context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rusko124/sbomify/shared"
)

// ReleaseMiddleware resolves the :releaseID url parameter and verifies the
// release belongs to the product of the current request.
func ReleaseMiddleware(repository shared.ReleaseRepository) func(next echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			releaseID, err := uuid.Parse(shared.GetParam(ctx, "releaseID"))
			if err != nil {
				return echo.NewHTTPError(400, "invalid release id")
			}

			release, err := repository.Read(releaseID)
			if err != nil || release.ProductID != shared.GetProduct(ctx).ID {
				return echo.NewHTTPError(404, "could not find release").WithInternal(err)
			}

			shared.SetRelease(ctx, release)
			return next(ctx)
		}
	}
}
