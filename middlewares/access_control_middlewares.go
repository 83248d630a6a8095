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

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/shared"
	"github.com/rusko124/sbomify/utils"
)

// MultiTeamMiddlewareRBAC resolves the :teamSlug url parameter, checks that
// the session user is a member of the team and attaches the team scoped rbac
// to the request context.
func MultiTeamMiddlewareRBAC(rbacProvider shared.RBACProvider, teamService shared.TeamService) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			teamSlug, err := shared.GetURLDecodedParam(ctx, "teamSlug")
			if err != nil || teamSlug == "" {
				return echo.NewHTTPError(400, "invalid team slug")
			}

			session := shared.GetSession(ctx)
			if session.GetUserID() == "" {
				return echo.NewHTTPError(401, "no session")
			}

			team, err := teamService.ReadBySlug(teamSlug)
			if err != nil {
				return echo.NewHTTPError(404, "team not found").WithInternal(err)
			}

			domainRBAC := rbacProvider.GetDomainRBAC(team.ID.String())
			allowed, err := domainRBAC.HasAccess(session.GetUserID())
			if err != nil {
				return echo.NewHTTPError(500, "could not determine team access").WithInternal(err)
			}
			if !allowed {
				slog.Warn("access denied in MultiTeamMiddlewareRBAC", "user", session.GetUserID(), "team", teamSlug)
				return echo.NewHTTPError(403, "you are not a member of this team")
			}

			shared.SetTeam(ctx, *team)
			shared.SetRBAC(ctx, domainRBAC)
			return next(ctx)
		}
	}
}

// TeamAccessControlMiddleware checks a team level permission.
func TeamAccessControlMiddleware(obj shared.Object, act shared.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rbac := shared.GetRBAC(ctx)
			user := shared.GetSession(ctx).GetUserID()

			allowed, err := rbac.IsAllowed(user, obj, act)
			if err != nil {
				return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
			}
			if !allowed {
				slog.Warn("access denied in TeamAccessControlMiddleware", "user", user, "object", obj, "action", act)
				return echo.NewHTTPError(403, "you are not allowed to perform this action")
			}

			return next(ctx)
		}
	}
}

// ProductAccessControlFactory returns an rbac middleware which resolves the
// :productID url parameter, verifies it belongs to the current team and
// checks the product level permission.
func ProductAccessControlFactory(productRepository shared.ProductRepository) shared.RBACMiddleware {
	return func(obj shared.Object, act shared.Action) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(ctx shared.Context) error {
				rbac := shared.GetRBAC(ctx)
				user := shared.GetSession(ctx).GetUserID()

				productID, err := uuid.Parse(shared.GetParam(ctx, "productID"))
				if err != nil {
					return echo.NewHTTPError(400, "invalid product id")
				}

				var product models.Product
				if p, ok := ctx.Get("product").(models.Product); ok {
					product = p
				} else {
					product, err = productRepository.Read(productID)
					if err != nil || product.TeamID != shared.GetTeam(ctx).ID {
						return echo.NewHTTPError(404, "could not find product").WithInternal(err)
					}
				}

				allowed, err := rbac.IsAllowedInProduct(&product, user, obj, act)
				if err != nil {
					return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
				}
				if !allowed {
					slog.Warn("access denied in ProductAccess", "user", user, "object", obj, "action", act, "productID", productID)
					return echo.NewHTTPError(403, "you are not allowed to perform this action")
				}

				shared.SetProduct(ctx, product)
				return next(ctx)
			}
		}
	}
}

// NeededScope verifies that the access token carries all required scopes.
func NeededScope(neededScopes []string) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c shared.Context) error {
			userScopes := shared.GetSession(c).GetScopes()

			ok := utils.ContainsAll(userScopes, neededScopes)
			if !ok {
				slog.Error("user does not have the required scopes", "neededScopes", neededScopes, "userScopes", userScopes)
				return echo.NewHTTPError(403, fmt.Sprintf("your personal access token does not have the required scope, needed scopes: %s", strings.Join(neededScopes, ", ")))
			}

			return next(c)
		}
	}
}
