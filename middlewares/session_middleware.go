// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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

package middlewares

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rusko124/sbomify/accesscontrol"
	"github.com/rusko124/sbomify/shared"
)

func extractToken(ctx echo.Context) string {
	authHeader := ctx.Request().Header.Get("Authorization")
	if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	// the cli sends the token in a dedicated header
	return ctx.Request().Header.Get("X-Access-Token")
}

// SessionMiddleware authenticates the request using a personal access token.
// An unauthenticated request still passes - downstream middlewares decide if
// the route actually requires a session.
func SessionMiddleware(accessTokenRepository shared.AccessTokenRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := extractToken(ctx)
			if token == "" {
				ctx.Set("session", accesscontrol.NoSession)
				return next(ctx)
			}

			accessToken, err := accessTokenRepository.ReadByToken(token)
			if err != nil {
				return echo.NewHTTPError(401, "token provided but not found in database").WithInternal(err)
			}

			go func() {
				if err := accessTokenRepository.MarkAsLastUsedNow(accessToken.ID); err != nil {
					slog.Error("could not update last used timestamp", "tokenID", accessToken.ID, "err", err)
				}
			}()

			ctx.Set("session", accesscontrol.NewSession(accessToken.GetUserID(), accessToken.GetScopes()))
			return next(ctx)
		}
	}
}

// SessionRequired rejects requests which did not authenticate.
func SessionRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session := shared.GetSession(ctx)
			if session.GetUserID() == "" {
				return echo.NewHTTPError(401, "no session")
			}
			return next(ctx)
		}
	}
}
