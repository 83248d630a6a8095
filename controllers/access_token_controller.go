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

package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/dtos"
	"github.com/rusko124/sbomify/shared"
	"github.com/rusko124/sbomify/transformer"
	"github.com/rusko124/sbomify/utils"
)

type AccessTokenController struct {
	accessTokenRepository shared.AccessTokenRepository
}

func NewAccessTokenController(accessTokenRepository shared.AccessTokenRepository) *AccessTokenController {
	return &AccessTokenController{accessTokenRepository: accessTokenRepository}
}

func (p *AccessTokenController) Create(c shared.Context) error {
	session := shared.GetSession(c)
	userID := session.GetUserID()

	var req dtos.AccessTokenCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	// 32 bytes of entropy, hex encoded. only the hash is stored.
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return echo.NewHTTPError(500, "could not generate token").WithInternal(err)
	}
	token := hex.EncodeToString(raw)

	model := models.AccessToken{
		UserID:      uuid.MustParse(userID),
		Description: req.Description,
		Scopes:      req.Scopes,
		TokenHash:   models.HashToken(token),
	}

	if err := p.accessTokenRepository.Create(nil, &model); err != nil {
		return echo.NewHTTPError(500, "could not create access token").WithInternal(err)
	}

	return c.JSON(201, dtos.AccessTokenCreatedDTO{
		AccessTokenDTO: transformer.AccessTokenToDTO(model),
		Token:          token,
	})
}

func (p *AccessTokenController) Delete(c shared.Context) error {
	tokenIDParam := shared.GetParam(c, "tokenID")
	tokenID, err := uuid.Parse(tokenIDParam)
	if err != nil {
		return echo.NewHTTPError(400, "invalid token id")
	}

	token, err := p.accessTokenRepository.Read(tokenID)
	if err != nil {
		return echo.NewHTTPError(404, "could not read access token").WithInternal(err)
	}
	// only the owner may revoke a token
	if token.UserID.String() != shared.GetSession(c).GetUserID() {
		return echo.NewHTTPError(403, "not allowed to delete this token")
	}

	if err := p.accessTokenRepository.Delete(nil, tokenID); err != nil {
		return echo.NewHTTPError(500, "could not delete access token").WithInternal(err)
	}
	return c.NoContent(200)
}

func (p *AccessTokenController) List(c shared.Context) error {
	userID := shared.GetSession(c).GetUserID()

	tokens, err := p.accessTokenRepository.ListByUserID(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list access tokens").WithInternal(err)
	}

	return c.JSON(200, utils.Map(tokens, transformer.AccessTokenToDTO))
}
