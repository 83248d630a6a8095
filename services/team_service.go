// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/shared"
)

type TeamService struct {
	teamRepository shared.TeamRepository
	rbacProvider   shared.RBACProvider
}

func NewTeamService(teamRepository shared.TeamRepository, rbacProvider shared.RBACProvider) *TeamService {
	return &TeamService{
		teamRepository: teamRepository,
		rbacProvider:   rbacProvider,
	}
}

func (t *TeamService) CreateTeam(ctx shared.Context, team *models.Team) error {
	if team.Name == "" || team.Slug == "" {
		return echo.NewHTTPError(409, "teams with an empty name or an empty slug are not allowed").WithInternal(fmt.Errorf("teams with an empty name or an empty slug are not allowed"))
	}

	err := t.teamRepository.Create(nil, team)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return echo.NewHTTPError(409, "team with that name already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create team").WithInternal(err)
	}

	rbac := t.rbacProvider.GetDomainRBAC(team.ID.String())
	userID := shared.GetSession(ctx).GetUserID()
	if err = shared.BootstrapTeam(rbac, userID, shared.RoleOwner); err != nil {
		return echo.NewHTTPError(500, "could not bootstrap team roles").WithInternal(err)
	}
	ctx.Set("rbac", rbac)

	return nil
}

func (t *TeamService) ReadBySlug(slug string) (*models.Team, error) {
	if slug == "" {
		return nil, echo.NewHTTPError(400, "slug is required")
	}

	team, err := t.teamRepository.ReadBySlug(slug)
	return &team, err
}
