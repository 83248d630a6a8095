package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rusko124/sbomify/dtos"
	"github.com/rusko124/sbomify/shared"
	"github.com/rusko124/sbomify/transformer"
	"github.com/rusko124/sbomify/utils"
)

type TeamController struct {
	teamService    shared.TeamService
	teamRepository shared.TeamRepository
	rbacProvider   shared.RBACProvider
}

func NewTeamController(teamService shared.TeamService, teamRepository shared.TeamRepository, rbacProvider shared.RBACProvider) *TeamController {
	return &TeamController{
		teamService:    teamService,
		teamRepository: teamRepository,
		rbacProvider:   rbacProvider,
	}
}

func (h *TeamController) Create(c shared.Context) error {
	var req dtos.TeamCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "invalid payload").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	team := transformer.TeamCreateRequestToModel(req)
	if err := h.teamService.CreateTeam(c, &team); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, transformer.TeamToDTO(team))
}

func (h *TeamController) Read(c shared.Context) error {
	team := shared.GetTeam(c)
	return c.JSON(http.StatusOK, transformer.TeamToDTO(team))
}

// List returns the teams the session user is a member of.
func (h *TeamController) List(c shared.Context) error {
	userID := shared.GetSession(c).GetUserID()

	domains, err := h.rbacProvider.DomainsOfUser(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not resolve team memberships").WithInternal(err)
	}

	ids := make([]uuid.UUID, 0, len(domains))
	for _, d := range domains {
		id, err := uuid.Parse(d)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	teams, err := h.teamRepository.List(ids)
	if err != nil {
		return echo.NewHTTPError(500, "could not list teams").WithInternal(err)
	}

	return c.JSON(http.StatusOK, utils.Map(teams, transformer.TeamToDTO))
}
