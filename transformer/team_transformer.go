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

package transformer

import (
	"github.com/gosimple/slug"
	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/dtos"
)

func TeamToDTO(t models.Team) dtos.TeamDTO {
	return dtos.TeamDTO{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		Name:      t.Name,
		Slug:      t.Slug,
	}
}

func TeamCreateRequestToModel(c dtos.TeamCreateRequest) models.Team {
	return models.Team{
		Name: c.Name,
		Slug: slug.Make(c.Name),
	}
}

func ComponentToDTO(c models.Component) dtos.ComponentDTO {
	return dtos.ComponentDTO{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Name:      c.Name,
		Slug:      c.Slug,
		TeamID:    c.TeamID,
	}
}

func ComponentFromName(name string, team models.Team) models.Component {
	return models.Component{
		Name:   name,
		Slug:   slug.Make(name),
		TeamID: team.ID,
	}
}

func AccessTokenToDTO(t models.AccessToken) dtos.AccessTokenDTO {
	return dtos.AccessTokenDTO{
		ID:          t.ID,
		CreatedAt:   t.CreatedAt,
		Description: t.Description,
		Scopes:      t.Scopes,
		LastUsedAt:  t.LastUsedAt,
	}
}
