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

func ProductToDTO(p models.Product) dtos.ProductDTO {
	return dtos.ProductDTO{
		ID:          p.ID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		TeamID:      p.TeamID,
	}
}

func ProductCreateRequestToModel(c dtos.ProductCreateRequest, team models.Team) models.Product {
	return models.Product{
		Name:        c.Name,
		Slug:        slug.Make(c.Name),
		Description: c.Description,
		TeamID:      team.ID,
	}
}

func ApplyProductPatchRequestToModel(p dtos.ProductPatchRequest, product *models.Product) bool {
	updated := false

	if p.Name != nil && *p.Name != product.Name {
		updated = true
		product.Name = *p.Name
		product.Slug = slug.Make(*p.Name)
	}

	if p.Description != nil && *p.Description != product.Description {
		updated = true
		product.Description = *p.Description
	}

	return updated
}
