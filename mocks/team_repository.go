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

package mocks

import (
	"github.com/google/uuid"

	"github.com/rusko124/sbomify/database/models"
)

type TeamRepository struct {
	Repository[uuid.UUID, models.Team]
}

func NewTeamRepository(t testingT) *TeamRepository {
	m := &TeamRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *TeamRepository) ReadBySlug(slug string) (models.Team, error) {
	ret := _m.Called(slug)

	var r0 models.Team
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.Team)
	}
	return r0, ret.Error(1)
}
