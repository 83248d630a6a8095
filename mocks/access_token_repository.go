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

type AccessTokenRepository struct {
	Repository[uuid.UUID, models.AccessToken]
}

func NewAccessTokenRepository(t testingT) *AccessTokenRepository {
	m := &AccessTokenRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AccessTokenRepository) ReadByToken(token string) (models.AccessToken, error) {
	ret := _m.Called(token)

	var r0 models.AccessToken
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.AccessToken)
	}
	return r0, ret.Error(1)
}

func (_m *AccessTokenRepository) MarkAsLastUsedNow(id uuid.UUID) error {
	ret := _m.Called(id)
	return ret.Error(0)
}

func (_m *AccessTokenRepository) ListByUserID(userID string) ([]models.AccessToken, error) {
	ret := _m.Called(userID)

	var r0 []models.AccessToken
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.AccessToken)
	}
	return r0, ret.Error(1)
}
