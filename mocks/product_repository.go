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

type ProductRepository struct {
	Repository[uuid.UUID, models.Product]
}

func NewProductRepository(t testingT) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ProductRepository) ReadBySlug(teamID uuid.UUID, slug string) (models.Product, error) {
	ret := _m.Called(teamID, slug)

	var r0 models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.Product)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetByTeamID(teamID uuid.UUID) ([]models.Product, error) {
	ret := _m.Called(teamID)

	var r0 []models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Product)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetProductComponents(productID uuid.UUID) ([]models.Component, error) {
	ret := _m.Called(productID)

	var r0 []models.Component
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Component)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetByComponentID(componentID uuid.UUID) ([]models.Product, error) {
	ret := _m.Called(componentID)

	var r0 []models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Product)
	}
	return r0, ret.Error(1)
}
