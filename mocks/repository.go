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

// Package mocks holds hand-kept testify mocks for the shared interfaces.
// They follow the mockery calling convention (constructor taking the test,
// expectations via .On) so tests read the same as generated ones would.
package mocks

import (
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/rusko124/sbomify/utils"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// Repository implements the generic utils.Repository contract and is embedded
// by the entity specific repository mocks.
type Repository[ID any, T utils.Tabler] struct {
	mock.Mock
}

func (_m *Repository[ID, T]) All() ([]T, error) {
	ret := _m.Called()

	var r0 []T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]T)
	}
	return r0, ret.Error(1)
}

func (_m *Repository[ID, T]) Create(tx *gorm.DB, t *T) error {
	ret := _m.Called(tx, t)
	return ret.Error(0)
}

func (_m *Repository[ID, T]) CreateBatch(tx *gorm.DB, ts []T) error {
	ret := _m.Called(tx, ts)
	return ret.Error(0)
}

func (_m *Repository[ID, T]) Read(id ID) (T, error) {
	ret := _m.Called(id)

	var r0 T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(T)
	}
	return r0, ret.Error(1)
}

func (_m *Repository[ID, T]) Delete(tx *gorm.DB, id ID) error {
	ret := _m.Called(tx, id)
	return ret.Error(0)
}

func (_m *Repository[ID, T]) List(ids []ID) ([]T, error) {
	ret := _m.Called(ids)

	var r0 []T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]T)
	}
	return r0, ret.Error(1)
}

func (_m *Repository[ID, T]) Transaction(f func(tx *gorm.DB) error) error {
	ret := _m.Called(f)
	return ret.Error(0)
}

func (_m *Repository[ID, T]) Begin() *gorm.DB {
	ret := _m.Called()

	if db, ok := ret.Get(0).(*gorm.DB); ok {
		return db
	}
	return nil
}

func (_m *Repository[ID, T]) GetDB(tx *gorm.DB) *gorm.DB {
	ret := _m.Called(tx)

	if db, ok := ret.Get(0).(*gorm.DB); ok {
		return db
	}
	return nil
}

func (_m *Repository[ID, T]) Save(tx *gorm.DB, t *T) error {
	ret := _m.Called(tx, t)
	return ret.Error(0)
}

func (_m *Repository[ID, T]) SaveBatch(tx *gorm.DB, ts []T) error {
	ret := _m.Called(tx, ts)
	return ret.Error(0)
}
