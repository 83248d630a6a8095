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
	"gorm.io/gorm"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/shared"
)

type ReleaseRepository struct {
	Repository[uuid.UUID, models.Release]
}

func NewReleaseRepository(t testingT) *ReleaseRepository {
	m := &ReleaseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ReleaseRepository) GetByProductID(productID uuid.UUID) ([]models.Release, error) {
	ret := _m.Called(productID)

	var r0 []models.Release
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Release)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseRepository) GetByProductIDPaged(tx *gorm.DB, productID uuid.UUID, pageInfo shared.PageInfo, search string) (shared.Paged[models.Release], error) {
	ret := _m.Called(tx, productID, pageInfo, search)

	var r0 shared.Paged[models.Release]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(shared.Paged[models.Release])
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseRepository) ReadWithArtifacts(id uuid.UUID) (models.Release, error) {
	ret := _m.Called(id)

	var r0 models.Release
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.Release)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseRepository) ReadByProductIDAndName(productID uuid.UUID, name string) (models.Release, error) {
	ret := _m.Called(productID, name)

	var r0 models.Release
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.Release)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseRepository) ReadLatestRelease(productID uuid.UUID) (models.Release, error) {
	ret := _m.Called(productID)

	var r0 models.Release
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.Release)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseRepository) CreateArtifact(tx *gorm.DB, artifact *models.ReleaseArtifact) error {
	ret := _m.Called(tx, artifact)
	return ret.Error(0)
}

func (_m *ReleaseRepository) ReadArtifact(releaseID, artifactID uuid.UUID) (models.ReleaseArtifact, error) {
	ret := _m.Called(releaseID, artifactID)

	var r0 models.ReleaseArtifact
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.ReleaseArtifact)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseRepository) DeleteArtifact(tx *gorm.DB, id uuid.UUID) error {
	ret := _m.Called(tx, id)
	return ret.Error(0)
}

func (_m *ReleaseRepository) GetArtifacts(releaseID uuid.UUID) ([]models.ReleaseArtifact, error) {
	ret := _m.Called(releaseID)

	var r0 []models.ReleaseArtifact
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.ReleaseArtifact)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseRepository) HasSbomOfFormat(releaseID uuid.UUID, componentID uuid.UUID, format models.SbomFormat) (bool, error) {
	ret := _m.Called(releaseID, componentID, format)
	return ret.Bool(0), ret.Error(1)
}

func (_m *ReleaseRepository) GetSbomArtifactByComponentAndFormat(releaseID uuid.UUID, componentID uuid.UUID, format models.SbomFormat) (models.ReleaseArtifact, error) {
	ret := _m.Called(releaseID, componentID, format)

	var r0 models.ReleaseArtifact
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.ReleaseArtifact)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseRepository) GetAvailableSboms(productID, releaseID uuid.UUID) ([]models.SBOM, error) {
	ret := _m.Called(productID, releaseID)

	var r0 []models.SBOM
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.SBOM)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseRepository) GetAvailableDocuments(productID, releaseID uuid.UUID) ([]models.Document, error) {
	ret := _m.Called(productID, releaseID)

	var r0 []models.Document
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Document)
	}
	return r0, ret.Error(1)
}
