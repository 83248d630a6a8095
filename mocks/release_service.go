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
	"github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/dtos"
	"github.com/rusko124/sbomify/shared"
)

type ReleaseService struct {
	mock.Mock
}

func NewReleaseService(t testingT) *ReleaseService {
	m := &ReleaseService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ReleaseService) ListByProduct(productID uuid.UUID) ([]models.Release, error) {
	ret := _m.Called(productID)

	var r0 []models.Release
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Release)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseService) ListByProductPaged(productID uuid.UUID, pageInfo shared.PageInfo, search string) (shared.Paged[models.Release], error) {
	ret := _m.Called(productID, pageInfo, search)

	var r0 shared.Paged[models.Release]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(shared.Paged[models.Release])
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseService) EnsureLatestRelease(productID uuid.UUID) (models.Release, error) {
	ret := _m.Called(productID)

	var r0 models.Release
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.Release)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseService) Read(id uuid.UUID) (models.Release, error) {
	ret := _m.Called(id)

	var r0 models.Release
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.Release)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseService) Create(release *models.Release) error {
	ret := _m.Called(release)
	return ret.Error(0)
}

func (_m *ReleaseService) Update(release *models.Release, req dtos.ReleaseUpdateRequest) error {
	ret := _m.Called(release, req)
	return ret.Error(0)
}

func (_m *ReleaseService) Delete(release models.Release) error {
	ret := _m.Called(release)
	return ret.Error(0)
}

func (_m *ReleaseService) AttachArtifact(release models.Release, sbomID, documentID *uuid.UUID) (models.ReleaseArtifact, error) {
	ret := _m.Called(release, sbomID, documentID)

	var r0 models.ReleaseArtifact
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.ReleaseArtifact)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseService) DetachArtifact(release models.Release, artifactID uuid.UUID) error {
	ret := _m.Called(release, artifactID)
	return ret.Error(0)
}

func (_m *ReleaseService) AvailableArtifacts(release models.Release) ([]models.SBOM, []models.Document, error) {
	ret := _m.Called(release)

	var r0 []models.SBOM
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.SBOM)
	}
	var r1 []models.Document
	if ret.Get(1) != nil {
		r1 = ret.Get(1).([]models.Document)
	}
	return r0, r1, ret.Error(2)
}

func (_m *ReleaseService) GenerateReleaseSbom(release models.Release) (*cyclonedx.BOM, error) {
	ret := _m.Called(release)

	var r0 *cyclonedx.BOM
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*cyclonedx.BOM)
	}
	return r0, ret.Error(1)
}

func (_m *ReleaseService) SyncSbomToLatestReleases(sbom models.SBOM) error {
	ret := _m.Called(sbom)
	return ret.Error(0)
}
