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

package services

import (
	"fmt"

	"github.com/pkg/errors"
)

// Business errors of the release lifecycle. Controllers translate them into
// HTTP responses; the messages are part of the public API contract.
var (
	ErrReservedReleaseName = errors.New("Cannot create release with name 'latest' - this name is reserved")
	ErrReleaseNameTaken    = errors.New("A release with this name already exists for this product")

	ErrLatestReleaseImmutable   = errors.New("The 'latest' release is automatically managed and cannot be modified")
	ErrLatestReleaseUndeletable = errors.New("The 'latest' release is automatically managed and cannot be deleted")

	ErrExactlyOneArtifact    = errors.New("Exactly one of sbomId or documentId must be provided")
	ErrArtifactAlreadyLinked = errors.New("The artifact is already linked to this release")
	ErrCrossTeamArtifact     = errors.New("The artifact belongs to a different team")

	ErrEmptyRelease = errors.New("Error generating release SBOM: the release does not contain any SBOM artifacts")

	ErrInvalidSbom = errors.New("The uploaded file is not a valid CycloneDX or SPDX json document")
)

// DuplicateSbomFormatError is returned when a release already links an sbom
// of the same format for the same component.
type DuplicateSbomFormatError struct {
	ComponentName string
	Format        string
}

func (e *DuplicateSbomFormatError) Error() string {
	return fmt.Sprintf("This release already contains an SBOM of format %s for component %s", e.Format, e.ComponentName)
}
