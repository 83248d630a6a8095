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

package normalize

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

const (
	FormatCycloneDX = "cyclonedx"
	FormatSPDX      = "spdx"
)

// SbomInfo is the metadata extracted from a raw sbom document.
type SbomInfo struct {
	Format        string
	FormatVersion string
	Name          string
	Version       string
}

type sbomProbe struct {
	// cyclonedx
	BOMFormat   string `json:"bomFormat"`
	SpecVersion string `json:"specVersion"`
	Metadata    struct {
		Component struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"component"`
	} `json:"metadata"`

	// spdx
	SpdxVersion string `json:"spdxVersion"`
	Name        string `json:"name"`
}

// InspectSbom sniffs the format of a raw json sbom document and extracts its
// primary component name and version.
func InspectSbom(raw []byte) (SbomInfo, error) {
	var probe sbomProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return SbomInfo{}, errors.Wrap(err, "could not parse sbom document")
	}

	switch {
	case probe.BOMFormat == "CycloneDX":
		return SbomInfo{
			Format:        FormatCycloneDX,
			FormatVersion: probe.SpecVersion,
			Name:          probe.Metadata.Component.Name,
			Version:       probe.Metadata.Component.Version,
		}, nil
	case probe.SpdxVersion != "":
		return SbomInfo{
			Format:        FormatSPDX,
			FormatVersion: strings.TrimPrefix(probe.SpdxVersion, "SPDX-"),
			Name:          probe.Name,
		}, nil
	default:
		return SbomInfo{}, errors.New("unknown sbom format: expected a cyclonedx or spdx json document")
	}
}
