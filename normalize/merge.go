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
	"fmt"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
)

// componentKey identifies a component across boms. The purl wins when
// present; name@version is a weaker fallback for sboms without purls.
func componentKey(c cdx.Component) string {
	if c.PackageURL != "" {
		return c.PackageURL
	}
	return fmt.Sprintf("%s@%s", c.Name, c.Version)
}

// MergeBoms flattens multiple cyclonedx boms into a single bom describing a
// release. Components are deduplicated; the metadata components of the
// inputs become direct dependencies of the release root.
func MergeBoms(productName, releaseName string, boms []*cdx.BOM) *cdx.BOM {
	rootRef := fmt.Sprintf("%s@%s", productName, releaseName)

	merged := cdx.NewBOM()
	merged.SerialNumber = "urn:uuid:" + uuid.NewString()
	merged.Metadata = &cdx.Metadata{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Component: &cdx.Component{
			BOMRef:  rootRef,
			Type:    cdx.ComponentTypeApplication,
			Name:    productName,
			Version: releaseName,
		},
	}

	seen := map[string]struct{}{}
	var components []cdx.Component
	var rootDeps []string

	addComponent := func(c cdx.Component) {
		key := componentKey(c)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		if c.BOMRef == "" {
			c.BOMRef = key
		}
		components = append(components, c)
	}

	var dependencies []cdx.Dependency
	depSeen := map[string]struct{}{}

	for _, bom := range boms {
		// the described component of each input becomes a direct
		// dependency of the release
		if bom.Metadata != nil && bom.Metadata.Component != nil {
			c := *bom.Metadata.Component
			key := componentKey(c)
			addComponent(c)
			rootDeps = append(rootDeps, key)
		}

		if bom.Components != nil {
			for _, c := range *bom.Components {
				addComponent(c)
			}
		}

		if bom.Dependencies != nil {
			for _, d := range *bom.Dependencies {
				if _, ok := depSeen[d.Ref]; ok {
					continue
				}
				depSeen[d.Ref] = struct{}{}
				dependencies = append(dependencies, d)
			}
		}
	}

	merged.Components = &components
	dependencies = append(dependencies, cdx.Dependency{
		Ref:          rootRef,
		Dependencies: &rootDeps,
	})
	merged.Dependencies = &dependencies

	return merged
}
