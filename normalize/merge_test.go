package normalize

import (
	"testing"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/stretchr/testify/assert"
)

func bomWithComponents(rootName string, components ...cdx.Component) *cdx.BOM {
	bom := cdx.NewBOM()
	bom.Metadata = &cdx.Metadata{
		Component: &cdx.Component{
			Type:    cdx.ComponentTypeApplication,
			Name:    rootName,
			Version: "1.0.0",
		},
	}
	bom.Components = &components
	return bom
}

func TestMergeBoms(t *testing.T) {
	t.Run("should describe the release as the root component", func(t *testing.T) {
		merged := MergeBoms("shop", "v1.0.0", []*cdx.BOM{bomWithComponents("backend")})

		assert.Equal(t, "shop", merged.Metadata.Component.Name)
		assert.Equal(t, "v1.0.0", merged.Metadata.Component.Version)
		assert.Equal(t, cdx.ComponentTypeApplication, merged.Metadata.Component.Type)
		assert.NotEmpty(t, merged.SerialNumber)
	})

	t.Run("should deduplicate components by purl", func(t *testing.T) {
		leftPad := cdx.Component{Type: cdx.ComponentTypeLibrary, Name: "left-pad", Version: "1.3.0", PackageURL: "pkg:npm/left-pad@1.3.0"}

		merged := MergeBoms("shop", "v1.0.0", []*cdx.BOM{
			bomWithComponents("backend", leftPad),
			bomWithComponents("frontend", leftPad),
		})

		var count int
		for _, c := range *merged.Components {
			if c.PackageURL == leftPad.PackageURL {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("should keep components with the same name but different versions", func(t *testing.T) {
		merged := MergeBoms("shop", "v1.0.0", []*cdx.BOM{
			bomWithComponents("backend", cdx.Component{Name: "lodash", Version: "4.17.20"}),
			bomWithComponents("frontend", cdx.Component{Name: "lodash", Version: "4.17.21"}),
		})

		var count int
		for _, c := range *merged.Components {
			if c.Name == "lodash" {
				count++
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("should make the input roots direct dependencies of the release", func(t *testing.T) {
		merged := MergeBoms("shop", "v1.0.0", []*cdx.BOM{
			bomWithComponents("backend"),
			bomWithComponents("frontend"),
		})

		var rootDeps *[]string
		for _, d := range *merged.Dependencies {
			if d.Ref == "shop@v1.0.0" {
				rootDeps = d.Dependencies
			}
		}

		assert.NotNil(t, rootDeps)
		assert.ElementsMatch(t, []string{"backend@1.0.0", "frontend@1.0.0"}, *rootDeps)
	})
}
