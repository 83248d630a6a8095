package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectSbom(t *testing.T) {
	t.Run("should detect a cyclonedx document", func(t *testing.T) {
		raw := []byte(`{
			"bomFormat": "CycloneDX",
			"specVersion": "1.5",
			"metadata": {"component": {"name": "backend", "version": "2.1.0"}}
		}`)

		info, err := InspectSbom(raw)
		assert.Nil(t, err)
		assert.Equal(t, FormatCycloneDX, info.Format)
		assert.Equal(t, "1.5", info.FormatVersion)
		assert.Equal(t, "backend", info.Name)
		assert.Equal(t, "2.1.0", info.Version)
	})

	t.Run("should detect an spdx document", func(t *testing.T) {
		raw := []byte(`{
			"spdxVersion": "SPDX-2.3",
			"name": "backend-2.1.0"
		}`)

		info, err := InspectSbom(raw)
		assert.Nil(t, err)
		assert.Equal(t, FormatSPDX, info.Format)
		assert.Equal(t, "2.3", info.FormatVersion)
		assert.Equal(t, "backend-2.1.0", info.Name)
	})

	t.Run("should reject invalid json", func(t *testing.T) {
		_, err := InspectSbom([]byte(`{invalid`))
		assert.Error(t, err)
	})

	t.Run("should reject a document of unknown format", func(t *testing.T) {
		_, err := InspectSbom([]byte(`{"hello": "world"}`))
		assert.Error(t, err)
	})
}
