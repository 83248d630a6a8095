package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReleaseArtifactType(t *testing.T) {
	sbomID := uuid.New()
	documentID := uuid.New()

	t.Run("should report sbom links", func(t *testing.T) {
		artifact := ReleaseArtifact{SbomID: &sbomID}
		assert.Equal(t, "sbom", artifact.ArtifactType())
	})

	t.Run("should report document links", func(t *testing.T) {
		artifact := ReleaseArtifact{DocumentID: &documentID}
		assert.Equal(t, "document", artifact.ArtifactType())
	})
}

func TestReleaseArtifactName(t *testing.T) {
	t.Run("should use the sbom name", func(t *testing.T) {
		artifact := ReleaseArtifact{Sbom: &SBOM{Name: "backend"}}
		assert.Equal(t, "backend", artifact.ArtifactName())
	})

	t.Run("should use the document name", func(t *testing.T) {
		artifact := ReleaseArtifact{Document: &Document{Name: "pentest report"}}
		assert.Equal(t, "pentest report", artifact.ArtifactName())
	})

	t.Run("should be empty without a loaded artifact", func(t *testing.T) {
		assert.Equal(t, "", ReleaseArtifact{}.ArtifactName())
	})
}
