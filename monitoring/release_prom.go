// Copyright 2025 sbomify contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReleasesCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "sbomify_releases_created_amount",
	Help: "Total number of releases created",
})

var ReleaseArtifactsLinkedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sbomify_release_artifacts_linked_amount",
	Help: "Total number of artifacts linked to releases",
}, []string{"artifactType"})

var ReleaseSbomGenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "sbomify_release_sbom_generation_duration_seconds",
	Help:    "Duration of consolidated release SBOM generation in seconds",
	Buckets: prometheus.DefBuckets,
})
