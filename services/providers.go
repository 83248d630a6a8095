package services

import (
	"github.com/rusko124/sbomify/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewReleaseService, fx.As(new(shared.ReleaseService)))),
	fx.Provide(fx.Annotate(NewSbomService, fx.As(new(shared.SbomService)))),
	fx.Provide(fx.Annotate(NewTeamService, fx.As(new(shared.TeamService)))),
)
