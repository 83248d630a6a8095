package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewSessionRouter),
	fx.Provide(NewAccessTokenRouter),
	fx.Provide(NewTeamRouter),
	fx.Provide(NewProductRouter),
	fx.Provide(NewReleaseRouter),
)
