// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package api

import (
	"go.uber.org/fx"

	"github.com/rusko124/sbomify/accesscontrol"
	"github.com/rusko124/sbomify/shared"
)

// AuthModule provides authentication and authorization dependencies
var AuthModule = fx.Options(
	fx.Provide(func(db shared.DB) (shared.RBACProvider, error) {
		return accesscontrol.NewCasbinRBACProvider(db)
	}),
)

// Module combines all API-level FX modules
var Module = fx.Options(
	AuthModule,
	fx.Provide(NewServer),
)
