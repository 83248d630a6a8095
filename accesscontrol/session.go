// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
package accesscontrol

type session struct {
	userID string
	scopes []string
}

// NoSession marks an unauthenticated request. The request might still be
// allowed further down the chain.
var NoSession = session{}

func NewSession(userID string, scopes []string) session {
	return session{
		userID: userID,
		scopes: scopes,
	}
}

func (s session) GetUserID() string {
	return s.userID
}

func (s session) GetScopes() []string {
	return s.scopes
}
