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

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/shared"
)

type AccessControl struct {
	mock.Mock
}

func NewAccessControl(t testingT) *AccessControl {
	m := &AccessControl{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AccessControl) HasAccess(subject string) (bool, error) {
	ret := _m.Called(subject)
	return ret.Bool(0), ret.Error(1)
}

func (_m *AccessControl) InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions shared.Role) error {
	ret := _m.Called(roleWhichGetsPermissions, roleWhichProvidesPermissions)
	return ret.Error(0)
}

func (_m *AccessControl) GrantRole(subject string, role shared.Role) error {
	ret := _m.Called(subject, role)
	return ret.Error(0)
}

func (_m *AccessControl) RevokeRole(subject string, role shared.Role) error {
	ret := _m.Called(subject, role)
	return ret.Error(0)
}

func (_m *AccessControl) GrantRoleInProduct(subject string, role shared.Role, product string) error {
	ret := _m.Called(subject, role, product)
	return ret.Error(0)
}

func (_m *AccessControl) RevokeRoleInProduct(subject string, role shared.Role, product string) error {
	ret := _m.Called(subject, role, product)
	return ret.Error(0)
}

func (_m *AccessControl) RevokeAllRolesInProductForUser(user string, product string) error {
	ret := _m.Called(user, product)
	return ret.Error(0)
}

func (_m *AccessControl) InheritProductRole(roleWhichGetsPermissions, roleWhichProvidesPermissions shared.Role, product string) error {
	ret := _m.Called(roleWhichGetsPermissions, roleWhichProvidesPermissions, product)
	return ret.Error(0)
}

func (_m *AccessControl) LinkDomainAndProductRole(domainRoleWhichGetsPermission, productRoleWhichProvidesPermissions shared.Role, product string) error {
	ret := _m.Called(domainRoleWhichGetsPermission, productRoleWhichProvidesPermissions, product)
	return ret.Error(0)
}

func (_m *AccessControl) AllowRole(role shared.Role, object shared.Object, action []shared.Action) error {
	ret := _m.Called(role, object, action)
	return ret.Error(0)
}

func (_m *AccessControl) AllowRoleInProduct(product string, role shared.Role, object shared.Object, action []shared.Action) error {
	ret := _m.Called(product, role, object, action)
	return ret.Error(0)
}

func (_m *AccessControl) IsAllowed(subject string, object shared.Object, action shared.Action) (bool, error) {
	ret := _m.Called(subject, object, action)
	return ret.Bool(0), ret.Error(1)
}

func (_m *AccessControl) IsAllowedInProduct(product *models.Product, user string, object shared.Object, action shared.Action) (bool, error) {
	ret := _m.Called(product, user, object, action)
	return ret.Bool(0), ret.Error(1)
}

func (_m *AccessControl) GetOwnerOfTeam() (string, error) {
	ret := _m.Called()
	return ret.String(0), ret.Error(1)
}

func (_m *AccessControl) GetAllMembersOfTeam() ([]string, error) {
	ret := _m.Called()

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

func (_m *AccessControl) GetDomainRole(user string) (shared.Role, error) {
	ret := _m.Called(user)

	var r0 shared.Role
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(shared.Role)
	}
	return r0, ret.Error(1)
}

type RBACProvider struct {
	mock.Mock
}

func NewRBACProvider(t testingT) *RBACProvider {
	m := &RBACProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *RBACProvider) GetDomainRBAC(domain string) shared.AccessControl {
	ret := _m.Called(domain)

	var r0 shared.AccessControl
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(shared.AccessControl)
	}
	return r0
}

func (_m *RBACProvider) DomainsOfUser(user string) ([]string, error) {
	ret := _m.Called(user)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

type AuthSession struct {
	mock.Mock
}

func NewAuthSession(t testingT) *AuthSession {
	m := &AuthSession{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AuthSession) GetUserID() string {
	ret := _m.Called()
	return ret.String(0)
}

func (_m *AuthSession) GetScopes() []string {
	ret := _m.Called()

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0
}
