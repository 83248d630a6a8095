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

package shared

import (
	"github.com/labstack/echo/v4"

	"github.com/rusko124/sbomify/database/models"
)

type AccessControl interface {
	HasAccess(subject string) (bool, error)

	InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role) error

	GrantRole(subject string, role Role) error
	RevokeRole(subject string, role Role) error

	GrantRoleInProduct(subject string, role Role, product string) error
	RevokeRoleInProduct(subject string, role Role, product string) error
	RevokeAllRolesInProductForUser(user string, product string) error

	InheritProductRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role, product string) error
	LinkDomainAndProductRole(domainRoleWhichGetsPermission, productRoleWhichProvidesPermissions Role, product string) error

	AllowRole(role Role, object Object, action []Action) error
	AllowRoleInProduct(product string, role Role, object Object, action []Action) error

	IsAllowed(subject string, object Object, action Action) (bool, error)
	IsAllowedInProduct(product *models.Product, user string, object Object, action Action) (bool, error)

	GetOwnerOfTeam() (string, error)
	GetAllMembersOfTeam() ([]string, error)
	GetDomainRole(user string) (Role, error)
}

type RBACProvider interface {
	GetDomainRBAC(domain string) AccessControl
	DomainsOfUser(user string) ([]string, error)
}

type RBACMiddleware = func(obj Object, act Action) echo.MiddlewareFunc

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleGuest  Role = "guest"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Object string

const (
	ObjectTeam      Object = "team"
	ObjectProduct   Object = "product"
	ObjectComponent Object = "component"
	ObjectRelease   Object = "release"
	ObjectUser      Object = "user"
)

// BootstrapTeam sets up the default role hierarchy and permissions for a
// freshly created team. The creating user becomes the owner.
func BootstrapTeam(rbac AccessControl, userID string, userRole Role) error {
	if err := rbac.GrantRole(userID, userRole); err != nil {
		return err
	}

	if err := rbac.InheritRole(RoleOwner, RoleAdmin); err != nil { // an owner is an admin
		return err
	}
	if err := rbac.InheritRole(RoleAdmin, RoleMember); err != nil { // an admin is a member
		return err
	}
	if err := rbac.InheritRole(RoleMember, RoleGuest); err != nil { // a member is a guest
		return err
	}

	if err := rbac.AllowRole(RoleOwner, ObjectTeam, []Action{
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectTeam, []Action{
		ActionUpdate,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectProduct, []Action{
		ActionCreate,
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectComponent, []Action{
		ActionCreate,
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	// members manage releases and their artifacts, guests only read
	if err := rbac.AllowRole(RoleMember, ObjectRelease, []Action{
		ActionCreate,
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	for _, obj := range []Object{ObjectTeam, ObjectProduct, ObjectComponent, ObjectRelease} {
		if err := rbac.AllowRole(RoleGuest, obj, []Action{ActionRead}); err != nil {
			return err
		}
	}

	return nil
}
