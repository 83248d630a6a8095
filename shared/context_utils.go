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
	"fmt"
	"net/url"
	"strconv"

	"github.com/rusko124/sbomify/database/models"
)

type AuthSession interface {
	GetUserID() string
	GetScopes() []string
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func HasSession(ctx Context) bool {
	_, ok := ctx.Get("session").(AuthSession)
	return ok
}

func SetRBAC(ctx Context, rbac AccessControl) {
	ctx.Set("rbac", rbac)
}

func GetRBAC(ctx Context) AccessControl {
	return ctx.Get("rbac").(AccessControl)
}

func SetTeam(ctx Context, team models.Team) {
	ctx.Set("team", team)
}

func GetTeam(ctx Context) models.Team {
	return ctx.Get("team").(models.Team)
}

func HasTeam(ctx Context) bool {
	_, ok := ctx.Get("team").(models.Team)
	return ok
}

func SetProduct(ctx Context, product models.Product) {
	ctx.Set("product", product)
}

func GetProduct(ctx Context) models.Product {
	return ctx.Get("product").(models.Product)
}

func HasProduct(ctx Context) bool {
	_, ok := ctx.Get("product").(models.Product)
	return ok
}

func SetRelease(ctx Context, release models.Release) {
	ctx.Set("release", release)
}

func GetRelease(ctx Context) models.Release {
	return ctx.Get("release").(models.Release)
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		v, _ = ctx.Get(param).(string)
	}
	return SanitizeParam(v)
}

func GetURLDecodedParam(ctx Context, param string) (string, error) {
	v := GetParam(ctx, param)
	return url.QueryUnescape(v)
}

func GetTeamSlug(ctx Context) (string, error) {
	teamSlug, ok := ctx.Get("teamSlug").(string)
	if !ok {
		if v := ctx.Param("teamSlug"); v != "" {
			return v, nil
		}
		return "", fmt.Errorf("could not get team slug")
	}
	return teamSlug, nil
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}
