// Copyright (C) 2026 l3montree GmbH
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

	"github.com/google/uuid"
)

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback, ok := ctx.Get(param).(string)
		if !ok {
			return ""
		}
		return fallback
	}
	return v
}

func GetURLDecodedParam(ctx Context, param string) (string, error) {
	return url.PathUnescape(GetParam(ctx, param))
}

func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	v := GetParam(ctx, param)
	if v == "" {
		return uuid.Nil, fmt.Errorf("missing %s", param)
	}
	return uuid.Parse(v)
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

func SetSubject(ctx Context, subject string) {
	ctx.Set("subject", subject)
}

func GetSubject(ctx Context) string {
	subject, _ := ctx.Get("subject").(string)
	return subject
}
