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

package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/depwatch/shared"
	"gorm.io/gorm"
)

type GormRepository[ID comparable, T shared.Tabler] struct {
	db *gorm.DB
}

func newGormRepository[ID comparable, T shared.Tabler](db *gorm.DB) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db: db,
	}
}

// Read returns the row with the given primary key
func (g *GormRepository[ID, T]) Read(ctx context.Context, id ID) (T, error) {
	var t T
	err := g.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return t, err
}

// isUniqueViolation reports whether a concurrent writer inserted the same
// natural key first
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
