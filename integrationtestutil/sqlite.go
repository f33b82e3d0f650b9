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

package integrationtestutil

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitSqliteDatabase returns an isolated in-memory database with the schema
// derived from the models. Use it where a real postgres is not needed.
func InitSqliteDatabase(t *testing.T) shared.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open sqlite database: %s", err)
	}

	err = db.AutoMigrate(
		&models.Dependency{},
		&models.DependencyVersion{},
		&models.Vulnerability{},
		&models.VulnerabilityVersion{},
		&models.Job{},
		&models.GithubAppInstallation{},
		&models.Repo{},
		&models.RepoDependency{},
		&models.Config{},
	)
	if err != nil {
		t.Fatalf("could not migrate sqlite database: %s", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not get sql database: %s", err)
	}
	// sqlite does not cope with concurrent writers on a shared cache
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}
