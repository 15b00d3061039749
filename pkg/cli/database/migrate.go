/* Copyright 2025 Dnote Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
)

// MigrationTableName is the name of the table that keeps track of migrations
var MigrationTableName = "migrations"

// migrations is the ordered local schema. Entries are append-only.
var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "001-create-system",
			Up: []string{
				`CREATE TABLE IF NOT EXISTS system
				(
					key text PRIMARY KEY,
					value text NOT NULL
				)`,
			},
			Down: []string{
				`DROP TABLE system`,
			},
		},
	},
}

// Migrate applies every pending migration and returns how many ran
func Migrate(db *DB) (int, error) {
	migrate.SetTable(MigrationTableName)

	n, err := migrate.Exec(db.Conn, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return n, errors.Wrap(err, "running migrations")
	}

	return n, nil
}
