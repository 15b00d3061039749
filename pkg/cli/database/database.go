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

// Package database provides the local SQLite store for credentials and
// bookkeeping values that should not live in the plain text config file.
package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DB wraps a connection, or a transaction begun on one, behind a single
// type so helpers work with either.
type DB struct {
	Conn *sql.DB
	Tx   *sql.Tx
}

// Open opens a SQLite database at the given path, creating the parent
// directory if needed. In-memory DSNs are passed through untouched.
func Open(dbPath string) (*DB, error) {
	if !strings.HasPrefix(dbPath, "file:") {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, errors.Wrap(err, "creating database directory")
		}
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening db connection")
	}

	return &DB{Conn: conn}, nil
}

// Begin starts a transaction
func (d *DB) Begin() (*DB, error) {
	if d.Tx != nil {
		return nil, errors.New("transaction already begun")
	}

	tx, err := d.Conn.Begin()
	if err != nil {
		return nil, err
	}

	return &DB{Conn: d.Conn, Tx: tx}, nil
}

// Commit commits the transaction
func (d *DB) Commit() error {
	if d.Tx == nil {
		return errors.New("not in a transaction")
	}

	return d.Tx.Commit()
}

// Rollback rolls back the transaction. It is a no-op outside of one.
func (d *DB) Rollback() error {
	if d.Tx == nil {
		return nil
	}

	return d.Tx.Rollback()
}

// Exec executes a query without returning any rows
func (d *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	if d.Tx != nil {
		return d.Tx.Exec(query, args...)
	}

	return d.Conn.Exec(query, args...)
}

// QueryRow executes a query that is expected to return at most one row
func (d *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	if d.Tx != nil {
		return d.Tx.QueryRow(query, args...)
	}

	return d.Conn.QueryRow(query, args...)
}

// Close closes the underlying connection
func (d *DB) Close() error {
	return d.Conn.Close()
}
