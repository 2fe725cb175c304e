package schema

import (
	"database/sql/driver"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

// maxKeyLength fits "<noteId>:<username>": 20 digits, the colon and a
// username of up to 255 characters.
const maxKeyLength = 20 + 1 + 255

// mysqlSchema is the production DDL. Note content is unbounded so documents
// go in LONGTEXT.
var mysqlSchema = []string{
	`CREATE TABLE notes (
		id VARCHAR(` + strconv.Itoa(maxKeyLength) + `) NOT NULL PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		note_id BIGINT NOT NULL,
		document LONGTEXT NOT NULL,
		created BIGINT NOT NULL,
		last_modified BIGINT NOT NULL,
		KEY notes_by_owner (username, created)
	)`,
	`CREATE TABLE users (
		username VARCHAR(255) NOT NULL PRIMARY KEY,
		password_digest TEXT NOT NULL,
		created BIGINT NOT NULL
	)`,
}

// portableSchema serves the in-memory test driver, which has no sized text
// types or secondary keys. A note row is addressed by "<noteId>:<username>",
// so the single column key enforces (username, noteId) uniqueness.
var portableSchema = []string{
	`CREATE TABLE notes (
		id VARCHAR(255) PRIMARY KEY,
		username VARCHAR(255),
		note_id BIGINT,
		document TEXT,
		created BIGINT,
		last_modified BIGINT
	)`,
	`CREATE TABLE users (
		username VARCHAR(255) PRIMARY KEY,
		password_digest TEXT,
		created BIGINT
	)`,
}

var dropSchema = []string{
	`DROP TABLE notes`,
	`DROP TABLE users`,
}

func statements(d driver.Driver) []string {
	if _, ok := d.(*mysql.MySQLDriver); ok {
		return mysqlSchema
	}
	return portableSchema
}
