// Schema DDL for the linksmith scene database.
package sqlite

// createLinks holds the links table: one row per rigid-body link, with the
// bone direction in dedicated columns and the constraint state and metadata
// store serialized as JSON text.
const createLinks = `CREATE TABLE links (
    link_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    role TEXT NOT NULL,
    bone_x REAL NOT NULL,
    bone_y REAL NOT NULL,
    bone_z REAL NOT NULL,
    constraints TEXT NOT NULL,
    metadata TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

// schemaDDL lists all DDL statements executed on Attach.
var schemaDDL = []string{
	createLinks,
}
