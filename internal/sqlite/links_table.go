// This file implements the links table accessor for the SQLite backend.
// Each operation hydrates/dehydrates between SQLite rows and *model.Link
// structs; the constraint state and the metadata store travel as JSON.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-robotics/linksmith/pkg/model"
)

// Compile-time interface check: linksTable must implement Table.
var _ model.Table = (*linksTable)(nil)

type linksTable struct {
	backend *Backend
}

const linkColumns = "link_id, name, role, bone_x, bone_y, bone_z, constraints, metadata, created_at, updated_at"

// Get retrieves a link by ID and hydrates the row to *model.Link.
func (lt *linksTable) Get(id string) (any, error) {
	if id == "" {
		return nil, model.ErrInvalidID
	}
	lt.backend.mu.RLock()
	defer lt.backend.mu.RUnlock()

	if !lt.backend.attached {
		return nil, model.ErrStoreDetached
	}

	row := lt.backend.db.QueryRow(
		"SELECT "+linkColumns+" FROM links WHERE link_id = ?", id)
	link, err := hydrateLink(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("getting link %s: %w", id, err)
	}
	return link, nil
}

// Set persists a link. If id is empty, generates a UUID v7 and creates the
// link with defaults. If id is provided, updates the existing link.
// Returns the actual ID used.
func (lt *linksTable) Set(id string, data any) (string, error) {
	link, ok := data.(*model.Link)
	if !ok {
		return "", model.ErrInvalidData
	}
	if link.Name == "" {
		return "", model.ErrInvalidName
	}
	if link.Role != "" && !model.ValidRole(link.Role) {
		return "", model.ErrInvalidRole
	}

	lt.backend.mu.Lock()
	defer lt.backend.mu.Unlock()

	if !lt.backend.attached {
		return "", model.ErrStoreDetached
	}

	now := time.Now().UTC()

	if id == "" {
		link.LinkID = newUUID()
		if link.Role == "" {
			link.Role = model.RoleLink
		}
		link.CreatedAt = now
		id = link.LinkID
	}
	link.UpdatedAt = now

	constraintsJSON, err := json.Marshal(link.Constraints)
	if err != nil {
		return "", fmt.Errorf("encoding constraints: %w", err)
	}
	metadata := link.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("encoding metadata: %w", err)
	}

	var exists bool
	err = lt.backend.db.QueryRow(
		"SELECT 1 FROM links WHERE link_id = ?", id,
	).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("checking link existence: %w", err)
	}

	tx, err := lt.backend.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	createdAtStr := link.CreatedAt.Format(time.RFC3339Nano)
	updatedAtStr := link.UpdatedAt.Format(time.RFC3339Nano)

	if exists {
		_, err = tx.Exec(
			"UPDATE links SET name = ?, role = ?, bone_x = ?, bone_y = ?, bone_z = ?, constraints = ?, metadata = ?, created_at = ?, updated_at = ? WHERE link_id = ?",
			link.Name, link.Role,
			link.Bone.Direction.X, link.Bone.Direction.Y, link.Bone.Direction.Z,
			string(constraintsJSON), string(metadataJSON),
			createdAtStr, updatedAtStr, id,
		)
	} else {
		_, err = tx.Exec(
			"INSERT INTO links ("+linkColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			id, link.Name, link.Role,
			link.Bone.Direction.X, link.Bone.Direction.Y, link.Bone.Direction.Z,
			string(constraintsJSON), string(metadataJSON),
			createdAtStr, updatedAtStr,
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting link: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing link: %w", err)
	}

	return id, nil
}

// Delete removes a link by ID. Returns ErrNotFound if no link exists.
func (lt *linksTable) Delete(id string) error {
	if id == "" {
		return model.ErrInvalidID
	}
	lt.backend.mu.Lock()
	defer lt.backend.mu.Unlock()

	if !lt.backend.attached {
		return model.ErrStoreDetached
	}

	res, err := lt.backend.db.Exec("DELETE FROM links WHERE link_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting link %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting link %s: %w", id, err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Fetch returns links matching the filter. Supported filter keys: "name" and
// "role", matched exactly. An empty filter returns every link.
func (lt *linksTable) Fetch(filter map[string]any) ([]any, error) {
	lt.backend.mu.RLock()
	defer lt.backend.mu.RUnlock()

	if !lt.backend.attached {
		return nil, model.ErrStoreDetached
	}

	query := "SELECT " + linkColumns + " FROM links"
	var conds []string
	var args []any
	for _, key := range []string{"name", "role"} {
		if v, ok := filter[key]; ok {
			s, ok := v.(string)
			if !ok {
				return nil, model.ErrInvalidData
			}
			conds = append(conds, key+" = ?")
			args = append(args, s)
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at"

	rows, err := lt.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching links: %w", err)
	}
	defer rows.Close()

	var result []any
	for rows.Next() {
		link, err := hydrateLink(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("fetching links: %w", err)
		}
		result = append(result, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetching links: %w", err)
	}
	return result, nil
}

// hydrateLink scans one links row into a *model.Link using the given scan
// function (sql.Row.Scan or sql.Rows.Scan).
func hydrateLink(scan func(dest ...any) error) (*model.Link, error) {
	var (
		link                     model.Link
		constraintsJSON, metaRaw string
		createdAt, updatedAt     string
	)
	err := scan(
		&link.LinkID, &link.Name, &link.Role,
		&link.Bone.Direction.X, &link.Bone.Direction.Y, &link.Bone.Direction.Z,
		&constraintsJSON, &metaRaw, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(constraintsJSON), &link.Constraints); err != nil {
		return nil, fmt.Errorf("decoding constraints: %w", err)
	}
	if err := json.Unmarshal([]byte(metaRaw), &link.Metadata); err != nil {
		return nil, fmt.Errorf("decoding metadata: %w", err)
	}

	if link.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if link.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &link, nil
}
