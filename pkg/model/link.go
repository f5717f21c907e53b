package model

import "time"

// Link roles. Batch operations act only on links tagged with RoleLink;
// other scene objects are inert.
const (
	RoleLink   = "link"
	RoleVisual = "visual"
	RoleSensor = "sensor"
)

// validRoles is the set of recognized link roles.
var validRoles = map[string]bool{
	RoleLink:   true,
	RoleVisual: true,
	RoleSensor: true,
}

// ValidRole reports whether role is a recognized link role.
func ValidRole(role string) bool {
	return validRoles[role]
}

// Bone is the single directional bone carried by a link. Direction is
// expressed in the link's local (object) space.
type Bone struct {
	Direction Vector3 `json:"direction"`
}

// Link is the rigid-body proxy representing one side of a joint. It carries
// exactly one bone, the bone's constraint state, and a string-keyed metadata
// store for persisted semantic fields.
type Link struct {
	LinkID      string          // UUID v7, generated on creation.
	Name        string          // Human-readable name (required, non-empty).
	Role        string          // Scene role (one of the Role constants).
	Bone        Bone            // The link's single bone.
	Constraints ConstraintModel // Live constraint state of the bone.
	Metadata    map[string]any  // Persisted semantic fields keyed by metadata key.
	CreatedAt   time.Time       // Timestamp of creation.
	UpdatedAt   time.Time       // Timestamp of last modification.
}

// ConstraintModel returns the link's current constraint state. The state is
// read from the live link on every call; callers must not cache it across
// mutations.
func (l *Link) ConstraintModel() ConstraintModel {
	return l.Constraints
}

// SetMeta stores a metadata value under key, allocating the map on first use.
func (l *Link) SetMeta(key string, value any) {
	if l.Metadata == nil {
		l.Metadata = make(map[string]any)
	}
	l.Metadata[key] = value
	l.UpdatedAt = time.Now()
}

// Meta returns the metadata value stored under key, and whether it exists.
func (l *Link) Meta(key string) (any, bool) {
	v, ok := l.Metadata[key]
	return v, ok
}

// MetaString returns the metadata value under key as a string.
// Returns "" when the key is absent or holds a non-string value.
func (l *Link) MetaString(key string) string {
	if s, ok := l.Metadata[key].(string); ok {
		return s
	}
	return ""
}

// MetaFloat returns the metadata value under key as a float64.
// Returns 0 when the key is absent or holds a non-numeric value.
func (l *Link) MetaFloat(key string) float64 {
	switch v := l.Metadata[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
