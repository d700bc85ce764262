package models

import "fmt"

// EntityType is the closed set of schedule-bearing entities. The hierarchy
// runs user -> clinic -> complex -> organization.
type EntityType string

const (
	EntityTypeOrganization EntityType = "organization"
	EntityTypeComplex      EntityType = "complex"
	EntityTypeClinic       EntityType = "clinic"
	EntityTypeUser         EntityType = "user"
)

func ParseEntityType(value string) (EntityType, error) {
	entityType := EntityType(value)
	if !entityType.Valid() {
		return "", fmt.Errorf("unknown entity type %q", value)
	}
	return entityType, nil
}

func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeOrganization, EntityTypeComplex, EntityTypeClinic, EntityTypeUser:
		return true
	}
	return false
}

// ParentType returns the type one level up the hierarchy. The second return
// is false for the organization root and for unknown values.
func (t EntityType) ParentType() (EntityType, bool) {
	switch t {
	case EntityTypeUser:
		return EntityTypeClinic, true
	case EntityTypeClinic:
		return EntityTypeComplex, true
	case EntityTypeComplex:
		return EntityTypeOrganization, true
	default:
		return "", false
	}
}

func (t EntityType) String() string {
	return string(t)
}
