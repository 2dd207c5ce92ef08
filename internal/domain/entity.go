package domain

// EntityType names a persisted record kind.
type EntityType string

const (
	EntityOrganization EntityType = "organization"
	EntityAddress      EntityType = "address"
	EntityActivity     EntityType = "activity"
	EntityIncident     EntityType = "incident"
)

func (e EntityType) String() string { return string(e) }

// Fields is a partial set of attribute values keyed by column name. It is
// used both as an equality filter and as a partial update payload.
// Repositories keep only the keys they recognize and drop the rest.
type Fields map[string]any

// Has reports whether key is present in f.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}
