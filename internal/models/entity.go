package models

// EntityType identifies a syncable entity kind tracked by the metadata engine.
type EntityType string

// Syncable entity types. Only these participate in metadata tracking
// and queue processing; everything else bypasses the engine untouched.
const (
	EntityAsset    EntityType = "asset"
	EntityTask     EntityType = "task"
	EntitySchedule EntityType = "schedule"
	EntityLocation EntityType = "location"
)

// pluralNames связывает множественную форму (используется в sync-тегах,
// например "sync-assets") с каноническим типом сущности.
var pluralNames = map[string]EntityType{
	"assets":    EntityAsset,
	"tasks":     EntityTask,
	"schedules": EntitySchedule,
	"locations": EntityLocation,
}

// pluralForms обратная карта для построения тегов.
var pluralForms = map[EntityType]string{
	EntityAsset:    "assets",
	EntityTask:     "tasks",
	EntitySchedule: "schedules",
	EntityLocation: "locations",
}

// String returns the canonical singular name of the entity type.
func (t EntityType) String() string {
	return string(t)
}

// Plural returns the plural form used in sync tags.
// Returns empty string for unknown types.
func (t EntityType) Plural() string {
	return pluralForms[t]
}

// IsSyncable reports whether the entity type participates in sync tracking.
func IsSyncable(t EntityType) bool {
	_, ok := pluralForms[t]
	return ok
}

// EntityTypeFromPlural resolves a plural tag suffix (e.g. "assets")
// to its entity type. Returns false for unknown suffixes.
func EntityTypeFromPlural(plural string) (EntityType, bool) {
	t, ok := pluralNames[plural]
	return t, ok
}

// SyncableTypes returns all entity types participating in sync.
func SyncableTypes() []EntityType {
	return []EntityType{EntityAsset, EntityTask, EntitySchedule, EntityLocation}
}

// Operation is the kind of mutation recorded in a sync queue item.
type Operation string

// Queue item operations
const (
	OpCreate Operation = "CREATE"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// QueueStatus is the lifecycle state of a sync queue item.
type QueueStatus string

// Queue item statuses. PENDING items await processing, FAILED items
// exhausted processing or were abandoned, COMPLETED items are eligible
// for cleanup after the retention window.
const (
	StatusPending   QueueStatus = "PENDING"
	StatusFailed    QueueStatus = "FAILED"
	StatusCompleted QueueStatus = "COMPLETED"
)
