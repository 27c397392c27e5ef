package events

const (
	ObjectCheckCreatedName = "object_check.created"
	ObjectCheckUpdatedName = "object_check.updated"
	ObjectCheckDeletedName = "object_check.deleted"
)

// ObjectCheckRef - кто и с какой проверкой что-то сделал.
type ObjectCheckRef struct {
	CompanyID int64
	ObjectID  int64
	CheckID   int64
	ActorID   int64
}

type ObjectCheckCreatedEvent struct {
	ObjectCheckRef
	CheckTypeID int64
	TemplateID  int64
	InspectorID *int64
}

func (e ObjectCheckCreatedEvent) Name() string { return ObjectCheckCreatedName }

type ObjectCheckUpdatedEvent struct {
	ObjectCheckRef
	// Changes - изменённые колонки и их новые значения.
	Changes map[string]interface{}
}

func (e ObjectCheckUpdatedEvent) Name() string { return ObjectCheckUpdatedName }

type ObjectCheckDeletedEvent struct {
	ObjectCheckRef
}

func (e ObjectCheckDeletedEvent) Name() string { return ObjectCheckDeletedName }
