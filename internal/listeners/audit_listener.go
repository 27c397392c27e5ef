package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inspection-system/internal/events"
	"inspection-system/pkg/eventbus"
)

// AuditListener пишет события проверок в журнал.
type AuditListener struct {
	logger *zap.Logger
}

func NewAuditListener(logger *zap.Logger) *AuditListener {
	return &AuditListener{logger: logger.Named("audit")}
}

func (l *AuditListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.ObjectCheckCreatedName, l.Handle)
	bus.Subscribe(events.ObjectCheckUpdatedName, l.Handle)
	bus.Subscribe(events.ObjectCheckDeletedName, l.Handle)
}

func (l *AuditListener) Handle(_ context.Context, event eventbus.Event) error {
	switch e := event.(type) {
	case events.ObjectCheckCreatedEvent:
		fields := append(refFields(e.ObjectCheckRef),
			zap.Int64("check_type_id", e.CheckTypeID),
			zap.Int64("template_id", e.TemplateID),
		)
		if e.InspectorID != nil {
			fields = append(fields, zap.Int64("inspector_id", *e.InspectorID))
		}
		l.logger.Info("Проверка назначена", fields...)
	case events.ObjectCheckUpdatedEvent:
		fields := append(refFields(e.ObjectCheckRef), zap.Any("changes", e.Changes))
		l.logger.Info("Проверка изменена", fields...)
	case events.ObjectCheckDeletedEvent:
		l.logger.Info("Проверка удалена", refFields(e.ObjectCheckRef)...)
	default:
		return fmt.Errorf("неизвестное событие %q", event.Name())
	}
	return nil
}

func refFields(ref events.ObjectCheckRef) []zap.Field {
	return []zap.Field{
		zap.Int64("company_id", ref.CompanyID),
		zap.Int64("object_id", ref.ObjectID),
		zap.Int64("check_id", ref.CheckID),
		zap.Int64("actor_id", ref.ActorID),
	}
}
