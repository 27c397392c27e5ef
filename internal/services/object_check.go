package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inspection-system/internal/dto"
	"inspection-system/internal/entities"
	"inspection-system/internal/events"
	"inspection-system/internal/repositories"
	apperrors "inspection-system/pkg/errors"
	"inspection-system/pkg/eventbus"
	"inspection-system/pkg/types"
	"inspection-system/pkg/utils"
	"inspection-system/pkg/validation"
)

// Сообщения об ошибках отдаются клиенту как есть.
const (
	MsgObjectNotFound          = "Object not found."
	MsgDateNotInFuture         = "The date must be greater than today."
	MsgCheckTypeNotFound       = "Check type not found."
	MsgTemplateNotPaired       = "Template not found or check type not suitable for template check."
	MsgInspectorNotFound       = "Inspector not found."
	MsgFailedToReturnData      = "Failed to return data."
	MsgCheckNotFound           = "Check not found."
	MsgTypeIsNotFound          = "Type is not found."
	MsgTemplateIsNotFound      = "Template is not found."
	MsgInspectorIsNotFound     = "Inspector is not found."
	MsgCheckTypeNotSuitable    = "The check type is not suitable for the check template."
	MsgPageNotFound            = "Page not found."
	MsgInvalidInspectionDate   = "Invalid date format."
	objectCheckCacheKeyPattern = "object_check:%d:%d:%d"
)

type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

type ObjectCheckSettings struct {
	LinkBaseURL    string
	CacheTTL       time.Duration
	DefaultPerPage int
	MaxPerPage     int
}

type ObjectCheckServiceInterface interface {
	Create(ctx context.Context, objectID int64, d dto.CreateObjectCheckDTO) (*dto.ObjectCheckDTO, error)
	Update(ctx context.Context, objectID, id int64, d dto.UpdateObjectCheckDTO) (*dto.ObjectCheckDTO, error)
	Delete(ctx context.Context, objectID, id int64) error
	Find(ctx context.Context, objectID, id int64) (*dto.ObjectCheckDTO, error)
	FindByPage(ctx context.Context, objectID int64, q dto.ListObjectChecksQuery) (*dto.ObjectCheckListDTO, error)
	Export(ctx context.Context, objectID int64) (*ObjectCheckExport, error)
}

// ObjectCheckExport - данные для выгрузки всех проверок объекта.
type ObjectCheckExport struct {
	Object entities.CompanyObjectView
	Checks []dto.ObjectCheckDTO
}

type ObjectCheckService struct {
	*BaseService
	txManager     repositories.TxManagerInterface
	checkRepo     repositories.ObjectCheckRepositoryInterface
	objectRepo    repositories.ObjectRepositoryInterface
	checkTypeRepo repositories.CheckTypeRepositoryInterface
	templateRepo  repositories.TemplateRepositoryInterface
	inspectorRepo repositories.InspectorRepositoryInterface
	publisher     EventPublisher
	settings      ObjectCheckSettings
	logger        *zap.Logger

	now      func() time.Time
	newToken func() string
}

func NewObjectCheckService(
	txManager repositories.TxManagerInterface,
	checkRepo repositories.ObjectCheckRepositoryInterface,
	objectRepo repositories.ObjectRepositoryInterface,
	checkTypeRepo repositories.CheckTypeRepositoryInterface,
	templateRepo repositories.TemplateRepositoryInterface,
	inspectorRepo repositories.InspectorRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	publisher EventPublisher,
	settings ObjectCheckSettings,
	logger *zap.Logger,
) *ObjectCheckService {
	if settings.MaxPerPage < 1 {
		settings.MaxPerPage = utils.MaxPerPage
	}
	if settings.DefaultPerPage < 1 {
		settings.DefaultPerPage = utils.DefaultPerPage
	}
	return &ObjectCheckService{
		BaseService:   NewBaseService(cache, logger),
		txManager:     txManager,
		checkRepo:     checkRepo,
		objectRepo:    objectRepo,
		checkTypeRepo: checkTypeRepo,
		templateRepo:  templateRepo,
		inspectorRepo: inspectorRepo,
		publisher:     publisher,
		settings:      settings,
		logger:        logger,
		now:           time.Now,
		newToken:      uuid.NewString,
	}
}

func objectCheckCacheKey(companyID, objectID, id int64) string {
	return fmt.Sprintf(objectCheckCacheKeyPattern, companyID, objectID, id)
}

func (s *ObjectCheckService) linkURL() string {
	return strings.TrimRight(s.settings.LinkBaseURL, "/") + "/" + s.newToken()
}

func (s *ObjectCheckService) Create(ctx context.Context, objectID int64, d dto.CreateObjectCheckDTO) (*dto.ObjectCheckDTO, error) {
	actorID, companyID, err := s.Caller(ctx)
	if err != nil {
		return nil, err
	}

	inspectorID := d.InspectorRef()

	var view *entities.ObjectCheckView
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.objectRepo.ExistsInCompany(ctx, companyID, objectID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError(MsgObjectNotFound)
		}

		date, err := validation.ParseInspectionDate(d.Date)
		if err != nil {
			return apperrors.NewBadRequestError(MsgInvalidInspectionDate)
		}
		if !date.After(s.now()) {
			return apperrors.NewBadRequestError(MsgDateNotInFuture)
		}

		exists, err = s.checkTypeRepo.ExistsInCompany(ctx, companyID, d.CheckTypeID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError(MsgCheckTypeNotFound)
		}

		paired, err := s.templateRepo.ExistsForCheckType(ctx, companyID, d.TemplateID, d.CheckTypeID)
		if err != nil {
			return err
		}
		if !paired {
			return apperrors.NewNotFoundError(MsgTemplateNotPaired)
		}

		if inspectorID.Valid {
			approved, err := s.inspectorRepo.ExistsApproved(ctx, companyID, inspectorID.Int64)
			if err != nil {
				return err
			}
			if !approved {
				return apperrors.NewNotFoundError(MsgInspectorNotFound)
			}
		}

		created, err := s.checkRepo.Create(ctx, entities.NewObjectCheck{
			CompanyID:        companyID,
			ObjectID:         objectID,
			TemplateID:       d.TemplateID,
			CheckTypeID:      d.CheckTypeID,
			InspectorID:      inspectorID,
			Status:           entities.StatusAppointed,
			LinkURL:          s.linkURL(),
			DateOfInspection: date,
		})
		if err != nil {
			return err
		}

		view, err = s.checkRepo.FindView(ctx, companyID, objectID, created.ID)
		if err != nil {
			return err
		}
		if view == nil {
			return apperrors.NewInternalError(MsgFailedToReturnData, fmt.Errorf("проверка %d не найдена после вставки", created.ID))
		}
		return nil
	})
	if err != nil {
		s.logRejection("Проверка не создана", err, zap.Int64("company_id", companyID), zap.Int64("object_id", objectID))
		return nil, err
	}

	event := events.ObjectCheckCreatedEvent{
		ObjectCheckRef: events.ObjectCheckRef{CompanyID: companyID, ObjectID: objectID, CheckID: view.ID, ActorID: actorID},
		CheckTypeID:    view.CheckTypeID,
		TemplateID:     view.TemplateID,
	}
	if view.InspectorID.Valid {
		id := view.InspectorID.Int64
		event.InspectorID = &id
	}
	s.publish(ctx, event)

	res := dto.NewObjectCheckDTO(*view)
	return &res, nil
}

func (s *ObjectCheckService) Update(ctx context.Context, objectID, id int64, d dto.UpdateObjectCheckDTO) (*dto.ObjectCheckDTO, error) {
	patch := d.ToPatch()
	if patch.IsEmpty() {
		return nil, apperrors.ErrNotModified
	}

	actorID, companyID, err := s.Caller(ctx)
	if err != nil {
		return nil, err
	}

	var (
		view    *entities.ObjectCheckView
		changes map[string]interface{}
	)
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.checkRepo.FindOne(ctx, companyID, objectID, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperrors.NewNotFoundError(MsgCheckNotFound)
		}

		checkTypeID := existing.CheckTypeID
		if patch.CheckTypeID != nil {
			exists, err := s.checkTypeRepo.ExistsInCompany(ctx, companyID, *patch.CheckTypeID)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.NewNotFoundError(MsgTypeIsNotFound)
			}
			checkTypeID = *patch.CheckTypeID
		}

		templateID := existing.TemplateID
		if patch.TemplateID != nil {
			exists, err := s.templateRepo.ExistsInCompany(ctx, companyID, *patch.TemplateID)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.NewNotFoundError(MsgTemplateIsNotFound)
			}
			templateID = *patch.TemplateID
		}

		if patch.InspectorID != nil && patch.InspectorID.Valid {
			approved, err := s.inspectorRepo.ExistsApproved(ctx, companyID, patch.InspectorID.Int64)
			if err != nil {
				return err
			}
			if !approved {
				return apperrors.NewNotFoundError(MsgInspectorIsNotFound)
			}
		}

		paired, err := s.templateRepo.ExistsForCheckType(ctx, companyID, templateID, checkTypeID)
		if err != nil {
			return err
		}
		if !paired {
			return apperrors.NewBadRequestError(MsgCheckTypeNotSuitable)
		}

		changes = patch.Values(s.now())
		updated, err := s.checkRepo.Update(ctx, companyID, objectID, id, changes)
		if err != nil {
			return err
		}
		if updated == nil {
			return apperrors.NewNotFoundError(MsgCheckNotFound)
		}

		view, err = s.checkRepo.FindView(ctx, companyID, objectID, id)
		if err != nil {
			return err
		}
		if view == nil {
			return apperrors.NewInternalError(MsgFailedToReturnData, fmt.Errorf("проверка %d не найдена после обновления", id))
		}
		return nil
	})
	if err != nil {
		s.logRejection("Проверка не обновлена", err, zap.Int64("company_id", companyID), zap.Int64("check_id", id))
		return nil, err
	}

	s.CacheDel(ctx, objectCheckCacheKey(companyID, objectID, id))
	s.publish(ctx, events.ObjectCheckUpdatedEvent{
		ObjectCheckRef: events.ObjectCheckRef{CompanyID: companyID, ObjectID: objectID, CheckID: id, ActorID: actorID},
		Changes:        changes,
	})

	res := dto.NewObjectCheckDTO(*view)
	return &res, nil
}

// Delete возвращает ErrNotModified, если строка исчезла между проверкой и удалением.
func (s *ObjectCheckService) Delete(ctx context.Context, objectID, id int64) error {
	actorID, companyID, err := s.Caller(ctx)
	if err != nil {
		return err
	}

	existing, err := s.checkRepo.FindOne(ctx, companyID, objectID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		s.logger.Warn("Удаление несуществующей проверки", zap.Int64("company_id", companyID), zap.Int64("check_id", id))
		return apperrors.NewNotFoundError(MsgCheckNotFound)
	}

	affected, err := s.checkRepo.Delete(ctx, companyID, objectID, id)
	if err != nil {
		s.logger.Error("Ошибка удаления проверки", zap.Int64("check_id", id), zap.Error(err))
		return err
	}

	s.CacheDel(ctx, objectCheckCacheKey(companyID, objectID, id))
	if affected == 0 {
		return apperrors.ErrNotModified
	}

	s.publish(ctx, events.ObjectCheckDeletedEvent{
		ObjectCheckRef: events.ObjectCheckRef{CompanyID: companyID, ObjectID: objectID, CheckID: id, ActorID: actorID},
	})
	return nil
}

func (s *ObjectCheckService) Find(ctx context.Context, objectID, id int64) (*dto.ObjectCheckDTO, error) {
	_, companyID, err := s.Caller(ctx)
	if err != nil {
		return nil, err
	}

	key := objectCheckCacheKey(companyID, objectID, id)
	var cached dto.ObjectCheckDTO
	if s.CacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	view, err := s.checkRepo.FindView(ctx, companyID, objectID, id)
	if err != nil {
		s.logger.Error("Ошибка получения проверки", zap.Int64("check_id", id), zap.Error(err))
		return nil, err
	}
	if view == nil {
		return nil, apperrors.NewNotFoundError(MsgCheckNotFound)
	}

	res := dto.NewObjectCheckDTO(*view)
	s.CacheSet(ctx, key, res, s.settings.CacheTTL)
	return &res, nil
}

// FindByPage возвращает страницу проверок объекта. Страница за пределами коллекции - 404,
// кроме первой страницы пустой коллекции.
func (s *ObjectCheckService) FindByPage(ctx context.Context, objectID int64, q dto.ListObjectChecksQuery) (*dto.ObjectCheckListDTO, error) {
	_, companyID, err := s.Caller(ctx)
	if err != nil {
		return nil, err
	}

	exists, err := s.objectRepo.ExistsInCompany(ctx, companyID, objectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(MsgObjectNotFound)
	}

	page, perPage := q.Page, q.PerPage
	if page == 0 {
		page = 1
	}
	if perPage == 0 {
		perPage = s.settings.DefaultPerPage
	}
	window := utils.Paginate(page, perPage, s.settings.MaxPerPage)

	views, total, err := s.checkRepo.FindByPage(ctx, companyID, objectID, types.ListParams{
		Sort:      q.Sort,
		Direction: q.Direction,
		Window:    window,
	})
	if err != nil {
		s.logger.Error("Ошибка получения списка проверок", zap.Int64("object_id", objectID), zap.Error(err))
		return nil, err
	}

	info, ok := utils.NewPageInfo(total, window)
	if !ok {
		if total != 0 || window.Page != 1 {
			return nil, apperrors.NewNotFoundError(MsgPageNotFound)
		}
		info = utils.EmptyPageInfo()
	}

	checks := make([]dto.ObjectCheckDTO, 0, len(views))
	for _, view := range views {
		checks = append(checks, dto.NewObjectCheckDTO(view))
	}
	return &dto.ObjectCheckListDTO{Checks: checks, PageInfo: info}, nil
}

func (s *ObjectCheckService) Export(ctx context.Context, objectID int64) (*ObjectCheckExport, error) {
	_, companyID, err := s.Caller(ctx)
	if err != nil {
		return nil, err
	}

	object, err := s.objectRepo.FindByID(ctx, companyID, objectID)
	if err != nil {
		return nil, err
	}
	if object == nil {
		return nil, apperrors.NewNotFoundError(MsgObjectNotFound)
	}

	views, err := s.checkRepo.FindAllViews(ctx, companyID, objectID)
	if err != nil {
		s.logger.Error("Ошибка выгрузки проверок", zap.Int64("object_id", objectID), zap.Error(err))
		return nil, err
	}

	checks := make([]dto.ObjectCheckDTO, 0, len(views))
	for _, view := range views {
		checks = append(checks, dto.NewObjectCheckDTO(view))
	}
	return &ObjectCheckExport{Object: *object, Checks: checks}, nil
}

func (s *ObjectCheckService) publish(ctx context.Context, event eventbus.Event) {
	if s.publisher != nil {
		s.publisher.Publish(ctx, event)
	}
}

// logRejection: бизнес-отказы (4xx) - Warn, остальное - Error.
func (s *ObjectCheckService) logRejection(msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if apperrors.StatusCode(err) < 500 {
		s.logger.Warn(msg, fields...)
		return
	}
	s.logger.Error(msg, fields...)
}
