package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"inspection-system/internal/entities"
	"inspection-system/internal/repositories"
	"inspection-system/pkg/eventbus"
	"inspection-system/pkg/types"
)

type fakeTxManager struct{ calls int }

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

var _ repositories.TxManagerInterface = (*fakeTxManager)(nil)

type mockCheckRepo struct{ mock.Mock }

func (m *mockCheckRepo) Create(ctx context.Context, check entities.NewObjectCheck) (*entities.ObjectCheck, error) {
	args := m.Called(ctx, check)
	if v, ok := args.Get(0).(*entities.ObjectCheck); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCheckRepo) Update(ctx context.Context, companyID, objectID, id int64, values map[string]interface{}) (*entities.ObjectCheck, error) {
	args := m.Called(ctx, companyID, objectID, id, values)
	if v, ok := args.Get(0).(*entities.ObjectCheck); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCheckRepo) Delete(ctx context.Context, companyID, objectID, id int64) (int64, error) {
	args := m.Called(ctx, companyID, objectID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCheckRepo) FindOne(ctx context.Context, companyID, objectID, id int64) (*entities.ObjectCheck, error) {
	args := m.Called(ctx, companyID, objectID, id)
	if v, ok := args.Get(0).(*entities.ObjectCheck); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCheckRepo) FindView(ctx context.Context, companyID, objectID, id int64) (*entities.ObjectCheckView, error) {
	args := m.Called(ctx, companyID, objectID, id)
	if v, ok := args.Get(0).(*entities.ObjectCheckView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCheckRepo) FindByPage(ctx context.Context, companyID, objectID int64, params types.ListParams) ([]entities.ObjectCheckView, uint64, error) {
	args := m.Called(ctx, companyID, objectID, params)
	if v, ok := args.Get(0).([]entities.ObjectCheckView); ok {
		return v, args.Get(1).(uint64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockCheckRepo) FindAllViews(ctx context.Context, companyID, objectID int64) ([]entities.ObjectCheckView, error) {
	args := m.Called(ctx, companyID, objectID)
	if v, ok := args.Get(0).([]entities.ObjectCheckView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repositories.ObjectCheckRepositoryInterface = (*mockCheckRepo)(nil)

type mockObjectRepo struct{ mock.Mock }

func (m *mockObjectRepo) ExistsInCompany(ctx context.Context, companyID, id int64) (bool, error) {
	args := m.Called(ctx, companyID, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockObjectRepo) FindByID(ctx context.Context, companyID, id int64) (*entities.CompanyObjectView, error) {
	args := m.Called(ctx, companyID, id)
	if v, ok := args.Get(0).(*entities.CompanyObjectView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repositories.ObjectRepositoryInterface = (*mockObjectRepo)(nil)

type mockCheckTypeRepo struct{ mock.Mock }

func (m *mockCheckTypeRepo) ExistsInCompany(ctx context.Context, companyID, id int64) (bool, error) {
	args := m.Called(ctx, companyID, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCheckTypeRepo) FindByID(ctx context.Context, companyID, id int64) (*entities.CheckType, error) {
	args := m.Called(ctx, companyID, id)
	if v, ok := args.Get(0).(*entities.CheckType); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repositories.CheckTypeRepositoryInterface = (*mockCheckTypeRepo)(nil)

type mockTemplateRepo struct{ mock.Mock }

func (m *mockTemplateRepo) ExistsInCompany(ctx context.Context, companyID, id int64) (bool, error) {
	args := m.Called(ctx, companyID, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockTemplateRepo) ExistsForCheckType(ctx context.Context, companyID, id, checkTypeID int64) (bool, error) {
	args := m.Called(ctx, companyID, id, checkTypeID)
	return args.Bool(0), args.Error(1)
}

var _ repositories.TemplateRepositoryInterface = (*mockTemplateRepo)(nil)

type mockInspectorRepo struct{ mock.Mock }

func (m *mockInspectorRepo) ExistsApproved(ctx context.Context, companyID, id int64) (bool, error) {
	args := m.Called(ctx, companyID, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockInspectorRepo) FindProfile(ctx context.Context, companyID, id int64) (*entities.InspectorProfile, error) {
	args := m.Called(ctx, companyID, id)
	if v, ok := args.Get(0).(*entities.InspectorProfile); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repositories.InspectorRepositoryInterface = (*mockInspectorRepo)(nil)

// memoryCache - кэш в памяти для тестов.
type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
	dels []string
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string]string{}} }

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	}
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		c.dels = append(c.dels, k)
	}
	return nil
}

var _ repositories.CacheRepositoryInterface = (*memoryCache)(nil)

type recordingPublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

var _ EventPublisher = (*recordingPublisher)(nil)
