package service_test

import (
	"context"
	"errors"
	"sync"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/repository"
)

var errStorage = errors.New("storage down")

// MockCampaignRepo keeps campaigns in memory.
type MockCampaignRepo struct {
	rows   map[int64]*model.Campaign
	nextID int64
	Err    error
}

func NewMockCampaignRepo() *MockCampaignRepo {
	return &MockCampaignRepo{rows: map[int64]*model.Campaign{}}
}

func (m *MockCampaignRepo) List(ctx context.Context) ([]*model.Campaign, error) {
	out := []*model.Campaign{}
	for id := m.nextID; id > 0; id-- {
		if c, ok := m.rows[id]; ok {
			out = append(out, c)
		}
	}
	return out, m.Err
}

func (m *MockCampaignRepo) GetByID(ctx context.Context, id int64) (*model.Campaign, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.rows[id]
	if !ok {
		return nil, appErrors.NewNotFound(model.EntityCampaign, id)
	}
	cp := *c
	return &cp, nil
}

func (m *MockCampaignRepo) Create(ctx context.Context, c *model.Campaign) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *MockCampaignRepo) Update(ctx context.Context, c *model.Campaign) error {
	if _, ok := m.rows[c.ID]; !ok {
		return appErrors.NewNotFound(model.EntityCampaign, c.ID)
	}
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *MockCampaignRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, ok := m.rows[id]
	delete(m.rows, id)
	return ok, nil
}

func (m *MockCampaignRepo) Count(ctx context.Context) (int, error) {
	return len(m.rows), m.Err
}

func (m *MockCampaignRepo) Search(ctx context.Context, f model.SearchFilter) ([]model.CampaignSearchResult, error) {
	all, _ := m.List(ctx)
	var matched []*model.Campaign
	for _, c := range all {
		if f.Matches(c) {
			matched = append(matched, c)
		}
	}
	return model.WithCounts(matched, nil), nil
}

type MockAdGroupRepo struct {
	rows   map[int64]*model.AdGroup
	nextID int64
}

func NewMockAdGroupRepo() *MockAdGroupRepo {
	return &MockAdGroupRepo{rows: map[int64]*model.AdGroup{}}
}

func (m *MockAdGroupRepo) List(ctx context.Context) ([]*model.AdGroup, error) {
	out := []*model.AdGroup{}
	for _, g := range m.rows {
		out = append(out, g)
	}
	return out, nil
}

func (m *MockAdGroupRepo) ListByCampaign(ctx context.Context, campaignID int64) ([]*model.AdGroup, error) {
	out := []*model.AdGroup{}
	for id := int64(1); id <= m.nextID; id++ {
		if g, ok := m.rows[id]; ok && g.CampaignID == campaignID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *MockAdGroupRepo) GetByID(ctx context.Context, id int64) (*model.AdGroup, error) {
	g, ok := m.rows[id]
	if !ok {
		return nil, appErrors.NewNotFound(model.EntityAdGroup, id)
	}
	cp := *g
	return &cp, nil
}

func (m *MockAdGroupRepo) Create(ctx context.Context, g *model.AdGroup) error {
	m.nextID++
	g.ID = m.nextID
	cp := *g
	m.rows[g.ID] = &cp
	return nil
}

func (m *MockAdGroupRepo) Update(ctx context.Context, g *model.AdGroup) error {
	cp := *g
	m.rows[g.ID] = &cp
	return nil
}

func (m *MockAdGroupRepo) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := m.rows[id]
	delete(m.rows, id)
	return ok, nil
}

type MockAdRepo struct {
	rows   map[int64]*model.Ad
	nextID int64
}

func NewMockAdRepo() *MockAdRepo {
	return &MockAdRepo{rows: map[int64]*model.Ad{}}
}

func (m *MockAdRepo) List(ctx context.Context) ([]*model.Ad, error) {
	out := []*model.Ad{}
	for _, a := range m.rows {
		out = append(out, a)
	}
	return out, nil
}

func (m *MockAdRepo) ListByAdGroup(ctx context.Context, adGroupID int64) ([]*model.Ad, error) {
	out := []*model.Ad{}
	for id := int64(1); id <= m.nextID; id++ {
		if a, ok := m.rows[id]; ok && a.AdGroupID == adGroupID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockAdRepo) GetByID(ctx context.Context, id int64) (*model.Ad, error) {
	a, ok := m.rows[id]
	if !ok {
		return nil, appErrors.NewNotFound(model.EntityAd, id)
	}
	cp := *a
	return &cp, nil
}

func (m *MockAdRepo) Create(ctx context.Context, a *model.Ad) error {
	m.nextID++
	a.ID = m.nextID
	cp := *a
	m.rows[a.ID] = &cp
	return nil
}

func (m *MockAdRepo) Update(ctx context.Context, a *model.Ad) error {
	cp := *a
	m.rows[a.ID] = &cp
	return nil
}

func (m *MockAdRepo) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := m.rows[id]
	delete(m.rows, id)
	return ok, nil
}

type MockProgramRepo struct {
	rows   map[int64]*model.Program
	nextID int64
}

func NewMockProgramRepo() *MockProgramRepo {
	return &MockProgramRepo{rows: map[int64]*model.Program{}}
}

func (m *MockProgramRepo) List(ctx context.Context) ([]*model.Program, error) {
	out := []*model.Program{}
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockProgramRepo) GetByID(ctx context.Context, id int64) (*model.Program, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, appErrors.NewNotFound(model.EntityProgram, id)
	}
	cp := *p
	return &cp, nil
}

func (m *MockProgramRepo) Create(ctx context.Context, p *model.Program) error {
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *MockProgramRepo) Update(ctx context.Context, p *model.Program) error {
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *MockProgramRepo) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := m.rows[id]
	delete(m.rows, id)
	return ok, nil
}

func (m *MockProgramRepo) Count(ctx context.Context) (int, error) {
	return len(m.rows), nil
}

// recordingQueue captures published payloads.
type recordingQueue struct {
	mu     sync.Mutex
	events []model.ChangeEvent
	err    error
}

func (q *recordingQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	if ev, ok := payload.(model.ChangeEvent); ok {
		q.events = append(q.events, ev)
	}
	return nil
}

func (q *recordingQueue) Subscribe(string, func(any) error) error { return nil }
func (q *recordingQueue) Close() error                            { return nil }

func (q *recordingQueue) actions() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, 0, len(q.events))
	for _, ev := range q.events {
		out = append(out, ev.Entity+":"+ev.Action)
	}
	return out
}

var (
	_ repository.CampaignRepositoryInterface = (*MockCampaignRepo)(nil)
	_ repository.AdGroupRepositoryInterface  = (*MockAdGroupRepo)(nil)
	_ repository.AdRepositoryInterface       = (*MockAdRepo)(nil)
	_ repository.ProgramRepositoryInterface  = (*MockProgramRepo)(nil)
)
