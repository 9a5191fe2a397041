package technology

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techdigi/hr-backoffice/internal/domain/technology"
)

type memoryTechnologies struct {
	technology.TechnologyRepository
	seq  int
	byID map[string]technology.Technology
}

func (m *memoryTechnologies) Create(ctx context.Context, t technology.Technology) (technology.Technology, error) {
	for _, existing := range m.byID {
		if strings.EqualFold(existing.Name, t.Name) {
			return technology.Technology{}, technology.ErrTechnologyNameExists
		}
	}
	m.seq++
	t.ID = fmt.Sprintf("tech%d", m.seq)
	m.byID[t.ID] = t
	return t, nil
}

func (m *memoryTechnologies) GetByID(ctx context.Context, id string) (technology.Technology, error) {
	t, ok := m.byID[id]
	if !ok {
		return technology.Technology{}, technology.ErrTechnologyNotFound
	}
	return t, nil
}

func (m *memoryTechnologies) List(ctx context.Context) ([]technology.Technology, error) {
	var out []technology.Technology
	for i := 1; i <= m.seq; i++ {
		if t, ok := m.byID[fmt.Sprintf("tech%d", i)]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memoryTechnologies) Update(ctx context.Context, t technology.Technology) (technology.Technology, error) {
	m.byID[t.ID] = t
	return t, nil
}

func (m *memoryTechnologies) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return technology.ErrTechnologyNotFound
	}
	delete(m.byID, id)
	return nil
}

func newTestService() technology.TechnologyService {
	return NewTechnologyService(&memoryTechnologies{byID: map[string]technology.Technology{}})
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, technology.CreateRequest{Name: " Go ", IconString: "SiGo"})
	require.NoError(t, err)
	assert.Equal(t, "Go", created.Name)
	assert.Equal(t, technology.DefaultColorClass, created.ColorClass)
	assert.Equal(t, technology.CategoryFirstRow, created.Category)

	_, err = svc.Create(ctx, technology.CreateRequest{Name: "go", IconString: "SiGo"})
	assert.ErrorIs(t, err, technology.ErrTechnologyNameExists)

	_, err = svc.Create(ctx, technology.CreateRequest{Name: "Rust"})
	assert.Error(t, err)
}

func TestUpdateIsPartial(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, technology.CreateRequest{Name: "React", IconString: "FaReact", ColorClass: "text-sky-500"})
	require.NoError(t, err)

	second := technology.CategorySecondRow
	bogus := technology.Category("thirdRow")
	updated, err := svc.Update(ctx, technology.UpdateRequest{ID: created.ID, Category: &second})
	require.NoError(t, err)
	assert.Equal(t, technology.CategorySecondRow, updated.Category)
	assert.Equal(t, "text-sky-500", updated.ColorClass)

	updated, err = svc.Update(ctx, technology.UpdateRequest{ID: created.ID, Category: &bogus})
	require.NoError(t, err)
	assert.Equal(t, technology.CategorySecondRow, updated.Category)

	_, err = svc.Update(ctx, technology.UpdateRequest{ID: "missing"})
	assert.ErrorIs(t, err, technology.ErrTechnologyNotFound)
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, technology.CreateRequest{Name: "Docker", IconString: "FaDocker"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), technology.ErrTechnologyNotFound)
}
