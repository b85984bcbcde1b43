package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	templateRepo "github.com/m04kA/TSB-SchedulingService/internal/infra/storage/template"
)

type fakeAvailabilityRepo struct {
	schedule domain.WeeklySchedule
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{schedule: make(domain.WeeklySchedule)}
}

func (f *fakeAvailabilityRepo) GetWeek(_ context.Context, _ int64) (domain.WeeklySchedule, error) {
	return f.schedule.Copy(), nil
}

func (f *fakeAvailabilityRepo) SetSlot(_ context.Context, _ int64, day, hour int, isAvailable bool) error {
	f.schedule.Set(day, hour, isAvailable)
	return nil
}

func (f *fakeAvailabilityRepo) ReplaceAll(_ context.Context, _ int64, schedule domain.WeeklySchedule) error {
	f.schedule = schedule.Copy()
	return nil
}

type fakeTemplateRepo struct {
	templates map[int64]*domain.AvailabilityTemplate
	nextID    int64
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[int64]*domain.AvailabilityTemplate)}
}

func (f *fakeTemplateRepo) Create(_ context.Context, tmpl *domain.AvailabilityTemplate) (*domain.AvailabilityTemplate, error) {
	f.nextID++
	tmpl.ID = f.nextID
	f.templates[tmpl.ID] = tmpl
	return tmpl, nil
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, artistID, id int64) (*domain.AvailabilityTemplate, error) {
	tmpl, ok := f.templates[id]
	if !ok || tmpl.ArtistID != artistID {
		return nil, templateRepo.ErrTemplateNotFound
	}
	return tmpl, nil
}

func (f *fakeTemplateRepo) ListByArtist(_ context.Context, artistID int64) ([]*domain.AvailabilityTemplate, error) {
	var out []*domain.AvailabilityTemplate
	for _, tmpl := range f.templates {
		if tmpl.ArtistID == artistID {
			out = append(out, tmpl)
		}
	}
	return out, nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, artistID, id int64) error {
	tmpl, ok := f.templates[id]
	if !ok || tmpl.ArtistID != artistID {
		return templateRepo.ErrTemplateNotFound
	}
	delete(f.templates, id)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeAvailabilityRepo, *fakeTemplateRepo) {
	availRepo := newFakeAvailabilityRepo()
	tmplRepo := newFakeTemplateRepo()
	svc := NewService(availRepo, tmplRepo, fakeTxManager{}, 8, 20, nopLogger{})
	return svc, availRepo, tmplRepo
}

func TestSetSlot_Bounds(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SetSlot(ctx, 1, 0, 8, true))
	require.NoError(t, svc.SetSlot(ctx, 1, 6, 19, true))

	tests := []struct {
		name string
		day  int
		hour int
	}{
		{name: "day too large", day: 7, hour: 10},
		{name: "negative day", day: -1, hour: 10},
		{name: "hour below window", day: 0, hour: 7},
		{name: "hour at window end", day: 0, hour: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SetSlot(ctx, 1, tt.day, tt.hour, true)
			assert.ErrorIs(t, err, ErrInvalidSlot)
		})
	}
}

func TestToggleSlot_PaintModes(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.ToggleSlot(ctx, 1, 0, 10, domain.PaintAvailable))
	assert.True(t, repo.schedule.IsAvailable(0, 10))

	// Повторное применение той же кисти идемпотентно
	require.NoError(t, svc.ToggleSlot(ctx, 1, 0, 10, domain.PaintAvailable))
	assert.True(t, repo.schedule.IsAvailable(0, 10))

	require.NoError(t, svc.ToggleSlot(ctx, 1, 0, 10, domain.PaintBlocked))
	assert.False(t, repo.schedule.IsAvailable(0, 10))

	err := svc.ToggleSlot(ctx, 1, 0, 10, domain.PaintMode("erase"))
	assert.ErrorIs(t, err, ErrInvalidPaintMode)
}

func TestCreateTemplate_SnapshotDoesNotAliasLiveGrid(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	repo.schedule.Set(0, 10, true)
	repo.schedule.Set(1, 11, true)

	tmpl, err := svc.CreateTemplate(ctx, 1, "будни")
	require.NoError(t, err)
	assert.Equal(t, "будни", tmpl.Name)
	assert.Equal(t, domain.RecurrenceWeekly, tmpl.Recurrence)

	// Правка живой сетки после снимка не меняет шаблон
	repo.schedule.Set(0, 10, false)
	assert.True(t, tmpl.Schedule.IsAvailable(0, 10))
}

func TestCreateTemplate_RejectsBlankName(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateTemplate(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestApplyTemplate_FullReplace(t *testing.T) {
	svc, repo, tmplRepo := newTestService()
	ctx := context.Background()

	// Шаблон содержит только понедельник 9
	tmpl := &domain.AvailabilityTemplate{
		ArtistID:   1,
		Name:       "утро",
		Schedule:   domain.WeeklySchedule{domain.NewSlotKey(0, 9): true},
		Recurrence: domain.RecurrenceWeekly,
	}
	created, err := tmplRepo.Create(ctx, tmpl)
	require.NoError(t, err)

	// Живая сетка содержит другие ячейки
	repo.schedule.Set(3, 14, true)
	repo.schedule.Set(5, 16, true)

	applied, err := svc.ApplyTemplate(ctx, 1, created.ID)
	require.NoError(t, err)

	// Полная замена: ячейки вне шаблона становятся недоступными
	assert.True(t, applied.IsAvailable(0, 9))
	assert.False(t, repo.schedule.IsAvailable(3, 14))
	assert.False(t, repo.schedule.IsAvailable(5, 16))
	assert.True(t, repo.schedule.IsAvailable(0, 9))
}

func TestApplyTemplate_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ApplyTemplate(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestDeleteTemplate(t *testing.T) {
	svc, _, tmplRepo := newTestService()
	ctx := context.Background()

	created, err := tmplRepo.Create(ctx, &domain.AvailabilityTemplate{ArtistID: 1, Name: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTemplate(ctx, 1, created.ID))
	assert.ErrorIs(t, svc.DeleteTemplate(ctx, 1, created.ID), ErrTemplateNotFound)
}

func TestDeleteTemplate_ForeignArtist(t *testing.T) {
	svc, _, tmplRepo := newTestService()
	ctx := context.Background()

	created, err := tmplRepo.Create(ctx, &domain.AvailabilityTemplate{ArtistID: 1, Name: "x"})
	require.NoError(t, err)

	// Чужой мастер шаблон не видит
	assert.ErrorIs(t, svc.DeleteTemplate(ctx, 2, created.ID), ErrTemplateNotFound)
}
