package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fidias-dev/technician-agenda/internal/cache"
	"github.com/fidias-dev/technician-agenda/internal/dto"
	"github.com/fidias-dev/technician-agenda/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// spyCache counts operations while delegating to a real in-memory cache.
type spyCache struct {
	inner   cache.Cache
	gets    int
	hits    int
	sets    int
	deletes int
}

func newSpyCache() *spyCache {
	return &spyCache{inner: cache.NewMemory()}
}

func (s *spyCache) Get(ctx context.Context, key string) ([]byte, error) {
	s.gets++
	payload, err := s.inner.Get(ctx, key)
	if err == nil {
		s.hits++
	}
	return payload, err
}

func (s *spyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.sets++
	return s.inner.Set(ctx, key, value, ttl)
}

func (s *spyCache) Delete(ctx context.Context, key string) error {
	s.deletes++
	return s.inner.Delete(ctx, key)
}

// brokenCache fails every operation.
type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("cache down")
}

func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("cache down")
}

func (brokenCache) Delete(context.Context, string) error {
	return errors.New("cache down")
}

type workFixture struct {
	db          *gorm.DB
	user        *models.User
	client      *models.Client
	direction   *models.Direction
	category    *models.JobCategory
	subcategory *models.JobSubcategory
	technician  *models.Technician
}

func setupWorkFixture(t *testing.T) *workFixture {
	t.Helper()

	db := setupTestDB(t)
	user := createTestUser(t, db, "operator")
	client := createTestClient(t, db, user.ID, "Ana")
	direction := createTestDirection(t, db, client.ID)
	category, subcategory := createTestCatalog(t, db)
	technician := createTestTechnician(t, db, user.ID, "12.345.678-9")

	return &workFixture{
		db:          db,
		user:        user,
		client:      client,
		direction:   direction,
		category:    category,
		subcategory: subcategory,
		technician:  technician,
	}
}

func (f *workFixture) request() *dto.WorkRequest {
	return &dto.WorkRequest{
		JobCategoryID:    f.category.ID,
		JobSubcategoryID: f.subcategory.ID,
		Details:          "Cambio de enchufes en cocina",
		Date:             time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
		Cost:             decimal.NewFromInt(20000),
		AmountToCharge:   decimal.NewFromInt(45000),
		PaymentStatus:    models.PaymentPending,
		ClientID:         f.client.ID,
		DirectionID:      f.direction.ID,
		TechnicianID:     &f.technician.ID,
		TechnicianFee:    decimal.NewFromInt(15000),
	}
}

func (f *workFixture) service(c cache.Cache, t *testing.T) *WorkService {
	return NewWorkService(f.db, c, setupTestStorage(t), false)
}

func TestWorkCreateAndGet(t *testing.T) {
	f := setupWorkFixture(t)
	service := f.service(cache.NewMemory(), t)
	ctx := context.Background()

	created, err := service.Create(ctx, f.user.ID, f.request())
	require.NoError(t, err)
	assert.Equal(t, 1, created.Version)
	assert.Equal(t, models.PaymentPending, created.PaymentStatus)
	assert.True(t, created.AmountToCharge.Equal(decimal.NewFromInt(45000)))

	// The projection carries the referenced rows
	require.NotNil(t, created.Client)
	assert.Equal(t, "Ana", created.Client.Name)
	require.NotNil(t, created.Direction)
	assert.Equal(t, f.direction.Street, created.Direction.Street)
	require.NotNil(t, created.Technician)

	got, err := service.Get(f.user.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestWorkListCacheAside(t *testing.T) {
	f := setupWorkFixture(t)
	spy := newSpyCache()
	service := f.service(spy, t)
	ctx := context.Background()

	_, err := service.Create(ctx, f.user.ID, f.request())
	require.NoError(t, err)

	// Count SELECTs against the works table to prove the second read never
	// reaches the store
	var workQueries int
	err = f.db.Callback().Query().After("gorm:query").Register("count_work_queries", func(d *gorm.DB) {
		if d.Statement.Table == "works" {
			workQueries++
		}
	})
	require.NoError(t, err)

	first, err := service.List(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 0, spy.hits)
	assert.Equal(t, 1, spy.sets)
	assert.Equal(t, 1, workQueries)

	// The second read is served from the cache and matches the first
	second, err := service.List(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, spy.hits)
	assert.Equal(t, 1, spy.sets)
	assert.Equal(t, 1, workQueries)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].Details, second[0].Details)
	assert.True(t, first[0].AmountToCharge.Equal(second[0].AmountToCharge))
	assert.True(t, first[0].Date.Equal(second[0].Date))
}

func TestWorkMutationsInvalidateList(t *testing.T) {
	f := setupWorkFixture(t)
	spy := newSpyCache()
	service := f.service(spy, t)
	ctx := context.Background()

	created, err := service.Create(ctx, f.user.ID, f.request())
	require.NoError(t, err)

	works, err := service.List(ctx, f.user.ID)
	require.NoError(t, err)
	assert.False(t, works[0].Completed)

	// Patch drops the cached list so the next read sees the change
	_, err = service.SetCompleted(ctx, f.user.ID, created.ID, true)
	require.NoError(t, err)

	works, err = service.List(ctx, f.user.ID)
	require.NoError(t, err)
	assert.True(t, works[0].Completed)

	_, err = service.SetTechnicianPaid(ctx, f.user.ID, created.ID, true)
	require.NoError(t, err)

	works, err = service.List(ctx, f.user.ID)
	require.NoError(t, err)
	assert.True(t, works[0].TechnicianPaid)

	require.NoError(t, service.Delete(ctx, f.user.ID, created.ID))

	works, err = service.List(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, works)
}

func TestWorkListSurvivesBrokenCache(t *testing.T) {
	f := setupWorkFixture(t)
	service := f.service(brokenCache{}, t)
	ctx := context.Background()

	created, err := service.Create(ctx, f.user.ID, f.request())
	require.NoError(t, err)

	works, err := service.List(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, works, 1)
	assert.Equal(t, created.ID, works[0].ID)
}

func TestWorkValidation(t *testing.T) {
	f := setupWorkFixture(t)
	service := f.service(cache.NewMemory(), t)
	ctx := context.Background()

	stranger := createTestUser(t, f.db, "stranger")
	strangersClient := createTestClient(t, f.db, stranger.ID, "otro")
	strangersDirection := createTestDirection(t, f.db, strangersClient.ID)
	strangersTechnician := createTestTechnician(t, f.db, stranger.ID, "5.555.555-5")

	tests := []struct {
		name    string
		mutate  func(r *dto.WorkRequest)
		wantErr error
	}{
		{
			name:    "missing client",
			mutate:  func(r *dto.WorkRequest) { r.ClientID = 999 },
			wantErr: ErrUnknownClient,
		},
		{
			name:    "client of another owner",
			mutate:  func(r *dto.WorkRequest) { r.ClientID = strangersClient.ID },
			wantErr: ErrUnknownClient,
		},
		{
			name:    "direction of another owner's client",
			mutate:  func(r *dto.WorkRequest) { r.DirectionID = strangersDirection.ID },
			wantErr: ErrUnknownDirection,
		},
		{
			name:    "missing category",
			mutate:  func(r *dto.WorkRequest) { r.JobCategoryID = 999 },
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "missing subcategory",
			mutate:  func(r *dto.WorkRequest) { r.JobSubcategoryID = 999 },
			wantErr: ErrUnknownSubcategory,
		},
		{
			name:    "technician of another owner",
			mutate:  func(r *dto.WorkRequest) { r.TechnicianID = &strangersTechnician.ID },
			wantErr: ErrUnknownTechnician,
		},
		{
			name:    "negative amount",
			mutate:  func(r *dto.WorkRequest) { r.AmountToCharge = decimal.NewFromInt(-1) },
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "bogus payment status",
			mutate:  func(r *dto.WorkRequest) { r.PaymentStatus = "Maybe" },
			wantErr: ErrInvalidPayment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request()
			tt.mutate(req)
			_, err := service.Create(ctx, f.user.ID, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Nothing was persisted by the rejected requests
	var count int64
	f.db.Model(&models.Work{}).Count(&count)
	assert.Zero(t, count)
}

func TestWorkUpdateVersioning(t *testing.T) {
	f := setupWorkFixture(t)
	service := f.service(cache.NewMemory(), t)
	ctx := context.Background()

	created, err := service.Create(ctx, f.user.ID, f.request())
	require.NoError(t, err)
	require.Equal(t, 1, created.Version)

	req := f.request()
	req.Details = "Trabajo ampliado"
	req.Version = created.Version
	updated, err := service.Update(ctx, f.user.ID, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "Trabajo ampliado", updated.Details)

	// A stale version means someone else saved first
	stale := f.request()
	stale.Version = created.Version
	_, err = service.Update(ctx, f.user.ID, created.ID, stale)
	assert.ErrorIs(t, err, ErrVersionConflict)

	// Version zero skips the check for clients that do not track it
	unversioned := f.request()
	unversioned.Details = "Sin control de versión"
	bumped, err := service.Update(ctx, f.user.ID, created.ID, unversioned)
	require.NoError(t, err)
	assert.Equal(t, 3, bumped.Version)
}

func TestWorkPatchesDoNotBumpVersion(t *testing.T) {
	f := setupWorkFixture(t)
	service := f.service(cache.NewMemory(), t)
	ctx := context.Background()

	created, err := service.Create(ctx, f.user.ID, f.request())
	require.NoError(t, err)

	patched, err := service.SetCompleted(ctx, f.user.ID, created.ID, true)
	require.NoError(t, err)
	assert.True(t, patched.Completed)
	assert.Equal(t, created.Version, patched.Version)
}

func TestWorkOwnershipScope(t *testing.T) {
	f := setupWorkFixture(t)
	service := f.service(cache.NewMemory(), t)
	ctx := context.Background()

	created, err := service.Create(ctx, f.user.ID, f.request())
	require.NoError(t, err)

	stranger := createTestUser(t, f.db, "stranger")

	works, err := service.List(ctx, stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, works)

	_, err = service.Get(stranger.ID, created.ID)
	assert.ErrorIs(t, err, ErrWorkNotFound)

	_, err = service.SetCompleted(ctx, stranger.ID, created.ID, true)
	assert.ErrorIs(t, err, ErrWorkNotFound)

	err = service.Delete(ctx, stranger.ID, created.ID)
	assert.ErrorIs(t, err, ErrWorkNotFound)
}

func TestWorkPerOwnerCacheIsolation(t *testing.T) {
	f := setupWorkFixture(t)
	service := f.service(cache.NewMemory(), t)
	ctx := context.Background()

	_, err := service.Create(ctx, f.user.ID, f.request())
	require.NoError(t, err)

	stranger := createTestUser(t, f.db, "stranger")

	// Both lists go through the cache yet never mix
	mine, err := service.List(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	theirs, err := service.List(ctx, stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	mineAgain, err := service.List(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, mineAgain, 1)
}

func TestWorkDeleteRemovesAttachmentRows(t *testing.T) {
	f := setupWorkFixture(t)
	store := setupTestStorage(t)
	service := NewWorkService(f.db, cache.NewMemory(), store, false)
	ctx := context.Background()

	created, err := service.Create(ctx, f.user.ID, f.request())
	require.NoError(t, err)

	file := models.WorkFile{
		FileName: "antes.jpg",
		FilePath: "/uploads/does-not-exist.jpg",
		FileType: "image",
		WorkID:   created.ID,
	}
	require.NoError(t, f.db.Create(&file).Error)

	require.NoError(t, service.Delete(ctx, f.user.ID, created.ID))

	var count int64
	f.db.Model(&models.WorkFile{}).Count(&count)
	assert.Zero(t, count)
}
