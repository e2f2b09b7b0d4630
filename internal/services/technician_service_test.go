package services

import (
	"strings"
	"testing"
	"time"

	"github.com/fidias-dev/technician-agenda/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func technicianInput(documentID string) *dto.TechnicianInput {
	return &dto.TechnicianInput{
		Name:       "Pedro",
		Surname:    "Rojas",
		DocumentID: documentID,
		BirthDate:  time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Region:     7,
		Comuna:     "Santiago",
		Phone:      "+56912345678",
	}
}

func TestTechnicianCreate(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStorage(t)
	user := createTestUser(t, db, "operator")
	service := NewTechnicianService(db, store, false)

	technician, err := service.Create(user.ID, technicianInput("12.345.678-9"), nil)
	require.NoError(t, err)
	assert.Equal(t, user.ID, technician.UserID)
	assert.Nil(t, technician.PhotoPath)
}

func TestTechnicianCreateWithPhoto(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStorage(t)
	user := createTestUser(t, db, "operator")
	service := NewTechnicianService(db, store, false)

	photo := &PhotoUpload{Name: "face.jpg", Content: strings.NewReader("jpeg-bytes")}
	technician, err := service.Create(user.ID, technicianInput("12.345.678-9"), photo)
	require.NoError(t, err)
	require.NotNil(t, technician.PhotoPath)
	assert.True(t, store.Exists(*technician.PhotoPath))
}

func TestTechnicianDuplicateDocument(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStorage(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	service := NewTechnicianService(db, store, false)

	_, err := service.Create(alice.ID, technicianInput("12.345.678-9"), nil)
	require.NoError(t, err)

	// The document id is unique across owners
	_, err = service.Create(bob.ID, technicianInput("12.345.678-9"), nil)
	assert.ErrorIs(t, err, ErrDuplicateDocument)

	// Updating a technician onto a taken document also fails
	other, err := service.Create(alice.ID, technicianInput("98.765.432-1"), nil)
	require.NoError(t, err)

	_, err = service.Update(alice.ID, other.ID, technicianInput("12.345.678-9"), nil)
	assert.ErrorIs(t, err, ErrDuplicateDocument)

	// Keeping its own document is not a collision
	_, err = service.Update(alice.ID, other.ID, technicianInput("98.765.432-1"), nil)
	assert.NoError(t, err)
}

func TestTechnicianUpdateReplacesPhoto(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStorage(t)
	user := createTestUser(t, db, "operator")
	service := NewTechnicianService(db, store, false)

	first := &PhotoUpload{Name: "old.jpg", Content: strings.NewReader("old")}
	technician, err := service.Create(user.ID, technicianInput("12.345.678-9"), first)
	require.NoError(t, err)
	oldPath := *technician.PhotoPath

	second := &PhotoUpload{Name: "new.jpg", Content: strings.NewReader("new")}
	updated, err := service.Update(user.ID, technician.ID, technicianInput("12.345.678-9"), second)
	require.NoError(t, err)

	assert.NotEqual(t, oldPath, *updated.PhotoPath)
	assert.False(t, store.Exists(oldPath))
	assert.True(t, store.Exists(*updated.PhotoPath))
}

func TestTechnicianDeleteRemovesPhoto(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStorage(t)
	user := createTestUser(t, db, "operator")
	service := NewTechnicianService(db, store, false)

	photo := &PhotoUpload{Name: "face.jpg", Content: strings.NewReader("jpeg-bytes")}
	technician, err := service.Create(user.ID, technicianInput("12.345.678-9"), photo)
	require.NoError(t, err)
	path := *technician.PhotoPath

	require.NoError(t, service.Delete(user.ID, technician.ID))
	assert.False(t, store.Exists(path))

	_, err = service.Get(user.ID, technician.ID)
	assert.ErrorIs(t, err, ErrTechnicianNotFound)
}

func TestTechnicianOwnershipScope(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStorage(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	scoped := NewTechnicianService(db, store, false)
	technician, err := scoped.Create(alice.ID, technicianInput("12.345.678-9"), nil)
	require.NoError(t, err)

	_, err = scoped.Get(bob.ID, technician.ID)
	assert.ErrorIs(t, err, ErrTechnicianNotFound)

	// A shared directory exposes every technician to every owner
	shared := NewTechnicianService(db, store, true)
	got, err := shared.Get(bob.ID, technician.ID)
	require.NoError(t, err)
	assert.Equal(t, technician.ID, got.ID)
}

func TestTechnicianSummary(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStorage(t)
	user := createTestUser(t, db, "operator")
	service := NewTechnicianService(db, store, false)

	_, err := service.Create(user.ID, technicianInput("12.345.678-9"), nil)
	require.NoError(t, err)

	summaries, err := service.Summary(user.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Pedro Rojas", summaries[0].FullName)
	assert.Equal(t, "12.345.678-9", summaries[0].DocumentID)
}

func TestTechnicianInputValidation(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStorage(t)
	user := createTestUser(t, db, "operator")
	service := NewTechnicianService(db, store, false)

	input := technicianInput("")
	_, err := service.Create(user.ID, input, nil)
	assert.Error(t, err)

	input = technicianInput("12.345.678-9")
	input.BirthDate = time.Time{}
	_, err = service.Create(user.ID, input, nil)
	assert.Error(t, err)
}
