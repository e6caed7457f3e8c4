package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caloriq-backend/models"
)

func TestOpen_CreatesUsersTable(t *testing.T) {
	db, err := Open(DriverSQLite, "file:dbopen?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasColumn(&models.User{}, "full_name"))
	assert.True(t, db.Migrator().HasColumn(&models.User{}, "password"))
}

func TestOpen_IsIdempotent(t *testing.T) {
	dsn := "file:dbidem?mode=memory&cache=shared"
	first, err := Open(DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(first) })

	require.NoError(t, first.Create(&models.User{Username: "keep", Password: "x"}).Error)

	second, err := Open(DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(second) })

	var count int64
	require.NoError(t, second.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}
