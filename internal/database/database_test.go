package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-assigner/internal/config"
	"github.com/yukikurage/task-assigner/internal/models"
	"github.com/yukikurage/task-assigner/internal/utils"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Connect(&config.Config{DBDriver: "sqlite", SQLitePath: ":memory:", GinMode: "release"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestDialector_UnknownDriver(t *testing.T) {
	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestDialector_Names(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite"} {
		d, err := Dialector(&config.Config{DBDriver: driver, SQLitePath: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, driver, d.Name())
	}
}

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, Migrate(db))

	migrator := db.Migrator()
	for _, model := range []interface{}{
		&models.User{},
		&models.Project{},
		&models.ProjectContributor{},
		&models.Task{},
		&models.SubmittedTask{},
	} {
		assert.True(t, migrator.HasTable(model))
	}

	for _, idx := range compositeIndexes {
		assert.True(t, migrator.HasIndex(idx.model, idx.name), idx.name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
	require.NoError(t, EnsureIndexes(db))
}

func TestScopes(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, Migrate(db))

	for _, title := range []string{"a", "b", "c"} {
		project := models.Project{Name: title, Description: title, Status: models.StatusDraft}
		require.NoError(t, db.Create(&project).Error)
	}

	var page []models.Project
	err := db.Scopes(NewestFirst("created_at"), Paginate(utils.NewPaginationParams(2, 2))).Find(&page).Error
	require.NoError(t, err)
	assert.Len(t, page, 1)
}
