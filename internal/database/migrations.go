package database

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/yukikurage/task-assigner/internal/models"
	"gorm.io/gorm"
)

type compositeIndex struct {
	model   interface{}
	table   string
	name    string
	columns []string
}

// Composite indexes backing the list filters. Single-column indexes live on the
// model tags.
var compositeIndexes = []compositeIndex{
	{&models.Project{}, "projects", "idx_projects_status_created_at", []string{"status", "created_at"}},
	{&models.Task{}, "tasks", "idx_tasks_project_id_status", []string{"project_id", "status"}},
	{&models.Task{}, "tasks", "idx_tasks_assignee_id_status", []string{"assignee_id", "status"}},
	{&models.SubmittedTask{}, "submitted_tasks", "idx_submitted_tasks_task_id_is_approved", []string{"task_id", "is_approved"}},
	{&models.SubmittedTask{}, "submitted_tasks", "idx_submitted_tasks_project_id_submission_date", []string{"project_id", "submission_date"}},
}

// EnsureIndexes creates the composite indexes that do not exist yet. It is safe to
// run on every start.
func EnsureIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range compositeIndexes {
		if migrator.HasIndex(idx.model, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, strings.Join(idx.columns, ", "))
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name, "table", idx.table, "columns", idx.columns)
	}

	return nil
}
