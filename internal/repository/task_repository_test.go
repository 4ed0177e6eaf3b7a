package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/todo-cli/internal/constants"
	apperrors "github.com/yukikurage/todo-cli/internal/errors"
	"github.com/yukikurage/todo-cli/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TaskRepositoryTestSuite runs the repository against a real sqlite file
type TaskRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo TaskRepository
	ctx  context.Context
}

func (suite *TaskRepositoryTestSuite) SetupTest() {
	var err error

	path := filepath.Join(suite.T().TempDir(), "todo.db")
	suite.db, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(&models.Task{}))

	suite.repo = NewTaskRepository(suite.db)
	suite.ctx = context.Background()
}

func (suite *TaskRepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskRepositoryTestSuite) createTask(name, detail string) *models.Task {
	task := &models.Task{Name: name, Detail: detail}
	suite.Require().NoError(suite.repo.Create(suite.ctx, task))
	return task
}

func (suite *TaskRepositoryTestSuite) TestCreate_AssignsCodeAndDefaults() {
	task := suite.createTask("  Buy milk ", "2 liters")

	suite.Len(task.Code, constants.TaskCodeLength)
	suite.Equal(models.TaskStatusPending, task.Status)
	suite.Equal("Buy milk", task.Name)
	suite.False(task.CreatedAt.IsZero())

	var stored models.Task
	suite.Require().NoError(suite.db.Where("code = ?", task.Code).First(&stored).Error)
	suite.Equal("Buy milk", stored.Name)
}

func (suite *TaskRepositoryTestSuite) TestCreate_CodesAreUnique() {
	first := suite.createTask("Same name", "one")
	second := suite.createTask("Same name", "two")

	suite.NotEqual(first.Code, second.Code)
}

func (suite *TaskRepositoryTestSuite) TestCreate_ValidationErrors() {
	tests := []struct {
		name string
		task models.Task
	}{
		{"missing name", models.Task{Detail: "2 liters"}},
		{"missing detail", models.Task{Name: "Buy milk"}},
		{"blank detail", models.Task{Name: "Buy milk", Detail: "   "}},
		{"bad status", models.Task{Name: "Buy milk", Detail: "2 liters", Status: "archived"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			task := tt.task
			err := suite.repo.Create(suite.ctx, &task)
			suite.True(apperrors.IsValidation(err), "expected ValidationError, got %v", err)
		})
	}

	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	suite.Zero(count)
}

func (suite *TaskRepositoryTestSuite) TestFindByCode() {
	task := suite.createTask("Buy milk", "2 liters")

	found, err := suite.repo.FindByCode(suite.ctx, task.Code)
	suite.Require().NoError(err)
	suite.Equal(task.Name, found.Name)

	_, err = suite.repo.FindByCode(suite.ctx, "missing000")
	suite.ErrorIs(err, ErrTaskNotFound)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *TaskRepositoryTestSuite) TestDeleteByCode() {
	task := suite.createTask("Buy milk", "2 liters")

	count, err := suite.repo.DeleteByCode(suite.ctx, "missing000")
	suite.Require().NoError(err)
	suite.Zero(count)

	count, err = suite.repo.DeleteByCode(suite.ctx, task.Code)
	suite.Require().NoError(err)
	suite.EqualValues(1, count)

	_, err = suite.repo.FindByCode(suite.ctx, task.Code)
	suite.True(apperrors.IsNotFound(err))

	count, err = suite.repo.DeleteByCode(suite.ctx, task.Code)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *TaskRepositoryTestSuite) TestUpdateByCode_KeepsCode() {
	task := suite.createTask("Buy milk", "2 liters")
	name := "  X "
	status := models.TaskStatusPending

	err := suite.repo.UpdateByCode(suite.ctx, task.Code, TaskUpdate{Name: &name, Status: &status})
	suite.Require().NoError(err)

	found, err := suite.repo.FindByCode(suite.ctx, task.Code)
	suite.Require().NoError(err)
	suite.Equal("X", found.Name)
	suite.Equal("2 liters", found.Detail)
	suite.Equal(task.Code, found.Code)
	suite.Equal(task.ID, found.ID)
}

func (suite *TaskRepositoryTestSuite) TestUpdateByCode_EmptyUpdateIsNoop() {
	task := suite.createTask("Buy milk", "2 liters")

	suite.Require().NoError(suite.repo.UpdateByCode(suite.ctx, task.Code, TaskUpdate{}))

	found, err := suite.repo.FindByCode(suite.ctx, task.Code)
	suite.Require().NoError(err)
	suite.Equal("Buy milk", found.Name)

	err = suite.repo.UpdateByCode(suite.ctx, "missing000", TaskUpdate{})
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *TaskRepositoryTestSuite) TestUpdateByCode_Validation() {
	task := suite.createTask("Buy milk", "2 liters")
	empty := " "
	bad := models.TaskStatus("archived")

	err := suite.repo.UpdateByCode(suite.ctx, task.Code, TaskUpdate{Detail: &empty})
	suite.True(apperrors.IsValidation(err))

	err = suite.repo.UpdateByCode(suite.ctx, task.Code, TaskUpdate{Status: &bad})
	suite.True(apperrors.IsValidation(err))

	found, err := suite.repo.FindByCode(suite.ctx, task.Code)
	suite.Require().NoError(err)
	suite.Equal("2 liters", found.Detail)
	suite.Equal(models.TaskStatusPending, found.Status)
}

func (suite *TaskRepositoryTestSuite) TestUpdateByCode_RefusesCompleted() {
	for _, raw := range []string{"completed", " completed", "completed "} {
		task := suite.createTask("Buy milk", "2 liters")
		status := models.TaskStatus(raw)

		err := suite.repo.UpdateByCode(suite.ctx, task.Code, TaskUpdate{Status: &status})

		suite.ErrorIs(err, ErrCompletedNotStored, "status %q", raw)
		found, err := suite.repo.FindByCode(suite.ctx, task.Code)
		suite.Require().NoError(err)
		suite.Equal(models.TaskStatusPending, found.Status)
	}
}

func (suite *TaskRepositoryTestSuite) TestUpdateByCode_NotFound() {
	name := "X"

	err := suite.repo.UpdateByCode(suite.ctx, "missing000", TaskUpdate{Name: &name})

	suite.True(apperrors.IsNotFound(err))
}

func (suite *TaskRepositoryTestSuite) TestList_FilterAndPaginate() {
	for i := 0; i < 3; i++ {
		suite.createTask("pending task", "detail")
	}
	done := suite.createTask("done task", "detail")
	suite.Require().NoError(suite.db.Model(&models.Task{}).Where("code = ?", done.Code).
		Update("status", models.TaskStatusCompleted).Error)

	tasks, total, err := suite.repo.List(suite.ctx, TaskFilter{Page: 1, PageSize: 2})
	suite.Require().NoError(err)
	suite.EqualValues(4, total)
	suite.Len(tasks, 2)

	completed := models.TaskStatusCompleted
	tasks, total, err = suite.repo.List(suite.ctx, TaskFilter{Status: &completed})
	suite.Require().NoError(err)
	suite.EqualValues(1, total)
	suite.Require().Len(tasks, 1)
	suite.Equal(done.Code, tasks[0].Code)
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}

func newMockRepository(t *testing.T) (TaskRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewTaskRepository(db), mock
}

func TestFindByCode_PersistenceError(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("SELECT \\* FROM `tasks` WHERE code = \\?").
		WillReturnError(errors.New("connection reset by peer"))

	_, err := repo.FindByCode(context.Background(), "abc")

	assert.True(t, apperrors.IsPersistence(err))
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByCode_ReturnsAffectedRows(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("DELETE FROM `tasks` WHERE code = \\?").
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := repo.DeleteByCode(context.Background(), "abc")

	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByCode_PersistenceError(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("DELETE FROM `tasks`").
		WillReturnError(errors.New("read-only replica"))

	count, err := repo.DeleteByCode(context.Background(), "abc")

	assert.Zero(t, count)
	assert.True(t, apperrors.IsPersistence(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_PersistenceError(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("INSERT INTO `tasks`").
		WillReturnError(errors.New("disk full"))

	err := repo.Create(context.Background(), &models.Task{Name: "Buy milk", Detail: "2 liters"})

	assert.True(t, apperrors.IsPersistence(err))
	assert.False(t, apperrors.IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
