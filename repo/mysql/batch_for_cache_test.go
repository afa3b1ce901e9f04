package mysql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/config"
)

func newBatchRepoWithSQLMock(t *testing.T) (TopicBatchOperationsRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	logger, err := core.NewZapLogger(commonConfig.ZapConfig{Level: "error", Encoding: "console"})
	require.NoError(t, err)

	repo := NewTopicBatchOperationsRepository(gdb, logger, config.ViewSyncConfig{
		BatchSize:        10,
		ConcurrencyLevel: 1,
	})
	return repo, dbMock
}

func TestBuildViewCountAssignExpr(t *testing.T) {
	batch := []updateItem{
		{ID: 1, ViewCount: 120},
		{ID: 7, ViewCount: 3},
	}

	expr, params := buildViewCountAssignExpr(batch)

	// 赋值表达式必须用 GREATEST 包住 CASE，保证回写不会把浏览量改小
	assert.Equal(t, "GREATEST(view_count, CASE id WHEN ? THEN ? WHEN ? THEN ? END)", expr)
	assert.Equal(t, []interface{}{uint64(1), int64(120), uint64(7), int64(3)}, params)
}

func TestBuildViewCountAssignExpr_SingleItem(t *testing.T) {
	expr, params := buildViewCountAssignExpr([]updateItem{{ID: 42, ViewCount: 9001}})

	assert.Equal(t, "GREATEST(view_count, CASE id WHEN ? THEN ? END)", expr)
	assert.Equal(t, []interface{}{uint64(42), int64(9001)}, params)
}

func TestBatchUpdateTopicViewCounts_EmitsMonotonicUpdate(t *testing.T) {
	repo, dbMock := newBatchRepoWithSQLMock(t)

	// Redis 重建后的快照值 (7) 不应覆盖 MySQL 中更大的累计值，
	// 因此发出的 UPDATE 必须带 GREATEST 保护
	dbMock.ExpectBegin()
	dbMock.ExpectExec("UPDATE `topics` SET `view_count`=GREATEST\\(view_count, CASE id WHEN \\? THEN \\? END\\)").
		WithArgs(uint64(42), int64(7), sqlmock.AnyArg(), uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	err := repo.BatchUpdateTopicViewCounts(context.Background(), map[uint64]int64{42: 7})

	require.NoError(t, err)
	require.NoError(t, dbMock.ExpectationsWereMet())
}
