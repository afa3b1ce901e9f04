package mysql

import (
	"testing"
	"time"

	commonEntities "github.com/Xushengqwer/go-common/models/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/models/entities"
)

func TestMapTopicToAuthorRow(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	topic := &entities.Topic{
		BaseModel:  commonEntities.BaseModel{ID: 7, CreatedAt: createdAt},
		CategoryID: 2,
		AuthorID:   "user-1",
		Title:      "标题",
		Content:    "正文",
		IsPinned:   true,
		ViewCount:  99,
	}

	row := mapTopicToAuthorRow(topic)

	require.NotNil(t, row)
	assert.Equal(t, uint64(7), row.ID)
	assert.Equal(t, uint64(2), row.CategoryID)
	assert.Equal(t, "user-1", row.AuthorID)
	assert.Equal(t, "标题", row.Title)
	assert.True(t, row.IsPinned)
	assert.Equal(t, int64(99), row.ViewCount)
	assert.Equal(t, createdAt, row.CreatedAt)
	// 基础表回退路径下作者用户名不可得
	assert.Nil(t, row.AuthorUsername)
}

func TestMapTopicToAuthorRow_Nil(t *testing.T) {
	assert.Nil(t, mapTopicToAuthorRow(nil))
}

func TestMapTopicsToAuthorRows_PreservesOrderAndSkipsNil(t *testing.T) {
	topics := []*entities.Topic{
		{BaseModel: commonEntities.BaseModel{ID: 3}},
		nil,
		{BaseModel: commonEntities.BaseModel{ID: 1}},
		{BaseModel: commonEntities.BaseModel{ID: 2}},
	}

	rows := mapTopicsToAuthorRows(topics)

	require.Len(t, rows, 3)
	assert.Equal(t, uint64(3), rows[0].ID)
	assert.Equal(t, uint64(1), rows[1].ID)
	assert.Equal(t, uint64(2), rows[2].ID)
}

func TestMapTopicsToAuthorRows_Empty(t *testing.T) {
	assert.Empty(t, mapTopicsToAuthorRows(nil))
	assert.Empty(t, mapTopicsToAuthorRows([]*entities.Topic{}))
}
