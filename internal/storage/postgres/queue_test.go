package postgres

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breaking_news/internal/domain"
)

func TestArticleSnapshot_DropsReceivedSet(t *testing.T) {
	article := domain.Article{
		ID:          "a1",
		FeedID:      "feed-1",
		Title:       "Breaking",
		PublishedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		IsPriority:  true,
	}
	empty, err := articleSnapshot(article)
	require.NoError(t, err)

	for i := range 10000 {
		article.ReceivedByUsers = append(article.ReceivedByUsers, fmt.Sprintf("user-%05d", i))
	}
	full, err := articleSnapshot(article)
	require.NoError(t, err)

	assert.Equal(t, len(empty), len(full))
	assert.NotContains(t, string(full), "receivedByUsers")
	assert.Len(t, article.ReceivedByUsers, 10000)

	var decoded domain.Article
	require.NoError(t, json.Unmarshal(full, &decoded))
	assert.Equal(t, "a1", decoded.ID)
	assert.Equal(t, "Breaking", decoded.Title)
	assert.Empty(t, decoded.ReceivedByUsers)
}
