package services_test

import (
	"errors"
	"strings"
	"testing"

	"redakce-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleLikeToggleParity(t *testing.T) {
	db := newTestDB(t)
	articles := newArticleService(db)
	engagement := newEngagementService(db)
	editor := newUser(t, db, "editor", models.RoleEditor, "Passw0rd")
	fan := newUser(t, db, "fanousek", models.RoleUser, "Passw0rd")

	article, err := articles.Create(models.ArticleRequest{Title: "T", Content: "<p>hi</p>"}, principal(editor))
	require.NoError(t, err)

	liked, err := engagement.ToggleArticleLike(fan.ID, article.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = engagement.ToggleArticleLike(fan.ID, article.ID)
	require.NoError(t, err)
	assert.False(t, liked, "an even number of toggles returns to unliked")

	// odd number of toggles always ends liked
	for i := 0; i < 3; i++ {
		liked, err = engagement.ToggleArticleLike(fan.ID, article.ID)
		require.NoError(t, err)
	}
	assert.True(t, liked)

	var rows int64
	db.Model(&models.ArticleLike{}).Count(&rows)
	assert.EqualValues(t, 1, rows, "never more than one row per (user, article)")
}

func TestLikeUnknownTargets(t *testing.T) {
	db := newTestDB(t)
	engagement := newEngagementService(db)
	fan := newUser(t, db, "fanousek", models.RoleUser, "Passw0rd")

	_, err := engagement.ToggleArticleLike(fan.ID, 12345)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	_, err = engagement.ToggleCommentLike(fan.ID, 12345)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	_, err = engagement.ToggleReplyLike(fan.ID, 12345)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestCommentAndReplyLikes(t *testing.T) {
	db := newTestDB(t)
	articles := newArticleService(db)
	engagement := newEngagementService(db)
	editor := newUser(t, db, "editor", models.RoleEditor, "Passw0rd")
	fan := newUser(t, db, "fanousek", models.RoleUser, "Passw0rd")

	article, err := articles.Create(models.ArticleRequest{Title: "T", Content: "<p>hi</p>"}, principal(editor))
	require.NoError(t, err)

	comment, err := engagement.AddComment(fan.ID, article.ID, "komentář")
	require.NoError(t, err)
	reply, err := engagement.AddReply(editor.ID, comment.ID, "odpověď")
	require.NoError(t, err)

	liked, err := engagement.ToggleCommentLike(editor.ID, comment.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = engagement.ToggleReplyLike(fan.ID, reply.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = engagement.ToggleReplyLike(fan.ID, reply.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestCommentTruncation(t *testing.T) {
	db := newTestDB(t)
	articles := newArticleService(db)
	engagement := newEngagementService(db)
	editor := newUser(t, db, "editor", models.RoleEditor, "Passw0rd")

	article, err := articles.Create(models.ArticleRequest{Title: "T", Content: "<p>hi</p>"}, principal(editor))
	require.NoError(t, err)

	long := strings.Repeat("ř", models.MaxCommentRunes+500)
	comment, err := engagement.AddComment(editor.ID, article.ID, long)
	require.NoError(t, err)
	assert.Equal(t, models.MaxCommentRunes, len([]rune(comment.Content)),
		"truncation counts characters, not bytes")

	_, err = engagement.AddComment(editor.ID, article.ID, "   ")
	assert.True(t, errors.Is(err, models.ErrValidation))

	reply, err := engagement.AddReply(editor.ID, comment.ID, long)
	require.NoError(t, err)
	assert.Equal(t, models.MaxCommentRunes, len([]rune(reply.Content)))
}

func TestFollowToggleAndSelfFollow(t *testing.T) {
	db := newTestDB(t)
	engagement := newEngagementService(db)
	bob := newUser(t, db, "bob", models.RoleUser, "Passw0rd")
	eva := newUser(t, db, "eva", models.RoleUser, "Passw0rd")

	following, err := engagement.ToggleFollow(bob.ID, "eva")
	require.NoError(t, err)
	assert.True(t, following)

	count, err := engagement.FollowerCount(eva.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	following, err = engagement.ToggleFollow(bob.ID, "eva")
	require.NoError(t, err)
	assert.False(t, following)

	// self-follow is a silent no-op
	following, err = engagement.ToggleFollow(bob.ID, "bob")
	require.NoError(t, err)
	assert.False(t, following)

	var edges int64
	db.Model(&models.UserFollow{}).Count(&edges)
	assert.Zero(t, edges)

	_, err = engagement.ToggleFollow(bob.ID, "neexistuje")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
