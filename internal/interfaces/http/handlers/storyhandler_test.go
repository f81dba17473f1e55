package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mado-app/mado/internal/application/story/usecases"
	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/interfaces/http/testutil"
	"github.com/mado-app/mado/internal/shared/errors"
)

type mockCreateStoryUC struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.CreateStoryCommand) (*usecases.CreateStoryResult, error)
}

func (m *mockCreateStoryUC) Execute(ctx context.Context, cmd usecases.CreateStoryCommand) (*usecases.CreateStoryResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetStoryUC struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetStoryQuery) (*usecases.GetStoryResult, error)
}

func (m *mockGetStoryUC) Execute(ctx context.Context, query usecases.GetStoryQuery) (*usecases.GetStoryResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockToggleLikeUC struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.ToggleLikeCommand) (*usecases.ToggleLikeResult, error)
}

func (m *mockToggleLikeUC) Execute(ctx context.Context, cmd usecases.ToggleLikeCommand) (*usecases.ToggleLikeResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockCreateChapterUC struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.CreateChapterCommand) (*usecases.CreateChapterResult, error)
}

func (m *mockCreateChapterUC) Execute(ctx context.Context, cmd usecases.CreateChapterCommand) (*usecases.CreateChapterResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetChapterUC struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetChapterQuery) (*usecases.GetChapterResult, error)
}

func (m *mockGetChapterUC) Execute(ctx context.Context, query usecases.GetChapterQuery) (*usecases.GetChapterResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockSearchStoriesUC struct {
	ExecuteFunc func(ctx context.Context, query usecases.SearchStoriesQuery) (*usecases.SearchStoriesResult, error)
}

func (m *mockSearchStoriesUC) Execute(ctx context.Context, query usecases.SearchStoriesQuery) (*usecases.SearchStoriesResult, error) {
	return m.ExecuteFunc(ctx, query)
}

func testStory(t *testing.T, id, authorID uint) *story.Story {
	t.Helper()
	s, err := story.ReconstructStory(id, authorID, "The Glass Garden", "A story", "Fantasy", "english",
		story.StatusOngoing, nil, true, false, 10, 2, time.Now(), time.Now())
	require.NoError(t, err)
	return s
}

func testChapter(t *testing.T, id, storyID, number uint) *story.Chapter {
	t.Helper()
	ch, err := story.ReconstructChapter(id, storyID, number, "Chapter title", "Content", 5, time.Now(), time.Now())
	require.NoError(t, err)
	return ch
}

func newStoryHandler(
	createUC createStoryUseCase,
	getUC getStoryUseCase,
	toggleUC toggleLikeUseCase,
	createChapterUC createChapterUseCase,
	getChapterUC getChapterUseCase,
	searchUC searchStoriesUseCase,
) *StoryHandler {
	return NewStoryHandler(createUC, getUC, nil, searchUC, toggleUC,
		createChapterUC, getChapterUC, nil, testutil.NewMockLogger())
}

func TestStoryHandler_CreateStory(t *testing.T) {
	createUC := &mockCreateStoryUC{
		ExecuteFunc: func(ctx context.Context, cmd usecases.CreateStoryCommand) (*usecases.CreateStoryResult, error) {
			assert.Equal(t, uint(7), cmd.AuthorID)
			assert.Equal(t, "The Glass Garden", cmd.Title)
			assert.True(t, cmd.Publish)
			return &usecases.CreateStoryResult{Story: testStory(t, 1, 7)}, nil
		},
	}
	handler := newStoryHandler(createUC, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/stories", map[string]interface{}{
		"title":    "The Glass Garden",
		"genre":    "Fantasy",
		"language": "english",
		"publish":  true,
	})
	testutil.SetAuthContext(c, 7)
	handler.CreateStory(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Story struct {
			ID       uint   `json:"id"`
			AuthorID uint   `json:"author_id"`
			Title    string `json:"title"`
		} `json:"story"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, uint(1), body.Story.ID)
	assert.Equal(t, uint(7), body.Story.AuthorID)
}

func TestStoryHandler_CreateStory_MissingTitle(t *testing.T) {
	handler := newStoryHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/stories", map[string]interface{}{
		"genre":    "Fantasy",
		"language": "english",
	})
	testutil.SetAuthContext(c, 7)
	handler.CreateStory(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoryHandler_GetStory(t *testing.T) {
	getUC := &mockGetStoryUC{
		ExecuteFunc: func(ctx context.Context, query usecases.GetStoryQuery) (*usecases.GetStoryResult, error) {
			assert.Equal(t, uint(3), query.StoryID)
			assert.Equal(t, uint(9), query.ViewerID)
			return &usecases.GetStoryResult{
				Story:    testStory(t, 3, 7),
				Chapters: []*story.Chapter{testChapter(t, 11, 3, 1), testChapter(t, 12, 3, 2)},
				Liked:    true,
			}, nil
		},
	}
	handler := newStoryHandler(nil, getUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/stories/3", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 9)
	handler.GetStory(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Liked    bool `json:"liked"`
		Chapters []struct {
			ID     uint `json:"id"`
			Number uint `json:"number"`
		} `json:"chapters"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.True(t, body.Liked)
	require.Len(t, body.Chapters, 2)
	assert.Equal(t, uint(1), body.Chapters[0].Number)
}

func TestStoryHandler_GetStory_InvalidID(t *testing.T) {
	handler := newStoryHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/stories/abc", nil)
	testutil.SetURLParam(c, "id", "abc")
	handler.GetStory(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoryHandler_GetStory_DraftHidden(t *testing.T) {
	getUC := &mockGetStoryUC{
		ExecuteFunc: func(ctx context.Context, query usecases.GetStoryQuery) (*usecases.GetStoryResult, error) {
			return nil, errors.NewNotFoundError("Story not found")
		},
	}
	handler := newStoryHandler(nil, getUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/stories/3", nil)
	testutil.SetURLParam(c, "id", "3")
	handler.GetStory(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStoryHandler_ToggleLike(t *testing.T) {
	toggleUC := &mockToggleLikeUC{
		ExecuteFunc: func(ctx context.Context, cmd usecases.ToggleLikeCommand) (*usecases.ToggleLikeResult, error) {
			assert.Equal(t, uint(9), cmd.UserID)
			assert.Equal(t, uint(3), cmd.StoryID)
			return &usecases.ToggleLikeResult{Liked: true}, nil
		},
	}
	handler := newStoryHandler(nil, nil, toggleUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/stories/3/like", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 9)
	handler.ToggleLike(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Liked bool `json:"liked"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.True(t, body.Liked)
}

func TestStoryHandler_CreateChapter_Forbidden(t *testing.T) {
	createChapterUC := &mockCreateChapterUC{
		ExecuteFunc: func(ctx context.Context, cmd usecases.CreateChapterCommand) (*usecases.CreateChapterResult, error) {
			return nil, errors.NewForbiddenError("Only the author can add chapters")
		},
	}
	handler := newStoryHandler(nil, nil, nil, createChapterUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/stories/3/chapters", map[string]string{
		"title":   "Chapter one",
		"content": "It begins.",
	})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 9)
	handler.CreateChapter(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStoryHandler_GetChapter_WithSiblings(t *testing.T) {
	getChapterUC := &mockGetChapterUC{
		ExecuteFunc: func(ctx context.Context, query usecases.GetChapterQuery) (*usecases.GetChapterResult, error) {
			assert.Equal(t, uint(12), query.ChapterID)
			return &usecases.GetChapterResult{
				Chapter:       testChapter(t, 12, 3, 2),
				Story:         testStory(t, 3, 7),
				HTML:          "<p>It <strong>begins</strong>.</p>",
				PrevChapterID: 11,
				NextChapterID: 13,
			}, nil
		},
	}
	handler := newStoryHandler(nil, nil, nil, nil, getChapterUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/chapters/12", nil)
	testutil.SetURLParam(c, "id", "12")
	handler.GetChapter(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Chapter struct {
			ID   uint   `json:"id"`
			HTML string `json:"html"`
		} `json:"chapter"`
		PrevChapterID uint `json:"prev_chapter_id"`
		NextChapterID uint `json:"next_chapter_id"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, uint(12), body.Chapter.ID)
	assert.Contains(t, body.Chapter.HTML, "<strong>begins</strong>")
	assert.Equal(t, uint(11), body.PrevChapterID)
	assert.Equal(t, uint(13), body.NextChapterID)
}

func TestStoryHandler_SearchStories(t *testing.T) {
	searchUC := &mockSearchStoriesUC{
		ExecuteFunc: func(ctx context.Context, query usecases.SearchStoriesQuery) (*usecases.SearchStoriesResult, error) {
			assert.Equal(t, "garden", query.Query)
			assert.Equal(t, 10, query.Limit)
			return &usecases.SearchStoriesResult{
				Stories: []*story.Story{testStory(t, 3, 7)},
				Total:   1,
			}, nil
		},
	}
	handler := newStoryHandler(nil, nil, nil, nil, nil, searchUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/search", nil)
	testutil.SetQueryParams(c, map[string]string{"q": "garden", "limit": "10"})
	handler.SearchStories(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total   int64 `json:"total"`
		Stories []struct {
			Title string `json:"title"`
		} `json:"stories"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, int64(1), body.Total)
	require.Len(t, body.Stories, 1)
	assert.Equal(t, "The Glass Garden", body.Stories[0].Title)
}
