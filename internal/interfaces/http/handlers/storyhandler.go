package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mado-app/mado/internal/application/story/usecases"
	"github.com/mado-app/mado/internal/domain/story"
	"github.com/mado-app/mado/internal/interfaces/http/middleware"
	"github.com/mado-app/mado/internal/shared/logger"
	"github.com/mado-app/mado/internal/shared/utils"
)

type createStoryUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateStoryCommand) (*usecases.CreateStoryResult, error)
}

type getStoryUseCase interface {
	Execute(ctx context.Context, query usecases.GetStoryQuery) (*usecases.GetStoryResult, error)
}

type browseStoriesUseCase interface {
	Execute(ctx context.Context, query usecases.BrowseStoriesQuery) (*usecases.BrowseStoriesResult, error)
}

type searchStoriesUseCase interface {
	Execute(ctx context.Context, query usecases.SearchStoriesQuery) (*usecases.SearchStoriesResult, error)
}

type toggleLikeUseCase interface {
	Execute(ctx context.Context, cmd usecases.ToggleLikeCommand) (*usecases.ToggleLikeResult, error)
}

type createChapterUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateChapterCommand) (*usecases.CreateChapterResult, error)
}

type getChapterUseCase interface {
	Execute(ctx context.Context, query usecases.GetChapterQuery) (*usecases.GetChapterResult, error)
}

type listOwnStoriesUseCase interface {
	Execute(ctx context.Context, query usecases.ListOwnStoriesQuery) (*usecases.ListOwnStoriesResult, error)
}

// StoryHandler serves the story, chapter and like endpoints.
type StoryHandler struct {
	createStoryUC    createStoryUseCase
	getStoryUC       getStoryUseCase
	browseUC         browseStoriesUseCase
	searchUC         searchStoriesUseCase
	toggleLikeUC     toggleLikeUseCase
	createChapterUC  createChapterUseCase
	getChapterUC     getChapterUseCase
	listOwnStoriesUC listOwnStoriesUseCase
	logger           logger.Interface
}

func NewStoryHandler(
	createStoryUC createStoryUseCase,
	getStoryUC getStoryUseCase,
	browseUC browseStoriesUseCase,
	searchUC searchStoriesUseCase,
	toggleLikeUC toggleLikeUseCase,
	createChapterUC createChapterUseCase,
	getChapterUC getChapterUseCase,
	listOwnStoriesUC listOwnStoriesUseCase,
	logger logger.Interface,
) *StoryHandler {
	return &StoryHandler{
		createStoryUC:    createStoryUC,
		getStoryUC:       getStoryUC,
		browseUC:         browseUC,
		searchUC:         searchUC,
		toggleLikeUC:     toggleLikeUC,
		createChapterUC:  createChapterUC,
		getChapterUC:     getChapterUC,
		listOwnStoriesUC: listOwnStoriesUC,
		logger:           logger,
	}
}

type createStoryRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Genre       string  `json:"genre" validate:"required"`
	Language    string  `json:"language" validate:"required"`
	CoverURL    *string `json:"cover_url"`
	Status      string  `json:"status"`
	Mature      bool    `json:"mature"`
	Publish     bool    `json:"publish"`
}

func (h *StoryHandler) CreateStory(c *gin.Context) {
	var req createStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createStoryUC.Execute(c.Request.Context(), usecases.CreateStoryCommand{
		AuthorID:    middleware.UserID(c),
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Language:    req.Language,
		CoverURL:    req.CoverURL,
		Status:      req.Status,
		Mature:      req.Mature,
		Publish:     req.Publish,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"story": storyBody(result.Story)})
}

func (h *StoryHandler) GetStory(c *gin.Context) {
	storyID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.getStoryUC.Execute(c.Request.Context(), usecases.GetStoryQuery{
		StoryID:  storyID,
		ViewerID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	chapters := make([]gin.H, 0, len(result.Chapters))
	for _, chapter := range result.Chapters {
		chapters = append(chapters, gin.H{
			"id":     chapter.ID(),
			"number": chapter.Number(),
			"title":  chapter.Title(),
			"views":  chapter.Views(),
		})
	}

	utils.OKResponse(c, gin.H{
		"story":    storyBody(result.Story),
		"chapters": chapters,
		"liked":    result.Liked,
	})
}

func (h *StoryHandler) BrowseStories(c *gin.Context) {
	limit, offset := pagination(c)
	result, err := h.browseUC.Execute(c.Request.Context(), usecases.BrowseStoriesQuery{
		Genre:    c.Query("genre"),
		Language: c.Query("language"),
		Status:   c.Query("status"),
		Sort:     c.Query("sort"),
		Limit:    limit,
		Offset:   offset,
		ViewerID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"stories": storyBodies(result.Stories),
		"total":   result.Total,
	})
}

func (h *StoryHandler) SearchStories(c *gin.Context) {
	limit, offset := pagination(c)
	result, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchStoriesQuery{
		Query:    c.Query("q"),
		Genre:    c.Query("genre"),
		Language: c.Query("language"),
		Sort:     c.Query("sort"),
		Limit:    limit,
		Offset:   offset,
		ViewerID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	body := gin.H{
		"stories": storyBodies(result.Stories),
		"total":   result.Total,
	}
	if result.Message != "" {
		body["message"] = result.Message
	}
	utils.OKResponse(c, body)
}

func (h *StoryHandler) ToggleLike(c *gin.Context) {
	storyID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.toggleLikeUC.Execute(c.Request.Context(), usecases.ToggleLikeCommand{
		UserID:  middleware.UserID(c),
		StoryID: storyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"liked": result.Liked})
}

type createChapterRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (h *StoryHandler) CreateChapter(c *gin.Context) {
	storyID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req createChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createChapterUC.Execute(c.Request.Context(), usecases.CreateChapterCommand{
		AuthorID: middleware.UserID(c),
		StoryID:  storyID,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"chapter": gin.H{
			"id":     result.Chapter.ID(),
			"number": result.Chapter.Number(),
			"title":  result.Chapter.Title(),
		},
	})
}

func (h *StoryHandler) GetChapter(c *gin.Context) {
	chapterID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.getChapterUC.Execute(c.Request.Context(), usecases.GetChapterQuery{
		ChapterID: chapterID,
		ViewerID:  middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	body := gin.H{
		"chapter": gin.H{
			"id":      result.Chapter.ID(),
			"number":  result.Chapter.Number(),
			"title":   result.Chapter.Title(),
			"html":    result.HTML,
			"views":   result.Chapter.Views(),
			"story":   storyBody(result.Story),
		},
	}
	if result.PrevChapterID != 0 {
		body["prev_chapter_id"] = result.PrevChapterID
	}
	if result.NextChapterID != 0 {
		body["next_chapter_id"] = result.NextChapterID
	}
	utils.OKResponse(c, body)
}

func (h *StoryHandler) ListOwnStories(c *gin.Context) {
	limit, offset := pagination(c)
	result, err := h.listOwnStoriesUC.Execute(c.Request.Context(), usecases.ListOwnStoriesQuery{
		AuthorID: middleware.UserID(c),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"stories": storyBodies(result.Stories),
		"total":   result.Total,
	})
}

func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

func storyBody(s *story.Story) gin.H {
	return gin.H{
		"id":          s.ID(),
		"author_id":   s.AuthorID(),
		"title":       s.Title(),
		"description": s.Description(),
		"genre":       s.Genre(),
		"language":    s.Language(),
		"status":      s.Status(),
		"cover_url":   s.CoverURL(),
		"published":   s.IsPublished(),
		"mature":      s.IsMature(),
		"views":       s.Views(),
		"like_count":  s.LikeCount(),
		"created_at":  s.CreatedAt(),
		"updated_at":  s.UpdatedAt(),
	}
}

func storyBodies(stories []*story.Story) []gin.H {
	bodies := make([]gin.H, 0, len(stories))
	for _, s := range stories {
		bodies = append(bodies, storyBody(s))
	}
	return bodies
}
