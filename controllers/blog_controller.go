package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/builditdreamz/builditdreamz_backend/models"
)

// BlogController serves the blog listing and accepts posts from verified emails
type BlogController struct {
	store  PostStore
	cache  PostCache
	otp    OTPChallenges
	logger *zap.Logger
}

func NewBlogController(store PostStore, cache PostCache, otp OTPChallenges, logger *zap.Logger) *BlogController {
	return &BlogController{
		store:  store,
		cache:  cache,
		otp:    otp,
		logger: logger,
	}
}

// GetPosts returns every post, newest first
func (bc *BlogController) GetPosts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	posts, ok, err := bc.cache.Get(ctx)
	if err != nil {
		bc.logger.Warn("blog cache read failed", zap.Error(err))
	}
	if ok {
		return postsResponse(c, posts)
	}

	// read before the store so a post created meanwhile voids this listing
	version, err := bc.cache.Version(ctx)
	if err != nil {
		bc.logger.Warn("blog cache read failed", zap.Error(err))
	}

	posts, err = bc.store.FindAll(ctx)
	if err != nil {
		bc.logger.Error("error fetching posts", zap.Error(err))
		return internalServerError(c)
	}

	if err := bc.cache.Set(ctx, version, posts); err != nil {
		bc.logger.Warn("blog cache write failed", zap.Error(err))
	}
	return postsResponse(c, posts)
}

// CreatePost stores a post written by an email that passed OTP verification
func (bc *BlogController) CreatePost(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.PostRequest
	if err := c.Bind(&req); err != nil {
		bc.logger.Error("error in blog route", zap.Error(err))
		return internalServerError(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing required fields",
		})
	}

	if !bc.otp.IsVerified(req.Email) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Email not verified",
		})
	}

	post := &models.Post{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		AuthorEmail: req.Email,
		ImageURL:    req.ImageURL,
	}
	if err := bc.store.Insert(ctx, post); err != nil {
		bc.logger.Error("error creating post", zap.Error(err))
		return internalServerError(c)
	}

	if err := bc.cache.Invalidate(ctx); err != nil {
		bc.logger.Warn("blog cache invalidation failed", zap.Error(err))
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Post created successfully",
		Data:    post,
	})
}

func postsResponse(c echo.Context, posts []models.Post) error {
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Posts retrieved successfully",
		Data:    posts,
	})
}
