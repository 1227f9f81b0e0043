package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/model"
	"blogapi/internal/response"
	"blogapi/internal/service"
)

// PostHandler handles post CRUD endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest carries the fields needed to create a post.
type CreatePostRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// UpdatePostRequest carries the fields needed to update a post.
type UpdatePostRequest struct {
	ID    int    `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// DeletePostRequest identifies the post to delete.
type DeletePostRequest struct {
	ID int `json:"id" validate:"required"`
}

// GetAll godoc
// @Summary List all posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts [get]
func (h *PostHandler) GetAll(c echo.Context) error {
	resp := response.New()

	posts, err := h.postService.GetAll(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoPosts) {
			resp.StatusCode = http.StatusNotFound
			resp.Message = "No Posts are available"
			return response.Send(c, resp)
		}
		resp.StatusCode = http.StatusInternalServerError
		resp.Error = "Posts failed to be retrieved."
		return response.Send(c, resp)
	}

	resp.Data = posts
	return response.Send(c, resp)
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePostRequest true "Post content"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ValidationFailure
// @Failure 500 {object} response.Response
// @Router /posts/create [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	resp := response.New()

	post := &model.Post{Title: req.Title, Body: req.Body}
	if err := h.postService.Create(c.Request().Context(), post); err != nil {
		resp.StatusCode = http.StatusInternalServerError
		resp.Error = "Post failed to be created."
		return response.Send(c, resp)
	}

	resp.Message = "Post has successfully been created!"
	return response.Send(c, resp)
}

// Update godoc
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdatePostRequest true "Post content with id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ValidationFailure
// @Failure 500 {object} response.Response
// @Router /posts/update [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	resp := response.New()

	post := &model.Post{ID: req.ID, Title: req.Title, Body: req.Body}
	if err := h.postService.Update(c.Request().Context(), post); err != nil {
		resp.StatusCode = http.StatusInternalServerError
		resp.Error = "Post failed to be updated."
		return response.Send(c, resp)
	}

	resp.Message = "Post has been updated successfully!"
	return response.Send(c, resp)
}

// Delete godoc
// @Summary Delete a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeletePostRequest true "Post id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ValidationFailure
// @Failure 500 {object} response.Response
// @Router /posts/delete [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	var req DeletePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	resp := response.New()

	post := &model.Post{ID: req.ID}
	if err := h.postService.Delete(c.Request().Context(), post); err != nil {
		resp.StatusCode = http.StatusInternalServerError
		resp.Error = "Post failed to be deleted."
		return response.Send(c, resp)
	}

	resp.Message = "Post has been deleted successfully!"
	return response.Send(c, resp)
}
