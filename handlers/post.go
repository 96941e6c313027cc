package handlers

import (
	"net/http"
	"strings"

	"gram/models"
	"gram/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	service *services.PostService
}

func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePost accepts a multipart form: the image plus caption,
// hashtags and userTags fields. Tags are comma separated.
func (h *PostHandler) CreatePost(c *gin.Context) {
	ctx, cancel := uploadContext(c)
	defer cancel()

	image, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	defer image.Close()

	request := models.AddPostRequest{
		Author:   c.GetString("username"),
		Caption:  c.PostForm("caption"),
		Hashtags: splitTags(c.PostForm("hashtags")),
		UserTags: splitTags(c.PostForm("userTags")),
		Image:    image,
	}

	if err := h.service.AddPost(ctx, request); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post created successfully"})
}

func (h *PostHandler) GetFeed(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	posts, err := h.service.GetPosts(ctx, c.GetString("token"), paginationFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) GetAuthorPosts(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	posts, err := h.service.GetAuthorPosts(ctx, c.GetString("token"), c.Param("username"), paginationFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	post, err := h.service.GetPost(ctx, c.GetString("token"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) EditPost(c *gin.Context) {
	var req models.EditPostFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	post, err := h.service.EditPost(ctx, c.GetString("token"), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	if err := h.service.DeletePost(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

func (h *PostHandler) LikePost(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	if err := h.service.LikePost(ctx, c.GetString("token"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post liked"})
}

func (h *PostHandler) UnlikePost(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	if err := h.service.UnlikePost(ctx, c.GetString("token"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post unliked"})
}

func (h *PostHandler) CommentPost(c *gin.Context) {
	var req models.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	post, err := h.service.CommentPost(ctx, c.GetString("token"), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) SearchByCaption(c *gin.Context) {
	caption := c.Query("caption")
	if caption == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caption query parameter is required"})
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	posts, err := h.service.FindPostsByCaption(ctx, c.GetString("token"), caption, paginationFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) SearchByHashtags(c *gin.Context) {
	hashtags := splitTags(c.Query("tags"))
	if len(hashtags) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tags query parameter is required"})
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	posts, err := h.service.FindPostsByHashtags(ctx, c.GetString("token"), hashtags, paginationFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) GetPostLikes(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	likers, err := h.service.GetPostLikes(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, likers)
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
