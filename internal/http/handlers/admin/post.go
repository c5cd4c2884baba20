package admin

import (
	"net/http"

	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/http/response"
	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/service"

	"github.com/gin-gonic/gin"
)

// CreatePostRequest 创建文章请求，发布时间由服务端写入
type CreatePostRequest struct {
	Title    string  `json:"title" binding:"required"`
	Slug     string  `json:"slug" binding:"required"`
	Excerpt  string  `json:"excerpt" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"imageUrl"`
	Category string  `json:"category" binding:"required"`
	AuthorID *uint   `json:"authorId"`
	Language string  `json:"language" binding:"omitempty,oneof=fr en es"`
	Image    *string `json:"image"`
}

var postErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, status: http.StatusNotFound, key: "error.post_not_found"},
	{target: service.ErrSlugExists, status: http.StatusBadRequest, key: "error.slug_exists"},
}

// CreatePost 创建文章
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	authorID := req.AuthorID
	if authorID == nil {
		if identity, ok := handlershared.CurrentIdentity(c); ok {
			id := identity.UserID
			authorID = &id
		}
	}

	post, err := h.PostService.Create(service.CreatePostInput{
		Title:    req.Title,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Category: req.Category,
		AuthorID: authorID,
		Language: req.Language,
		Image:    req.Image,
	})
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, http.StatusInternalServerError, "error.post_create_failed")
		return
	}
	response.Created(c, post)
}

// UpdatePost 局部更新文章，未出现的字段保持不变
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var patch models.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}

	post, err := h.PostService.Update(id, patch)
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, http.StatusInternalServerError, "error.post_update_failed")
		return
	}
	response.OK(c, post)
}

// DeletePost 删除文章
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.PostService.Delete(id); err != nil {
		respondWithMappedError(c, err, postErrorRules, http.StatusInternalServerError, "error.post_delete_failed")
		return
	}
	response.NoContent(c)
}
