package public

import (
	"net/http"

	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/http/response"
	"github.com/David-iadg/consult-ia/internal/repository"
	"github.com/David-iadg/consult-ia/internal/service"

	"github.com/gin-gonic/gin"
)

var postLookupErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, status: http.StatusNotFound, key: "error.post_not_found"},
}

// GetPosts 文章列表，按发布时间倒序
func (h *Handler) GetPosts(c *gin.Context) {
	posts, err := h.PostService.List(repository.PostListFilter{
		Language: handlershared.QueryLanguage(c),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.post_fetch_failed", err)
		return
	}
	response.OK(c, posts)
}

// GetPost 根据 ID 获取文章
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	post, err := h.PostService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, postLookupErrorRules, http.StatusInternalServerError, "error.post_fetch_failed")
		return
	}
	response.OK(c, post)
}

// GetPostBySlug 根据 slug 获取文章
func (h *Handler) GetPostBySlug(c *gin.Context) {
	post, err := h.PostService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondWithMappedError(c, err, postLookupErrorRules, http.StatusInternalServerError, "error.post_fetch_failed")
		return
	}
	response.OK(c, post)
}
