package article

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AntonTsoy/jwt-auth-api/internal/store"
)

type Handler struct {
	articles store.ArticleStore
}

func NewHandler(articles store.ArticleStore) *Handler {
	return &Handler{articles: articles}
}

func (h *Handler) Register(router gin.IRouter) {
	router.GET("/article", h.ListAll)
}

type articleResponse struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

func (h *Handler) ListAll(c *gin.Context) {
	articles, err := h.articles.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}

	out := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, articleResponse{ID: a.ID, Title: a.Title, Content: a.Content})
	}
	c.JSON(http.StatusOK, out)
}
