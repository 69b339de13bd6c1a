package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Nikk-inovates/Nivaaran/internal/http/middleware"
	"github.com/Nikk-inovates/Nivaaran/internal/http/render"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/content"
	"github.com/Nikk-inovates/Nivaaran/pkg/view"
)

type BlogHandler struct {
	lib *content.Library
}

func NewBlogHandler(lib *content.Library) *BlogHandler {
	return &BlogHandler{lib: lib}
}

func (h *BlogHandler) List(c *gin.Context) {
	posts := h.lib.Posts()
	vm := view.BlogIndex{
		Title: "Our Blog",
		Posts: make([]view.BlogCard, 0, len(posts)),
		Flash: middleware.GetFlash(c),
	}
	for _, p := range posts {
		vm.Posts = append(vm.Posts, blogCard(p))
	}
	render.Page(c, http.StatusOK, "pages/blog", vm)
}

func (h *BlogHandler) Show(c *gin.Context) {
	p, ok := h.lib.PostBySlug(c.Param("slug"))
	if !ok {
		render.NotFoundPage(c, "Post Not Found", "The article you're looking for doesn't exist.")
		return
	}
	render.Page(c, http.StatusOK, "pages/blog_post", view.BlogPostPage{
		Title:      p.Title,
		Post:       blogCard(p),
		Paragraphs: splitParagraphs(p.Content),
		Flash:      middleware.GetFlash(c),
	})
}

func blogCard(p content.Post) view.BlogCard {
	return view.BlogCard{
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Image:    p.Image,
		Author:   p.Author,
		Date:     p.DisplayDate(),
		ReadTime: p.ReadTime,
		Category: p.Category,
		Path:     "/blog/" + p.Slug,
	}
}

func splitParagraphs(content string) []string {
	parts := strings.Split(content, "\n\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
