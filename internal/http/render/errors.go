package render

import (
	"github.com/gin-gonic/gin"

	"github.com/Nikk-inovates/Nivaaran/internal/http/middleware"
	"github.com/Nikk-inovates/Nivaaran/pkg/view"
)

func ErrorPage(c *gin.Context, status int, msg string) {
	Page(c, status, "pages/error", view.ErrorPage{
		Title:     "Something went wrong",
		Status:    status,
		Message:   msg,
		RequestID: middleware.GetRequestID(c),
		RetryPath: c.Request.URL.RequestURI(),
		Flash:     middleware.GetFlash(c),
	})
}

func NotFoundPage(c *gin.Context, title, msg string) {
	Page(c, 404, "pages/not_found", view.SimplePage{
		Title:   title,
		Message: msg,
		Flash:   middleware.GetFlash(c),
	})
}
