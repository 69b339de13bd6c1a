package render

import "github.com/gin-gonic/gin"

// Page renders a named template from the embedded set registered on the
// engine. Thin wrapper so handlers stay symmetric with ErrorPage.
func Page(c *gin.Context, status int, name string, data any) {
	c.HTML(status, name, data)
}
