package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nikk-inovates/Nivaaran/internal/config"
	"github.com/Nikk-inovates/Nivaaran/internal/http/flash"
	"github.com/Nikk-inovates/Nivaaran/internal/http/handlers"
	"github.com/Nikk-inovates/Nivaaran/internal/http/middleware"
	"github.com/Nikk-inovates/Nivaaran/internal/http/render"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/contact"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/content"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/feed"
	"github.com/Nikk-inovates/Nivaaran/internal/shared/apperr"
	"github.com/Nikk-inovates/Nivaaran/static"
	"github.com/Nikk-inovates/Nivaaran/templates"
)

type Deps struct {
	Config  *config.Config
	Feed    *feed.Client
	Content *content.Library
	Contact *contact.Service
}

func NewRouter(l *slog.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.New()
	if err != nil {
		return nil, err
	}

	codec := flash.NewCodec([]byte(deps.Config.CookieSecret), "nv_flash", deps.Config.IsProduction())

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.RequestID(),
		middleware.Logger(l),
		middleware.Recovery(l),
		middleware.ErrorHandler(l),
		middleware.FlashMiddleware(codec),
	)

	home := handlers.NewHomeHandler(deps.Feed, deps.Content, l)
	products := handlers.NewProductsHandler(deps.Feed)
	detail := handlers.NewProductDetailHandler(deps.Feed, l)
	blog := handlers.NewBlogHandler(deps.Content)
	company := handlers.NewCompanyHandler(deps.Contact, codec)

	r.StaticFS("/static", nethttp.FS(static.Files))

	r.GET("/", home.Get)
	r.GET("/products", products.List)
	r.GET("/product/:id", detail.Detail)
	r.GET("/blog", blog.List)
	r.GET("/blog/:slug", blog.Show)
	r.GET("/about", company.About)
	r.GET("/contact", company.ContactGet)
	r.POST("/contact", company.ContactPost)
	r.GET("/privacy", company.Privacy)
	r.GET("/terms", company.Terms)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		if middleware.WantsJSON(c) {
			middleware.Fail(c, apperr.NotFoundErr("Page not found."))
			return
		}
		render.NotFoundPage(c, "Page Not Found", "The page you're looking for doesn't exist.")
	})

	return r, nil
}
