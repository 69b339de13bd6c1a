package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nikk-inovates/Nivaaran/internal/http/middleware"
	"github.com/Nikk-inovates/Nivaaran/internal/http/render"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/catalog"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/content"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/feed"
	"github.com/Nikk-inovates/Nivaaran/pkg/view"
)

const featuredCount = 4

type HomeHandler struct {
	feed *feed.Client
	lib  *content.Library
	log  *slog.Logger
}

func NewHomeHandler(fc *feed.Client, lib *content.Library, l *slog.Logger) *HomeHandler {
	return &HomeHandler{feed: fc, lib: lib, log: l}
}

func (h *HomeHandler) Get(c *gin.Context) {
	vm := view.HomePage{
		Title: "Home",
		Flash: middleware.GetFlash(c),
	}

	for _, cat := range h.lib.Categories() {
		vm.Categories = append(vm.Categories, view.CategoryTile{
			Name:        cat.Name,
			Icon:        cat.Icon,
			Description: cat.Description,
			Path:        "/products?category=" + cat.FilterValue(),
		})
	}

	// Featured strip is decorative; a feed failure logs and renders the
	// page without it rather than erroring the whole landing page.
	ctl := catalog.NewController(h.feed)
	defer ctl.Close()
	ctl.Load(c.Request.Context())
	if vs := ctl.View(); vs.State == catalog.StateReady {
		items := vs.Items
		if len(items) > featuredCount {
			items = items[:featuredCount]
		}
		vm.Featured = mapProductCards(items)
	} else if vs.State == catalog.StateError {
		h.log.Warn("featured products fetch failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("err", vs.Error),
		)
	}

	render.Page(c, http.StatusOK, "pages/home", vm)
}
