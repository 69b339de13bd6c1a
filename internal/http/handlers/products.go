package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Nikk-inovates/Nivaaran/internal/http/middleware"
	"github.com/Nikk-inovates/Nivaaran/internal/http/render"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/catalog"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/feed"
	"github.com/Nikk-inovates/Nivaaran/internal/shared/apperr"
	"github.com/Nikk-inovates/Nivaaran/pkg/view"
)

// ProductsHandler renders the catalog listing. Each request gets its own
// short-lived controller: fetch once, filter/page in memory, render.
type ProductsHandler struct {
	feed *feed.Client
}

func NewProductsHandler(fc *feed.Client) *ProductsHandler {
	return &ProductsHandler{feed: fc}
}

func (h *ProductsHandler) List(c *gin.Context) {
	category := strings.ToLower(c.DefaultQuery("category", catalog.AllCategories))
	vm := view.ParseViewMode(c.Query("view"))
	q := c.Query("q")
	page := intParam(c.Query("page"), 1)

	ctl := catalog.NewController(h.feed)
	defer ctl.Close()

	ctl.Load(c.Request.Context())
	ctl.SetCategory(category)
	ctl.SetQuery(q)
	ctl.SetPage(page)

	vs := ctl.View()

	vmdl := view.ProductsIndex{
		Title:      "All Products",
		Query:      vs.Query,
		Category:   vs.Category,
		ViewMode:   vm,
		Total:      vs.Total,
		From:       vs.From,
		To:         vs.To,
		Page:       vs.Page,
		TotalPages: vs.TotalPages,
		RetryPath:  c.Request.URL.RequestURI(),
		Flash:      middleware.GetFlash(c),
	}

	if vs.State == catalog.StateError {
		vmdl.Error = vs.Error
		render.Page(c, apperr.HTTPStatus(feedError(vs.Err)), "pages/products", vmdl)
		return
	}

	vmdl.Products = mapProductCards(vs.Items)
	vmdl.Categories = categoryButtons(vs.Categories, vs.Category, vm, q)
	vmdl.ViewModes = viewOptions(vs.Category, vm, q, vs.Page)
	vmdl.Pages = pageLinks(vs.TotalPages, vs.Page, vs.Category, vm, q)
	if vs.Page > 1 {
		vmdl.PrevPath = productsPath(vs.Category, vm, q, vs.Page-1)
	}
	if vs.Page < vs.TotalPages {
		vmdl.NextPath = productsPath(vs.Category, vm, q, vs.Page+1)
	}

	render.Page(c, http.StatusOK, "pages/products", vmdl)
}

func categoryButtons(labels []string, selected string, vm view.ViewMode, q string) []view.CategoryButton {
	out := make([]view.CategoryButton, 0, len(labels)+1)
	out = append(out, view.CategoryButton{
		Label:  "All Products",
		Value:  catalog.AllCategories,
		Active: selected == catalog.AllCategories,
		Path:   productsPath(catalog.AllCategories, vm, q, 1),
	})
	for _, label := range labels {
		value := strings.ToLower(label)
		out = append(out, view.CategoryButton{
			Label:  label,
			Value:  value,
			Active: selected == value,
			Path:   productsPath(value, vm, q, 1),
		})
	}
	return out
}

func viewOptions(category string, current view.ViewMode, q string, page int) []view.ViewOption {
	modes := []struct {
		label string
		mode  view.ViewMode
	}{
		{"Compact", view.ViewSmall},
		{"Grid", view.ViewLarge},
		{"List", view.ViewList},
	}
	out := make([]view.ViewOption, 0, len(modes))
	for _, m := range modes {
		out = append(out, view.ViewOption{
			Label:  m.label,
			Mode:   m.mode,
			Active: current == m.mode,
			Path:   productsPath(category, m.mode, q, page),
		})
	}
	return out
}

func pageLinks(totalPages, current int, category string, vm view.ViewMode, q string) []view.PageLink {
	if totalPages <= 1 {
		return nil
	}
	out := make([]view.PageLink, 0, totalPages)
	for n := 1; n <= totalPages; n++ {
		out = append(out, view.PageLink{
			Number:  n,
			Path:    productsPath(category, vm, q, n),
			Current: n == current,
		})
	}
	return out
}
