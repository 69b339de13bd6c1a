package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nikk-inovates/Nivaaran/internal/http/middleware"
	"github.com/Nikk-inovates/Nivaaran/internal/http/render"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/catalog"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/feed"
	"github.com/Nikk-inovates/Nivaaran/internal/shared/apperr"
	"github.com/Nikk-inovates/Nivaaran/pkg/view"
)

type ProductDetailHandler struct {
	feed *feed.Client
	log  *slog.Logger
}

func NewProductDetailHandler(fc *feed.Client, l *slog.Logger) *ProductDetailHandler {
	return &ProductDetailHandler{feed: fc, log: l}
}

func (h *ProductDetailHandler) Detail(c *gin.Context) {
	id := c.Param("id")

	rec, ok, err := h.feed.FetchProductByID(c.Request.Context(), id)
	if err != nil {
		ae := feedError(err)
		render.ErrorPage(c, apperr.HTTPStatus(ae), apperr.PublicMessage(ae))
		return
	}
	if !ok {
		render.NotFoundPage(c, "Product Not Found", "The product you're looking for doesn't exist.")
		return
	}

	p := catalog.Normalize(rec)

	detail := mapProductDetail(p)
	detail.ShareURL = shareURL(c)

	render.Page(c, http.StatusOK, "pages/product_detail", view.ProductDetailPage{
		Title:   p.DisplayName(),
		Product: detail,
		Related: mapProductCards(h.related(c, p)),
		Flash:   middleware.GetFlash(c),
	})
}

// related reuses the bulk list fetch; any failure degrades to an empty
// strip without affecting the primary product.
func (h *ProductDetailHandler) related(c *gin.Context, p catalog.Product) []catalog.Product {
	records, err := h.feed.ListRecords(c.Request.Context(), catalog.BulkLimit)
	if err != nil {
		h.log.Warn("related products fetch failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("product_id", p.ID),
			slog.Any("err", err),
		)
		return nil
	}
	items := make([]catalog.Product, 0, len(records))
	for _, r := range records {
		items = append(items, catalog.Normalize(r))
	}
	return catalog.Related(items, p)
}
