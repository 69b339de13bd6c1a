package handlers

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Nikk-inovates/Nivaaran/internal/modules/catalog"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/feed"
	"github.com/Nikk-inovates/Nivaaran/internal/shared/apperr"
	"github.com/Nikk-inovates/Nivaaran/pkg/view"
	"github.com/Nikk-inovates/Nivaaran/templates/shared"
)

// feedError classifies a feed failure so the response status reflects
// what went wrong: 504 for a timed-out fetch, 502 for everything the
// upstream did to us. Transport errors keep the body excerpt out of the
// public message; it stays on the wrapped error for the logs.
func feedError(err error) *apperr.AppError {
	var te *feed.TimeoutError
	if errors.As(err, &te) {
		return apperr.TimeoutErr(te.Error(), err)
	}
	var tre *feed.TransportError
	if errors.As(err, &tre) {
		return apperr.UpstreamErr(tre.Message, err)
	}
	var ue *feed.UpstreamError
	if errors.As(err, &ue) {
		return apperr.UpstreamErr(ue.Error(), err)
	}
	return apperr.UpstreamErr("The product feed is unreachable.", err)
}

func mapProductCard(p catalog.Product) view.ProductCard {
	card := view.ProductCard{
		ID:           p.ID,
		Name:         p.DisplayName(),
		Platform:     p.Platform,
		Category:     p.Category,
		Images:       p.Images,
		Price:        shared.PriceOrDash(p.BuyPrice),
		AffiliateURL: p.AffiliateURL,
		DetailPath:   "/product/" + url.PathEscape(p.ID),
	}
	if p.HasDiscount() {
		card.HasDiscount = true
		card.DiscountPercent = p.DiscountPercent()
		card.OriginalPrice = shared.FormatMoney(*p.OriginalPrice)
	}
	return card
}

func mapProductCards(items []catalog.Product) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(items))
	for _, p := range items {
		out = append(out, mapProductCard(p))
	}
	return out
}

func mapProductDetail(p catalog.Product) view.ProductDetail {
	images := p.Images
	if len(images) > 8 {
		// headroom only: the normalizer caps at 4
		images = images[:8]
	}
	d := view.ProductDetail{
		ID:           p.ID,
		Name:         p.DisplayName(),
		Platform:     p.Platform,
		Category:     p.Category,
		Description:  p.Description,
		Images:       images,
		Tags:         p.TagList(),
		Price:        shared.PriceOrDash(p.BuyPrice),
		AffiliateURL: p.AffiliateURL,
	}
	if p.HasDiscount() {
		d.HasDiscount = true
		d.DiscountPercent = p.DiscountPercent()
		d.OriginalPrice = shared.FormatMoney(*p.OriginalPrice)
	}
	return d
}

// productsPath writes the filter/view selection back into the URL, the
// routing surface the catalog reads its seeds from.
func productsPath(category string, vm view.ViewMode, q string, page int) string {
	params := url.Values{}
	if category != "" && category != catalog.AllCategories {
		params.Set("category", strings.ToLower(category))
	}
	if vm != view.ViewLarge {
		params.Set("view", string(vm))
	}
	if q != "" {
		params.Set("q", q)
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	if len(params) == 0 {
		return "/products"
	}
	return "/products?" + params.Encode()
}

func shareURL(c *gin.Context) string {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}

func intParam(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
