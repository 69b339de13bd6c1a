package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nikk-inovates/Nivaaran/internal/http/flash"
	"github.com/Nikk-inovates/Nivaaran/internal/http/middleware"
	"github.com/Nikk-inovates/Nivaaran/internal/http/render"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/contact"
	"github.com/Nikk-inovates/Nivaaran/internal/shared/apperr"
	"github.com/Nikk-inovates/Nivaaran/pkg/view"
)

// CompanyHandler serves the static company pages and the contact form.
type CompanyHandler struct {
	contact *contact.Service
	codec   *flash.Codec
}

func NewCompanyHandler(svc *contact.Service, codec *flash.Codec) *CompanyHandler {
	return &CompanyHandler{contact: svc, codec: codec}
}

func (h *CompanyHandler) About(c *gin.Context) {
	render.Page(c, http.StatusOK, "pages/about", view.SimplePage{
		Title: "About Us",
		Flash: middleware.GetFlash(c),
	})
}

func (h *CompanyHandler) Privacy(c *gin.Context) {
	render.Page(c, http.StatusOK, "pages/privacy", view.SimplePage{
		Title: "Privacy Policy",
		Flash: middleware.GetFlash(c),
	})
}

func (h *CompanyHandler) Terms(c *gin.Context) {
	render.Page(c, http.StatusOK, "pages/terms", view.SimplePage{
		Title: "Terms of Service",
		Flash: middleware.GetFlash(c),
	})
}

func (h *CompanyHandler) ContactGet(c *gin.Context) {
	render.Page(c, http.StatusOK, "pages/contact", view.ContactPage{
		Title: "Contact Us",
		Flash: middleware.GetFlash(c),
	})
}

func (h *CompanyHandler) ContactPost(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		// bind failure means a malformed body, not a user typo; field
		// validation happens in the contact service below
		middleware.Fail(c, apperr.InvalidErr("Form data is invalid.", nil))
		return
	}

	fieldErrs, err := h.contact.Submit(c.Request.Context(), sub)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if len(fieldErrs) > 0 {
		render.Page(c, http.StatusUnprocessableEntity, "pages/contact", view.ContactPage{
			Title:   "Contact Us",
			Name:    sub.Name,
			Email:   sub.Email,
			Message: sub.Message,
			Errors:  fieldErrs,
		})
		return
	}

	render.RedirectWithFlash(c, h.codec, "/contact", view.FlashSuccess,
		"Thanks! Your message has been sent.")
}
