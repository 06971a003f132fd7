package handlers

import (
	"net/http"
	"strings"

	"afyajirani-backend/internal/middleware"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/services"
	"afyajirani-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Public content lists.

func (h *Handler) GetTips(c *gin.Context) {
	tips, err := h.Content.ListTips(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Tips loaded", tips)
}

// GetClinics supports ?search= over name, location and address.
func (h *Handler) GetClinics(c *gin.Context) {
	clinics, err := h.Content.ListClinics(c.Request.Context(), strings.TrimSpace(c.Query("search")))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Clinics loaded", clinics)
}

func (h *Handler) GetHelplines(c *gin.Context) {
	helplines, err := h.Content.ListHelplines(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Helplines loaded", helplines)
}

func (h *Handler) GetFAQ(c *gin.Context) {
	faq, err := h.Content.ListFAQ(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "FAQ loaded", faq)
}

// Admin content creation. Free text is sanitized before it is stored.

func (h *Handler) CreateTip(c *gin.Context) {
	var input models.TipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	tip := &models.Tip{
		Title:   utils.CleanText(input.Title),
		Content: utils.CleanText(input.Content),
		Disease: strings.TrimSpace(input.Disease),
	}
	if err := h.Content.CreateTip(c.Request.Context(), tip); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	h.recordContent(c, "tip", tip.Title)
	utils.APIResponse(c, http.StatusCreated, true, "Tip added", tip)
}

func (h *Handler) CreateClinic(c *gin.Context) {
	var input models.ClinicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	clinic := &models.Clinic{
		Name:     utils.CleanText(input.Name),
		Address:  utils.CleanText(input.Address),
		Location: utils.CleanText(input.Location),
		Phone:    strings.TrimSpace(input.Phone),
	}
	if err := h.Content.CreateClinic(c.Request.Context(), clinic); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	h.recordContent(c, "clinic", clinic.Name)
	utils.APIResponse(c, http.StatusCreated, true, "Clinic added", clinic)
}

func (h *Handler) CreateHelpline(c *gin.Context) {
	var input models.HelplineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	helpline := &models.Helpline{
		Name:        utils.CleanText(input.Name),
		Number:      strings.TrimSpace(input.Number),
		Description: utils.CleanText(input.Description),
	}
	if err := h.Content.CreateHelpline(c.Request.Context(), helpline); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	h.recordContent(c, "helpline", helpline.Name)
	utils.APIResponse(c, http.StatusCreated, true, "Helpline added", helpline)
}

func (h *Handler) CreateFAQ(c *gin.Context) {
	var input models.FAQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	faq := &models.FAQ{
		Question: utils.CleanText(input.Question),
		Answer:   utils.CleanText(input.Answer),
	}
	if err := h.Content.CreateFAQ(c.Request.Context(), faq); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	h.recordContent(c, "faq", faq.Question)
	utils.APIResponse(c, http.StatusCreated, true, "FAQ added", faq)
}

func (h *Handler) recordContent(c *gin.Context, kind, title string) {
	actor := middleware.ActorFrom(c)
	if err := h.Audit.Record(c.Request.Context(), services.AuditContentCreated, actor.Email, kind+": "+title); err != nil {
		h.Logger.Warn("audit log write failed", zap.String("kind", kind), zap.Error(err))
	}
}
