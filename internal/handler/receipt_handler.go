package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/clc-api/internal/service"
	appErrors "github.com/noah-isme/clc-api/pkg/errors"
	"github.com/noah-isme/clc-api/pkg/receipt"
	"github.com/noah-isme/clc-api/pkg/response"
)

// ReceiptHandler serves the printable fee receipt for paid applications.
type ReceiptHandler struct {
	service *service.ApplicationService
	builder *receipt.Builder
}

// NewReceiptHandler creates a new handler.
func NewReceiptHandler(svc *service.ApplicationService, builder *receipt.Builder) *ReceiptHandler {
	return &ReceiptHandler{service: svc, builder: builder}
}

// Receipt godoc
// @Summary Get fee receipt
// @Description Returns the formatted application-cum-fee receipt for the paid application
// @Tags Applications
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 402 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications/receipt [get]
func (h *ReceiptHandler) Receipt(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	detail, err := h.service.MyApplication(c.Request.Context(), claims.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	r := h.builder.Build(&detail.Application, &detail.Student)
	response.JSON(c, http.StatusOK, r)
}

// ReceiptPDF godoc
// @Summary Download fee receipt PDF
// @Description Renders the fee receipt as a printable PDF document
// @Tags Applications
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 401 {object} response.Envelope
// @Failure 402 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications/receipt.pdf [get]
func (h *ReceiptHandler) ReceiptPDF(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	detail, err := h.service.MyApplication(c.Request.Context(), claims.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	r := h.builder.Build(&detail.Application, &detail.Student)
	pdfBytes, err := receipt.RenderPDF(r)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render receipt"))
		return
	}

	c.Header("Content-Disposition", `inline; filename="clc-receipt.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
