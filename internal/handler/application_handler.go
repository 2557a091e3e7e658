package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/clc-api/internal/dto"
	"github.com/noah-isme/clc-api/internal/service"
	appErrors "github.com/noah-isme/clc-api/pkg/errors"
	"github.com/noah-isme/clc-api/pkg/response"
)

// ApplicationHandler wires HTTP endpoints to the application workflow.
type ApplicationHandler struct {
	service *service.ApplicationService
}

// NewApplicationHandler creates a new handler.
func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: svc}
}

// Submit godoc
// @Summary Submit CLC application
// @Description Submit address details with the marksheet image; one application per student
// @Tags Applications
// @Accept multipart/form-data
// @Produce json
// @Param village formData string true "Village"
// @Param postOffice formData string true "Post office"
// @Param policeStation formData string true "Police station"
// @Param district formData string true "District"
// @Param state formData string true "State"
// @Param pinCode formData string true "PIN code"
// @Param marksheet formData file true "Marksheet image (.jpg/.jpeg/.png/.webp, max 20MB)"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /applications/submit [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid application payload"))
		return
	}

	fileHeader, err := c.FormFile("marksheet")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "marksheet image is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "could not read marksheet image"))
		return
	}
	defer file.Close() //nolint:errcheck

	app, err := h.service.Submit(c.Request.Context(), claims.StudentID, req, service.MarksheetUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Body:     file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, app)
}

// ConfirmPayment godoc
// @Summary Confirm application payment
// @Description Record the simulated payment result for the student's unpaid application
// @Tags Applications
// @Accept json
// @Produce json
// @Param payload body dto.ConfirmPaymentRequest true "Payment payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /applications/confirm-payment [post]
func (h *ApplicationHandler) ConfirmPayment(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payment payload"))
		return
	}

	app, err := h.service.ConfirmPayment(c.Request.Context(), claims.StudentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, app)
}

// MyApplication godoc
// @Summary Get own application
// @Description Returns the paid application joined with the student profile
// @Tags Applications
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 402 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications/my-application [get]
func (h *ApplicationHandler) MyApplication(c *gin.Context) {
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

	response.JSON(c, http.StatusOK, detail)
}
