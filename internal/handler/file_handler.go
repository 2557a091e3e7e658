package handler

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/clc-api/pkg/errors"
	"github.com/noah-isme/clc-api/pkg/response"
	"github.com/noah-isme/clc-api/pkg/storage"
)

// FileHandler serves locally stored marksheets through signed tokens. It is
// only mounted when the local storage driver is active.
type FileHandler struct {
	store *storage.LocalStore
}

// NewFileHandler creates a new handler.
func NewFileHandler(store *storage.LocalStore) *FileHandler {
	return &FileHandler{store: store}
}

// Marksheet godoc
// @Summary Download a stored marksheet
// @Description Resolves a signed token and streams the marksheet image
// @Tags Files
// @Produce octet-stream
// @Param token path string true "Signed download token"
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /files/marksheets/{token} [get]
func (h *FileHandler) Marksheet(c *gin.Context) {
	token := c.Param("token")
	file, err := h.store.Open(token)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "marksheet not found"))
		return
	}
	defer file.Close() //nolint:errcheck

	modTime := time.Time{}
	if info, err := file.Stat(); err == nil {
		modTime = info.ModTime()
	}
	http.ServeContent(c.Writer, c.Request, filepath.Base(file.Name()), modTime, file)
}
