package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-scheduler-api/internal/importer"
)

// BulkUpload ingests a multipart CSV (field "csvFile") and creates one
// meeting per valid row. Row-level problems accumulate in the report and
// never fail the request; only a missing/empty/unreadable file does.
func (h *Handler) BulkUpload(c *gin.Context) {
	file, err := c.FormFile("csvFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please upload a CSV file"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only CSV files are allowed"})
		return
	}

	// spool to a temp file, removed on every exit path
	tmp := filepath.Join(os.TempDir(), "upload-"+uuid.New().String()+".csv")
	if err := c.SaveUploadedFile(file, tmp); err != nil {
		h.serverError(c, "Server error during bulk upload", err)
		return
	}
	defer os.Remove(tmp)

	f, err := os.Open(tmp)
	if err != nil {
		h.serverError(c, "Server error during bulk upload", err)
		return
	}
	defer f.Close()

	rows, err := importer.ReadRows(f)
	if err != nil {
		h.serverError(c, "Server error during bulk upload", err)
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "CSV file is empty"})
		return
	}

	imp := importer.New(h.store, h.mailer, h.log)
	report := imp.Run(c.Request.Context(), rows, userID(c))
	c.JSON(http.StatusOK, report)
}
