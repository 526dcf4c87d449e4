package v1

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/budgetbook/backend/internal/export"
	"github.com/budgetbook/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for the CSV export with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExport)
	r.GET("", co.GetExport)
}

// RegisterImportRoutes registers the routes for the CSV import with
// the RouterGroup that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsImport)
	r.POST("", co.CreateImport)
}

type ImportResponse struct {
	Data  []TransactionResponse `json:"data"`                                                  // The imported transactions or their respective error
	Error *string               `json:"error" example:"you must send a file to this endpoint"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all transactions as a CSV file
// @Tags			Export
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	var buffer bytes.Buffer

	err := export.WriteCSV(&buffer, co.Store.List())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv", buffer.Bytes())
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func (co Controller) OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Import
// @Description	Imports transactions from a CSV file in the export format. Transactions are appended to the existing ones. The response code is the highest response code number that a single transaction creation would have caused.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Param			file	formData	file	true	"The CSV file to import"
// @Router			/v1/import [post]
func (co Controller) CreateImport(c *gin.Context) {
	file, err := getUploadedFile(c, ".csv")
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}
	defer file.Close()

	transactions, err := export.ParseCSV(file)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	responseStatus := http.StatusCreated
	r := ImportResponse{Data: make([]TransactionResponse, 0, len(transactions))}

	for _, transaction := range transactions {
		id, err := co.Store.Add(transaction)
		if err != nil {
			s := err.Error()
			r.Data = append(r.Data, TransactionResponse{Error: &s})

			if newStatus := status(err); newStatus > responseStatus {
				responseStatus = newStatus
			}
			continue
		}

		created, _ := co.Store.Get(id)
		data := newTransaction(c, created)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	co.persistTransactions()
	c.JSON(responseStatus, r)
}
