package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/filter-clauses/api/v1"
	"github.com/kubev2v/filter-clauses/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// PreviewClause renders the where and group by clauses of a request
// (POST /clauses/preview)
func (h *Handler) PreviewClause(c *gin.Context) {
	req, ok := h.clauseRequest(c)
	if !ok {
		return
	}

	preview, err := h.clauseSrv.Preview(c.Request.Context(), req)
	if err != nil {
		respondError(c, zap.S().Named("clause_handler"), "failed to preview clause", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewClausePreview(*preview))
}

// QueryRecords returns a page of records matching the request
// (POST /records/query)
func (h *Handler) QueryRecords(c *gin.Context) {
	var body v1.ClauseRequest
	if !h.bindJSON(c, &body) {
		return
	}
	req, ok := toModel(c, body)
	if !ok {
		return
	}

	page := 1
	if body.Page != nil {
		page = *body.Page
	}
	pageSize := defaultPageSize
	if body.PageSize != nil {
		pageSize = min(*body.PageSize, maxPageSize)
	}
	req.Limit = uint64(pageSize)
	req.Offset = uint64((page - 1) * pageSize)

	records, total, err := h.clauseSrv.Query(c.Request.Context(), req)
	if err != nil {
		respondError(c, zap.S().Named("clause_handler"), "failed to query records", err)
		return
	}

	pageCount := (total + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}

	resp := v1.RecordListResponse{
		Records:   make([]v1.Record, 0, len(records)),
		Total:     total,
		Page:      page,
		PageCount: pageCount,
	}
	for _, r := range records {
		resp.Records = append(resp.Records, v1.NewRecord(r))
	}

	c.JSON(http.StatusOK, resp)
}

// AggregateRecords groups matching records by the groupable filters
// (POST /records/aggregate)
func (h *Handler) AggregateRecords(c *gin.Context) {
	req, ok := h.clauseRequest(c)
	if !ok {
		return
	}

	groups, columns, err := h.clauseSrv.Aggregate(c.Request.Context(), req)
	if err != nil {
		respondError(c, zap.S().Named("clause_handler"), "failed to aggregate records", err)
		return
	}

	resp := v1.RecordGroupsResponse{
		Columns: columns,
		Groups:  make([]v1.RecordGroup, 0, len(groups)),
	}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, v1.NewRecordGroup(g))
	}

	c.JSON(http.StatusOK, resp)
}

// ExportRecords streams matching records as an XLSX workbook
// (POST /records/export)
func (h *Handler) ExportRecords(c *gin.Context) {
	req, ok := h.clauseRequest(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.recordSrv.Export(c.Request.Context(), req, &buf); err != nil {
		respondError(c, zap.S().Named("record_handler"), "failed to export records", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="records.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ImportRecords loads records from a JSON body or an XLSX workbook
// (POST /records)
func (h *Handler) ImportRecords(c *gin.Context) {
	logger := zap.S().Named("record_handler")

	if c.ContentType() == xlsxContentType {
		n, err := h.recordSrv.ImportXLSX(c.Request.Context(), c.Request.Body)
		if err != nil {
			respondError(c, logger, "failed to import workbook", err)
			return
		}
		c.JSON(http.StatusCreated, v1.ImportResult{Imported: n})
		return
	}

	var body v1.RecordImport
	if !h.bindJSON(c, &body) {
		return
	}

	records := make([]models.Record, 0, len(body.Records))
	for _, r := range body.Records {
		records = append(records, r.ToModel())
	}

	n, err := h.recordSrv.Import(c.Request.Context(), records)
	if err != nil {
		respondError(c, logger, "failed to import records", err)
		return
	}

	c.JSON(http.StatusCreated, v1.ImportResult{Imported: n})
}

func (h *Handler) clauseRequest(c *gin.Context) (models.ClauseRequest, bool) {
	var body v1.ClauseRequest
	if !h.bindJSON(c, &body) {
		return models.ClauseRequest{}, false
	}
	return toModel(c, body)
}

func toModel(c *gin.Context, body v1.ClauseRequest) (models.ClauseRequest, bool) {
	req, err := body.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, false
	}
	return req, true
}
