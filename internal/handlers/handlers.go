package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/filter-clauses/api/v1"
	"github.com/kubev2v/filter-clauses/internal/models"
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
)

type ClauseService interface {
	Preview(ctx context.Context, req models.ClauseRequest) (*models.ClausePreview, error)
	Query(ctx context.Context, req models.ClauseRequest) ([]models.Record, int, error)
	Aggregate(ctx context.Context, req models.ClauseRequest) ([]models.RecordGroup, []string, error)
}

type RecordService interface {
	Import(ctx context.Context, records []models.Record) (int, error)
	ImportXLSX(ctx context.Context, r io.Reader) (int, error)
	Export(ctx context.Context, req models.ClauseRequest, w io.Writer) error
}

type SavedFilterService interface {
	Create(ctx context.Context, name, expression string) (*models.SavedFilter, error)
	Get(ctx context.Context, id string) (*models.SavedFilter, error)
	List(ctx context.Context) ([]models.SavedFilter, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	clauseSrv ClauseService
	recordSrv RecordService
	filterSrv SavedFilterService
	validate  *validator.Validate
}

var _ v1.ServerInterface = (*Handler)(nil)

func New(clauseSrv ClauseService, recordSrv RecordService, filterSrv SavedFilterService) *Handler {
	return &Handler{
		clauseSrv: clauseSrv,
		recordSrv: recordSrv,
		filterSrv: filterSrv,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// bindJSON decodes and validates the body. It writes a 400 and returns false on failure.
func (h *Handler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError maps service errors to status codes. Unexpected errors are logged and hidden behind msg.
func respondError(c *gin.Context, logger *zap.SugaredLogger, msg string, err error) {
	switch {
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case srvErrors.IsResourceConflictError(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case srvErrors.IsInvalidFilterError(err),
		srvErrors.IsNoSuchWhereClauseBuilderError(err),
		srvErrors.IsNoSuchWhereClauseError(err),
		srvErrors.IsNoSuchFilterConditionSectionTypeError(err),
		srvErrors.IsInvalidWorkbookError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case srvErrors.IsInvalidCommandError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Errorw(msg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
