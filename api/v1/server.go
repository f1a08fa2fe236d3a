package v1

import "github.com/gin-gonic/gin"

// ServerInterface lists the handlers of the v1 API.
type ServerInterface interface {
	// (POST /clauses/preview)
	PreviewClause(c *gin.Context)
	// (POST /records/query)
	QueryRecords(c *gin.Context)
	// (POST /records/aggregate)
	AggregateRecords(c *gin.Context)
	// (POST /records/export)
	ExportRecords(c *gin.Context)
	// (POST /records)
	ImportRecords(c *gin.Context)
	// (GET /filters)
	ListSavedFilters(c *gin.Context)
	// (POST /filters)
	CreateSavedFilter(c *gin.Context)
	// (GET /filters/{id})
	GetSavedFilter(c *gin.Context, id string)
	// (DELETE /filters/{id})
	DeleteSavedFilter(c *gin.Context, id string)
}

// RegisterHandlers mounts every v1 route on router.
func RegisterHandlers(router gin.IRoutes, si ServerInterface) {
	router.POST("/clauses/preview", si.PreviewClause)
	router.POST("/records", si.ImportRecords)
	router.POST("/records/query", si.QueryRecords)
	router.POST("/records/aggregate", si.AggregateRecords)
	router.POST("/records/export", si.ExportRecords)
	router.GET("/filters", si.ListSavedFilters)
	router.POST("/filters", si.CreateSavedFilter)
	router.GET("/filters/:id", func(c *gin.Context) {
		si.GetSavedFilter(c, c.Param("id"))
	})
	router.DELETE("/filters/:id", func(c *gin.Context) {
		si.DeleteSavedFilter(c, c.Param("id"))
	})
}
