// Package handlers implements the HTTP API layer of the clause service.
//
// Handlers decode and validate requests, delegate to the services layer and
// map service errors to HTTP status codes. They never build SQL themselves.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - JSON binding and validator/v10 checks                        │
//	│  - Pagination                                                   │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  ClauseService │ RecordService │ SavedFilterService             │
//	└─────────────────────────────────────────────────────────────────┘
//
// The Handler implements v1.ServerInterface and is mounted with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
// Clause Endpoints (clauses.go):
//
//	┌────────┬────────────────────┬────────────────────────────────────────┐
//	│ Method │ Endpoint           │ Description                            │
//	├────────┼────────────────────┼────────────────────────────────────────┤
//	│ POST   │ /clauses/preview   │ Render WHERE and GROUP BY clauses      │
//	│ POST   │ /records/query     │ Page of records matching the clause    │
//	│ POST   │ /records/aggregate │ Record counts per group                │
//	│ POST   │ /records/export    │ Matching records as an XLSX workbook   │
//	│ POST   │ /records           │ Import records (JSON or XLSX)          │
//	└────────┴────────────────────┴────────────────────────────────────────┘
//
// Saved Filter Endpoints (filters.go):
//
//	┌────────┬───────────────┬────────────────────────────────────────────┐
//	│ Method │ Endpoint      │ Description                                │
//	├────────┼───────────────┼────────────────────────────────────────────┤
//	│ GET    │ /filters      │ List saved filters                         │
//	│ POST   │ /filters      │ Save a filter expression                   │
//	│ GET    │ /filters/{id} │ Get a saved filter                         │
//	│ DELETE │ /filters/{id} │ Delete a saved filter                      │
//	└────────┴───────────────┴────────────────────────────────────────────┘
//
// # Clause Request
//
// Every clause endpoint takes the same body:
//
//	{
//	    "kind": "globalFilters",          // data (default) | globalFilters
//	    "operator": "and",                // and (default) | or
//	    "filters": [
//	        {"column": "region", "values": ["emea"], "lastSelected": true,
//	         "primary": true, "groupable": true},
//	        {"column": "status", "values": ["open", "closed"]}
//	    ],
//	    "expression": "size >= 1gb or archived = true",
//	    "savedFilters": ["1b4e28ba-2fa1-11d2-883f-0016d3cca427"],
//	    "groupBy": true,
//	    "onlyPrimary": false,
//	    "page": 1,                        // query only
//	    "pageSize": 20                    // query only, max 100
//	}
//
// Filters become "column IN (values)" sections. The expression and every saved
// filter are parsed with the filter DSL and appended as extra sections.
//
// POST /clauses/preview response:
//
//	{
//	    "where": "WHERE region IN ('emea') AND status IN ('open','closed')",
//	    "groupBy": ["region"],
//	    "valid": true
//	}
//
// An empty selection previews as {"where": "", "valid": false, "issues": "where clause has no sections"}.
// Query, aggregate and export treat an empty selection as "every record".
//
// # Error Handling
//
// Errors use a single format:
//
//	{ "error": "error message" }
//
// HTTP Status Code Mapping:
//
//	┌───────────────────────────────────────┬────────┬──────────────────────────────┐
//	│ Error Type                            │ Status │ When                         │
//	├───────────────────────────────────────┼────────┼──────────────────────────────┤
//	│ Validation error                      │ 400    │ Body fails binding or rules  │
//	│ InvalidFilterError                    │ 400    │ Unknown column, bad DSL      │
//	│ NoSuchWhereClauseBuilderError         │ 400    │ Undefined clause kind        │
//	│ ResourceNotFoundError                 │ 404    │ Saved filter doesn't exist   │
//	│ ResourceConflictError                 │ 409    │ Saved filter name taken      │
//	│ InvalidCommandError                   │ 422    │ Clause has invalid sections  │
//	│ Internal error                        │ 500    │ Unexpected service errors    │
//	└───────────────────────────────────────┴────────┴──────────────────────────────┘
//
// # Model Conversion
//
// Conversions live in api/v1/extension.go:
//
//   - v1.ClauseRequest.ToModel() → models.ClauseRequest
//   - v1.NewClausePreview(models.ClausePreview) → v1.ClausePreview
//   - v1.NewRecord(models.Record) → v1.Record
//   - v1.NewSavedFilter(models.SavedFilter) → v1.SavedFilter
package handlers
