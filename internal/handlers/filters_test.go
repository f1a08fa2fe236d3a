package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/kubev2v/filter-clauses/api/v1"
	"github.com/kubev2v/filter-clauses/internal/handlers"
	"github.com/kubev2v/filter-clauses/internal/models"
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
)

var _ = Describe("Saved Filter Handlers", func() {
	var (
		mockFilters *MockSavedFilterService
		router      *gin.Engine
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		mockFilters = &MockSavedFilterService{Filters: map[string]models.SavedFilter{
			"f-1": {ID: "f-1", Name: "open", Expression: `status = "open"`},
		}}
		handler := handlers.New(&MockClauseService{}, &MockRecordService{}, mockFilters)
		router = gin.New()
		v1.RegisterHandlers(router, handler)
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("should list saved filters", func() {
		w := do(http.MethodGet, "/filters", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp v1.SavedFilterList
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Filters).To(HaveLen(1))
		Expect(resp.Filters[0].Name).To(Equal("open"))
	})

	It("should get a saved filter", func() {
		w := do(http.MethodGet, "/filters/f-1", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp v1.SavedFilter
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Expression).To(Equal(`status = "open"`))
	})

	It("should return 404 for a missing filter", func() {
		Expect(do(http.MethodGet, "/filters/nope", "").Code).To(Equal(http.StatusNotFound))
		Expect(do(http.MethodDelete, "/filters/nope", "").Code).To(Equal(http.StatusNotFound))
	})

	It("should create a saved filter", func() {
		w := do(http.MethodPost, "/filters", `{"name":"large","expression":"size > 1gb"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(mockFilters.LastName).To(Equal("large"))
		Expect(mockFilters.Filters).To(HaveKey("f-new"))
	})

	It("should require name and expression", func() {
		Expect(do(http.MethodPost, "/filters", `{"name":"large"}`).Code).To(Equal(http.StatusBadRequest))
		Expect(do(http.MethodPost, "/filters", `{"expression":"size > 1gb"}`).Code).To(Equal(http.StatusBadRequest))
	})

	It("should map service errors", func() {
		mockFilters.CreateError = srvErrors.NewInvalidFilterError("size >", "parse error")
		Expect(do(http.MethodPost, "/filters", `{"name":"bad","expression":"size >"}`).Code).To(Equal(http.StatusBadRequest))

		mockFilters.CreateError = srvErrors.NewSavedFilterExistsError("open")
		Expect(do(http.MethodPost, "/filters", `{"name":"open","expression":"status = \"open\""}`).Code).To(Equal(http.StatusConflict))
	})

	It("should delete a saved filter", func() {
		w := do(http.MethodDelete, "/filters/f-1", "")
		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(mockFilters.Filters).To(BeEmpty())
	})
})
