package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/filter-clauses/internal/services"
	"github.com/kubev2v/filter-clauses/internal/store"
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
)

var _ = Describe("SavedFilterService", func() {
	var (
		ctx context.Context
		db  *sql.DB
		srv *services.SavedFilterService
	)

	BeforeEach(func() {
		ctx = context.Background()
		var st *store.Store
		db, st = newTestStore(ctx)
		srv = services.NewSavedFilterService(st)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	It("should save a valid expression", func() {
		saved, err := srv.Create(ctx, "emea", `region in ("emea") and archived = false`)
		Expect(err).NotTo(HaveOccurred())

		got, err := srv.Get(ctx, saved.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Expression).To(Equal(`region in ("emea") and archived = false`))

		all, err := srv.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(1))
	})

	It("should reject expressions that do not parse", func() {
		_, err := srv.Create(ctx, "colors", `color = "red"`)
		Expect(srvErrors.IsInvalidFilterError(err)).To(BeTrue())

		saved, err := srv.Create(ctx, "negated", `not archived = true`)
		Expect(srvErrors.IsInvalidFilterError(err)).To(BeTrue())
		Expect(saved).To(BeNil())
	})

	It("should delete a saved filter", func() {
		saved, err := srv.Create(ctx, "open", `status = "open"`)
		Expect(err).NotTo(HaveOccurred())

		Expect(srv.Delete(ctx, saved.ID)).To(Succeed())
		Expect(srvErrors.IsResourceNotFoundError(srv.Delete(ctx, saved.ID))).To(BeTrue())
	})
})
