package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/filter-clauses/internal/models"
	"github.com/kubev2v/filter-clauses/internal/services"
	"github.com/kubev2v/filter-clauses/internal/store"
	"github.com/kubev2v/filter-clauses/pkg/clause"
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
)

func seedRecords() []models.Record {
	return []models.Record{
		{ID: "r-001", Name: "alpha", Category: "web", Status: "open", Owner: "me", Region: "emea", Country: "fr", SizeMB: 512},
		{ID: "r-002", Name: "beta", Category: "db", Status: "closed", Owner: "you", Region: "emea", Country: "de", SizeMB: 2048},
		{ID: "r-003", Name: "gamma", Category: "web", Status: "closed", Owner: "me", Region: "amer", Country: "us", SizeMB: 256, Archived: true},
		{ID: "r-004", Name: "delta", Category: "cache", Status: "open", Owner: "them", Region: "apac", Country: "jp", SizeMB: 4096},
		{ID: "r-005", Name: "epsilon", Category: "web", Status: "open", Owner: "you", Region: "amer", Country: "ca", SizeMB: 1024},
	}
}

func newTestStore(ctx context.Context) (*sql.DB, *store.Store) {
	db, err := store.NewDB(store.InMemory)
	Expect(err).NotTo(HaveOccurred())

	st := store.NewStore(db)
	Expect(st.Migrate(ctx)).To(Succeed())
	return db, st
}

func recordIDs(records []models.Record) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

var _ = Describe("ClauseService", func() {
	var (
		ctx context.Context
		db  *sql.DB
		st  *store.Store
		srv *services.ClauseService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db, st = newTestStore(ctx)
		Expect(st.Records().Insert(ctx, seedRecords()...)).To(Succeed())
		srv = services.NewClauseService(st)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Preview", func() {
		It("should resolve filter columns and put the last selected one first", func() {
			preview, err := srv.Preview(ctx, models.ClauseRequest{
				Kind:     clause.GlobalFiltersBuilder,
				Operator: clause.And,
				Filters: []models.FilterItem{
					{Column: "Category", Values: []string{"web"}},
					{Column: "size", Values: []string{"1024"}, LastSelected: true},
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(preview.Where).To(Equal("WHERE size_mb IN ('1024') AND category IN ('web')"))
			Expect(preview.Valid).To(BeTrue())
			Expect(preview.Issues).To(BeEmpty())
			Expect(preview.GroupBy).To(BeNil())
		})

		It("should append the expression after the filters", func() {
			preview, err := srv.Preview(ctx, models.ClauseRequest{
				Kind:        clause.DataBuilder,
				Operator:    clause.And,
				Filters:     []models.FilterItem{{Column: "region", Values: []string{"emea", "amer"}}},
				Expressions: []string{`status = "open" or size > 2gb`},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(preview.Where).To(Equal("WHERE region IN ('emea','amer') AND (status = 'open' OR size_mb > 2048)"))
		})

		It("should turn every expression into its own section", func() {
			preview, err := srv.Preview(ctx, models.ClauseRequest{
				Kind:        clause.DataBuilder,
				Operator:    clause.And,
				Expressions: []string{`status = "open" or size > 2gb`, "", `archived = false`},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(preview.Where).To(Equal("WHERE (status = 'open' OR size_mb > 2048) AND archived = FALSE"))
		})

		It("should not let one expression close another one's parentheses", func() {
			_, err := srv.Preview(ctx, models.ClauseRequest{
				Expressions: []string{`status = "open") or (owner = "me"`, `archived = false`},
			})
			Expect(srvErrors.IsInvalidFilterError(err)).To(BeTrue())
		})

		It("should report an empty request as invalid without failing", func() {
			preview, err := srv.Preview(ctx, models.ClauseRequest{Filters: []models.FilterItem{{Column: "owner"}}})
			Expect(err).NotTo(HaveOccurred())
			Expect(preview.Where).To(BeEmpty())
			Expect(preview.Valid).To(BeFalse())
			Expect(preview.Issues).To(Equal("where clause has no sections"))
		})

		It("should list group by columns", func() {
			preview, err := srv.Preview(ctx, models.ClauseRequest{
				GroupBy: true,
				Filters: []models.FilterItem{
					{Column: "region", Primary: true, Groupable: true, Columns: []clause.ColumnDefinition{
						{FieldName: "region", Visible: true},
						{FieldName: "country", Visible: true},
					}},
					{Column: "status", Values: []string{"open"}, Primary: true, Groupable: true},
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(preview.GroupBy).To(Equal([]string{"region", "country", "status"}))
		})

		It("should reject unknown columns", func() {
			_, err := srv.Preview(ctx, models.ClauseRequest{Filters: []models.FilterItem{{Column: "color", Values: []string{"red"}}}})
			Expect(srvErrors.IsInvalidFilterError(err)).To(BeTrue())
		})

		It("should reject invalid expressions", func() {
			_, err := srv.Preview(ctx, models.ClauseRequest{Expressions: []string{`status = `}})
			Expect(srvErrors.IsInvalidFilterError(err)).To(BeTrue())

			_, err = srv.Preview(ctx, models.ClauseRequest{Expressions: []string{`color = "red"`}})
			Expect(srvErrors.IsInvalidFilterError(err)).To(BeTrue())
		})

		It("should reject an undefined builder kind", func() {
			_, err := srv.Preview(ctx, models.ClauseRequest{Kind: clause.BuilderKind(5)})
			Expect(srvErrors.IsNoSuchWhereClauseBuilderError(err)).To(BeTrue())
		})

		It("should fail for a missing saved filter", func() {
			_, err := srv.Preview(ctx, models.ClauseRequest{SavedFilterIDs: []string{"missing"}})
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Query", func() {
		It("should return every record for an empty request", func() {
			records, total, err := srv.Query(ctx, models.ClauseRequest{})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(5))
			Expect(recordIDs(records)).To(Equal([]string{"r-001", "r-002", "r-003", "r-004", "r-005"}))
		})

		It("should filter and paginate while counting every match", func() {
			records, total, err := srv.Query(ctx, models.ClauseRequest{
				Filters: []models.FilterItem{{Column: "category", Values: []string{"web"}}},
				Limit:   2,
				Offset:  1,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(3))
			Expect(recordIDs(records)).To(Equal([]string{"r-003", "r-005"}))
		})

		It("should combine saved filters with the selection", func() {
			saved, err := services.NewSavedFilterService(st).Create(ctx, "large", `size >= 1gb`)
			Expect(err).NotTo(HaveOccurred())

			records, total, err := srv.Query(ctx, models.ClauseRequest{
				Operator:       clause.And,
				Filters:        []models.FilterItem{{Column: "owner", Values: []string{"you", "them"}}},
				SavedFilterIDs: []string{saved.ID},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(3))
			Expect(recordIDs(records)).To(Equal([]string{"r-002", "r-004", "r-005"}))
		})

		It("should join the selection with OR", func() {
			records, _, err := srv.Query(ctx, models.ClauseRequest{
				Operator: clause.Or,
				Filters: []models.FilterItem{
					{Column: "category", Values: []string{"cache"}},
					{Column: "country", Values: []string{"fr"}},
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(recordIDs(records)).To(Equal([]string{"r-001", "r-004"}))
		})
	})

	Context("Aggregate", func() {
		It("should group matching records", func() {
			groups, columns, err := srv.Aggregate(ctx, models.ClauseRequest{
				OnlyPrimary: true,
				Filters: []models.FilterItem{
					{Column: "region", Primary: true, Groupable: true},
					{Column: "archived", Values: []string{"false"}},
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(columns).To(Equal([]string{"region"}))
			Expect(groups).To(HaveLen(3))
			Expect(groups[0].Keys["region"]).To(Equal("amer"))
			Expect(groups[0].Count).To(Equal(1))
			Expect(groups[1].Keys["region"]).To(Equal("apac"))
			Expect(groups[2].Keys["region"]).To(Equal("emea"))
			Expect(groups[2].TotalSizeMB).To(Equal(2560.0))
		})

		It("should fail when nothing can be grouped", func() {
			_, _, err := srv.Aggregate(ctx, models.ClauseRequest{
				Filters: []models.FilterItem{{Column: "region", Groupable: true}},
			})
			Expect(srvErrors.IsInvalidCommandError(err)).To(BeTrue())
		})
	})
})
