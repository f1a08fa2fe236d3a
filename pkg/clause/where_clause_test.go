package clause_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/filter-clauses/pkg/clause"
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
)

type filter struct {
	column       string
	values       []string
	lastSelected bool
}

func (f filter) ColumnName() string       { return f.column }
func (f filter) SelectedValues() []string { return f.values }
func (f filter) IsLastSelected() bool     { return f.lastSelected }

var _ = Describe("WhereClause", func() {
	var filters []clause.Filter

	BeforeEach(func() {
		filters = []clause.Filter{
			filter{column: "Category", values: []string{"a", "b"}},
			filter{column: "Owner"},
			filter{column: "Status", values: []string{"open"}, lastSelected: true},
		}
	})

	Context("default organizers", func() {
		It("should join every filter with values in a data clause", func() {
			cmd, err := clause.NewDefaultWhereClause().Create(clause.DataBuilder, clause.Or, filters)
			Expect(err).ToNot(HaveOccurred())
			Expect(cmd.CreateCommand()).To(Equal("WHERE Category IN ('a','b') OR Status IN ('open')"))
		})

		It("should put the last selected filter first in a global filters clause", func() {
			cmd, err := clause.NewDefaultWhereClause().Create(clause.GlobalFiltersBuilder, clause.And, filters)
			Expect(err).ToNot(HaveOccurred())
			Expect(cmd.CreateCommand()).To(Equal("WHERE Status IN ('open') AND Category IN ('a','b')"))
		})

		It("should return an empty command when no filter has values", func() {
			cmd, err := clause.NewDefaultWhereClause().Create(clause.DataBuilder, clause.And, []clause.Filter{filter{column: "Owner"}})
			Expect(err).ToNot(HaveOccurred())
			Expect(cmd.CreateCommand()).To(BeEmpty())
			Expect(cmd.IsValid()).To(BeFalse())
		})
	})

	Context("organizers", func() {
		It("should fail when nothing is registered for the kind", func() {
			_, err := clause.NewWhereClause().Create(clause.DataBuilder, clause.And, filters)
			Expect(srvErrors.IsNoSuchWhereClauseError(err)).To(BeTrue())
		})

		It("should fail for an undefined kind", func() {
			_, err := clause.NewDefaultWhereClause().Create(clause.BuilderKind(7), clause.And, filters)
			Expect(srvErrors.IsNoSuchWhereClauseBuilderError(err)).To(BeTrue())

			err = clause.NewWhereClause().Register(clause.BuilderKind(7), clause.InOrganizer{})
			Expect(srvErrors.IsNoSuchWhereClauseBuilderError(err)).To(BeTrue())
		})

		It("should propagate organizer errors", func() {
			w := clause.NewWhereClause()
			Expect(w.Register(clause.DataBuilder, clause.OrganizerFunc(func([]clause.Filter, clause.WhereClauseBuilder) error {
				return errors.New("boom")
			}))).To(Succeed())

			_, err := w.Create(clause.DataBuilder, clause.And, filters)
			Expect(err).To(MatchError("boom"))
		})

		It("should fail when the in organizer prioritizes on a data builder", func() {
			w := clause.NewWhereClause()
			Expect(w.Register(clause.DataBuilder, clause.InOrganizer{PrioritizeLastSelected: true})).To(Succeed())

			_, err := w.Create(clause.DataBuilder, clause.And, filters)
			Expect(srvErrors.IsNoSuchFilterConditionSectionTypeError(err)).To(BeTrue())
		})

		It("should append a cloned prepared section", func() {
			prepared := clause.NewSection(clause.NewInCondition("Owner", "me")).
				Or(clause.NewSection(clause.NewInCondition("Owner", "you")))

			cmd, err := clause.NewDefaultWhereClause().Create(clause.DataBuilder, clause.And, filters,
				clause.SectionOrganizer{Section: prepared, Type: clause.DefaultSection})
			Expect(err).ToNot(HaveOccurred())
			Expect(cmd.CreateCommand()).To(Equal("WHERE Category IN ('a','b') AND Status IN ('open') AND (Owner IN ('me') OR Owner IN ('you'))"))

			added := cmd.Sections()[0].Sections()[2]
			Expect(added).ToNot(BeIdenticalTo(prepared))
		})

		It("should run extra organizers without registered ones", func() {
			prepared := clause.NewSection(clause.NewInCondition("Owner", "me"))
			cmd, err := clause.NewWhereClause().Create(clause.DataBuilder, clause.And, nil,
				clause.SectionOrganizer{Section: prepared})
			Expect(err).ToNot(HaveOccurred())
			Expect(cmd.CreateCommand()).To(Equal("WHERE Owner IN ('me')"))
		})
	})
})
