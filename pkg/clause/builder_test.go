package clause_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/filter-clauses/pkg/clause"
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
)

var _ = Describe("WhereClauseBuilder", func() {
	leaf := func(column string, values ...string) *clause.Section {
		return clause.NewSection(clause.NewInCondition(column, values...))
	}

	Describe("NewWhereClauseBuilder", func() {
		It("should return the generic builder for data", func() {
			b, err := clause.NewWhereClauseBuilder(clause.DataBuilder, clause.Or)
			Expect(err).ToNot(HaveOccurred())
			Expect(b).To(BeAssignableToTypeOf(&clause.GenericWhereClauseBuilder{}))
			Expect(b.Kind()).To(Equal(clause.DataBuilder))
		})

		It("should return the priority builder for global filters", func() {
			b, err := clause.NewWhereClauseBuilder(clause.GlobalFiltersBuilder, clause.And)
			Expect(err).ToNot(HaveOccurred())
			Expect(b).To(BeAssignableToTypeOf(&clause.PriorityWhereClauseBuilder{}))
			Expect(b.Kind()).To(Equal(clause.GlobalFiltersBuilder))
		})

		It("should fail for an undefined kind", func() {
			b, err := clause.NewWhereClauseBuilder(clause.BuilderKind(99), clause.And)
			Expect(b).To(BeNil())
			Expect(srvErrors.IsNoSuchWhereClauseBuilderError(err)).To(BeTrue())
			Expect(err.Error()).To(Equal("NewWhereClauseBuilder(kind): no such where clause builder: BuilderKind(99)"))
		})
	})

	Describe("GenericWhereClauseBuilder", func() {
		// Given two filters added to a data builder joined by OR
		// When the where clause is created
		// Then both conditions are joined by the section operator
		It("should join conditions with the configured operator", func() {
			b := clause.NewGenericWhereClauseBuilder(clause.Or)
			Expect(b.AddFilterCondition(leaf("Category", "a", "b"), clause.DefaultSection)).To(Succeed())
			Expect(b.AddFilterCondition(leaf("Status", "open"), clause.DefaultSection)).To(Succeed())

			cmd := b.CreateWhereClause()
			Expect(cmd.CreateCommand()).To(Equal("WHERE Category IN ('a','b') OR Status IN ('open')"))
			Expect(cmd.IsValid()).To(BeTrue())
		})

		It("should reject the last selected type", func() {
			b := clause.NewGenericWhereClauseBuilder(clause.And)
			err := b.AddFilterCondition(leaf("Status", "open"), clause.LastSelectedSection)
			Expect(srvErrors.IsNoSuchFilterConditionSectionTypeError(err)).To(BeTrue())
		})

		It("should reject an undefined section type", func() {
			b := clause.NewGenericWhereClauseBuilder(clause.And)
			err := b.AddFilterCondition(leaf("Status", "open"), clause.SectionType(99))
			Expect(srvErrors.IsNoSuchFilterConditionSectionTypeError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("AddFilterCondition(sectionType)"))
		})

		It("should return an empty command, not nil, when nothing was added", func() {
			cmd := clause.NewGenericWhereClauseBuilder(clause.And).CreateWhereClause()
			Expect(cmd).ToNot(BeNil())
			Expect(cmd.Sections()).To(BeEmpty())
			Expect(cmd.CreateCommand()).To(BeEmpty())
		})
	})

	Describe("PriorityWhereClauseBuilder", func() {
		It("should render the last selected section before the default one", func() {
			b := clause.NewPriorityWhereClauseBuilder(clause.And)
			Expect(b.AddFilterCondition(leaf("Status", "open"), clause.DefaultSection)).To(Succeed())
			Expect(b.AddFilterCondition(leaf("Category", "a"), clause.LastSelectedSection)).To(Succeed())

			cmd := b.CreateWhereClause()
			Expect(cmd.CreateCommand()).To(Equal("WHERE Category IN ('a') AND Status IN ('open')"))
		})

		It("should parenthesize multi-condition sections when both are present", func() {
			b := clause.NewPriorityWhereClauseBuilder(clause.Or)
			Expect(b.AddFilterCondition(leaf("Status", "open"), clause.DefaultSection)).To(Succeed())
			Expect(b.AddFilterCondition(leaf("Owner", "me"), clause.DefaultSection)).To(Succeed())
			Expect(b.AddFilterCondition(leaf("Category", "a"), clause.LastSelectedSection)).To(Succeed())

			cmd := b.CreateWhereClause()
			Expect(cmd.CreateCommand()).To(Equal("WHERE Category IN ('a') OR (Status IN ('open') OR Owner IN ('me'))"))
		})

		It("should only keep sections that have content", func() {
			b := clause.NewPriorityWhereClauseBuilder(clause.And)
			Expect(b.AddFilterCondition(leaf("Status", "open"), clause.DefaultSection)).To(Succeed())

			cmd := b.CreateWhereClause()
			Expect(cmd.Sections()).To(HaveLen(1))
			Expect(cmd.Sections()[0].Type).To(Equal(clause.DefaultSection))
			Expect(cmd.CreateCommand()).To(Equal("WHERE Status IN ('open')"))
		})

		It("should reject an undefined section type", func() {
			b := clause.NewPriorityWhereClauseBuilder(clause.And)
			err := b.AddFilterCondition(leaf("Status", "open"), clause.SectionType(99))
			Expect(srvErrors.IsNoSuchFilterConditionSectionTypeError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("SectionType(99)"))
		})
	})
})
