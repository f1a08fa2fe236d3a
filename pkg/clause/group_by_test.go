package clause_test

import (
	sq "github.com/Masterminds/squirrel"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/filter-clauses/pkg/clause"
)

type groupable struct {
	primary   bool
	groupable bool
	columns   []clause.ColumnDefinition
}

func (g groupable) IsPrimaryColumn() bool                        { return g.primary }
func (g groupable) IsGroupable() bool                            { return g.groupable }
func (g groupable) ColumnDefinitions() []clause.ColumnDefinition { return g.columns }

func visible(names ...string) []clause.ColumnDefinition {
	defs := make([]clause.ColumnDefinition, 0, len(names))
	for _, n := range names {
		defs = append(defs, clause.ColumnDefinition{FieldName: n, Visible: true})
	}
	return defs
}

var _ = Describe("GroupByClause", func() {
	It("should return nil for empty input", func() {
		Expect(clause.CreateGroupByClause(nil, true)).To(BeNil())
		Expect(clause.CreateGroupByClause([]clause.Groupable{}, false)).To(BeNil())
	})

	Context("only primary column", func() {
		It("should list the primary column of each primary groupable entry in order", func() {
			cmd := clause.CreateGroupByClause([]clause.Groupable{
				groupable{primary: true, groupable: true, columns: visible("Region", "Country")},
				groupable{primary: true, groupable: true, columns: visible("Category")},
			}, true)

			Expect(cmd.Columns()).To(Equal([]string{"Region", "Category"}))
			Expect(cmd.CreateCommand()).To(Equal("GROUP BY Region, Category"))
		})

		It("should skip non-primary, non-groupable and hidden entries", func() {
			cmd := clause.CreateGroupByClause([]clause.Groupable{
				groupable{primary: false, groupable: true, columns: visible("Secondary")},
				groupable{primary: true, groupable: false, columns: visible("Ungroupable")},
				groupable{primary: true, groupable: true, columns: []clause.ColumnDefinition{{FieldName: "Hidden"}}},
				groupable{primary: true, groupable: true, columns: nil},
				groupable{primary: true, groupable: true, columns: visible("Status")},
			}, true)

			Expect(cmd.Columns()).To(Equal([]string{"Status"}))
		})

		It("should produce an empty but present command when nothing qualifies", func() {
			cmd := clause.CreateGroupByClause([]clause.Groupable{
				groupable{primary: false, groupable: true, columns: visible("Secondary")},
			}, true)

			Expect(cmd).ToNot(BeNil())
			Expect(cmd.IsValid()).To(BeFalse())
			Expect(cmd.CreateCommand()).To(BeEmpty())
		})
	})

	Context("all visible columns", func() {
		It("should include every visible column definition", func() {
			cmd := clause.CreateGroupByClause([]clause.Groupable{
				groupable{primary: true, groupable: true, columns: []clause.ColumnDefinition{
					{FieldName: "Region", Visible: true},
					{FieldName: "RegionCode", Visible: false},
					{FieldName: "Country", Visible: true},
				}},
				groupable{primary: true, groupable: true, columns: visible("Category")},
			}, false)

			Expect(cmd.Columns()).To(Equal([]string{"Region", "Country", "Category"}))
			Expect(cmd.CreateCommand()).To(Equal("GROUP BY Region, Country, Category"))
		})

		It("should include derived columns even when the primary one is hidden", func() {
			cmd := clause.CreateGroupByClause([]clause.Groupable{
				groupable{primary: true, groupable: true, columns: []clause.ColumnDefinition{
					{FieldName: "Region"},
					{FieldName: "Country", Visible: true},
				}},
			}, false)

			Expect(cmd.Columns()).To(Equal([]string{"Country"}))
		})
	})

	It("should feed a squirrel select", func() {
		cmd := clause.CreateGroupByClause([]clause.Groupable{
			groupable{primary: true, groupable: true, columns: visible("Category", "Status")},
		}, false)

		query, _, err := sq.Select("Category", "Status", "COUNT(*)").From("items").GroupBy(cmd.Columns()...).ToSql()
		Expect(err).ToNot(HaveOccurred())
		Expect(query).To(Equal("SELECT Category, Status, COUNT(*) FROM items GROUP BY Category, Status"))
	})
})
