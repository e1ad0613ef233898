package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind distinguishes money coming in from money going out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// IsValid checks if the kind is a known transaction kind.
func (k Kind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

// Category classifies a transaction within its kind.
type Category string

// Income categories.
const (
	CategorySalary      Category = "salary"
	CategoryFreelance   Category = "freelance"
	CategoryBusiness    Category = "business"
	CategoryInvestment  Category = "investment"
	CategoryOtherIncome Category = "other_income"
)

// Expense categories.
const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryHousing        Category = "housing"
	CategoryUtilities      Category = "utilities"
	CategoryHealthcare     Category = "healthcare"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryEducation      Category = "education"
	CategoryTravel         Category = "travel"
	CategoryOtherExpense   Category = "other_expense"
)

// incomeCategories and expenseCategories are disjoint; a category belongs to
// exactly one kind. Slice order is the declaration order used for tie-breaks
// in sorted breakdowns.
var (
	incomeCategories = []Category{
		CategorySalary,
		CategoryFreelance,
		CategoryBusiness,
		CategoryInvestment,
		CategoryOtherIncome,
	}

	expenseCategories = []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryHousing,
		CategoryUtilities,
		CategoryHealthcare,
		CategoryEntertainment,
		CategoryShopping,
		CategoryEducation,
		CategoryTravel,
		CategoryOtherExpense,
	}
)

// categoryKinds maps every category to its owning kind.
var categoryKinds = func() map[Category]Kind {
	m := make(map[Category]Kind, len(incomeCategories)+len(expenseCategories))
	for _, c := range incomeCategories {
		m[c] = KindIncome
	}
	for _, c := range expenseCategories {
		m[c] = KindExpense
	}
	return m
}()

// categoryOrder assigns each category its declaration index, incomes first.
var categoryOrder = func() map[Category]int {
	m := make(map[Category]int, len(categoryKinds))
	i := 0
	for _, c := range incomeCategories {
		m[c] = i
		i++
	}
	for _, c := range expenseCategories {
		m[c] = i
		i++
	}
	return m
}()

// CategoriesFor returns the valid categories for a kind, in declaration order.
func CategoriesFor(kind Kind) []Category {
	switch kind {
	case KindIncome:
		out := make([]Category, len(incomeCategories))
		copy(out, incomeCategories)
		return out
	case KindExpense:
		out := make([]Category, len(expenseCategories))
		copy(out, expenseCategories)
		return out
	default:
		return nil
	}
}

// IsValid checks if the category is a known category of either kind.
func (c Category) IsValid() bool {
	_, ok := categoryKinds[c]
	return ok
}

// BelongsTo checks if the category is a member of the kind's category set.
func (c Category) BelongsTo(kind Kind) bool {
	return categoryKinds[c] == kind
}

// CategoryOrder returns the declaration index of a category. Unknown
// categories sort last.
func CategoryOrder(c Category) int {
	if i, ok := categoryOrder[c]; ok {
		return i
	}
	return len(categoryOrder)
}

// Transaction is a single income or expense record. The analytics engine
// treats transactions as immutable input; only the repository mutates them.
type Transaction struct {
	ID                string
	UserID            string
	Amount            decimal.Decimal
	Kind              Kind
	Category          Category
	Note              string
	AudioMemoFilename string
	OccurredAt        time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks the record's own invariants: positive amount, known kind,
// and a category belonging to that kind.
func (t *Transaction) Validate() error {
	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}
	if !t.Kind.IsValid() {
		return ErrInvalidKind
	}
	if !t.Category.IsValid() {
		return ErrInvalidCategory
	}
	if !t.Category.BelongsTo(t.Kind) {
		return ErrCategoryKindMismatch
	}
	return nil
}

// TransactionFilter narrows a ledger query. Fields combine with AND
// semantics; nil pointers mean "no constraint".
type TransactionFilter struct {
	Kind        *Kind
	Category    *Category
	Period      Period
	AmountBelow *decimal.Decimal
}
