package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCategorySetsAreDisjoint(t *testing.T) {
	seen := make(map[Category]Kind)
	for _, c := range CategoriesFor(KindIncome) {
		seen[c] = KindIncome
	}
	for _, c := range CategoriesFor(KindExpense) {
		if kind, ok := seen[c]; ok {
			t.Errorf("category %q appears in both %q and %q sets", c, kind, KindExpense)
		}
	}
}

func TestCategoryBelongsTo(t *testing.T) {
	tests := []struct {
		category Category
		kind     Kind
		want     bool
	}{
		{CategorySalary, KindIncome, true},
		{CategorySalary, KindExpense, false},
		{CategoryFood, KindExpense, true},
		{CategoryFood, KindIncome, false},
		{Category("bogus"), KindExpense, false},
	}

	for _, tt := range tests {
		if got := tt.category.BelongsTo(tt.kind); got != tt.want {
			t.Errorf("BelongsTo(%q, %q) = %v, want %v", tt.category, tt.kind, got, tt.want)
		}
	}
}

func TestCategoryOrderIsStable(t *testing.T) {
	if CategoryOrder(CategoryFood) >= CategoryOrder(CategoryTransportation) {
		t.Error("food must precede transportation in declaration order")
	}
	if CategoryOrder(Category("bogus")) <= CategoryOrder(CategoryOtherExpense) {
		t.Error("unknown categories must sort after all known categories")
	}
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Amount:   decimal.NewFromInt(10),
		Kind:     KindExpense,
		Category: CategoryFood,
	}

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{"valid", func(tx *Transaction) {}, nil},
		{"zero amount", func(tx *Transaction) { tx.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-5) }, ErrInvalidAmount},
		{"unknown kind", func(tx *Transaction) { tx.Kind = "transfer" }, ErrInvalidKind},
		{"unknown category", func(tx *Transaction) { tx.Category = "rent" }, ErrInvalidCategory},
		{"income category on expense", func(tx *Transaction) { tx.Category = CategorySalary }, ErrCategoryKindMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)

			err := tx.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err != tt.wantErr {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}
