package categories

import "github.com/cleared-dev/tally/internal/model"

// DefaultCatalog returns the categories a new project starts with.
func DefaultCatalog() []model.Category {
	return []model.Category{
		{Name: "Groceries", Kind: model.KindExpense, Description: "Supermarket and food shopping"},
		{Name: "Rent", Kind: model.KindExpense, Description: "Housing"},
		{Name: "Utilities", Kind: model.KindExpense, Description: "Power, water, internet"},
		{Name: "Transport", Kind: model.KindExpense},
		{Name: "Dining", Kind: model.KindExpense, Description: "Restaurants and takeaway"},
		{Name: "Entertainment", Kind: model.KindExpense},
		{Name: "Health", Kind: model.KindExpense},
		{Name: "Salary", Kind: model.KindIncome},
		{Name: "Freelance", Kind: model.KindIncome},
		{Name: "Emergency Fund", Kind: model.KindSaving},
		{Name: "Holiday", Kind: model.KindSaving},
		{Name: "Stocks", Kind: model.KindInvestment},
		{Name: "Funds", Kind: model.KindInvestment, Description: "Index and mutual funds"},
	}
}
