package ledger

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	AddExpense(ctx context.Context, username string, expense Expense) error
	AddExpenses(ctx context.Context, username string, expenses []Expense) error
	UpdateExpense(ctx context.Context, username string, expense Expense) error
	RemoveExpense(ctx context.Context, username, expenseID string) error
	Expense(ctx context.Context, username, expenseID string) (*Expense, error)
	Expenses(ctx context.Context, username string) ([]Expense, error)

	AddCategory(ctx context.Context, username string, category Category) error
	UpdateCategory(ctx context.Context, username string, category Category) error
	RemoveCategoryIfUnused(ctx context.Context, username, categoryID string) error
	Category(ctx context.Context, username, categoryID string) (*Category, error)
	Categories(ctx context.Context, username string) ([]Category, error)

	CountCategoriesNamed(ctx context.Context, username, name string) (int64, error)
	CountExpensesInCategory(ctx context.Context, username, categoryID string) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ExpenseParams struct {
	Description string
	Amount      Money
	CategoryID  string
	// Date in DateLayout; stamped with the current date when empty.
	Date string
}

type CategoryParams struct {
	Name   string
	Budget Money
}

func (s *Service) AddExpense(ctx context.Context, username string, params ExpenseParams) (*Expense, error) {
	categoryName, err := s.categoryName(ctx, username, params.CategoryID)
	if err != nil {
		return nil, err
	}

	expense := s.newExpense(params)
	expense.CategoryName = categoryName

	if err := s.repo.AddExpense(ctx, username, expense); err != nil {
		return nil, err
	}

	return &expense, nil
}

// AddExpenses records a batch in one write, resolving each category name
// once. Used by statement imports.
func (s *Service) AddExpenses(ctx context.Context, username string, params []ExpenseParams) ([]Expense, error) {
	if len(params) == 0 {
		return nil, nil
	}

	names := make(map[string]string)

	expenses := make([]Expense, len(params))

	for i, p := range params {
		name, ok := names[p.CategoryID]
		if !ok {
			var err error

			name, err = s.categoryName(ctx, username, p.CategoryID)
			if err != nil {
				return nil, err
			}

			names[p.CategoryID] = name
		}

		expenses[i] = s.newExpense(p)
		expenses[i].CategoryName = name
	}

	if err := s.repo.AddExpenses(ctx, username, expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}

func (s *Service) UpdateExpense(ctx context.Context, username, expenseID string, params ExpenseParams) error {
	categoryName, err := s.categoryName(ctx, username, params.CategoryID)
	if err != nil {
		return err
	}

	expense := Expense{
		ID:           expenseID,
		Description:  params.Description,
		Amount:       params.Amount,
		CategoryID:   params.CategoryID,
		CategoryName: categoryName,
	}

	return s.repo.UpdateExpense(ctx, username, expense)
}

func (s *Service) DeleteExpense(ctx context.Context, username, expenseID string) error {
	return s.repo.RemoveExpense(ctx, username, expenseID)
}

func (s *Service) Expense(ctx context.Context, username, expenseID string) (*Expense, error) {
	return s.repo.Expense(ctx, username, expenseID)
}

func (s *Service) Expenses(ctx context.Context, username string) ([]Expense, error) {
	return s.repo.Expenses(ctx, username)
}

func (s *Service) AddCategory(ctx context.Context, username string, params CategoryParams) (*Category, error) {
	taken, err := s.categoryNameTaken(ctx, username, params.Name)
	if err != nil {
		return nil, err
	}

	if taken {
		return nil, ErrDuplicateCategory
	}

	category := Category{
		ID:     primitive.NewObjectID().Hex(),
		Name:   params.Name,
		Budget: params.Budget,
	}

	if err := s.repo.AddCategory(ctx, username, category); err != nil {
		return nil, err
	}

	return &category, nil
}

// UpdateCategory renames and rebudgets an existing category. The name
// uniqueness check is skipped when the name is unchanged, so saving the
// form without a rename never trips over the category itself.
func (s *Service) UpdateCategory(ctx context.Context, username, categoryID string, params CategoryParams) error {
	current, err := s.repo.Category(ctx, username, categoryID)
	if err != nil {
		return err
	}

	if current.Name != params.Name {
		taken, err := s.categoryNameTaken(ctx, username, params.Name)
		if err != nil {
			return err
		}

		if taken {
			return ErrDuplicateCategory
		}
	}

	category := Category{
		ID:     categoryID,
		Name:   params.Name,
		Budget: params.Budget,
	}

	return s.repo.UpdateCategory(ctx, username, category)
}

// DeleteCategory removes a category only while no expense references it.
// The guard and the removal are a single conditional update, so an
// expense added concurrently cannot slip between check and delete. When
// the update matches nothing the expense count tells an in-use category
// apart from a missing one.
func (s *Service) DeleteCategory(ctx context.Context, username, categoryID string) error {
	err := s.repo.RemoveCategoryIfUnused(ctx, username, categoryID)
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	inUse, err := s.repo.CountExpensesInCategory(ctx, username, categoryID)
	if err != nil {
		return err
	}

	if inUse > 0 {
		return ErrCategoryInUse
	}

	return ErrNotFound
}

func (s *Service) Category(ctx context.Context, username, categoryID string) (*Category, error) {
	return s.repo.Category(ctx, username, categoryID)
}

func (s *Service) Categories(ctx context.Context, username string) ([]Category, error) {
	return s.repo.Categories(ctx, username)
}

func (s *Service) newExpense(params ExpenseParams) Expense {
	date := params.Date
	if date == "" {
		date = time.Now().UTC().Format(DateLayout)
	}

	return Expense{
		ID:          primitive.NewObjectID().Hex(),
		Description: params.Description,
		Amount:      params.Amount,
		CategoryID:  params.CategoryID,
		Date:        date,
	}
}

// categoryName resolves the denormalized name written onto expenses. An
// empty or stale category id yields an empty name, which reporting later
// groups under its undefined-category label.
func (s *Service) categoryName(ctx context.Context, username, categoryID string) (string, error) {
	if categoryID == "" {
		return "", nil
	}

	category, err := s.repo.Category(ctx, username, categoryID)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return category.Name, nil
}

func (s *Service) categoryNameTaken(ctx context.Context, username, name string) (bool, error) {
	count, err := s.repo.CountCategoriesNamed(ctx, username, name)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
