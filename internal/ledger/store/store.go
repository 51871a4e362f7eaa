package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linhares06/expensetracker-app/internal/database"
	"github.com/linhares06/expensetracker-app/internal/ledger"
)

// Store keeps each user's expenses and categories embedded in the user's
// own document, so every write is one field-scoped update on it.
type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection(database.Collection)}
}

func (s *Store) AddExpense(ctx context.Context, username string, expense ledger.Expense) error {
	return s.push(ctx, username, bson.M{"expenses": expense}, "adding expense")
}

func (s *Store) AddExpenses(ctx context.Context, username string, expenses []ledger.Expense) error {
	return s.push(ctx, username, bson.M{"expenses": bson.M{"$each": expenses}}, "adding expenses")
}

func (s *Store) AddCategory(ctx context.Context, username string, category ledger.Category) error {
	return s.push(ctx, username, bson.M{"categories": category}, "adding category")
}

func (s *Store) push(ctx context.Context, username string, push bson.M, action string) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$push": push},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	if res.MatchedCount == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

// UpdateExpense rewrites the matched list entry in place via the
// positional operator. The date field is deliberately left alone.
// Matched count is the not-found signal here: a form saved without
// changes matches but modifies nothing, and that is still a success.
func (s *Store) UpdateExpense(ctx context.Context, username string, expense ledger.Expense) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"username": username, "expenses.id": expense.ID},
		bson.M{"$set": bson.M{
			"expenses.$.description":   expense.Description,
			"expenses.$.amount":        expense.Amount,
			"expenses.$.category_id":   expense.CategoryID,
			"expenses.$.category_name": expense.CategoryName,
		}},
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	if res.MatchedCount == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, username string, category ledger.Category) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"username": username, "categories.id": category.ID},
		bson.M{"$set": bson.M{
			"categories.$.name":   category.Name,
			"categories.$.budget": category.Budget,
		}},
	)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}

	if res.MatchedCount == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) RemoveExpense(ctx context.Context, username, expenseID string) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$pull": bson.M{"expenses": bson.M{"id": expenseID}}},
	)
	if err != nil {
		return fmt.Errorf("removing expense: %w", err)
	}

	if res.ModifiedCount == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

// RemoveCategoryIfUnused pulls the category in the same update that
// checks no expense references it. A category that exists but is in use
// comes back as ErrNotFound here; callers who care run the count to tell
// the two apart.
func (s *Store) RemoveCategoryIfUnused(ctx context.Context, username, categoryID string) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"username": username, "expenses.category_id": bson.M{"$ne": categoryID}},
		bson.M{"$pull": bson.M{"categories": bson.M{"id": categoryID}}},
	)
	if err != nil {
		return fmt.Errorf("removing category: %w", err)
	}

	if res.ModifiedCount == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) Expense(ctx context.Context, username, expenseID string) (*ledger.Expense, error) {
	var doc struct {
		Expenses []ledger.Expense `bson:"expenses"`
	}

	err := s.col.FindOne(ctx,
		bson.M{"username": username, "expenses.id": expenseID},
		options.FindOne().SetProjection(bson.M{"expenses.$": 1}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	if len(doc.Expenses) == 0 {
		return nil, ledger.ErrNotFound
	}

	return &doc.Expenses[0], nil
}

func (s *Store) Category(ctx context.Context, username, categoryID string) (*ledger.Category, error) {
	var doc struct {
		Categories []ledger.Category `bson:"categories"`
	}

	err := s.col.FindOne(ctx,
		bson.M{"username": username, "categories.id": categoryID},
		options.FindOne().SetProjection(bson.M{"categories.$": 1}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	if len(doc.Categories) == 0 {
		return nil, ledger.ErrNotFound
	}

	return &doc.Categories[0], nil
}

func (s *Store) Expenses(ctx context.Context, username string) ([]ledger.Expense, error) {
	var doc struct {
		Expenses []ledger.Expense `bson:"expenses"`
	}

	err := s.col.FindOne(ctx,
		bson.M{"username": username},
		options.FindOne().SetProjection(bson.M{"expenses": 1}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []ledger.Expense{}, nil
		}

		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	if doc.Expenses == nil {
		return []ledger.Expense{}, nil
	}

	return doc.Expenses, nil
}

func (s *Store) Categories(ctx context.Context, username string) ([]ledger.Category, error) {
	var doc struct {
		Categories []ledger.Category `bson:"categories"`
	}

	err := s.col.FindOne(ctx,
		bson.M{"username": username},
		options.FindOne().SetProjection(bson.M{"categories": 1}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []ledger.Category{}, nil
		}

		return nil, fmt.Errorf("listing categories: %w", err)
	}

	if doc.Categories == nil {
		return []ledger.Category{}, nil
	}

	return doc.Categories, nil
}

func (s *Store) CountCategoriesNamed(ctx context.Context, username, name string) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"username": username, "categories.name": name})
	if err != nil {
		return 0, fmt.Errorf("counting categories named %q: %w", name, err)
	}

	return count, nil
}

func (s *Store) CountExpensesInCategory(ctx context.Context, username, categoryID string) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"username": username, "expenses.category_id": categoryID})
	if err != nil {
		return 0, fmt.Errorf("counting expenses in category: %w", err)
	}

	return count, nil
}
