package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/linhares06/expensetracker-app/internal/ledger"
)

func money(t *testing.T, value string) ledger.Money {
	t.Helper()

	m, err := ledger.ParseAmount(value)
	require.NoError(t, err)

	return m
}

func TestService_AddExpense(t *testing.T) {
	type args struct {
		username string
		params   ledger.ExpenseParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *ledger.MockRepository)
		wantName  string
		wantErr   bool
	}

	groceries := &ledger.Category{ID: "64f1b7e2a09c5d2f3c7e4a10", Name: "Groceries"}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				username: "alice",
				params: ledger.ExpenseParams{
					Description: "Weekly shop",
					Amount:      money(t, "42.50"),
					CategoryID:  groceries.ID,
				},
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					Category(gomock.Any(), "alice", groceries.ID).
					Return(groceries, nil)
				m.EXPECT().
					AddExpense(gomock.Any(), "alice", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, e ledger.Expense) error {
						assert.NotEmpty(t, e.ID)
						assert.Equal(t, "Groceries", e.CategoryName)
						return nil
					})
			},
			wantName: "Groceries",
			wantErr:  false,
		},
		{
			name: "NoCategoryChosen",
			args: args{
				username: "alice",
				params: ledger.ExpenseParams{
					Description: "Cash withdrawal",
					Amount:      money(t, "20"),
				},
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					AddExpense(gomock.Any(), "alice", gomock.Any()).
					Return(nil)
			},
			wantName: "",
			wantErr:  false,
		},
		{
			name: "StaleCategorySelection",
			args: args{
				username: "alice",
				params: ledger.ExpenseParams{
					Description: "Old form submit",
					Amount:      money(t, "10"),
					CategoryID:  "64f1b7e2a09c5d2f3c7e4a99",
				},
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					Category(gomock.Any(), "alice", "64f1b7e2a09c5d2f3c7e4a99").
					Return(nil, ledger.ErrNotFound)
				m.EXPECT().
					AddExpense(gomock.Any(), "alice", gomock.Any()).
					Return(nil)
			},
			wantName: "",
			wantErr:  false,
		},
		{
			name: "RepoError",
			args: args{
				username: "alice",
				params: ledger.ExpenseParams{
					Description: "Weekly shop",
					Amount:      money(t, "42.50"),
				},
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					AddExpense(gomock.Any(), "alice", gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo)
			got, err := svc.AddExpense(context.Background(), tt.args.username, tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.wantName, got.CategoryName)

			_, parseErr := time.Parse(ledger.DateLayout, got.Date)
			assert.NoError(t, parseErr)
		})
	}
}

func TestService_AddExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	food := &ledger.Category{ID: "64f1b7e2a09c5d2f3c7e4a10", Name: "Food"}
	params := []ledger.ExpenseParams{
		{Description: "Bakery", Amount: money(t, "3.20"), CategoryID: food.ID, Date: "12-08-2026"},
		{Description: "Supermarket", Amount: money(t, "57.80"), CategoryID: food.ID, Date: "14-08-2026"},
	}

	// The shared category resolves once for the whole batch.
	repo.EXPECT().Category(gomock.Any(), "alice", food.ID).Return(food, nil).Times(1)
	repo.EXPECT().
		AddExpenses(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, expenses []ledger.Expense) error {
			require.Len(t, expenses, 2)
			assert.Equal(t, "12-08-2026", expenses[0].Date)
			assert.Equal(t, "Food", expenses[1].CategoryName)
			return nil
		})

	got, err := svc.AddExpenses(context.Background(), "alice", params)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NotEmpty(t, got[0].ID)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestService_AddExpenses_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	got, err := svc.AddExpenses(context.Background(), "alice", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_UpdateExpense(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	travel := &ledger.Category{ID: "64f1b7e2a09c5d2f3c7e4a20", Name: "Travel"}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					Category(gomock.Any(), "alice", travel.ID).
					Return(travel, nil)
				m.EXPECT().
					UpdateExpense(gomock.Any(), "alice", ledger.Expense{
						ID:           "64f1b7e2a09c5d2f3c7e4a30",
						Description:  "Train ticket",
						Amount:       money(t, "18.90"),
						CategoryID:   travel.ID,
						CategoryName: "Travel",
					}).
					Return(nil)
			},
		},
		{
			name: "NotFound",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					Category(gomock.Any(), "alice", travel.ID).
					Return(travel, nil)
				m.EXPECT().
					UpdateExpense(gomock.Any(), "alice", gomock.Any()).
					Return(ledger.ErrNotFound)
			},
			wantErr: ledger.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := ledger.NewService(repo)
			err := svc.UpdateExpense(context.Background(), "alice", "64f1b7e2a09c5d2f3c7e4a30", ledger.ExpenseParams{
				Description: "Train ticket",
				Amount:      money(t, "18.90"),
				CategoryID:  travel.ID,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_AddCategory(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CountCategoriesNamed(gomock.Any(), "alice", "Rent").
					Return(int64(0), nil)
				m.EXPECT().
					AddCategory(gomock.Any(), "alice", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, c ledger.Category) error {
						assert.NotEmpty(t, c.ID)
						assert.Equal(t, "Rent", c.Name)
						return nil
					})
			},
		},
		{
			name: "DuplicateName",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CountCategoriesNamed(gomock.Any(), "alice", "Rent").
					Return(int64(1), nil)
			},
			wantErr: ledger.ErrDuplicateCategory,
		},
		{
			name: "RepoError",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CountCategoriesNamed(gomock.Any(), "alice", "Rent").
					Return(int64(0), nil)
				m.EXPECT().
					AddCategory(gomock.Any(), "alice", gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := ledger.NewService(repo)
			got, err := svc.AddCategory(context.Background(), "alice", ledger.CategoryParams{
				Name:   "Rent",
				Budget: money(t, "900"),
			})

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_UpdateCategory(t *testing.T) {
	current := &ledger.Category{
		ID:     "64f1b7e2a09c5d2f3c7e4a40",
		Name:   "Food",
		Budget: money(t, "300"),
	}

	type testCase struct {
		name      string
		newName   string
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:    "RenameSuccess",
			newName: "Dining",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					Category(gomock.Any(), "alice", current.ID).
					Return(current, nil)
				m.EXPECT().
					CountCategoriesNamed(gomock.Any(), "alice", "Dining").
					Return(int64(0), nil)
				m.EXPECT().
					UpdateCategory(gomock.Any(), "alice", ledger.Category{
						ID:     current.ID,
						Name:   "Dining",
						Budget: money(t, "350"),
					}).
					Return(nil)
			},
		},
		{
			// Saving the form without renaming must not collide with the
			// category's own name.
			name:    "UnchangedNameSkipsUniquenessCheck",
			newName: "Food",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					Category(gomock.Any(), "alice", current.ID).
					Return(current, nil)
				m.EXPECT().
					UpdateCategory(gomock.Any(), "alice", gomock.Any()).
					Return(nil)
			},
		},
		{
			name:    "RenameToTakenName",
			newName: "Rent",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					Category(gomock.Any(), "alice", current.ID).
					Return(current, nil)
				m.EXPECT().
					CountCategoriesNamed(gomock.Any(), "alice", "Rent").
					Return(int64(1), nil)
			},
			wantErr: ledger.ErrDuplicateCategory,
		},
		{
			name:    "NotFound",
			newName: "Dining",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					Category(gomock.Any(), "alice", current.ID).
					Return(nil, ledger.ErrNotFound)
			},
			wantErr: ledger.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := ledger.NewService(repo)
			err := svc.UpdateCategory(context.Background(), "alice", current.ID, ledger.CategoryParams{
				Name:   tt.newName,
				Budget: money(t, "350"),
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_DeleteCategory(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	const categoryID = "64f1b7e2a09c5d2f3c7e4a50"

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					RemoveCategoryIfUnused(gomock.Any(), "alice", categoryID).
					Return(nil)
			},
		},
		{
			name: "InUse",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					RemoveCategoryIfUnused(gomock.Any(), "alice", categoryID).
					Return(ledger.ErrNotFound)
				m.EXPECT().
					CountExpensesInCategory(gomock.Any(), "alice", categoryID).
					Return(int64(3), nil)
			},
			wantErr: ledger.ErrCategoryInUse,
		},
		{
			name: "NotFound",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					RemoveCategoryIfUnused(gomock.Any(), "alice", categoryID).
					Return(ledger.ErrNotFound)
				m.EXPECT().
					CountExpensesInCategory(gomock.Any(), "alice", categoryID).
					Return(int64(0), nil)
			},
			wantErr: ledger.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := ledger.NewService(repo)
			err := svc.DeleteCategory(context.Background(), "alice", categoryID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_DeleteExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		RemoveExpense(gomock.Any(), "alice", "64f1b7e2a09c5d2f3c7e4a60").
		Return(ledger.ErrNotFound)

	svc := ledger.NewService(repo)
	err := svc.DeleteExpense(context.Background(), "alice", "64f1b7e2a09c5d2f3c7e4a60")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}
