package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDefaultCategory  = errors.New("cannot delete default category")
	ErrInvalidType      = errors.New("category type must be expense or income")
)

// defaultCategories are seeded for every new account.
var defaultCategories = []Category{
	{Name: "Ăn uống", Icon: "UtensilsCrossed", Color: "#F59E0B", Type: TypeExpense},
	{Name: "Di chuyển", Icon: "Car", Color: "#3B82F6", Type: TypeExpense},
	{Name: "Mua sắm", Icon: "ShoppingBag", Color: "#EC4899", Type: TypeExpense},
	{Name: "Giải trí", Icon: "Gamepad2", Color: "#8B5CF6", Type: TypeExpense},
	{Name: "Sức khỏe", Icon: "Heart", Color: "#EF4444", Type: TypeExpense},
	{Name: "Hóa đơn", Icon: "Receipt", Color: "#6366F1", Type: TypeExpense},
	{Name: "Lương", Icon: "Wallet", Color: "#10B981", Type: TypeIncome},
	{Name: "Khác", Icon: "MoreHorizontal", Color: "#64748B", Type: TypeExpense},
}

// Service handles category business logic
type Service struct {
	repo *Repository
}

// NewService creates a new category service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// SeedDefaults creates the default category set for a newly registered user
func (s *Service) SeedDefaults(ctx context.Context, userID string) error {
	categories := make([]*Category, len(defaultCategories))
	for i, c := range defaultCategories {
		cat := c
		cat.ID = uuid.New().String()
		cat.UserID = userID
		cat.IsDefault = true
		categories[i] = &cat
	}

	if err := s.repo.CreateBatch(ctx, categories); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	return nil
}

// List retrieves all categories owned by the user
func (s *Service) List(ctx context.Context, userID string) ([]*Category, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetByID retrieves one of the user's categories
func (s *Service) GetByID(ctx context.Context, userID, id string) (*Category, error) {
	cat, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	return cat, nil
}

// Create adds a custom (non-default) category for the user
func (s *Service) Create(ctx context.Context, userID string, req *CreateCategoryRequest) (*Category, error) {
	if req.Type != TypeExpense && req.Type != TypeIncome {
		return nil, ErrInvalidType
	}

	cat := &Category{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      req.Name,
		Icon:      req.Icon,
		Color:     req.Color,
		Type:      req.Type,
		IsDefault: false,
	}
	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete removes one of the user's custom categories. Default categories
// are protected.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	cat, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrCategoryNotFound
	}
	if cat.IsDefault {
		return ErrDefaultCategory
	}

	return s.repo.Delete(ctx, id)
}
