package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/repository"
	"github.com/mainak-github/sk-electricks-api/pkg/apperror"
	"github.com/mainak-github/sk-electricks-api/pkg/money"
	"github.com/mainak-github/sk-electricks-api/pkg/pagination"
	"github.com/mainak-github/sk-electricks-api/pkg/utils"
)

// ItemService handles catalog item operations
type ItemService struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository, categoryRepo repository.CategoryRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo, categoryRepo: categoryRepo}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	CategoryID   *uuid.UUID
	Name         string
	Code         string
	Description  string
	Unit         string
	SaleRate     float64
	PurchaseRate float64
	TaxPercent   float64
	Stock        float64
	LowStockAt   float64
	IsService    bool
}

// CreateItem creates a new catalog item
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateItemCode()
	} else {
		existing, err := s.itemRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Item code already in use")
		}
	}

	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	item := &entity.Item{
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Code:         code,
		Description:  input.Description,
		Unit:         unit,
		SaleRate:     money.Round2(money.Sanitize(input.SaleRate)),
		PurchaseRate: money.Round2(money.Sanitize(input.PurchaseRate)),
		TaxPercent:   money.Sanitize(input.TaxPercent),
		Stock:        money.Sanitize(input.Stock),
		LowStockAt:   money.Sanitize(input.LowStockAt),
		IsService:    input.IsService,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists catalog items with search and category filters
func (s *ItemService) ListItems(ctx context.Context, params *repository.ItemFilterParams) (*pagination.Result[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewResult(items, pag), nil
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	ID           uuid.UUID
	CategoryID   *uuid.UUID
	Name         *string
	Description  *string
	Unit         *string
	SaleRate     *float64
	PurchaseRate *float64
	TaxPercent   *float64
	LowStockAt   *float64
	IsService    *bool
}

// UpdateItem updates a catalog item. Stock is deliberately not part of
// the payload; it only moves through document workflows or AdjustStock.
func (s *ItemService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		item.CategoryID = input.CategoryID
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.SaleRate != nil {
		item.SaleRate = money.Round2(money.Sanitize(*input.SaleRate))
	}
	if input.PurchaseRate != nil {
		item.PurchaseRate = money.Round2(money.Sanitize(*input.PurchaseRate))
	}
	if input.TaxPercent != nil {
		item.TaxPercent = money.Sanitize(*input.TaxPercent)
	}
	if input.LowStockAt != nil {
		item.LowStockAt = money.Sanitize(*input.LowStockAt)
	}
	if input.IsService != nil {
		item.IsService = *input.IsService
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustStock applies a manual stock correction to a single item
func (s *ItemService) AdjustStock(ctx context.Context, id uuid.UUID, delta float64) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	if item.IsService {
		return nil, apperror.NewBadRequestError("Services do not carry stock")
	}

	if err := applyStockOrFail(ctx, s.itemRepo, map[uuid.UUID]float64{id: delta}); err != nil {
		return nil, err
	}

	return s.itemRepo.GetByID(ctx, id)
}

// DeleteItem deletes a catalog item
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}
	return s.itemRepo.Delete(ctx, id)
}

// CategoryService handles catalog category operations
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists all categories
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateCategory renames a category
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
