package service

import (
	"errors"

	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists")
)

type CategoryService interface {
	CreateCategory(category *model.Category) error
	GetCategories() ([]model.Category, error)
	GetCategoriesWithProducts() ([]model.Category, error)
	GetCategoryByID(id uint) (*model.Category, error)
	GetCategoryWithProducts(id uint) (*model.Category, error)
	UpdateCategory(category *model.Category) error
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(category *model.Category) error {
	existing, err := s.categoryRepo.FindByName(category.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		logger.Warn("Category creation rejected: name already exists", map[string]interface{}{
			"name": category.Name,
		})
		return ErrCategoryNameExists
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return err
	}

	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return nil
}

func (s *categoryService) GetCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) GetCategoriesWithProducts() ([]model.Category, error) {
	return s.categoryRepo.FindAllWithProducts()
}

func (s *categoryService) GetCategoryByID(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategoryWithProducts(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByIDWithProducts(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(category *model.Category) error {
	current, err := s.GetCategoryByID(category.ID)
	if err != nil {
		return err
	}

	if category.Name != current.Name {
		existing, err := s.categoryRepo.FindByName(category.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil && existing.ID != category.ID {
			return ErrCategoryNameExists
		}
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return err
	}

	logger.Info("Category updated", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return nil
}

func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.GetCategoryByID(id); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Category deleted", map[string]interface{}{
		"category_id": id,
	})
	return nil
}
