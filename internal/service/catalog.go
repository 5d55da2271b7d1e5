package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/repository"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// CategoryService handles business logic for product categories
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, log: log}
}

// CreateCategory persists a new category. The product count always starts
// at zero; the aggregate routine owns it from then on.
func (s *CategoryService) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if category.Name == "" {
		return nil, errs.NewValidation("category name is required")
	}

	if category.Slug == "" {
		slug, err := uniqueSlug(ctx, category.Name, s.categoryRepo.SlugExists)
		if err != nil {
			return nil, err
		}
		category.Slug = slug
	}
	category.Count = 0

	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

// ListCategories retrieves categories matching the query
func (s *CategoryService) ListCategories(ctx context.Context, q repository.ListQuery) ([]*model.Category, int64, error) {
	return s.categoryRepo.List(ctx, q)
}

// UpdateCategory updates a category's client-writable fields, preserving
// the system-owned count
func (s *CategoryService) UpdateCategory(ctx context.Context, id primitive.ObjectID, category *model.Category) (*model.Category, error) {
	existing, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.Name == "" {
		return nil, errs.NewValidation("category name is required")
	}

	category.ID = existing.ID
	category.CreatedAt = existing.CreatedAt
	category.Count = existing.Count
	if category.Slug == "" {
		category.Slug = existing.Slug
	}
	if category.Display == "" {
		category.Display = existing.Display
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory permanently removes a category
func (s *CategoryService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	return s.categoryRepo.Delete(ctx, id)
}

// TagService handles business logic for product tags
type TagService struct {
	tagRepo repository.TagRepository
	log     *zap.Logger
}

// NewTagService creates a new tag service
func NewTagService(tagRepo repository.TagRepository, log *zap.Logger) *TagService {
	return &TagService{tagRepo: tagRepo, log: log}
}

// CreateTag persists a new tag with a zero count
func (s *TagService) CreateTag(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	if tag.Name == "" {
		return nil, errs.NewValidation("tag name is required")
	}

	if tag.Slug == "" {
		slug, err := uniqueSlug(ctx, tag.Name, s.tagRepo.SlugExists)
		if err != nil {
			return nil, err
		}
		tag.Slug = slug
	}
	tag.Count = 0

	if err := s.tagRepo.Insert(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// GetTag retrieves a tag by ID
func (s *TagService) GetTag(ctx context.Context, id primitive.ObjectID) (*model.Tag, error) {
	return s.tagRepo.FindByID(ctx, id)
}

// ListTags retrieves tags matching the query
func (s *TagService) ListTags(ctx context.Context, q repository.ListQuery) ([]*model.Tag, int64, error) {
	return s.tagRepo.List(ctx, q)
}

// UpdateTag updates a tag's client-writable fields, preserving the count
func (s *TagService) UpdateTag(ctx context.Context, id primitive.ObjectID, tag *model.Tag) (*model.Tag, error) {
	existing, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag.Name == "" {
		return nil, errs.NewValidation("tag name is required")
	}

	tag.ID = existing.ID
	tag.CreatedAt = existing.CreatedAt
	tag.Count = existing.Count
	if tag.Slug == "" {
		tag.Slug = existing.Slug
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag permanently removes a tag
func (s *TagService) DeleteTag(ctx context.Context, id primitive.ObjectID) error {
	return s.tagRepo.Delete(ctx, id)
}
