package mappers

import (
	"helpdesk/internal/domain/category"
	"helpdesk/internal/infrastructure/persistence/models"
)

// CategoryMapper handles the conversion between Category domain entities and persistence models.
type CategoryMapper interface {
	ToModel(c *category.Category) *models.CategoryModel
	ToDomain(model *models.CategoryModel) (*category.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Color:     c.Color(),
		Version:   c.Version(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) (*category.Category, error) {
	return category.ReconstructCategory(
		model.ID,
		model.Name,
		model.Color,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
}
