package mappers

import (
	"helpdesk/internal/domain/group"
	"helpdesk/internal/infrastructure/persistence/models"
)

// GroupMapper handles the conversion between Group domain entities and persistence models.
type GroupMapper interface {
	ToModel(g *group.Group) *models.GroupModel
	// ToDomain converts a group persistence model to a domain entity.
	// The permission ID set is loaded separately by the repository.
	ToDomain(model *models.GroupModel, permissionIDs []uint) (*group.Group, error)

	PermissionToModel(p *group.Permission) *models.PermissionModel
	PermissionToDomain(model *models.PermissionModel) (*group.Permission, error)
}

type GroupMapperImpl struct{}

func NewGroupMapper() GroupMapper {
	return &GroupMapperImpl{}
}

func (m *GroupMapperImpl) ToModel(g *group.Group) *models.GroupModel {
	return &models.GroupModel{
		ID:        g.ID(),
		Name:      g.Name(),
		Slug:      g.Slug(),
		Reserved:  g.IsReserved(),
		Version:   g.Version(),
		CreatedAt: g.CreatedAt(),
		UpdatedAt: g.UpdatedAt(),
	}
}

func (m *GroupMapperImpl) ToDomain(model *models.GroupModel, permissionIDs []uint) (*group.Group, error) {
	return group.ReconstructGroup(
		model.ID,
		model.Name,
		model.Slug,
		model.Reserved,
		permissionIDs,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
}

func (m *GroupMapperImpl) PermissionToModel(p *group.Permission) *models.PermissionModel {
	return &models.PermissionModel{
		ID:          p.ID(),
		Resource:    p.Resource(),
		Action:      p.Action(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func (m *GroupMapperImpl) PermissionToDomain(model *models.PermissionModel) (*group.Permission, error) {
	return group.ReconstructPermission(
		model.ID,
		model.Resource,
		model.Action,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
