package mappers

import (
	"helpdesk/internal/domain/attachment"
	"helpdesk/internal/infrastructure/persistence/models"
)

// AttachmentMapper handles the conversion between Attachment domain entities and persistence models.
type AttachmentMapper interface {
	ToModel(a *attachment.Attachment) *models.AttachmentModel
	ToDomain(model *models.AttachmentModel) (*attachment.Attachment, error)
}

type AttachmentMapperImpl struct{}

func NewAttachmentMapper() AttachmentMapper {
	return &AttachmentMapperImpl{}
}

func (m *AttachmentMapperImpl) ToModel(a *attachment.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:         a.ID(),
		Filename:   a.Filename(),
		Size:       a.Size(),
		UploaderID: a.UploaderID(),
		TicketID:   a.TicketID(),
		CommentID:  a.CommentID(),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

func (m *AttachmentMapperImpl) ToDomain(model *models.AttachmentModel) (*attachment.Attachment, error) {
	return attachment.ReconstructAttachment(
		model.ID,
		model.Filename,
		model.Size,
		model.UploaderID,
		model.TicketID,
		model.CommentID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
