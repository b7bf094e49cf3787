package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/setting"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// EmailReloader rebuilds the outbound email service after the email
// server section changed.
type EmailReloader interface {
	OnSettingsUpdated(ctx context.Context) error
}

type UpdateSettingsCommand struct {
	Actor    authz.Actor
	Settings *setting.Document
}

// UpdateSettingsResult carries the stored document with credentials
// blanked. RestartRequired is set when the email section changed but
// the hot reload failed, so only a process restart picks it up.
type UpdateSettingsResult struct {
	Settings        *setting.Document
	RestartRequired bool
}

type UpdateSettingsUseCase struct {
	store     setting.Store
	reloader  EmailReloader
	evaluator *authz.Evaluator
	logger    logger.Interface
}

func NewUpdateSettingsUseCase(store setting.Store, reloader EmailReloader, evaluator *authz.Evaluator, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		store:     store,
		reloader:  reloader,
		evaluator: evaluator,
		logger:    logger,
	}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) (*UpdateSettingsResult, error) {
	if !uc.evaluator.Decide(ctx, cmd.Actor, authz.Ref{Kind: constants.ResourceSetting}, constants.ActionUpdate) {
		return nil, appErrors.NewForbiddenError("settings are restricted to administrators")
	}
	if cmd.Settings == nil {
		return nil, appErrors.NewValidationError("settings document is required")
	}

	var before setting.EmailServer
	updated, err := uc.store.UpdateFn(ctx, func(doc *setting.Document) error {
		before = doc.EmailServer
		doc.Merge(cmd.Settings)
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to save settings", "error", err)
		return nil, appErrors.NewInternalError("failed to save settings")
	}

	result := &UpdateSettingsResult{Settings: updated.Redacted()}

	if updated.EmailServer != before {
		if err := uc.reloader.OnSettingsUpdated(ctx); err != nil {
			uc.logger.Warnw("email service reload failed after settings update", "error", err)
			result.RestartRequired = true
		}
	}

	uc.logger.Infow("settings updated", "actor_id", cmd.Actor.ID, "restart_required", result.RestartRequired)
	return result, nil
}
