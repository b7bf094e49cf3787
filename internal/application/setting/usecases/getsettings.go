package usecases

import (
	"context"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/domain/setting"
	"helpdesk/internal/shared/constants"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetSettingsCommand struct {
	Actor authz.Actor
}

type GetSettingsUseCase struct {
	store     setting.Store
	evaluator *authz.Evaluator
	logger    logger.Interface
}

func NewGetSettingsUseCase(store setting.Store, evaluator *authz.Evaluator, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		store:     store,
		evaluator: evaluator,
		logger:    logger,
	}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context, cmd GetSettingsCommand) (*setting.Document, error) {
	if !uc.evaluator.Decide(ctx, cmd.Actor, authz.Ref{Kind: constants.ResourceSetting}, constants.ActionView) {
		return nil, appErrors.NewForbiddenError("settings are restricted to administrators")
	}

	doc, err := uc.store.Load(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, appErrors.NewInternalError("failed to load settings")
	}

	return doc.Redacted(), nil
}
