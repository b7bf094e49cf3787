package email

import (
	"helpdesk/internal/shared/logger"
)

// DynamicEmailService delegates to whatever service the manager currently
// holds, so callers keep a stable handle across settings reloads.
type DynamicEmailService struct {
	manager *EmailServiceManager
	logger  logger.Interface
}

func NewDynamicEmailService(manager *EmailServiceManager, logger logger.Interface) *DynamicEmailService {
	return &DynamicEmailService{
		manager: manager,
		logger:  logger,
	}
}

func (d *DynamicEmailService) SendActivationEmail(to, token string) error {
	service := d.manager.GetService()
	if service == nil {
		d.logger.Warnw("email service not configured, cannot send activation email", "to", to)
		return ErrEmailServiceNotConfigured
	}
	return service.SendActivationEmail(to, token)
}

func (d *DynamicEmailService) SendEmailConfirmation(to, token string) error {
	service := d.manager.GetService()
	if service == nil {
		d.logger.Warnw("email service not configured, cannot send email confirmation", "to", to)
		return ErrEmailServiceNotConfigured
	}
	return service.SendEmailConfirmation(to, token)
}

func (d *DynamicEmailService) SendPasswordResetEmail(to, token string) error {
	service := d.manager.GetService()
	if service == nil {
		d.logger.Warnw("email service not configured, cannot send password reset email", "to", to)
		return ErrEmailServiceNotConfigured
	}
	return service.SendPasswordResetEmail(to, token)
}

func (d *DynamicEmailService) SendPasswordChangedEmail(to string) error {
	service := d.manager.GetService()
	if service == nil {
		d.logger.Warnw("email service not configured, cannot send password changed email", "to", to)
		return ErrEmailServiceNotConfigured
	}
	return service.SendPasswordChangedEmail(to)
}

func (d *DynamicEmailService) SendTestEmail(to string) error {
	service := d.manager.GetService()
	if service == nil {
		return ErrEmailServiceNotConfigured
	}
	return service.SendTestEmail(to)
}
