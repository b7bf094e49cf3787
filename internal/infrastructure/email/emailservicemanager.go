package email

import (
	"context"
	"sync"

	"helpdesk/internal/domain/setting"
	"helpdesk/internal/shared/logger"
)

// EmailServiceManager builds the SMTP service from the settings document
// and rebuilds it when the email server section changes, so edits made
// through the settings API take effect without a restart.
type EmailServiceManager struct {
	store   setting.Store
	baseURL string
	logger  logger.Interface

	mu      sync.RWMutex
	service *SMTPEmailService
}

func NewEmailServiceManager(store setting.Store, baseURL string, logger logger.Interface) *EmailServiceManager {
	return &EmailServiceManager{
		store:   store,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Initialize creates the email service from the current settings.
func (m *EmailServiceManager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.initializeServiceLocked(ctx)
}

func (m *EmailServiceManager) initializeServiceLocked(ctx context.Context) error {
	doc, err := m.store.Load(ctx)
	if err != nil {
		return err
	}

	if doc.EmailServer.SMTPHost == "" {
		m.service = nil
		m.logger.Debugw("email service not configured, smtp_host is empty")
		return nil
	}

	from := doc.General.ContactEmail
	if from == "" {
		from = doc.EmailServer.SMTPUser
	}

	smtpCfg := SMTPConfig{
		Host:        doc.EmailServer.SMTPHost,
		Port:        doc.EmailServer.SMTPPort,
		Username:    doc.EmailServer.SMTPUser,
		Password:    doc.EmailServer.SMTPPassword,
		UseTLS:      doc.EmailServer.SMTPUseTLS,
		UseSSL:      doc.EmailServer.SMTPUseSSL,
		FromAddress: from,
		BaseURL:     m.baseURL,
	}

	m.service = NewSMTPEmailService(smtpCfg)
	m.logger.Infow("email service initialized",
		"host", smtpCfg.Host,
		"port", smtpCfg.Port,
		"from", smtpCfg.FromAddress,
	)

	return nil
}

// OnSettingsUpdated rebuilds the service after a settings write touched
// the email server section.
func (m *EmailServiceManager) OnSettingsUpdated(ctx context.Context) error {
	m.logger.Infow("email configuration changed, reinitializing service")

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initializeServiceLocked(ctx)
}

// GetService returns the current email service, nil when unconfigured.
func (m *EmailServiceManager) GetService() *SMTPEmailService {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.service
}

// IsConfigured reports whether an SMTP host is set.
func (m *EmailServiceManager) IsConfigured() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.service != nil
}
