package reminder

import "go.uber.org/zap"

// Mailer delivers a reminder to one recipient. The actual transport is
// external to this service; implementations adapt whatever is configured
// in the deployment.
type Mailer interface {
	Send(to, subject, body string) error
}

// LogMailer writes reminders to the log instead of sending them. It is
// the default transport for development and tests.
type LogMailer struct {
	Logger *zap.Logger
}

func (m *LogMailer) Send(to, subject, body string) error {
	logger := m.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("reminder mail",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
