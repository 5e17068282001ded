package mail_fx

import (
	"go.uber.org/fx"

	"fitcore/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	return services.NewSMTPMailService(services.SMTPConfigFromEnv())
}
