package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/invenmovil/inventario-api/internal/application/auth"
	"github.com/invenmovil/inventario-api/pkg/config"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía correos transaccionales vía SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el mailer desde la configuración.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendPasswordReset envía el correo con el token de restablecimiento de contraseña.
// El token viaja en texto plano solo por este canal; en BD se guarda hasheado.
func (m *SMTPMailer) SendPasswordReset(toEmail, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Restablecer contraseña")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Recibimos una solicitud para restablecer tu contraseña.\n\n"+
			"Tu código de restablecimiento es:\n\n    %s\n\n"+
			"El código vence en 1 hora. Si no solicitaste el cambio, ignora este correo.\n",
		token,
	))
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo de restablecimiento: %w", err)
	}
	return nil
}
