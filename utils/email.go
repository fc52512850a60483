package authUtils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

func smtpDialer() (*gomail.Dialer, string, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return nil, "", fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		port = parsed
	}
	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASSWORD")
	if user == "" || pass == "" {
		return nil, "", fmt.Errorf("EMAIL_USER and EMAIL_PASSWORD must be set")
	}
	return gomail.NewDialer(host, port, user, pass), user, nil
}

func sendCode(to, subject, heading, intro, code string) error {
	dialer, from, err := smtpDialer()
	if err != nil {
		return err
	}

	body := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #4F46E5;">%s</h2>
		<p>%s</p>
		<div style="background-color: #EEF2FF; padding: 20px; text-align: center; border-radius: 8px; margin: 20px 0;">
			<h1 style="color: #4F46E5; font-size: 36px; letter-spacing: 8px; margin: 0;">%s</h1>
		</div>
		<p>Este código expirará en 15 minutos.</p>
		<p>Si no solicitaste esto, por favor ignora este mensaje.</p>
	</div>`, heading, intro, code)

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return dialer.DialAndSend(msg)
}

// SendVerificationEmail mails the 6-digit account verification code.
func SendVerificationEmail(email, code, firstNames string) error {
	return sendCode(
		email,
		"Verificación de Cuenta - Denuncias Digitales",
		"Bienvenido a Denuncias Digitales",
		fmt.Sprintf("Hola <strong>%s</strong>, gracias por registrarte. Tu código de verificación es:", firstNames),
		code,
	)
}

// SendPasswordResetEmail mails the 6-digit password recovery code.
func SendPasswordResetEmail(email, code string) error {
	return sendCode(
		email,
		"Recuperación de Contraseña - Denuncias Digitales",
		"Recuperación de Contraseña",
		"Solicitaste restablecer tu contraseña. Tu código de recuperación es:",
		code,
	)
}
