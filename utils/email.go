// utils/email.go
package utils

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

func sendMail(to, subject, body string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	smtpPort := 2525
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		fmt.Sscanf(portStr, "%d", &smtpPort)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}

// SendCompanyCredentialsEmail mails the generated login to a freshly created
// company account.
func SendCompanyCredentialsEmail(email, companyName, tempPassword string) error {
	subject := "Your Staffly account is ready"
	body := fmt.Sprintf(
		"Dear %s,\n\nYour workspace has been created.\n\nLogin email: %s\nTemporary password: %s\n\nPlease sign in and change the password right away.\n\nBest regards,\nThe Staffly Team",
		companyName, email, tempPassword)
	return sendMail(email, subject, body)
}

// SendPlanChangeEmail notifies a company that its subscription moved to a
// different plan.
func SendPlanChangeEmail(email, companyName, planName string) error {
	subject := "Your subscription plan has changed"
	body := fmt.Sprintf(
		"Dear %s,\n\nYour workspace has been moved to the %s plan.\n\nBest regards,\nThe Staffly Team",
		companyName, planName)
	return sendMail(email, subject, body)
}
