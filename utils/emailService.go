package utils

import (
	"fmt"
	"log"

	"courseverse/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid. Best-effort: callers fire
// it in a goroutine and never fail their own operation on email errors.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Println("[EMAIL] SENDGRID_API_KEY not set, skipping email to", toEmail)
		return nil
	}

	from := mail.NewEmail("CourseVerse", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 300 {
		log.Printf("[EMAIL] SendGrid returned %d for %s: %s", resp.StatusCode, toEmail, resp.Body)
		return fmt.Errorf("sendgrid returned %d", resp.StatusCode)
	}
	return nil
}

// SendCertificateEmail congratulates a learner on a freshly issued
// certificate and links the public verification page.
func SendCertificateEmail(toEmail, toName, courseTitle, verificationURL string) error {
	subject := "Your CourseVerse Certificate - " + courseTitle

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Congratulations, %s!</h2>
					<p style="font-size: 16px; color: #555555; text-align: center;">You have completed <strong>%s</strong> and your certificate has been issued.</p>
					<p style="text-align: center; margin: 24px 0;">
						<a href="%s" style="background-color: #4CAF50; color: #ffffff; padding: 12px 24px; border-radius: 4px; text-decoration: none;">View &amp; Verify Certificate</a>
					</p>
					<p style="font-size: 12px; color: #bbbbbb; text-align: center; margin-top: 30px;">Anyone with this link can confirm the certificate is genuine.</p>
				</div>
			</body>
		</html>
	`, toName, courseTitle, verificationURL)

	return SendEmail(toEmail, toName, subject, body)
}
