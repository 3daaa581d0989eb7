package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"lms/config"
	"lms/database"
	"lms/models"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Course Platform <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Helvetica, Arial, sans-serif; background-color: #F4F4F4; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A2744; padding: 24px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 22px; }
			.content { padding: 32px 28px; color: #1A2744; line-height: 1.6; }
			.footer { background-color: #F4F4F4; padding: 16px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>COURSE PLATFORM</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				You are receiving this because you are enrolled on our platform.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendNewEpisodeEmail notifies one enrolled user about a new episode.
func SendNewEpisodeEmail(email, name, courseTitle, episodeTitle string) {
	subject := fmt.Sprintf("New episode in %s", courseTitle)
	body := getEmailTemplate(
		"New Episode Published",
		fmt.Sprintf("<p>Hi %s,</p><p>A new episode <strong>%s</strong> was just added to <strong>%s</strong>. Happy learning!</p>",
			name, episodeTitle, courseTitle),
	)
	go SendEmail([]string{email}, subject, body)
}

// NotifyEnrolledUsers emails every actively enrolled user of a course about
// a newly published episode. Runs in the caller's goroutine; callers fire it
// with `go` so the admin request does not wait on SMTP.
func NotifyEnrolledUsers(courseID uint, courseTitle, episodeTitle string) {
	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("course_id = ? AND status = ? AND is_deleted = ?", courseID, "ACTIVE", false).
		Find(&enrollments).Error; err != nil {
		log.Printf("[EPISODE-NOTIFY] Error fetching enrollments for course %d: %v", courseID, err)
		return
	}

	for _, enrollment := range enrollments {
		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", enrollment.UserID, false).First(&user).Error; err != nil {
			continue
		}
		SendNewEpisodeEmail(user.Email, user.Name, courseTitle, episodeTitle)
	}
}

// SendRatingsDigestEmail sends the daily ratings digest to the admin inbox.
func SendRatingsDigestEmail(adminEmail string, lines []string) {
	body := getEmailTemplate(
		"Ratings Submitted Today",
		"<ul><li>"+strings.Join(lines, "</li><li>")+"</li></ul>",
	)
	go SendEmail([]string{adminEmail}, "Daily ratings digest", body)
}
