package utils

import (
	"finflow/config"
	"finflow/stats"
	"fmt"
	"log"
	"net/smtp"
	"sort"
	"strings"
)

// SendEmail delivers an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: FinFlow <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the FinFlow email shell
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B5E20; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B2631; line-height: 1.6; }
			.content h2 { color: #1B5E20; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.totals td { padding: 6px 12px; }
			.totals .amount { text-align: right; font-weight: bold; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>FinFlow</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">You are receiving this because monthly reports are enabled for your account.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendMonthlyReportEmail emails a user their summary for one month
func SendMonthlyReportEmail(email, name, monthLabel string, summary stats.Summary) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<p>Hi %s, here is your financial summary for <b>%s</b>.</p>", name, monthLabel))
	sb.WriteString(`<table class="totals">`)
	sb.WriteString(fmt.Sprintf(`<tr><td>Total income</td><td class="amount">%s</td></tr>`, summary.TotalIncome.StringFixed(2)))
	sb.WriteString(fmt.Sprintf(`<tr><td>Total expenses</td><td class="amount">%s</td></tr>`, summary.TotalExpense.StringFixed(2)))
	sb.WriteString(fmt.Sprintf(`<tr><td>Balance</td><td class="amount">%s</td></tr>`, summary.Balance.StringFixed(2)))
	sb.WriteString(`</table>`)

	if len(summary.ExpensesByCategory) > 0 {
		categories := make([]string, 0, len(summary.ExpensesByCategory))
		for category := range summary.ExpensesByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		sb.WriteString("<p>Expenses by category:</p><table class=\"totals\">")
		for _, category := range categories {
			sb.WriteString(fmt.Sprintf(`<tr><td>%s</td><td class="amount">%s</td></tr>`,
				category, summary.ExpensesByCategory[category].StringFixed(2)))
		}
		sb.WriteString("</table>")
	}

	subject := fmt.Sprintf("Your FinFlow summary for %s", monthLabel)
	return SendEmail([]string{email}, subject, getEmailTemplate("Monthly Report", sb.String()))
}
