package utils

import (
	"finflow/config"
	"finflow/database"
	"finflow/models"
	"finflow/stats"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REPORT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeReportScheduler sets up the monthly summary email job. It runs
// on the 1st of every month at 8 AM and covers the previous calendar month.
func InitializeReportScheduler() {
	if !config.AppConfig.EnableMonthlyReports {
		logScheduler("Monthly reports disabled, scheduler not started")
		return
	}

	c := cron.New()

	c.AddFunc("0 8 1 * *", func() {
		logScheduler("Running monthly report run...")
		SendMonthlyReports(time.Now().AddDate(0, -1, 0))
	})

	c.Start()
	logScheduler("Report scheduler started - runs on the 1st of each month at 8 AM")
}

// SendMonthlyReports builds and emails each active user's summary for the
// calendar month containing the given time.
func SendMonthlyReports(reference time.Time) {
	db := database.Database.Db

	monthStart := now.With(reference).BeginningOfMonth()
	monthEnd := now.With(reference).EndOfMonth()
	monthLabel := reference.Format("Jan 2006")

	var users []models.User
	if err := db.Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		logScheduler("Error fetching users: " + err.Error())
		return
	}

	sent := 0
	for _, user := range users {
		filter := models.TransactionFilter{
			UserID:    user.ID,
			StartDate: &monthStart,
			EndDate:   &monthEnd,
		}

		var transactions []models.Transaction
		if err := filter.Scope(db).Order("id ASC").Find(&transactions).Error; err != nil {
			logScheduler("Error fetching transactions for user " + user.Email + ": " + err.Error())
			continue
		}

		// Nothing recorded that month, nothing to report
		if len(transactions) == 0 {
			continue
		}

		summary := stats.Build(transactions)
		if err := SendMonthlyReportEmail(user.Email, user.Name, monthLabel, summary); err != nil {
			logScheduler("Error emailing report to " + user.Email + ": " + err.Error())
			continue
		}
		sent++
	}

	log.Printf("[REPORT-SCHEDULER] Sent %d reports for %s", sent, monthLabel)
}
