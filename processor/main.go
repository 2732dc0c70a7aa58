// Command processor watches a drop folder for packing CSV exports and
// imports them into the ledger on a schedule. Files are processed once,
// moved aside, and failures are mailed to the operators when SMTP is
// configured.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"packing-app/config"
	"packing-app/importer"
	"packing-app/migration"
	"packing-app/models"
	"packing-app/services"
)

func main() {
	config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	log.Printf("Watching %s (%s)", config.ImportDir, config.ImportCron)

	c := cron.New()
	if _, err := c.AddFunc(config.ImportCron, func() { processAllCSV(db) }); err != nil {
		log.Fatalf("Invalid IMPORT_CRON: %v", err)
	}

	processAllCSV(db)
	c.Run()
}

// processAllCSV imports every unseen CSV file in the drop folder.
func processAllCSV(db *gorm.DB) {
	files, err := os.ReadDir(config.ImportDir)
	if err != nil {
		log.Println("Failed to read import folder:", err)
		return
	}

	for _, file := range files {
		if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".csv") {
			continue
		}
		processFile(db, filepath.Join(config.ImportDir, file.Name()))
	}
}

func processFile(db *gorm.DB, path string) {
	name := filepath.Base(path)

	var existing models.FileLog
	if err := db.Where("filename = ?", name).First(&existing).Error; err == nil {
		log.Println("File already processed, skip:", name)
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		log.Println("Failed to stat file:", err)
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Println("Failed to read file:", err)
		return
	}

	result, err := importer.ParsePackingCSV(string(raw))
	if err != nil {
		log.Printf("Import of %s aborted: %v", name, err)
		sendReport(name, 0, nil, err)
		return
	}

	failed := append([]importer.RowError{}, result.Skipped...)
	imported := 0
	for _, row := range result.Rows {
		entry := models.PackingEntry{
			ItemName:       services.CleanName(row.ItemName),
			Qty:            row.Qty,
			PackingType:    row.PackingType,
			Status:         row.Status,
			ApprovedQty:    row.ApprovedQty,
			NotApprovedQty: row.NotApprovedQty,
			SubmittedBy:    row.SubmittedBy,
		}
		if row.Date != "" {
			if t, parseErr := time.ParseInLocation("2006-01-02", row.Date, time.Local); parseErr == nil {
				entry.CreatedAt = t
			}
		}
		if err := db.Create(&entry).Error; err != nil {
			failed = append(failed, importer.RowError{Index: row.Index, Reason: err.Error()})
			continue
		}
		imported++
	}

	db.Create(&models.FileLog{Filename: name, DateModified: info.ModTime()})

	processedDir := filepath.Join(filepath.Dir(config.ImportDir), "processed")
	if err := os.MkdirAll(processedDir, 0o755); err == nil {
		if err := os.Rename(path, filepath.Join(processedDir, name)); err != nil {
			log.Println("Failed to move processed file:", err)
		}
	}

	log.Printf("Imported %s: %d rows, %d failed", name, imported, len(failed))
	if len(failed) > 0 {
		sendReport(name, imported, failed, nil)
	}
}

// sendReport mails the per-row failures. Silently skipped when SMTP is
// not configured.
func sendReport(filename string, imported int, failed []importer.RowError, abort error) {
	if config.SMTPHost == "" || config.MailTo == "" {
		return
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Import report for %s\n\n", filename)
	if abort != nil {
		fmt.Fprintf(&body, "Import aborted: %v\n", abort)
	} else {
		fmt.Fprintf(&body, "Imported rows: %d\nFailed rows: %d\n\n", imported, len(failed))
		for _, f := range failed {
			fmt.Fprintf(&body, "  row %d: %s\n", f.Index, f.Reason)
		}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.SMTPUser)
	m.SetHeader("To", config.MailTo)
	m.SetHeader("Subject", "Packing import report: "+filename)
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		log.Println("Failed to send import report:", err)
	}
}
