package CronJobs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-co-op/gocron"
)

// DocumentJanitor removes generated plan documents past their retention
// window.
type DocumentJanitor struct {
	Dir    string
	MaxAge time.Duration
}

// NewDocumentJanitor creates a new document retention service
func NewDocumentJanitor(dir string, maxAge time.Duration) *DocumentJanitor {
	return &DocumentJanitor{
		Dir:    dir,
		MaxAge: maxAge,
	}
}

// StartCleanupCron starts the cron job that sweeps expired documents
func (dj *DocumentJanitor) StartCleanupCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(24).Hours().Do(func() {
		log.Println("Running generated document cleanup...")
		if err := dj.CleanupOnce(); err != nil {
			log.Printf("Error cleaning generated documents: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Document cleanup cron job started")

	return scheduler
}

// CleanupOnce removes every PDF in Dir older than MaxAge. A missing
// directory is not an error; nothing has been generated yet.
func (dj *DocumentJanitor) CleanupOnce() error {
	entries, err := os.ReadDir(dj.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read documents directory: %w", err)
	}

	cutoff := time.Now().Add(-dj.MaxAge)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Printf("Failed to stat %s: %v", entry.Name(), err)
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dj.Dir, entry.Name())); err != nil {
				log.Printf("Failed to remove expired document %s: %v", entry.Name(), err)
				continue
			}
			log.Printf("Removed expired document %s", entry.Name())
		}
	}
	return nil
}
