package service

import (
	"time"

	"github.com/akimenko/securevault/models"
)

// seedNotes returns the fixed example collection persisted on first run.
// The ids and timestamps are deterministic so a fresh install is
// reproducible; real notes created later get generated ids.
func seedNotes() []models.Note {
	return []models.Note{
		{
			ID:        "1",
			Title:     "Personal Email",
			Content:   "Gmail: john.doe@gmail.com\nPassword: SecurePass123!",
			Category:  models.CategoryPasswords,
			CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Title:     "Bank Account Info",
			Content:   "Account: 1234-5678-9012-3456\nRouting: 987654321\nBank: Example Bank",
			Category:  models.CategoryFinancial,
			CreatedAt: time.Date(2024, 1, 10, 14, 20, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 10, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:        "3",
			Title:     "Personal Notes",
			Content:   "Remember to call mom on Sunday.\nPickup groceries: milk, bread, eggs.",
			Category:  models.CategoryPersonal,
			CreatedAt: time.Date(2024, 1, 20, 9, 15, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 20, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:        "4",
			Title:     "Passport Details",
			Content:   "Passport Number: A12345678\nExpiry: 2030-12-31\nIssued: New York",
			Category:  models.CategoryDocuments,
			CreatedAt: time.Date(2024, 1, 5, 16, 45, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 5, 16, 45, 0, 0, time.UTC),
		},
	}
}
