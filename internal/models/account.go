package models

import "time"

// AccountType mirrors domain.AccountType for DB storage.
type AccountType string

// Account is the DB row shape for a chart-of-accounts entry.
type Account struct {
	Code               string      `db:"code"`
	Name               string      `db:"name"`
	AccountType        AccountType `db:"account_type"`
	Category           string      `db:"category"`
	ClassificationHint string      `db:"classification_hint"`
	CreatedAt          time.Time   `db:"created_at"`
}
