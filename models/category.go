package models

// Category identifies the fixed vault category a note belongs to.
// The set of categories is closed; anything outside it is invalid input.
type Category string

const (
	// CategoryPersonal holds personal thoughts and reminders. Not sensitive.
	CategoryPersonal Category = "personal"

	// CategoryPasswords holds login credentials. Sensitive.
	CategoryPasswords Category = "passwords"

	// CategoryFinancial holds bank accounts and financial data. Sensitive.
	CategoryFinancial Category = "financial"

	// CategoryDocuments holds important documents and IDs. Sensitive.
	CategoryDocuments Category = "documents"
)

// CategoryInfo carries the static presentation metadata of a category.
// The core never interprets these fields; they are exposed for callers
// rendering category pickers and note cards.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Description string   `json:"description"`

	// Sensitive marks categories whose notes are gated behind a
	// biometric challenge for destructive or revealing operations.
	Sensitive bool `json:"sensitive"`
}

// Categories is the closed registry of vault categories keyed by id.
var Categories = map[Category]CategoryInfo{
	CategoryPersonal: {
		ID:          CategoryPersonal,
		Name:        "Personal Notes",
		Icon:        "person",
		Color:       "#4CAF50",
		Description: "Personal thoughts and reminders",
		Sensitive:   false,
	},
	CategoryPasswords: {
		ID:          CategoryPasswords,
		Name:        "Passwords",
		Icon:        "key",
		Color:       "#FF9800",
		Description: "Login credentials and passwords",
		Sensitive:   true,
	},
	CategoryFinancial: {
		ID:          CategoryFinancial,
		Name:        "Financial Info",
		Icon:        "account-balance",
		Color:       "#2196F3",
		Description: "Bank accounts and financial data",
		Sensitive:   true,
	},
	CategoryDocuments: {
		ID:          CategoryDocuments,
		Name:        "Documents",
		Icon:        "description",
		Color:       "#9C27B0",
		Description: "Important documents and IDs",
		Sensitive:   true,
	},
}

// Valid reports whether c is one of the registered categories.
func (c Category) Valid() bool {
	_, ok := Categories[c]
	return ok
}

// Sensitive reports whether notes of this category require a biometric
// challenge for gated operations. Unknown categories are treated as
// sensitive so that invalid input never weakens gating.
func (c Category) Sensitive() bool {
	info, ok := Categories[c]
	if !ok {
		return true
	}
	return info.Sensitive
}
