package models

import "time"

// ExportFormatVersion is the version stamp written into every export
// document. Bump on any incompatible change to [ExportDocument].
const ExportFormatVersion = "1.0.0"

// ExportDocument is the portable snapshot produced by the vault export
// operation. The core only builds the JSON text; writing it anywhere is
// the caller's concern.
type ExportDocument struct {
	Notes         []Note    `json:"notes"`
	Settings      Settings  `json:"settings"`
	ExportedAt    time.Time `json:"exportedAt"`
	FormatVersion string    `json:"formatVersion"`
}
