package ui

import (
	"github.com/google/uuid"

	"tablematch/domain/table"
	"tablematch/internal/match"
	"tablematch/internal/profile"
)

// Role names the slot a dataset was imported into. Importing again for the
// same role replaces the previous dataset wholesale.
type Role string

const (
	// RoleTarget is the dataset browsed in analysis mode.
	RoleTarget Role = "target"
	// RoleReference is the dataset whose cell values seed the keyword list.
	RoleReference Role = "reference"
	// RoleCompare is the dataset filtered against the reference keywords.
	RoleCompare Role = "compare"
)

// ValidRole reports whether s names a known dataset slot.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleTarget, RoleReference, RoleCompare:
		return true
	}
	return false
}

// StoredDataset is one imported dataset together with its import metadata.
type StoredDataset struct {
	ID       uuid.UUID               `json:"id"`
	Filename string                  `json:"filename"`
	Dataset  *table.Dataset          `json:"dataset"`
	Profile  []profile.ColumnProfile `json:"profile"`
}

// storeDataset replaces the dataset for a role. The column profile is kept
// sparsest-first, the order the import panel lists columns in.
func (a *App) storeDataset(role Role, filename string, ds *table.Dataset) *StoredDataset {
	profiles := profile.Profile(ds)
	profile.SortByFillRate(profiles)

	stored := &StoredDataset{
		ID:       uuid.New(),
		Filename: filename,
		Dataset:  ds,
		Profile:  profiles,
	}
	a.mu.Lock()
	a.datasets[role] = stored
	a.mu.Unlock()

	a.logger.Debug("Stored dataset %s for role %s (%d rows)", stored.ID, role, len(ds.Rows))
	return stored
}

// getDataset returns the dataset stored for a role, or nil.
func (a *App) getDataset(role Role) *StoredDataset {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.datasets[role]
}

// referenceKeywords extracts the keyword list from the reference dataset.
// An empty list when no reference dataset has been imported.
func (a *App) referenceKeywords() []string {
	a.mu.RLock()
	stored := a.datasets[RoleReference]
	a.mu.RUnlock()
	if stored == nil {
		return []string{}
	}
	return match.ExtractKeywords(stored.Dataset)
}
