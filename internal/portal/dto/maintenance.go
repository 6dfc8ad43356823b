package dto

// ExportFile is the merge/sync payload: a non-destructive snapshot of data
// from another deployment. Every section is optional; present records are
// upserted by their natural keys and nothing is deleted.
type ExportFile struct {
	Observations []ObservationRecord     `json:"observations,omitempty"`
	Categories   []UpsertCategoryRequest `json:"categories,omitempty"`
	Articles     []UpsertArticleRequest  `json:"articles,omitempty"`
	Events       []UpsertEventRequest    `json:"events,omitempty"`
	Staff        []UpsertStaffRequest    `json:"staff,omitempty"`
	Programs     []UpsertProgramRequest  `json:"programs,omitempty"`
	Resources    []UpsertResourceRequest `json:"resources,omitempty"`
}

// MaintenanceResult reports the outcome of one administrative maintenance
// action: a human-readable status plus whatever output was captured before
// the action finished or failed.
type MaintenanceResult struct {
	Action   string   `json:"action"`
	Status   string   `json:"status"`
	Output   []string `json:"output,omitempty"`
	Duration string   `json:"duration"`
}
