package models

// ProjectionFilters narrows a projection run. An empty Scope requests both
// personal and family entities. Account filters restrict the balance fetch.
type ProjectionFilters struct {
	Scope      Scope    `json:"scope,omitempty"`
	AccountID  string   `json:"account_id,omitempty"`
	AccountIDs []string `json:"account_ids,omitempty"`
}

// ScopeFilter is the resolved, repository-facing form of ProjectionFilters.
// The coordinator resolves the caller's family membership once per call and
// repositories consume the result; repositories never look up identity
// themselves.
type ScopeFilter struct {
	Scope      Scope // empty means personal and family combined
	UserID     string
	FamilyID   string // empty when the caller belongs to no family
	AccountID  string
	AccountIDs []string
}

// IncludesPersonal reports whether personal-scoped entities match the filter
func (f ScopeFilter) IncludesPersonal() bool {
	return f.Scope == "" || f.Scope == ScopePersonal
}

// IncludesFamily reports whether family-scoped entities match the filter.
// Family entities never match when no family was resolved.
func (f ScopeFilter) IncludesFamily() bool {
	return (f.Scope == "" || f.Scope == ScopeFamily) && f.FamilyID != ""
}
