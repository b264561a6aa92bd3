package dashboards

import "encoding/json"

// Dashboard is a saved report layout owned by one employee. The layout is an
// opaque blob the UI interprets; the store never looks inside it. At most one
// dashboard per employee is the default, enforced by the store.
type Dashboard struct {
	ID         int             `json:"id"`
	EmployeeID int             `json:"employeeId"`
	Name       string          `json:"name"`
	Layout     json.RawMessage `json:"layout,omitempty"`
	IsDefault  bool            `json:"isDefault"`
}

// DashboardUpdate carries the fields a partial update may set. A nil Layout
// keeps the stored layout.
type DashboardUpdate struct {
	Name      *string         `json:"name,omitempty"`
	Layout    json.RawMessage `json:"layout,omitempty"`
	IsDefault *bool           `json:"isDefault,omitempty"`
}

func (d *Dashboard) apply(update DashboardUpdate) {
	if update.Name != nil {
		d.Name = *update.Name
	}
	if update.Layout != nil {
		d.Layout = update.Layout
	}
	if update.IsDefault != nil {
		d.IsDefault = *update.IsDefault
	}
}
