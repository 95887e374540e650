package view

import "oneday-todo/internal/model"

// Accessibility labels carried by every rendered row.
const (
	LabelToggle = "Toggle completion status"
	LabelText   = "Edit todo"
	LabelDelete = "Delete todo"
	RoleText    = "textbox"
)

// Control kinds used for event delegation.
const (
	ControlToggle = "toggle"
	ControlText   = "text"
	ControlDelete = "delete"
)

// View is the full view tree for one (list, filter) pair.
type View struct {
	Rows           []Row           `json:"rows"`
	ItemsLeft      int             `json:"items_left"`
	ItemsLeftLabel string          `json:"items_left_label"`
	Filters        []FilterControl `json:"filters"`
	HasCompleted   bool            `json:"has_completed"`
}

// Row is one rendered list item.
type Row struct {
	ID     string  `json:"id"`
	Class  string  `json:"class"`
	Toggle Control `json:"toggle"`
	Text   Control `json:"text"`
	Delete Control `json:"delete"`
}

// Control is an interactive element inside a row.
type Control struct {
	Kind      string `json:"kind"`
	Label     string `json:"aria_label"`
	Role      string `json:"role,omitempty"`
	Checked   bool   `json:"checked,omitempty"`
	Content   string `json:"content,omitempty"`
	Editable  bool   `json:"editable,omitempty"`
	ClassName string `json:"class_name"`
}

// FilterControl is one of the three filter buttons.
type FilterControl struct {
	Filter       model.Filter `json:"filter"`
	Label        string       `json:"label"`
	Selected     bool         `json:"selected"`
	AriaSelected string       `json:"aria_selected"`
}
