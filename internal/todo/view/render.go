package view

import (
	"fmt"
	"strconv"

	"oneday-todo/internal/model"
)

var filterLabels = map[model.Filter]string{
	model.FilterAll:       "All",
	model.FilterActive:    "Active",
	model.FilterCompleted: "Completed",
}

// Render projects the list through filter into a view tree. editingID marks
// the row whose text surface is currently editable.
func Render(todos []model.Todo, filter model.Filter, editingID string) View {
	if !filter.Valid() {
		filter = model.FilterAll
	}

	v := View{
		Rows:    make([]Row, 0, len(todos)),
		Filters: make([]FilterControl, 0, len(model.Filters)),
	}

	for _, t := range todos {
		if !t.Completed {
			v.ItemsLeft++
		} else {
			v.HasCompleted = true
		}
		if filter.Match(t) {
			v.Rows = append(v.Rows, renderRow(t, t.ID == editingID))
		}
	}
	v.ItemsLeftLabel = ItemsLeftLabel(v.ItemsLeft)

	for _, f := range model.Filters {
		selected := f == filter
		v.Filters = append(v.Filters, FilterControl{
			Filter:       f,
			Label:        filterLabels[f],
			Selected:     selected,
			AriaSelected: strconv.FormatBool(selected),
		})
	}
	return v
}

func renderRow(t model.Todo, editing bool) Row {
	class := "todo-item"
	if t.Completed {
		class += " completed"
	}
	if editing {
		class += " editing"
	}

	return Row{
		ID:    t.ID,
		Class: class,
		Toggle: Control{
			Kind:      ControlToggle,
			Label:     LabelToggle,
			Checked:   t.Completed,
			ClassName: "toggle",
		},
		Text: Control{
			Kind:      ControlText,
			Label:     LabelText,
			Role:      RoleText,
			Content:   t.Text,
			Editable:  editing,
			ClassName: "text",
		},
		Delete: Control{
			Kind:      ControlDelete,
			Label:     LabelDelete,
			Content:   "Delete",
			ClassName: "delete-btn",
		},
	}
}

// ItemsLeftLabel formats the incomplete-items counter.
func ItemsLeftLabel(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}
