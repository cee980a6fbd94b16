package job

import (
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

// ChecklistItem is an entity describing a single step of work at the location,
// e.g. "wipe interior windows". Items are ordered by position within their job.
type ChecklistItem struct {
	id       kernel.UUID
	position int
	text     string
	done     bool
}

// NewChecklistItem creates a checklist item at the given position.
func NewChecklistItem(id kernel.UUID, position int, text string) (ChecklistItem, error) {
	if err := id.Validate(); err != nil {
		return ChecklistItem{}, err
	}
	if text == "" {
		return ChecklistItem{}, errs.NewValueIsRequiredError("checklist item text")
	}
	if position < 0 {
		return ChecklistItem{}, errs.NewValueIsOutOfRangeError("checklist position", position, 0, int(^uint(0)>>1))
	}

	return ChecklistItem{id: id, position: position, text: text}, nil
}

// RestoreChecklistItem reconstructs a checklist item from persistence.
func RestoreChecklistItem(id kernel.UUID, position int, text string, done bool) (ChecklistItem, error) {
	item, err := NewChecklistItem(id, position, text)
	if err != nil {
		return ChecklistItem{}, err
	}
	item.done = done
	return item, nil
}

// ID returns the item identifier.
func (c ChecklistItem) ID() kernel.UUID {
	return c.id
}

// Position returns the item's order within the job checklist.
func (c ChecklistItem) Position() int {
	return c.position
}

// Text returns the item description.
func (c ChecklistItem) Text() string {
	return c.text
}

// Done reports whether the item has been completed.
func (c ChecklistItem) Done() bool {
	return c.done
}

// complete returns a copy of the item marked done.
func (c ChecklistItem) complete() ChecklistItem {
	c.done = true
	return c
}
