package models

// TicketStatus represents the workflow state of a ticket
type TicketStatus string

const (
	TicketStatusTodo       TicketStatus = "todo"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusInReview   TicketStatus = "in_review"
	TicketStatusDone       TicketStatus = "done"
)

// TicketPriority represents the urgency of a ticket
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "low"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityCritical TicketPriority = "critical"
)

// TicketType represents the kind of work a ticket tracks
type TicketType string

const (
	TicketTypeTask TicketType = "task"
	TicketTypeBug  TicketType = "bug"
	TicketTypeEpic TicketType = "epic"
)

// StatusNames maps ticket statuses to their display names
var StatusNames = map[TicketStatus]string{
	TicketStatusTodo:       "Todo",
	TicketStatusInProgress: "In Progress",
	TicketStatusInReview:   "In Review",
	TicketStatusDone:       "Done",
}

// PriorityNames maps ticket priorities to their display names
var PriorityNames = map[TicketPriority]string{
	TicketPriorityLow:      "Low",
	TicketPriorityMedium:   "Medium",
	TicketPriorityHigh:     "High",
	TicketPriorityCritical: "Critical",
}

// PriorityColors maps ticket priorities to their display colors
var PriorityColors = map[TicketPriority]string{
	TicketPriorityLow:      "#D0F0D8",
	TicketPriorityMedium:   "#FFECB3",
	TicketPriorityHigh:     "#FFCC80",
	TicketPriorityCritical: "#EF9A9A",
}

// TypeNames maps ticket types to their display names
var TypeNames = map[TicketType]string{
	TicketTypeTask: "Task",
	TicketTypeBug:  "Bug",
	TicketTypeEpic: "Epic",
}

// TypeColors maps ticket types to their display colors
var TypeColors = map[TicketType]string{
	TicketTypeBug:  "#D0F0D8",
	TicketTypeEpic: "#FFECB3",
	TicketTypeTask: "#FFCC80",
}

// Valid reports whether the status is one of the known workflow states.
func (s TicketStatus) Valid() bool {
	_, ok := StatusNames[s]
	return ok
}

// Valid reports whether the priority is one of the known levels.
func (p TicketPriority) Valid() bool {
	_, ok := PriorityNames[p]
	return ok
}

// Valid reports whether the type is one of the known kinds.
func (t TicketType) Valid() bool {
	_, ok := TypeNames[t]
	return ok
}
