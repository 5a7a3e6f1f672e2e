package table

// Category is the closed set of row classifications.
type Category int

const (
	Unknown Category = iota
	InProgress
	Complete
	Pending
	Approved
	Rejected
)

var categoryNames = map[Category]string{
	Unknown:    "Unknown",
	InProgress: "In Progress",
	Complete:   "Complete",
	Pending:    "Pending",
	Approved:   "Approved",
	Rejected:   "Rejected",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return categoryNames[Unknown]
}

// Categories lists every category, Unknown last.
func Categories() []Category {
	return []Category{InProgress, Complete, Pending, Approved, Rejected, Unknown}
}

// ClassifyStatus maps a status string onto a Category. Only the exact
// labels match; anything else, including other casings, is Unknown.
func ClassifyStatus(status string) Category {
	switch status {
	case "In Progress":
		return InProgress
	case "Complete":
		return Complete
	case "Pending":
		return Pending
	case "Approved":
		return Approved
	case "Rejected":
		return Rejected
	default:
		return Unknown
	}
}
