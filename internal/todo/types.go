package todo

// --- Domain Model ---

// Item is one entry of a todo list. Its index in the list is its only identity.
type Item struct {
	Task string `json:"task"`
	Done bool   `json:"done"`
}

// Stats summarizes completion of a list.
type Stats struct {
	Total     int
	Completed int
	Pending   int
	Progress  float64 // 0-100
}

// NewStats computes completion statistics for items.
func NewStats(items []Item) Stats {
	total := len(items)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, it := range items {
		if it.Done {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

// --- UseCase Inputs ---

type UpdateItemInput struct {
	Filename string
	Index    int
	Done     bool
}

// --- UseCase Outputs ---

type ListListsOutput struct {
	Filenames []string
}

type DetailOutput struct {
	Filename string
	Items    []Item
	Stats    Stats
}

type UpdateItemOutput struct {
	Filename string
	Index    int
	Item     Item
}
