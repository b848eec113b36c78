package placeholder

// Record is a product whose image reference may be replaced.
type Record interface {
	Name() string
	Image() string
	SetImage(image string)
}

// Change describes the outcome for one record.
type Change struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Kind      Kind   `json:"kind"`
	Color     string `json:"color"`
	Rewritten bool   `json:"rewritten"`
}

// Result summarizes a pass over a record sequence.
type Result struct {
	Total     int      `json:"total"`
	Rewritten int      `json:"rewritten"`
	Changes   []Change `json:"changes"`
}

// Plan reports what Rewrite would do without mutating any record.
func Plan[R Record](records []R) Result {
	return apply(records, false)
}

// Rewrite replaces every remote image in records with a generated placeholder.
// Records are visited in slice order and the color is chosen by index.
func Rewrite[R Record](records []R) Result {
	return apply(records, true)
}

func apply[R Record](records []R, mutate bool) Result {
	result := Result{
		Total:   len(records),
		Changes: make([]Change, 0, len(records)),
	}
	for i, record := range records {
		image := record.Image()
		change := Change{
			Index: i,
			Name:  record.Name(),
			Kind:  Classify(image),
			Color: ColorAt(i),
		}
		if NeedsPlaceholder(image) {
			if mutate {
				record.SetImage(DataURI(change.Color, change.Name))
			}
			change.Rewritten = true
			result.Rewritten++
		}
		result.Changes = append(result.Changes, change)
	}
	return result
}
