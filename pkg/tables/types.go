package tables

type Route struct {
	ID        string `json:"id"`
	LongName  string `json:"long_name"`
	Color     string `json:"color,omitempty"`
	TextColor string `json:"text_color,omitempty"`
}

// ScheduleEntry is one scheduled stop on a route. A nil or empty timestamp is absent.
type ScheduleEntry struct {
	StopID        string
	ArrivalTime   *string
	DepartureTime *string
}

type Stop struct {
	ID   string
	Name string
}

// Table is a rendering-agnostic table, rebuilt for every request.
type Table struct {
	Header []string `json:"header,omitempty"`
	Rows   []Row    `json:"rows"`

	// Stylesheet names the stylesheet the rows' classes refer to, if any.
	Stylesheet string `json:"stylesheet,omitempty"`

	// Message is shown instead of the rows when the data is unavailable.
	Message string `json:"message,omitempty"`
}

type Row struct {
	Classes []string `json:"classes,omitempty"`
	Cells   []Cell   `json:"cells"`
}

type Cell struct {
	Text string `json:"text,omitempty"`
	Link *Link  `json:"link,omitempty"`
}

// Link points to the schedule view of the route in Target.
type Link struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

func TextCell(text string) Cell {
	return Cell{Text: text}
}

func LinkCell(label, target string) Cell {
	return Cell{Link: &Link{Label: label, Target: target}}
}

// Label returns the visible text of the cell.
func (c Cell) Label() string {
	if c.Link != nil {
		return c.Link.Label
	}
	return c.Text
}
