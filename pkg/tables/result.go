package tables

// Result is either a table or the kind of failure that prevented building it.
type Result struct {
	Table Table
	Kind  ErrorKind
	Err   error
}

func Ok(table Table) Result {
	return Result{Table: table}
}

func Fail(err error) Result {
	return Result{Kind: KindOf(err), Err: err}
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Message is the user-facing text for a failed result.
func (r Result) Message() string {
	switch r.Kind {
	case KindNone:
		return ""
	case KindNetwork:
		return "Transit data is currently unavailable. Please try again later."
	case KindEmptyDataset:
		return "No data is available for this view."
	case KindInvalidRequest:
		return "The requested view does not exist."
	default:
		return "Transit data could not be displayed."
	}
}

// Render returns the table to display: the built table, or an empty one carrying the message.
func (r Result) Render() Table {
	if r.OK() {
		return r.Table
	}
	return Table{Rows: []Row{}, Message: r.Message()}
}
