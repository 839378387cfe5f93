package timetables

import "encoding/json"

// document is a JSON:API envelope; Data is either a single resource or a list.
type document struct {
	Data json.RawMessage `json:"data"`
}

type resource struct {
	ID            string                  `json:"id"`
	Type          string                  `json:"type"`
	Attributes    json.RawMessage         `json:"attributes"`
	Relationships map[string]relationship `json:"relationships,omitempty"`
}

type relationship struct {
	Data *resourceIdentifier `json:"data"`
}

type resourceIdentifier struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type routeAttributes struct {
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
	LongName  string `json:"long_name"`
}

type scheduleAttributes struct {
	ArrivalTime   *string `json:"arrival_time"`
	DepartureTime *string `json:"departure_time"`
}

type stopAttributes struct {
	Name string `json:"name"`
}

func (r resource) relatedID(name string) string {
	if rel, ok := r.Relationships[name]; ok && rel.Data != nil {
		return rel.Data.ID
	}
	return ""
}
