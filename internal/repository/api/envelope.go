package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// page is the paginated list shape: {"content": [...], "totalElements": n}.
type page[T any] struct {
	Content       []T  `json:"content"`
	TotalElements *int `json:"totalElements"`
}

// decodeList accepts either a bare JSON array or a paginated object and
// returns the items plus the server-reported total (nil for bare arrays).
func decodeList[T any](raw json.RawMessage) ([]T, *int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil, nil
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil, nil
	case '{':
		var p page[T]
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return nil, nil, fmt.Errorf("decode page: %w", err)
		}
		return p.Content, p.TotalElements, nil
	default:
		return nil, nil, fmt.Errorf("decode list: unexpected JSON starting with %q", trimmed[0])
	}
}

// flexID accepts both numeric and string identifiers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

// personName is a nested user or employee object carrying a name.
type personName struct {
	ID        flexID `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

func (p *personName) display() string {
	if p == nil {
		return ""
	}
	if name := joinName(p.FirstName, p.LastName); name != "" {
		return name
	}
	return strings.TrimSpace(p.FullName)
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// resolveName picks the first available of a precomputed display name, the
// nested user's name and the nested employee's name.
func resolveName(display string, usr, emp *personName) string {
	if name := strings.TrimSpace(display); name != "" {
		return name
	}
	if name := usr.display(); name != "" {
		return name
	}
	return emp.display()
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp reads the timestamp formats the backend emits; zone-less
// values are taken as UTC.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC()
	}
	return time.Time{}
}
