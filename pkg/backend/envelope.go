package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/gaunghar/admin-console/pkg/constants"
)

const StatusOK = 200

// Status is the envelope every backend response carries.
type Status struct {
	StatusCode Code   `json:"StatusCode"`
	Message    string `json:"Message"`
}

// Code is a status code the backend may send as a number or a numeric string.
type Code int

func (c *Code) UnmarshalJSON(data []byte) error {
	var t Text
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	if t.String() == "" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(t.String())
	if err != nil {
		return err
	}
	*c = Code(n)
	return nil
}

func (s *Status) Envelope() *Status {
	return s
}

// Enveloped is implemented by response types that embed Status.
type Enveloped interface {
	Envelope() *Status
}

// Text accepts JSON strings, numbers, booleans and null, so row fields the
// backend sends with a varying type decode uniformly.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	default:
		*t = Text(data)
		return nil
	}
}

func (t Text) String() string {
	return strings.TrimSpace(string(t))
}

var timeLayouts = []string{
	constants.DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// Time parses the date and timestamp shapes the backend emits. Unparseable
// values yield the zero time.
func (t Text) Time() time.Time {
	s := t.String()
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v
		}
	}
	if len(s) > len(constants.DateLayout) {
		if v, err := time.Parse(constants.DateLayout, s[:len(constants.DateLayout)]); err == nil {
			return v
		}
	}
	return time.Time{}
}

func (t Text) Int() int {
	n, err := strconv.Atoi(t.String())
	if err != nil {
		return 0
	}
	return n
}
