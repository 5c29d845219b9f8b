package gateway

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/mailgate/pkg/mailstore"
)

// SendRequest is the body of POST /external/send-email.
type SendRequest struct {
	To       []string `json:"to"`
	Subject  string   `json:"subject"`
	Text     string   `json:"text,omitempty"`
	HTML     string   `json:"html,omitempty"`
	FromName string   `json:"fromName,omitempty"`
}

// SendResult describes an accepted message.
type SendResult struct {
	MessageID string    `json:"messageId"`
	SentTo    []string  `json:"sentTo"`
	Subject   string    `json:"subject"`
	SentAt    Timestamp `json:"sentAt"`
}

// Timestamp marshals as ISO-8601 UTC with millisecond precision.
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format("2006-01-02T15:04:05.000Z07:00"))
}

// QueryRequest is the body of POST /external/query-email.
type QueryRequest struct {
	ToEmail    string `json:"toEmail"`
	FromEmail  string `json:"fromEmail,omitempty"`
	StartTime  string `json:"startTime,omitempty"`
	EndTime    string `json:"endTime,omitempty"`
	MinutesAgo Number `json:"minutesAgo"`
	Size       Number `json:"size"`
}

// QueryResult is the list returned by POST /external/query-email.
type QueryResult []mailstore.Email

// Number is an optional integer that accepts a JSON number or a numeric
// string. Fractions are truncated and magnitudes beyond int32 saturate. Any
// other value decodes as absent instead of failing the request.
type Number struct {
	Value int
	Valid bool
}

// Int returns a set Number.
func Int(v int) Number { return Number{Value: v, Valid: true} }

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) {
		return nil
	}
	*n = Int(int(math.Trunc(max(min(f, math.MaxInt32), math.MinInt32))))
	return nil
}
