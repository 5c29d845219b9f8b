package gateway

import (
	"math"
	"strings"
	"time"

	"github.com/dmitrymomot/mailgate/pkg/address"
	"github.com/dmitrymomot/mailgate/pkg/mailstore"
)

const (
	DefaultQuerySize = 10
	MaxQuerySize     = 50
)

// maxMinutesAgo is the longest window a time.Duration can express. Larger
// values mean "no lower bound".
const maxMinutesAgo = math.MaxInt64 / int64(time.Minute)

// Accepted timestamp layouts, tried in order. Values without a zone are UTC.
var timeLayouts = []string{
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	time.DateOnly,
}

// BuildQuery validates req and turns it into a store query. It has no side
// effects; now anchors minutesAgo.
func BuildQuery(req QueryRequest, now time.Time) (mailstore.Query, error) {
	to := strings.TrimSpace(req.ToEmail)
	if to == "" {
		return mailstore.Query{}, invalidInput("toEmail is required")
	}
	if !address.IsValid(to) {
		return mailstore.Query{}, invalidInput("invalid email address: %s", to)
	}

	where := []mailstore.Predicate{
		mailstore.Eq(mailstore.FieldToEmail, to),
		mailstore.Eq(mailstore.FieldType, mailstore.TypeReceive),
		mailstore.Eq(mailstore.FieldStatus, mailstore.StatusNormal),
	}

	if req.MinutesAgo.Valid && req.MinutesAgo.Value > 0 {
		if minutes := int64(req.MinutesAgo.Value); minutes <= maxMinutesAgo {
			since := now.Add(-time.Duration(minutes) * time.Minute)
			where = append(where, mailstore.Gte(mailstore.FieldCreateTime, since.UTC()))
		}
	} else {
		if req.StartTime != "" {
			start, err := parseTime(req.StartTime)
			if err != nil {
				return mailstore.Query{}, invalidInput("invalid startTime: %s", req.StartTime)
			}
			where = append(where, mailstore.Gte(mailstore.FieldCreateTime, start))
		}
		if req.EndTime != "" {
			end, err := parseTime(req.EndTime)
			if err != nil {
				return mailstore.Query{}, invalidInput("invalid endTime: %s", req.EndTime)
			}
			where = append(where, mailstore.Lte(mailstore.FieldCreateTime, end))
		}
	}

	if from := strings.TrimSpace(req.FromEmail); from != "" {
		where = append(where, mailstore.Eq(mailstore.FieldFromEmail, from))
	}

	return mailstore.Query{Where: where, Limit: querySize(req.Size)}, nil
}

func querySize(n Number) int {
	if !n.Valid || n.Value <= 0 {
		return DefaultQuerySize
	}
	return min(n.Value, MaxQuerySize)
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
