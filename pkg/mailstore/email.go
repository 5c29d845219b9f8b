package mailstore

import "time"

// Type tells sent and received mail apart.
type Type int

const (
	TypeSend    Type = 0
	TypeReceive Type = 1
)

// Status is the soft-delete flag.
type Status int

const (
	StatusNormal  Status = 0
	StatusDeleted Status = 1
)

// Email is one stored message. Type and IsDel are not exposed in JSON.
type Email struct {
	ID         int64     `json:"id"`
	FromEmail  string    `json:"fromEmail"`
	FromName   string    `json:"fromName"`
	ToEmail    string    `json:"toEmail"`
	Subject    string    `json:"subject"`
	Text       string    `json:"text"`
	Content    string    `json:"content"`
	Type       Type      `json:"-"`
	IsDel      Status    `json:"-"`
	CreateTime time.Time `json:"createTime"`
}
