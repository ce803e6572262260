package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	REQUEST_STATUS_NEW       = "new"
	REQUEST_STATUS_ACCEPTED  = "accepted"
	REQUEST_STATUS_REJECTED  = "rejected"
	REQUEST_STATUS_NO_ANSWER = "no_answer"

	REQUEST_PRIORITY_LOW    = "low"
	REQUEST_PRIORITY_MEDIUM = "medium"
	REQUEST_PRIORITY_HIGH   = "high"
)

type Request struct {
	ID         bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FullName   string        `json:"full_name" bson:"full_name,omitempty"`
	Phone      string        `json:"phone" bson:"phone,omitempty"`
	BirthDate  string        `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	Status     string        `json:"status" bson:"status,omitempty"`
	Source     string        `json:"source,omitempty" bson:"source,omitempty"`
	Referrer   string        `json:"referrer,omitempty" bson:"referrer,omitempty"`
	UserAgent  string        `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	Priority   string        `json:"priority,omitempty" bson:"priority,omitempty"`
	AssignedTo string        `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	Tags       []string      `json:"tags" bson:"tags,omitempty"`
	// CompanyID holds the hex id of the assigned company. Legacy records
	// imported before company references existed carry the denormalized
	// company name here instead, so the field stays a plain string.
	CompanyID string    `json:"company_id,omitempty" bson:"company_id,omitempty"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	Title     string    `json:"title,omitempty" bson:"title,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at,omitempty"`
}

func ValidRequestStatus(status string) bool {
	switch status {
	case REQUEST_STATUS_NEW, REQUEST_STATUS_ACCEPTED, REQUEST_STATUS_REJECTED, REQUEST_STATUS_NO_ANSWER:
		return true
	}
	return false
}

func ValidRequestPriority(priority string) bool {
	switch priority {
	case REQUEST_PRIORITY_LOW, REQUEST_PRIORITY_MEDIUM, REQUEST_PRIORITY_HIGH:
		return true
	}
	return false
}
