package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RequestFromDocument turns a loosely typed stored document into a Request
// with every field present. Absent or wrong-typed fields degrade to
// defaults; the function never fails on malformed input. Records written by
// older clients may only carry "client_name"/"title"/"description" instead
// of the current field names.
func RequestFromDocument(doc bson.M) Request {
	now := time.Now()

	request := Request{
		FullName:   docString(doc, "full_name"),
		Phone:      docString(doc, "phone"),
		BirthDate:  docString(doc, "birth_date"),
		Status:     docString(doc, "status"),
		Source:     docString(doc, "source"),
		Referrer:   docString(doc, "referrer"),
		UserAgent:  docString(doc, "user_agent"),
		Priority:   docString(doc, "priority"),
		AssignedTo: docString(doc, "assigned_to"),
		Tags:       docStrings(doc, "tags"),
		CompanyID:  docString(doc, "company_id"),
		Comment:    docString(doc, "comment"),
		Title:      docString(doc, "title"),
		CreatedAt:  docTime(doc, "created_at", now),
		UpdatedAt:  docTime(doc, "updated_at", now),
	}

	if id, ok := doc["_id"].(bson.ObjectID); ok {
		request.ID = id
	}

	if request.FullName == "" {
		request.FullName = docString(doc, "client_name")
	}
	if request.Comment == "" {
		request.Comment = docString(doc, "description")
	}
	if request.Title == "" {
		request.Title = request.FullName
	}

	if !ValidRequestStatus(request.Status) {
		request.Status = REQUEST_STATUS_NEW
	}
	if !ValidRequestPriority(request.Priority) {
		request.Priority = REQUEST_PRIORITY_MEDIUM
	}

	return request
}

func docString(doc bson.M, key string) string {
	if value, ok := doc[key].(string); ok {
		return value
	}
	return ""
}

func docStrings(doc bson.M, key string) []string {
	values := []string{}
	raw, ok := doc[key].(bson.A)
	if !ok {
		return values
	}
	for _, item := range raw {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}

// Timestamps default to fallback rather than the zero time so that sorting
// by creation date stays total.
func docTime(doc bson.M, key string, fallback time.Time) time.Time {
	switch value := doc[key].(type) {
	case bson.DateTime:
		return value.Time()
	case time.Time:
		return value
	case string:
		if parsed, err := time.Parse(time.RFC3339, value); err == nil {
			return parsed
		}
	}
	return fallback
}
