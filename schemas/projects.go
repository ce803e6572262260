package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// The rollup counters are derived data: they are recomputed by re-scanning
// the request collection and may be recalculated at any time without loss.
type Project struct {
	ID            bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string        `json:"name" bson:"name"`
	Color         string        `json:"color,omitempty" bson:"color,omitempty"`
	NewRequests   int           `json:"new_requests" bson:"new_requests"`
	TotalRequests int           `json:"total_requests" bson:"total_requests"`
	Accepted      int           `json:"accepted" bson:"accepted"`
	Rejected      int           `json:"rejected" bson:"rejected"`
	UserID        string        `json:"user_id,omitempty" bson:"user_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
