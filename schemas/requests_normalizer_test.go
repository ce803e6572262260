package schemas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestRequestFromDocumentDefaults(t *testing.T) {
	before := time.Now()
	request := RequestFromDocument(bson.M{
		"full_name": "Anna Petrova",
		"phone":     "375291112233",
	})
	after := time.Now()

	require.Equal(t, "Anna Petrova", request.FullName)
	require.Equal(t, REQUEST_STATUS_NEW, request.Status)
	require.Equal(t, REQUEST_PRIORITY_MEDIUM, request.Priority)
	require.NotNil(t, request.Tags)
	require.Empty(t, request.Tags)
	require.Equal(t, request.FullName, request.Title)
	require.False(t, request.CreatedAt.Before(before))
	require.False(t, request.CreatedAt.After(after))
}

func TestRequestFromDocumentLegacyFieldNames(t *testing.T) {
	request := RequestFromDocument(bson.M{
		"client_name": "Old Client",
		"description": "called twice",
	})

	require.Equal(t, "Old Client", request.FullName)
	require.Equal(t, "called twice", request.Comment)
	require.Equal(t, "Old Client", request.Title)
}

func TestRequestFromDocumentCurrentNamesWinOverLegacy(t *testing.T) {
	request := RequestFromDocument(bson.M{
		"full_name":   "New Name",
		"client_name": "Old Name",
		"comment":     "current",
		"description": "legacy",
	})

	require.Equal(t, "New Name", request.FullName)
	require.Equal(t, "current", request.Comment)
}

func TestRequestFromDocumentInvalidEnumsFallBack(t *testing.T) {
	request := RequestFromDocument(bson.M{
		"status":   "archived",
		"priority": "urgent!!!",
	})

	require.Equal(t, REQUEST_STATUS_NEW, request.Status)
	require.Equal(t, REQUEST_PRIORITY_MEDIUM, request.Priority)
}

func TestRequestFromDocumentWrongTypedFields(t *testing.T) {
	request := RequestFromDocument(bson.M{
		"full_name":  42,
		"tags":       "not-an-array",
		"created_at": 12345,
	})

	require.Equal(t, "", request.FullName)
	require.Empty(t, request.Tags)
	require.False(t, request.CreatedAt.IsZero())
}

func TestRequestFromDocumentTagsSkipNonStrings(t *testing.T) {
	request := RequestFromDocument(bson.M{
		"tags": bson.A{"vip", 7, "repeat"},
	})

	require.Equal(t, []string{"vip", "repeat"}, request.Tags)
}

func TestRequestFromDocumentTimestamps(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	request := RequestFromDocument(bson.M{
		"created_at": bson.NewDateTimeFromTime(created),
		"updated_at": created.Format(time.RFC3339),
	})

	require.True(t, request.CreatedAt.Equal(created))
	require.True(t, request.UpdatedAt.Equal(created))
}

func TestRequestFromDocumentKeepsObjectID(t *testing.T) {
	id := bson.NewObjectID()
	request := RequestFromDocument(bson.M{"_id": id, "status": REQUEST_STATUS_ACCEPTED})

	require.Equal(t, id, request.ID)
	require.Equal(t, REQUEST_STATUS_ACCEPTED, request.Status)
}
