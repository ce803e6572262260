package requests

import (
	"api/schemas"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplyStatus(t *testing.T) {
	created := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
	request := schemas.Request{
		FullName:  "Кремко Николай Николаевич",
		Phone:     "375445381648",
		Status:    schemas.REQUEST_STATUS_NEW,
		CreatedAt: created,
		UpdatedAt: created,
	}

	now := time.Date(2025, 6, 12, 9, 30, 0, 0, time.Local)
	updated, err := ApplyStatus(request, schemas.REQUEST_STATUS_ACCEPTED, "664f1b2a9c", now)
	require.NoError(t, err)
	require.Equal(t, schemas.REQUEST_STATUS_ACCEPTED, updated.Status)
	require.Equal(t, "664f1b2a9c", updated.CompanyID)
	require.True(t, !updated.UpdatedAt.Before(request.UpdatedAt))
	require.Equal(t, created, updated.CreatedAt)
}

func TestApplyStatusReversalKeepsCompany(t *testing.T) {
	request := schemas.Request{
		Status:    schemas.REQUEST_STATUS_ACCEPTED,
		CompanyID: "664f1b2a9c",
	}

	updated, err := ApplyStatus(request, schemas.REQUEST_STATUS_NEW, "", time.Now())
	require.NoError(t, err)
	require.Equal(t, schemas.REQUEST_STATUS_NEW, updated.Status)
	// Last known assignment stays, informational only once status != accepted.
	require.Equal(t, "664f1b2a9c", updated.CompanyID)
}

func TestApplyStatusInvalid(t *testing.T) {
	request := schemas.Request{Status: schemas.REQUEST_STATUS_NEW}

	_, err := ApplyStatus(request, "approved", "", time.Now())
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestApplyStatusAllTransitionsReachable(t *testing.T) {
	statuses := []string{
		schemas.REQUEST_STATUS_NEW,
		schemas.REQUEST_STATUS_ACCEPTED,
		schemas.REQUEST_STATUS_REJECTED,
		schemas.REQUEST_STATUS_NO_ANSWER,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			request := schemas.Request{Status: from}
			updated, err := ApplyStatus(request, to, "", time.Now())
			require.NoError(t, err)
			require.Equal(t, to, updated.Status)
		}
	}
}
