package requests

import (
	"api/schemas"
	"fmt"
	"time"
)

// Every status is freely reachable from any other; triage decisions can be
// undone by moving a request back to "new".
var ErrInvalidStatus = fmt.Errorf("invalid request status")

// ApplyStatus validates the transition and returns the updated record.
// When the new status is "accepted" the caller should supply the id of the
// company the lead converts to; the company itself is not looked up here.
//
// CompanyID is never cleared on a reversal: once a request was accepted the
// field keeps the last known assignment even after the status moves back to
// "new" or on to "rejected" (informational only while status != accepted).
func ApplyStatus(request schemas.Request, status, companyID string, now time.Time) (schemas.Request, error) {
	if !schemas.ValidRequestStatus(status) {
		return request, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	request.Status = status
	request.UpdatedAt = now
	if companyID != "" {
		request.CompanyID = companyID
	}

	return request, nil
}
