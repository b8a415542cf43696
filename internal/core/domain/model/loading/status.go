package loading

import (
	"fmt"
	"strings"

	"garment/internal/pkg/errs"
)

// Status is the approval state of a loading transaction.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	PendingApproval
	Approved
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		PendingApproval: "PENDING_APPROVAL",
		Approved:        "APPROVED",
		Completed:       "COMPLETED",
	}
}

// ParseStatus reads the stored name of a status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s < PendingApproval || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Approve transitions PENDING_APPROVAL -> APPROVED.
func (s Status) Approve() (Status, error) {
	if s != PendingApproval {
		return Unknown, errs.NewInvalidStateError("approve", s.String())
	}
	return Approved, nil
}

// Handover transitions APPROVED -> COMPLETED.
func (s Status) Handover() (Status, error) {
	if s != Approved {
		return Unknown, errs.NewInvalidStateError("hand over", s.String())
	}
	return Completed, nil
}

// ValidateReject allows rejection only while approval is pending.
func (s Status) ValidateReject() error {
	if s != PendingApproval {
		return errs.NewInvalidStateError("reject", s.String())
	}
	return nil
}
