package quotations

import (
	"errors"

	"eventforge/models"
)

var (
	ErrInvalidAction     = errors.New("invalid action")
	ErrBadTransition     = errors.New("transition not allowed")
	ErrEventNotOpen      = errors.New("event is not open for quotations")
	ErrDuplicateInterest = errors.New("interest already sent for this event")
)

// NextVendorStatus applies a vendor action to the current vendor status.
// Valid moves: assigned -> accepted -> completed, and assigned or
// accepted -> denied. Everything else is rejected. The caller must have
// already checked the quotation itself is admin-approved.
func NextVendorStatus(current, action string) (string, error) {
	switch action {
	case "accept":
		if current != models.VendorAssigned {
			return "", ErrBadTransition
		}
		return models.VendorAccepted, nil
	case "complete":
		if current != models.VendorAccepted {
			return "", ErrBadTransition
		}
		return models.VendorCompleted, nil
	case "deny":
		if current != models.VendorAssigned && current != models.VendorAccepted {
			return "", ErrBadTransition
		}
		return models.VendorDenied, nil
	default:
		return "", ErrInvalidAction
	}
}

// AdjudicationEffect is everything an admin decision on a quotation
// changes: the stored status, the vendor-side status, and whether the
// vendor leaves the event's assigned list. Denying always clears the
// assignment, so a later deny of a previously approved quotation cannot
// leave the vendor assigned with no approved quotation behind it.
type AdjudicationEffect struct {
	Status       string
	VendorStatus string
	Unassign     bool
}

func adjudicationEffect(action string) (AdjudicationEffect, bool) {
	switch action {
	case "approve":
		return AdjudicationEffect{
			Status:       models.StatusApproved,
			VendorStatus: models.VendorAssigned,
		}, true
	case "deny":
		return AdjudicationEffect{
			Status:       models.StatusDenied,
			VendorStatus: models.VendorNone,
			Unassign:     true,
		}, true
	default:
		return AdjudicationEffect{}, false
	}
}

// interestGuard decides whether a vendor may send interest: the event
// must be approved and the (vendor, event) pair must not already have a
// quotation.
func interestGuard(eventStatus string, alreadyExists bool) error {
	if eventStatus != models.StatusApproved {
		return ErrEventNotOpen
	}
	if alreadyExists {
		return ErrDuplicateInterest
	}
	return nil
}

// withVendorAssigned returns the assigned list with vendorID present
// exactly once; re-approving an already assigned vendor is a no-op.
func withVendorAssigned(ids []string, vendorID string) []string {
	for _, id := range ids {
		if id == vendorID {
			return ids
		}
	}
	return append(ids, vendorID)
}
