package quotations

import (
	"testing"

	"eventforge/models"
)

func TestNextVendorStatusHappyPath(t *testing.T) {
	got, err := NextVendorStatus(models.VendorAssigned, "accept")
	if err != nil || got != models.VendorAccepted {
		t.Fatalf("accept from assigned: got %q, err %v", got, err)
	}

	got, err = NextVendorStatus(models.VendorAccepted, "complete")
	if err != nil || got != models.VendorCompleted {
		t.Fatalf("complete from accepted: got %q, err %v", got, err)
	}
}

func TestNextVendorStatusDeny(t *testing.T) {
	for _, current := range []string{models.VendorAssigned, models.VendorAccepted} {
		got, err := NextVendorStatus(current, "deny")
		if err != nil || got != models.VendorDenied {
			t.Fatalf("deny from %s: got %q, err %v", current, got, err)
		}
	}

	// terminal states cannot be denied again
	for _, current := range []string{models.VendorCompleted, models.VendorDenied, models.VendorNone} {
		if _, err := NextVendorStatus(current, "deny"); err != ErrBadTransition {
			t.Fatalf("deny from %s: expected ErrBadTransition, got %v", current, err)
		}
	}
}

func TestNextVendorStatusRejectsBadMoves(t *testing.T) {
	cases := []struct {
		current string
		action  string
	}{
		{models.VendorNone, "accept"},
		{models.VendorAccepted, "accept"},
		{models.VendorCompleted, "accept"},
		{models.VendorAssigned, "complete"},
		{models.VendorCompleted, "complete"},
		{models.VendorDenied, "complete"},
	}
	for _, c := range cases {
		if _, err := NextVendorStatus(c.current, c.action); err != ErrBadTransition {
			t.Errorf("%s from %s: expected ErrBadTransition, got %v", c.action, c.current, err)
		}
	}
}

func TestNextVendorStatusUnknownAction(t *testing.T) {
	if _, err := NextVendorStatus(models.VendorAssigned, "finish"); err != ErrInvalidAction {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
	if _, err := NextVendorStatus(models.VendorAssigned, ""); err != ErrInvalidAction {
		t.Fatalf("expected ErrInvalidAction for empty action, got %v", err)
	}
}

func TestAdjudicationEffectApprove(t *testing.T) {
	effect, ok := adjudicationEffect("approve")
	if !ok {
		t.Fatal("approve must be a valid action")
	}
	if effect.Status != models.StatusApproved || effect.VendorStatus != models.VendorAssigned {
		t.Fatalf("approve effect wrong: %+v", effect)
	}
	if effect.Unassign {
		t.Fatal("approve must not unassign the vendor")
	}
}

func TestAdjudicationEffectDenyClearsAssignment(t *testing.T) {
	effect, ok := adjudicationEffect("deny")
	if !ok {
		t.Fatal("deny must be a valid action")
	}
	if effect.Status != models.StatusDenied {
		t.Fatalf("deny status wrong: %q", effect.Status)
	}

	// deny after an earlier approve must undo the assignment: vendor
	// status back to none and the vendor pulled from the event's list
	if effect.VendorStatus != models.VendorNone {
		t.Fatalf("deny must reset vendor status, got %q", effect.VendorStatus)
	}
	if !effect.Unassign {
		t.Fatal("deny must remove the vendor from the event's assigned list")
	}
}

func TestAdjudicationEffectUnknownAction(t *testing.T) {
	if _, ok := adjudicationEffect("reject"); ok {
		t.Fatal("unknown action should not map to an effect")
	}
}

func TestWithVendorAssignedIsIdempotent(t *testing.T) {
	ids := withVendorAssigned(nil, "v1")
	ids = withVendorAssigned(ids, "v2")
	ids = withVendorAssigned(ids, "v1")
	ids = withVendorAssigned(ids, "v1")

	if len(ids) != 2 || ids[0] != "v1" || ids[1] != "v2" {
		t.Fatalf("repeat approvals must not duplicate membership: %v", ids)
	}
}

func TestInterestGuard(t *testing.T) {
	if err := interestGuard(models.StatusApproved, false); err != nil {
		t.Fatalf("fresh interest on an approved event must pass: %v", err)
	}
	if err := interestGuard(models.StatusApproved, true); err != ErrDuplicateInterest {
		t.Fatalf("second interest for the same event: expected ErrDuplicateInterest, got %v", err)
	}
	for _, status := range []string{models.StatusPending, models.StatusDenied} {
		if err := interestGuard(status, false); err != ErrEventNotOpen {
			t.Fatalf("event status %s: expected ErrEventNotOpen, got %v", status, err)
		}
	}
}
