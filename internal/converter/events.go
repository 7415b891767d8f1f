package converter

import (
	"github.com/ginjaninja78/ocf-ledger-converter/internal/enums"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
)

// Vesting and stakeholder events.

func encodeVestingStart(e *encoder, o *ocf.VestingStart) ledger.VestingStartData {
	return ledger.VestingStartData{
		TxHeader:           e.txHeader(o.TxHeader),
		SecurityID:         e.security(o.SecurityRef),
		VestingConditionID: e.text("vesting_condition_id", o.VestingConditionID),
	}
}

func decodeVestingStart(d *decoder, r *ledger.VestingStartData) *ocf.VestingStart {
	return &ocf.VestingStart{
		TxHeader:           d.txHeader(r.TxHeader),
		SecurityRef:        d.security(r.SecurityID),
		VestingConditionID: d.text("vesting_condition_id", r.VestingConditionID),
	}
}

func encodeVestingEvent(e *encoder, o *ocf.VestingEvent) ledger.VestingEventData {
	return ledger.VestingEventData{
		TxHeader:           e.txHeader(o.TxHeader),
		SecurityID:         e.security(o.SecurityRef),
		VestingConditionID: e.text("vesting_condition_id", o.VestingConditionID),
	}
}

func decodeVestingEvent(d *decoder, r *ledger.VestingEventData) *ocf.VestingEvent {
	return &ocf.VestingEvent{
		TxHeader:           d.txHeader(r.TxHeader),
		SecurityRef:        d.security(r.SecurityID),
		VestingConditionID: d.text("vesting_condition_id", r.VestingConditionID),
	}
}

func encodeVestingAcceleration(e *encoder, o *ocf.VestingAcceleration) ledger.VestingAccelerationData {
	return ledger.VestingAccelerationData{
		TxHeader:   e.txHeader(o.TxHeader),
		SecurityID: e.security(o.SecurityRef),
		Quantity:   e.numeric("quantity", o.Quantity),
		ReasonText: e.text("reason_text", o.ReasonText),
	}
}

func decodeVestingAcceleration(d *decoder, r *ledger.VestingAccelerationData) *ocf.VestingAcceleration {
	return &ocf.VestingAcceleration{
		TxHeader:    d.txHeader(r.TxHeader),
		SecurityRef: d.security(r.SecurityID),
		Quantity:    d.numeric("quantity", r.Quantity),
		ReasonText:  d.text("reason_text", r.ReasonText),
	}
}

func encodeRelationshipChange(e *encoder, o *ocf.StakeholderRelationshipChangeEvent) ledger.RelationshipChangeData {
	return ledger.RelationshipChangeData{
		TxHeader:            e.txHeader(o.TxHeader),
		StakeholderID:       e.text("stakeholder_id", o.StakeholderID),
		RelationshipStarted: e.optEnum("relationship_started", enums.StakeholderRelationship, o.RelationshipStarted),
		RelationshipEnded:   e.optEnum("relationship_ended", enums.StakeholderRelationship, o.RelationshipEnded),
	}
}

func decodeRelationshipChange(d *decoder, r *ledger.RelationshipChangeData) *ocf.StakeholderRelationshipChangeEvent {
	return &ocf.StakeholderRelationshipChangeEvent{
		TxHeader:            d.txHeader(r.TxHeader),
		StakeholderID:       d.text("stakeholder_id", r.StakeholderID),
		RelationshipStarted: d.optEnum("relationship_started", enums.StakeholderRelationship, r.RelationshipStarted),
		RelationshipEnded:   d.optEnum("relationship_ended", enums.StakeholderRelationship, r.RelationshipEnded),
	}
}

func encodeStatusChange(e *encoder, o *ocf.StakeholderStatusChangeEvent) ledger.StatusChangeData {
	return ledger.StatusChangeData{
		TxHeader:      e.txHeader(o.TxHeader),
		StakeholderID: e.text("stakeholder_id", o.StakeholderID),
		NewStatus:     e.enum("new_status", enums.StakeholderStatus, o.NewStatus),
	}
}

func decodeStatusChange(d *decoder, r *ledger.StatusChangeData) *ocf.StakeholderStatusChangeEvent {
	return &ocf.StakeholderStatusChangeEvent{
		TxHeader:      d.txHeader(r.TxHeader),
		StakeholderID: d.text("stakeholder_id", r.StakeholderID),
		NewStatus:     d.enum("new_status", enums.StakeholderStatus, r.NewStatus),
	}
}
