package constant

type ReassignReason string

const (
	// ReassignReasonPolicy marks moves chosen by the target rack selection policy.
	ReassignReasonPolicy ReassignReason = "policy"
	// ReassignReasonManual marks moves to an operator supplied rack.
	ReassignReasonManual ReassignReason = "manual"
)

type EventType string

const (
	EventOrderPlaced       EventType = "order.placed"
	EventProductReassigned EventType = "product.reassigned"
)

const (
	DefaultAuditLimit = 50
	DefaultTopN       = 5
)
