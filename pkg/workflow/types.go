package workflow

// Document type identifiers used by workflow configs and audit entries.
const (
	DocTypeQuotation     = "quotation"
	DocTypeInvoice       = "invoice"
	DocTypePurchaseOrder = "purchase_order"
)

// Shared status names. Each document type uses the subset its graph declares.
const (
	StatusDraft           = "draft"
	StatusSubmitted       = "submitted"
	StatusApproved        = "approved"
	StatusRejected        = "rejected"
	StatusConverted       = "converted"
	StatusExpired         = "expired"
	StatusCancelled       = "cancelled"
	StatusSent            = "sent"
	StatusPartial         = "partial"
	StatusOverdue         = "overdue"
	StatusPaid            = "paid"
	StatusVoid            = "void"
	StatusOrdered         = "ordered"
	StatusPartialReceived = "partial_received"
	StatusReceived        = "received"
)

// Machine event types.
const (
	EventSubmit         = "SUBMIT"
	EventApprove        = "APPROVE"
	EventReject         = "REJECT"
	EventRevise         = "REVISE"
	EventConvert        = "CONVERT"
	EventExpire         = "EXPIRE"
	EventCancel         = "CANCEL"
	EventSend           = "SEND"
	EventRecordPayment  = "RECORD_PAYMENT"
	EventMarkOverdue    = "MARK_OVERDUE"
	EventVoid           = "VOID"
	EventSendToVendor   = "SEND_TO_VENDOR"
	EventReceivePartial = "RECEIVE_PARTIAL"
	EventReceiveFull    = "RECEIVE_FULL"
)

// Event payloads. All monetary amounts are IDR without decimals.

// RejectData carries the rejection reason for REJECT events.
type RejectData struct {
	Reason string
}

// ConvertData carries the created invoice id for quotation CONVERT events.
type ConvertData struct {
	InvoiceID int64
}

// PaymentData carries the payment amount for RECORD_PAYMENT events.
type PaymentData struct {
	Amount int64
}

// ReceiveData carries the received amount for RECEIVE_PARTIAL events.
type ReceiveData struct {
	Amount int64
}

// Action is a UI-level workflow action: a named, confirmable, status-gated
// operation offered to the user. Distinct from a machine event; authored
// statically per document type and filtered against the live document status
// at render time.
type Action struct {
	Name                 string
	Label                string
	Icon                 string
	Variant              string
	RequiresConfirmation bool
	ConfirmationMessage  string

	// AllowedFrom lists the document statuses the action is legal from.
	AllowedFrom []string

	// TargetStatus is the status the action is expected to land the
	// document in, for optimistic UI rendering. Empty when the target
	// depends on the payload (e.g. record_payment).
	TargetStatus string
}

// Config is the authored workflow action table for one document type.
type Config struct {
	DocumentType string
	Actions      []Action
}

// Document is the minimal remote record the controller operates on. The
// authoritative copy lives behind the external API; the controller only ever
// reads the fields it is given.
type Document struct {
	ID     int64
	Status string
}
