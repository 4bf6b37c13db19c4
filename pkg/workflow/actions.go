package workflow

// QuotationWorkflow returns the UI action table for quotations.
func QuotationWorkflow() Config {
	return Config{
		DocumentType: DocTypeQuotation,
		Actions: []Action{
			{
				Name:         "submit",
				Label:        "Submit",
				Icon:         "send",
				Variant:      "primary",
				AllowedFrom:  []string{StatusDraft},
				TargetStatus: StatusSubmitted,
			},
			{
				Name:         "approve",
				Label:        "Approve",
				Icon:         "check",
				Variant:      "primary",
				AllowedFrom:  []string{StatusSubmitted},
				TargetStatus: StatusApproved,
			},
			{
				Name:                 "reject",
				Label:                "Reject",
				Icon:                 "x",
				Variant:              "danger",
				RequiresConfirmation: true,
				ConfirmationMessage:  "Reject this quotation?",
				AllowedFrom:          []string{StatusSubmitted},
				TargetStatus:         StatusRejected,
			},
			{
				Name:         "revise",
				Label:        "Revise",
				Icon:         "edit",
				Variant:      "secondary",
				AllowedFrom:  []string{StatusRejected},
				TargetStatus: StatusDraft,
			},
			{
				Name:                 "convert",
				Label:                "Convert to Invoice",
				Icon:                 "file-text",
				Variant:              "primary",
				RequiresConfirmation: true,
				ConfirmationMessage:  "Convert this quotation into an invoice?",
				AllowedFrom:          []string{StatusApproved},
				TargetStatus:         StatusConverted,
			},
			{
				Name:         "expire",
				Label:        "Mark Expired",
				Icon:         "clock",
				Variant:      "secondary",
				AllowedFrom:  []string{StatusApproved},
				TargetStatus: StatusExpired,
			},
			{
				Name:                 "cancel",
				Label:                "Cancel",
				Icon:                 "trash",
				Variant:              "danger",
				RequiresConfirmation: true,
				ConfirmationMessage:  "Cancel this quotation? This cannot be undone.",
				AllowedFrom:          []string{StatusDraft, StatusSubmitted, StatusRejected, StatusApproved},
				TargetStatus:         StatusCancelled,
			},
		},
	}
}

// InvoiceWorkflow returns the UI action table for invoices.
func InvoiceWorkflow() Config {
	return Config{
		DocumentType: DocTypeInvoice,
		Actions: []Action{
			{
				Name:         "send",
				Label:        "Send",
				Icon:         "send",
				Variant:      "primary",
				AllowedFrom:  []string{StatusDraft},
				TargetStatus: StatusSent,
			},
			{
				Name:        "record_payment",
				Label:       "Record Payment",
				Icon:        "credit-card",
				Variant:     "primary",
				AllowedFrom: []string{StatusSent, StatusPartial, StatusOverdue},
			},
			{
				Name:         "mark_overdue",
				Label:        "Mark Overdue",
				Icon:         "alert-triangle",
				Variant:      "warning",
				AllowedFrom:  []string{StatusSent, StatusPartial},
				TargetStatus: StatusOverdue,
			},
			{
				Name:                 "void",
				Label:                "Void",
				Icon:                 "slash",
				Variant:              "danger",
				RequiresConfirmation: true,
				ConfirmationMessage:  "Void this invoice? This cannot be undone.",
				AllowedFrom:          []string{StatusSent, StatusPartial, StatusOverdue},
				TargetStatus:         StatusVoid,
			},
			{
				Name:                 "cancel",
				Label:                "Cancel",
				Icon:                 "trash",
				Variant:              "danger",
				RequiresConfirmation: true,
				ConfirmationMessage:  "Cancel this invoice?",
				AllowedFrom:          []string{StatusDraft},
				TargetStatus:         StatusCancelled,
			},
		},
	}
}

// PurchaseOrderWorkflow returns the UI action table for purchase orders.
func PurchaseOrderWorkflow() Config {
	return Config{
		DocumentType: DocTypePurchaseOrder,
		Actions: []Action{
			{
				Name:         "submit",
				Label:        "Submit",
				Icon:         "send",
				Variant:      "primary",
				AllowedFrom:  []string{StatusDraft, StatusRejected},
				TargetStatus: StatusSubmitted,
			},
			{
				Name:         "approve",
				Label:        "Approve",
				Icon:         "check",
				Variant:      "primary",
				AllowedFrom:  []string{StatusSubmitted},
				TargetStatus: StatusApproved,
			},
			{
				Name:                 "reject",
				Label:                "Reject",
				Icon:                 "x",
				Variant:              "danger",
				RequiresConfirmation: true,
				ConfirmationMessage:  "Reject this purchase order?",
				AllowedFrom:          []string{StatusSubmitted},
				TargetStatus:         StatusRejected,
			},
			{
				Name:         "send_to_vendor",
				Label:        "Send to Vendor",
				Icon:         "truck",
				Variant:      "primary",
				AllowedFrom:  []string{StatusApproved},
				TargetStatus: StatusOrdered,
			},
			{
				Name:        "receive_partial",
				Label:       "Receive Partial",
				Icon:        "package",
				Variant:     "secondary",
				AllowedFrom: []string{StatusOrdered, StatusPartialReceived},
			},
			{
				Name:         "receive_full",
				Label:        "Receive All",
				Icon:         "package-check",
				Variant:      "primary",
				AllowedFrom:  []string{StatusOrdered, StatusPartialReceived},
				TargetStatus: StatusReceived,
			},
			{
				Name:                 "cancel",
				Label:                "Cancel",
				Icon:                 "trash",
				Variant:              "danger",
				RequiresConfirmation: true,
				ConfirmationMessage:  "Cancel this purchase order? This cannot be undone.",
				AllowedFrom:          []string{StatusDraft, StatusSubmitted, StatusRejected, StatusApproved, StatusOrdered},
				TargetStatus:         StatusCancelled,
			},
		},
	}
}
