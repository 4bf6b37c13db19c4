// Package audit records the outcome of workflow action executions as an
// in-memory trail.
//
// The durable audit log for legal-status changes lives server-side; this
// trail is the client-side record a page or a test inspects to answer "what
// did this session do to this document". Entries are bounded by a ring limit
// and listed newest first.
//
// Basic usage:
//
//	trail := audit.NewTrail(audit.WithMaxEntries(500))
//
//	trail.Record(audit.Entry{
//	    DocumentType: "invoice",
//	    DocumentID:   17,
//	    Action:       "record_payment",
//	    FromStatus:   "sent",
//	    ToStatus:     "partial",
//	    Result:       audit.ResultSuccess,
//	})
//
//	for _, e := range trail.List(audit.Filter{DocumentID: 17}) {
//	    // newest first
//	}
package audit
