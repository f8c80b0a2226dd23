package service

// Audit trail event names shared by the admission services.
const (
	eventAdmissionRequested = "admission.requested"
	eventAdmissionApproved  = "admission.approved"
	eventAdmissionRejected  = "admission.rejected"
)
