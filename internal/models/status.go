package models

// ApprovalStatus is the administrative review stage shared by companies and jobs.
type ApprovalStatus string

const (
	ApprovalDraft     ApprovalStatus = "Draft"
	ApprovalPending   ApprovalStatus = "Pending"
	ApprovalApproved  ApprovalStatus = "Approved"
	ApprovalRejected  ApprovalStatus = "Rejected"
	ApprovalCancelled ApprovalStatus = "Cancelled"
	ApprovalBlocked   ApprovalStatus = "Blocked"
)

// JobStatus is a job's operational lifecycle, independent of the approval axis.
type JobStatus string

const (
	JobDraft           JobStatus = "Draft"
	JobPendingApproval JobStatus = "Pending Approval"
	JobOpen            JobStatus = "Open"
	JobClosed          JobStatus = "Closed"
	JobCancelled       JobStatus = "Cancelled"
)

type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "Applied"
	ApplicationShortlisted ApplicationStatus = "Shortlisted"
	ApplicationSelected    ApplicationStatus = "Selected"
	ApplicationRejected    ApplicationStatus = "Rejected"
)

type EntityKind string

const (
	EntityCompany EntityKind = "Company"
	EntityJob     EntityKind = "Job"
	// EntityApplication appears only in notification refs, never in approval logs.
	EntityApplication EntityKind = "Application"
)

type ApprovalAction string

const (
	ActionApproved    ApprovalAction = "Approved"
	ActionRejected    ApprovalAction = "Rejected"
	ActionResubmitted ApprovalAction = "Resubmitted"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
	RoleCompany = "company"
)

// Branches accepted in student profiles and job eligibility. "ALL" is only
// valid on the job side and matches every branch.
var Branches = []string{"CSE", "IT", "ECE", "EEE", "MECH", "CIVIL"}
