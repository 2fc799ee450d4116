package approval

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"placement-portal/internal/apperr"
	"placement-portal/internal/models"
)

type applyCall struct {
	id     bson.ObjectID
	expect models.ApprovalStatus
	patch  Patch
}

type fakeCompanies struct {
	company  *models.Company
	applyErr error
	applied  []applyCall
}

func (f *fakeCompanies) FindByID(_ context.Context, id bson.ObjectID) (*models.Company, error) {
	if f.company == nil || f.company.ID != id {
		return nil, apperr.NotFound("company not found")
	}
	cp := *f.company
	return &cp, nil
}

func (f *fakeCompanies) ApplyApproval(_ context.Context, id bson.ObjectID, expect models.ApprovalStatus, p Patch) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applied = append(f.applied, applyCall{id: id, expect: expect, patch: p})
	return nil
}

type fakeJobs struct {
	job      *models.Job
	applyErr error
	applied  []applyCall
}

func (f *fakeJobs) FindByID(_ context.Context, id bson.ObjectID) (*models.Job, error) {
	if f.job == nil || f.job.ID != id {
		return nil, apperr.NotFound("job not found")
	}
	cp := *f.job
	return &cp, nil
}

func (f *fakeJobs) ApplyApproval(_ context.Context, id bson.ObjectID, expect models.ApprovalStatus, p Patch) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applied = append(f.applied, applyCall{id: id, expect: expect, patch: p})
	return nil
}

type fakeLogs struct {
	entries []models.ApprovalLog
}

func (f *fakeLogs) Append(_ context.Context, entry models.ApprovalLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

type fakeUsers struct {
	byID   map[bson.ObjectID]*models.User
	admins []models.User
}

func (f *fakeUsers) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("user not found")
}

func (f *fakeUsers) Admins(_ context.Context) ([]models.User, error) {
	return f.admins, nil
}

type fakeDispatcher struct {
	events []Event
}

func (f *fakeDispatcher) Dispatch(_ context.Context, events []Event) {
	f.events = append(f.events, events...)
}

func (f *fakeDispatcher) notifies() []NotifyEvent {
	var out []NotifyEvent
	for _, ev := range f.events {
		if n, ok := ev.(NotifyEvent); ok {
			out = append(out, n)
		}
	}
	return out
}

func (f *fakeDispatcher) emails() []EmailEvent {
	var out []EmailEvent
	for _, ev := range f.events {
		if e, ok := ev.(EmailEvent); ok {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	companies *fakeCompanies
	jobs      *fakeJobs
	logs      *fakeLogs
	users     *fakeUsers
	dispatch  *fakeDispatcher
	workflow  *Workflow

	admin Actor
}

func newFixture() *fixture {
	f := &fixture{
		companies: &fakeCompanies{},
		jobs:      &fakeJobs{},
		logs:      &fakeLogs{},
		users:     &fakeUsers{byID: map[bson.ObjectID]*models.User{}},
		dispatch:  &fakeDispatcher{},
		admin:     Actor{ID: bson.NewObjectID(), Role: models.RoleAdmin},
	}
	f.workflow = NewWorkflow(f.companies, f.jobs, f.logs, f.users, f.dispatch)
	f.workflow.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) seedCompany(status models.ApprovalStatus) *models.Company {
	ownerID := bson.NewObjectID()
	f.users.byID[ownerID] = &models.User{ID: ownerID, Email: "hr@acme.example", Role: models.RoleCompany}
	f.companies.company = &models.Company{
		ID:             bson.NewObjectID(),
		UserID:         ownerID,
		CompanyName:    "Acme Corp",
		ApprovalStatus: status,
	}
	return f.companies.company
}

func (f *fixture) seedJob(status models.ApprovalStatus, companyStatus models.ApprovalStatus) *models.Job {
	company := f.seedCompany(companyStatus)
	creatorID := company.UserID
	f.jobs.job = &models.Job{
		ID:             bson.NewObjectID(),
		CompanyID:      company.ID,
		Title:          "Backend Engineer",
		ApprovalStatus: status,
		CreatedBy:      creatorID,
	}
	return f.jobs.job
}

func TestApproveCompany(t *testing.T) {
	f := newFixture()
	company := f.seedCompany(models.ApprovalPending)

	got, err := f.workflow.ApproveCompany(context.Background(), f.admin, company.ID, "looks good to me")
	if err != nil {
		t.Fatalf("ApproveCompany: %v", err)
	}
	if got.ApprovalStatus != models.ApprovalApproved {
		t.Errorf("status = %q, want Approved", got.ApprovalStatus)
	}
	if !got.Approved() {
		t.Error("Approved() should derive true from the enum")
	}
	if got.ApprovedBy != f.admin.ID {
		t.Error("approver not stamped")
	}

	if len(f.companies.applied) != 1 {
		t.Fatalf("writes = %d, want 1", len(f.companies.applied))
	}
	if f.companies.applied[0].expect != models.ApprovalPending {
		t.Errorf("conditional write keyed on %q, want Pending", f.companies.applied[0].expect)
	}

	if len(f.logs.entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(f.logs.entries))
	}
	entry := f.logs.entries[0]
	if entry.Action != models.ActionApproved || entry.EntityType != models.EntityCompany {
		t.Errorf("log = %+v", entry)
	}
	if entry.PreviousStatus != models.ApprovalPending || entry.NewStatus != models.ApprovalApproved {
		t.Errorf("log transition %q -> %q", entry.PreviousStatus, entry.NewStatus)
	}
	if entry.PerformedBy != f.admin.ID {
		t.Error("log must record the acting admin")
	}

	notifies := f.dispatch.notifies()
	if len(notifies) != 1 || notifies[0].UserID != company.UserID {
		t.Errorf("owner notification missing: %+v", notifies)
	}
	emails := f.dispatch.emails()
	if len(emails) != 1 || emails[0].To != "hr@acme.example" {
		t.Errorf("owner email missing: %+v", emails)
	}
}

func TestApproveCompanyTwiceFails(t *testing.T) {
	f := newFixture()
	company := f.seedCompany(models.ApprovalApproved)

	_, err := f.workflow.ApproveCompany(context.Background(), f.admin, company.ID, "")
	if !apperr.IsKind(err, apperr.KindState) {
		t.Fatalf("err = %v, want state error", err)
	}
	if len(f.companies.applied) != 0 {
		t.Error("no write should happen on a double approval")
	}
	if len(f.logs.entries) != 0 || len(f.dispatch.events) != 0 {
		t.Error("no log or events on a failed transition")
	}
}

func TestRejectCompanyReasonPolicy(t *testing.T) {
	f := newFixture()
	company := f.seedCompany(models.ApprovalPending)

	_, err := f.workflow.RejectCompany(context.Background(), f.admin, company.ID, "too short")
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(f.companies.applied) != 0 {
		t.Error("short reason must be rejected before any write")
	}

	// exactly at the floor
	reason := strings.Repeat("x", MinReasonLen)
	got, err := f.workflow.RejectCompany(context.Background(), f.admin, company.ID, reason)
	if err != nil {
		t.Fatalf("RejectCompany: %v", err)
	}
	if got.ApprovalStatus != models.ApprovalRejected || got.RejectedReason != reason {
		t.Errorf("rejection not recorded: %+v", got)
	}
	if len(f.logs.entries) != 1 || f.logs.entries[0].Reason != reason {
		t.Error("log must carry the reason")
	}
}

func TestRejectedCompanyCanBeApproved(t *testing.T) {
	f := newFixture()
	company := f.seedCompany(models.ApprovalRejected)

	got, err := f.workflow.ApproveCompany(context.Background(), f.admin, company.ID, "")
	if err != nil {
		t.Fatalf("ApproveCompany after rejection: %v", err)
	}
	if got.ApprovalStatus != models.ApprovalApproved {
		t.Errorf("status = %q", got.ApprovalStatus)
	}
	if f.companies.applied[0].expect != models.ApprovalRejected {
		t.Error("conditional write must key on the status that was read")
	}
}

func TestApproveJob(t *testing.T) {
	f := newFixture()
	job := f.seedJob(models.ApprovalPending, models.ApprovalApproved)

	got, err := f.workflow.ApproveJob(context.Background(), f.admin, job.ID, "")
	if err != nil {
		t.Fatalf("ApproveJob: %v", err)
	}
	if got.ApprovalStatus != models.ApprovalApproved || got.Status != models.JobOpen {
		t.Errorf("job = %q/%q, want Approved/Open", got.ApprovalStatus, got.Status)
	}
	if len(f.jobs.applied) != 1 || f.jobs.applied[0].patch.JobStatus != models.JobOpen {
		t.Error("approval patch must open the job")
	}
	if len(f.logs.entries) != 1 {
		t.Errorf("log entries = %d, want 1", len(f.logs.entries))
	}
}

func TestApproveJobFromUnapprovedCompany(t *testing.T) {
	for _, status := range []models.ApprovalStatus{models.ApprovalPending, models.ApprovalRejected} {
		f := newFixture()
		job := f.seedJob(models.ApprovalPending, status)

		_, err := f.workflow.ApproveJob(context.Background(), f.admin, job.ID, "")
		if !apperr.IsKind(err, apperr.KindState) {
			t.Fatalf("company %s: err = %v, want state error", status, err)
		}
		if len(f.jobs.applied) != 0 {
			t.Errorf("company %s: job write must not happen", status)
		}
	}
}

func TestRejectJobCancels(t *testing.T) {
	f := newFixture()
	job := f.seedJob(models.ApprovalPending, models.ApprovalApproved)

	got, err := f.workflow.RejectJob(context.Background(), f.admin, job.ID, "salary band missing from posting")
	if err != nil {
		t.Fatalf("RejectJob: %v", err)
	}
	if got.ApprovalStatus != models.ApprovalRejected || got.Status != models.JobCancelled {
		t.Errorf("job = %q/%q, want Rejected/Cancelled", got.ApprovalStatus, got.Status)
	}
}

func TestSubmitJobFromDraft(t *testing.T) {
	f := newFixture()
	job := f.seedJob(models.ApprovalDraft, models.ApprovalApproved)
	f.users.admins = []models.User{
		{ID: bson.NewObjectID()}, {ID: bson.NewObjectID()},
	}
	actor := Actor{ID: job.CreatedBy, Role: models.RoleCompany}

	got, err := f.workflow.SubmitJob(context.Background(), actor, job.ID, "Acme Corp")
	if err != nil {
		t.Fatalf("SubmitJob: %v", err)
	}
	if got.ApprovalStatus != models.ApprovalPending || got.Status != models.JobPendingApproval {
		t.Errorf("job = %q/%q", got.ApprovalStatus, got.Status)
	}
	if got.ResubmissionCount != 0 {
		t.Error("first submission must not bump the resubmission counter")
	}
	if len(f.logs.entries) != 0 {
		t.Error("first submission is not a resubmission, no log expected")
	}
	if n := len(f.dispatch.notifies()); n != 2 {
		t.Errorf("admin notifications = %d, want one per admin", n)
	}
}

func TestSubmitJobFromRejected(t *testing.T) {
	f := newFixture()
	job := f.seedJob(models.ApprovalRejected, models.ApprovalApproved)
	job.ResubmissionCount = 1
	job.RejectedReason = "previous reason"
	f.users.admins = []models.User{{ID: bson.NewObjectID()}}
	actor := Actor{ID: job.CreatedBy, Role: models.RoleCompany}

	got, err := f.workflow.SubmitJob(context.Background(), actor, job.ID, "Acme Corp")
	if err != nil {
		t.Fatalf("SubmitJob: %v", err)
	}
	if got.ResubmissionCount != 2 {
		t.Errorf("resubmission count = %d, want 2", got.ResubmissionCount)
	}
	if got.RejectedReason != "" || got.RejectedAt != nil {
		t.Error("resubmission must clear the prior review metadata")
	}
	if len(f.logs.entries) != 1 || f.logs.entries[0].Action != models.ActionResubmitted {
		t.Errorf("want one Resubmitted log entry, got %+v", f.logs.entries)
	}
	if !f.jobs.applied[0].patch.ClearReview || !f.jobs.applied[0].patch.IncResubmission {
		t.Error("patch must clear review metadata and bump the counter")
	}
}

func TestSubmitJobAlreadyPending(t *testing.T) {
	f := newFixture()
	job := f.seedJob(models.ApprovalPending, models.ApprovalApproved)
	actor := Actor{ID: job.CreatedBy, Role: models.RoleCompany}

	_, err := f.workflow.SubmitJob(context.Background(), actor, job.ID, "Acme Corp")
	if !apperr.IsKind(err, apperr.KindState) {
		t.Fatalf("err = %v, want state error", err)
	}
	if len(f.jobs.applied) != 0 {
		t.Error("no write for a job already in review")
	}
}

func TestStaleStatePropagates(t *testing.T) {
	f := newFixture()
	company := f.seedCompany(models.ApprovalPending)
	f.companies.applyErr = apperr.State("approval state changed, please retry")

	_, err := f.workflow.ApproveCompany(context.Background(), f.admin, company.ID, "")
	if !apperr.IsKind(err, apperr.KindState) {
		t.Fatalf("err = %v, want state error", err)
	}
	if len(f.logs.entries) != 0 {
		t.Error("lost race must not append a log entry")
	}
	if len(f.dispatch.events) != 0 {
		t.Error("lost race must not emit events")
	}
}

func TestCanSubmitTable(t *testing.T) {
	cases := []struct {
		from models.ApprovalStatus
		ok   bool
	}{
		{models.ApprovalDraft, true},
		{models.ApprovalRejected, true},
		{models.ApprovalPending, false},
		{models.ApprovalApproved, false},
		{models.ApprovalCancelled, false},
	}
	for _, tc := range cases {
		err := CanSubmit(tc.from)
		if (err == nil) != tc.ok {
			t.Errorf("CanSubmit(%s) = %v, want ok=%v", tc.from, err, tc.ok)
		}
	}
}
