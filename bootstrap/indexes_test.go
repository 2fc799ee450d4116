package bootstrap

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func indexKey(t *testing.T, keys any) string {
	t.Helper()
	d, ok := keys.(bson.D)
	if !ok {
		t.Fatalf("index keys are %T, want bson.D", keys)
	}
	parts := make([]string, 0, len(d))
	for _, e := range d {
		parts = append(parts, e.Key)
	}
	return strings.Join(parts, ",")
}

func isUnique(t *testing.T, model mongo.IndexModel) bool {
	t.Helper()
	if model.Options == nil {
		return false
	}
	args := &options.IndexOptions{}
	for _, set := range model.Options.Opts {
		if err := set(args); err != nil {
			t.Fatalf("index option: %v", err)
		}
	}
	return args.Unique != nil && *args.Unique
}

// The business rules backed by uniqueness: one account per email, one company
// per user and per name, one profile and roll number per student, one job
// title per company, one application per (job, student) pair.
func TestUniqueIndexes(t *testing.T) {
	wantUnique := map[string]bool{
		"users/email":                    true,
		"companies/user_id":              true,
		"companies/company_name":         true,
		"student_profiles/user_id":       true,
		"student_profiles/roll_no":       true,
		"jobs/company_id,title":          true,
		"applications/job_id,student_id": true,
	}

	seen := map[string]bool{}
	for _, ix := range portalIndexes() {
		name := ix.collection + "/" + indexKey(t, ix.model.Keys)
		seen[name] = true

		if got, want := isUnique(t, ix.model), wantUnique[name]; got != want {
			t.Errorf("%s unique = %v, want %v", name, got, want)
		}
	}

	for name := range wantUnique {
		if !seen[name] {
			t.Errorf("missing index %s", name)
		}
	}
}
