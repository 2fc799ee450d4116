package matching

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"placement-portal/internal/models"
)

func student(branch string, cgpa float64, skills ...string) *models.StudentProfile {
	return &models.StudentProfile{Branch: branch, CGPA: cgpa, Skills: skills}
}

func job(minCGPA float64, branches []string, required ...string) *models.Job {
	return &models.Job{
		ID:             bson.NewObjectID(),
		RequiredSkills: required,
		Eligibility:    models.Eligibility{MinCGPA: minCGPA, Branches: branches},
	}
}

func TestEligible(t *testing.T) {
	cases := []struct {
		name    string
		student *models.StudentProfile
		job     *models.Job
		want    bool
	}{
		{"cgpa above floor, branch listed", student("CSE", 8.0), job(7.0, []string{"CSE", "IT"}), true},
		{"cgpa exactly at floor", student("CSE", 7.0), job(7.0, []string{"CSE"}), true},
		{"cgpa just below floor", student("CSE", 6.99), job(7.0, []string{"CSE"}), false},
		{"branch not listed", student("MECH", 9.0), job(7.0, []string{"CSE", "IT"}), false},
		{"ALL admits any branch", student("CIVIL", 7.5), job(7.0, []string{"ALL"}), true},
		{"ALL does not waive cgpa", student("CIVIL", 6.0), job(7.0, []string{"ALL"}), false},
		{"empty branch list admits nobody", student("CSE", 9.0), job(0, nil), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Eligible(tc.student, tc.job); got != tc.want {
				t.Errorf("Eligible = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreSkillContainment(t *testing.T) {
	// containment works both ways and ignores case
	s := student("CSE", 8.0, "JavaScript", "mongodb")
	j := job(7.0, []string{"CSE"}, "java", "MongoDB", "kubernetes")

	score := Score(s, j)
	if score.MatchedSkills != 2 {
		t.Fatalf("matched = %d, want 2 (java~JavaScript, MongoDB)", score.MatchedSkills)
	}
	if score.SkillMatch != 67 {
		t.Errorf("skill pct = %d, want 67", score.SkillMatch)
	}
}

func TestScoreBounds(t *testing.T) {
	s := student("CSE", 9.5, "go")
	j := job(7.0, []string{"CSE"}, "go")

	score := Score(s, j)
	if score.SkillMatch != 100 || score.CGPAScore != 100 {
		t.Errorf("full match should max both axes, got %+v", score)
	}
	if score.Overall != 100 {
		t.Errorf("overall = %d, want 100", score.Overall)
	}
}

func TestScoreZeroMinCGPA(t *testing.T) {
	s := student("CSE", 5.0, "go")
	j := job(0, []string{"ALL"}, "go")

	score := Score(s, j)
	if score.CGPAScore != 100 {
		t.Errorf("cgpa score with no floor = %d, want 100", score.CGPAScore)
	}
}

func TestScoreNoSkills(t *testing.T) {
	s := student("CSE", 8.0)
	j := job(8.0, []string{"CSE"}, "go", "sql")

	score := Score(s, j)
	if score.SkillMatch != 0 || score.MatchedSkills != 0 {
		t.Errorf("no skills should score zero on the skill axis: %+v", score)
	}
	// 0.6*0 + 0.4*100
	if score.Overall != 40 {
		t.Errorf("overall = %d, want 40", score.Overall)
	}
}

func TestScoreWeighting(t *testing.T) {
	// one of two skills, cgpa exactly at floor: 0.6*50 + 0.4*100 = 70
	s := student("CSE", 7.0, "go")
	j := job(7.0, []string{"CSE"}, "go", "rust")

	score := Score(s, j)
	if score.Overall != 70 {
		t.Errorf("overall = %d, want 70", score.Overall)
	}
}

func TestRank(t *testing.T) {
	s := student("CSE", 8.0, "go", "sql")

	strong := job(7.0, []string{"CSE"}, "go", "sql")
	weak := job(7.0, []string{"CSE"}, "rust", "haskell")
	wrongBranch := job(7.0, []string{"MECH"}, "go")
	alreadyApplied := job(7.0, []string{"CSE"}, "go")

	ranked := Rank(s, []models.Job{*weak, *wrongBranch, *alreadyApplied, *strong},
		map[bson.ObjectID]bool{alreadyApplied.ID: true})

	if len(ranked) != 2 {
		t.Fatalf("ranked = %d jobs, want 2", len(ranked))
	}
	if ranked[0].ID != strong.ID {
		t.Error("best match must come first")
	}
	if ranked[1].ID != weak.ID {
		t.Error("weak match must still appear, last")
	}
}

func TestRankStableTies(t *testing.T) {
	s := student("CSE", 8.0, "go")

	first := job(7.0, []string{"CSE"}, "go")
	second := job(7.0, []string{"CSE"}, "go")

	ranked := Rank(s, []models.Job{*first, *second}, nil)
	if len(ranked) != 2 || ranked[0].ID != first.ID || ranked[1].ID != second.ID {
		t.Error("equal scores must keep input order")
	}
}
