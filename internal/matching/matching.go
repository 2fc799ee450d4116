// Package matching implements the eligibility gate and the match-score ranking
// students see on their job board. Both are pure functions over already-fetched
// records.
package matching

import (
	"math"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"placement-portal/internal/models"
)

const (
	skillWeight = 0.6
	cgpaWeight  = 0.4
)

type MatchScore struct {
	Overall       int `json:"overall"`
	SkillMatch    int `json:"skillMatch"`
	CGPAScore     int `json:"cgpaScore"`
	MatchedSkills int `json:"matchedSkills"`
}

// RankedJob is a job with its score attached, ready for JSON.
type RankedJob struct {
	models.Job
	MatchScore MatchScore `json:"matchScore"`
}

// Eligible reports whether the student clears the job's CGPA and branch gate.
// "ALL" in the job's branch list admits every branch.
func Eligible(profile *models.StudentProfile, job *models.Job) bool {
	if job.Eligibility.MinCGPA > profile.CGPA {
		return false
	}
	for _, b := range job.Eligibility.Branches {
		if b == "ALL" || b == profile.Branch {
			return true
		}
	}
	return false
}

// skillMatches counts required skills the student covers. A skill matches when
// either string contains the other, case-insensitively. This is a deliberately
// crude containment heuristic, kept as-is: "Java" matches "JavaScript".
func skillMatches(required, owned []string) int {
	if len(required) == 0 || len(owned) == 0 {
		return 0
	}
	matched := 0
	for _, req := range required {
		r := strings.ToLower(req)
		for _, own := range owned {
			o := strings.ToLower(own)
			if strings.Contains(o, r) || strings.Contains(r, o) {
				matched++
				break
			}
		}
	}
	return matched
}

// Score computes the 0-100 match breakdown for an eligible (student, job) pair.
// A job with minCGPA <= 0 scores a full 100 on the CGPA axis instead of
// dividing by zero.
func Score(profile *models.StudentProfile, job *models.Job) MatchScore {
	required := job.RequiredSkills

	matched := skillMatches(required, profile.Skills)
	skillPct := 0
	if len(required) > 0 {
		skillPct = int(math.Round(float64(matched) / float64(len(required)) * 100))
	}

	cgpaPct := 100
	if job.Eligibility.MinCGPA > 0 {
		cgpaPct = int(math.Round(profile.CGPA / job.Eligibility.MinCGPA * 100))
		if cgpaPct > 100 {
			cgpaPct = 100
		}
	}

	overall := int(math.Round(skillWeight*float64(skillPct) + cgpaWeight*float64(cgpaPct)))

	return MatchScore{
		Overall:       overall,
		SkillMatch:    skillPct,
		CGPAScore:     cgpaPct,
		MatchedSkills: matched,
	}
}

// Rank filters jobs down to the eligible, not-yet-applied subset and sorts
// them by overall score, best first. Ties keep their input order.
func Rank(profile *models.StudentProfile, jobs []models.Job, applied map[bson.ObjectID]bool) []RankedJob {
	ranked := make([]RankedJob, 0, len(jobs))
	for _, job := range jobs {
		if applied[job.ID] {
			continue
		}
		if !Eligible(profile, &job) {
			continue
		}
		ranked = append(ranked, RankedJob{Job: job, MatchScore: Score(profile, &job)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore.Overall > ranked[j].MatchScore.Overall
	})
	return ranked
}
