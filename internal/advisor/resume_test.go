package advisor

import (
	"reflect"
	"strings"
	"testing"
)

func TestScoreResumeEmptyText(t *testing.T) {
	report := ScoreResume("")

	if report.ATSScore != 40 {
		t.Errorf("ATSScore = %d, want 40", report.ATSScore)
	}
	if report.SkillMatchScore != 0 {
		t.Errorf("SkillMatchScore = %d, want 0", report.SkillMatchScore)
	}
	if len(report.FoundSkills) != 0 {
		t.Errorf("FoundSkills = %v, want empty", report.FoundSkills)
	}
	if report.ExperienceLabel != "Entry Level" {
		t.Errorf("ExperienceLabel = %q, want Entry Level", report.ExperienceLabel)
	}
}

func TestScoreResumeThreeSkillsCaseVaried(t *testing.T) {
	report := ScoreResume("Worked with PYTHON, docker and KuBeRnEtEs on infra projects.")

	if report.ATSScore != 70 {
		t.Errorf("ATSScore = %d, want 70", report.ATSScore)
	}
	if report.SkillMatchScore != 60 {
		t.Errorf("SkillMatchScore = %d, want 60", report.SkillMatchScore)
	}
	want := []string{"Python", "Docker", "Kubernetes"}
	if !reflect.DeepEqual(report.FoundSkills, want) {
		t.Errorf("FoundSkills = %v, want %v", report.FoundSkills, want)
	}
}

// FoundSkills must follow vocabulary order, not document order.
func TestScoreResumeVocabularyOrder(t *testing.T) {
	report := ScoreResume("kubernetes then docker then python")

	want := []string{"Python", "Docker", "Kubernetes"}
	if !reflect.DeepEqual(report.FoundSkills, want) {
		t.Errorf("FoundSkills = %v, want vocabulary order %v", report.FoundSkills, want)
	}
}

func TestScoreResumeCaps(t *testing.T) {
	report := ScoreResume("python java sql docker linux git css html")

	if len(report.FoundSkills) != 8 {
		t.Fatalf("found %d skills, want 8: %v", len(report.FoundSkills), report.FoundSkills)
	}
	if report.ATSScore != 90 {
		t.Errorf("ATSScore = %d, want cap 90", report.ATSScore)
	}
	if report.SkillMatchScore != 100 {
		t.Errorf("SkillMatchScore = %d, want cap 100", report.SkillMatchScore)
	}
	if report.ExperienceLabel != "Experienced" {
		t.Errorf("ExperienceLabel = %q, want Experienced", report.ExperienceLabel)
	}
}

func TestExperienceLabelBands(t *testing.T) {
	tests := []struct {
		found int
		want  string
	}{
		{0, "Entry Level"},
		{1, "Entry Level"},
		{2, "Intermediate"},
		{4, "Intermediate"},
		{5, "Experienced"},
		{9, "Experienced"},
	}

	for _, tt := range tests {
		if got := experienceLabel(tt.found); got != tt.want {
			t.Errorf("experienceLabel(%d) = %q, want %q", tt.found, got, tt.want)
		}
	}
}

func TestScoreResumeIgnoresNearMisses(t *testing.T) {
	report := ScoreResume(strings.Repeat("nothing relevant here. ", 5))
	if len(report.FoundSkills) != 0 {
		t.Errorf("FoundSkills = %v, want empty", report.FoundSkills)
	}
}
