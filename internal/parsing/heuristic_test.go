package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Dana Smith
dana.smith@example.com

Summary
Backend engineer with a focus on distributed systems.

Work Experience
Acme Corp
Initech Systems

Education
State University

Skills
Python, C++, Node.js, Docker, PostgreSQL, Machine Learning
`

func TestHeuristicExtract_FindsEmail(t *testing.T) {
	record := heuristicExtract(sampleResume)

	assert.Equal(t, "dana.smith@example.com", record.Email)
}

func TestHeuristicExtract_FindsName(t *testing.T) {
	record := heuristicExtract(sampleResume)

	assert.Equal(t, "Dana Smith", record.Name)
}

func TestHeuristicExtract_FindsSkills(t *testing.T) {
	record := heuristicExtract(sampleResume)

	assert.Contains(t, record.Skills, "python")
	assert.Contains(t, record.Skills, "c++")
	assert.Contains(t, record.Skills, "node.js")
	assert.Contains(t, record.Skills, "docker")
	assert.Contains(t, record.Skills, "postgresql")
	assert.Contains(t, record.Skills, "machine learning")
}

func TestHeuristicExtract_OrganizationsFromExperienceSection(t *testing.T) {
	record := heuristicExtract(sampleResume)

	assert.Equal(t, []string{"Acme Corp", "Initech Systems"}, record.Organizations)
}

func TestHeuristicExtract_StopsAtEducationHeading(t *testing.T) {
	record := heuristicExtract(sampleResume)

	assert.NotContains(t, record.Organizations, "State University")
}

func TestScanSkills_WordBoundaries(t *testing.T) {
	skills := scanSkills("I write JavaScript daily and query PostgreSQL databases.")

	assert.Contains(t, skills, "javascript")
	assert.Contains(t, skills, "postgresql")
	// Neither term appears standalone.
	assert.NotContains(t, skills, "java")
	assert.NotContains(t, skills, "sql")
}

func TestScanSkills_PunctuatedTerms(t *testing.T) {
	skills := scanSkills("Ten years of C++ and some Node.js on the side.")

	assert.Contains(t, skills, "c++")
	assert.Contains(t, skills, "node.js")
}

func TestScanSkills_CaseInsensitive(t *testing.T) {
	skills := scanSkills("DOCKER, Kubernetes and aws")

	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "kubernetes")
	assert.Contains(t, skills, "aws")
}

func TestScanSkills_NoMatches(t *testing.T) {
	assert.Empty(t, scanSkills("I enjoy long walks and gardening."))
}

func TestGuessName_RejectsNonNameFirstLines(t *testing.T) {
	assert.Empty(t, guessName([]string{"dana.smith@example.com"}))
	assert.Empty(t, guessName([]string{"Curriculum Vitae 2024"}))
	assert.Empty(t, guessName([]string{"Senior Backend Engineer With Platform Experience"}))
	assert.Empty(t, guessName([]string{"dana smith"}))
	assert.Empty(t, guessName([]string{"Dana"}))
}

func TestGuessName_SkipsLeadingBlankLines(t *testing.T) {
	assert.Equal(t, "Dana Smith", guessName([]string{"", "  ", "Dana Smith"}))
}

func TestGuessName_OnlyFirstContentLineCounts(t *testing.T) {
	// A non-name first line means no guess, even if a name follows.
	assert.Empty(t, guessName([]string{"resume", "Dana Smith"}))
}

func TestScanOrganizations_NoExperienceSection(t *testing.T) {
	lines := strings.Split("Dana Smith\nSkills\nPython", "\n")

	assert.Empty(t, scanOrganizations(lines))
}

func TestScanOrganizations_CapsCollectedLines(t *testing.T) {
	lines := []string{"Experience"}
	for i := 0; i < 3*maxScannedOrganizations; i++ {
		lines = append(lines, "Some Employer Name")
	}

	orgs := scanOrganizations(lines)

	require.Len(t, orgs, maxScannedOrganizations)
}

func TestExperienceHeading_Variants(t *testing.T) {
	for _, heading := range []string{
		"Work Experience",
		"EXPERIENCE",
		"Internships",
		"Professional History",
		"Employment History:",
	} {
		assert.True(t, experienceHeading.MatchString(heading), "heading %q", heading)
	}
	assert.False(t, experienceHeading.MatchString("Experienced engineer"))
}
