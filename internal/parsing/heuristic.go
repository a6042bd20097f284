package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/interview-scorer/internal/types"
)

// maxScannedOrganizations bounds the experience-section scan; normalization
// dedupes afterward.
const maxScannedOrganizations = 20

// skillVocabulary is the flat list the heuristic scanner recognizes, spanning
// the technical and professional skills resumes commonly name.
var skillVocabulary = []string{
	"python", "java", "c++", "javascript", "html", "css", "react", "angular",
	"vue", "node.js", "django", "flask", "fastapi", "sql", "nosql", "mongodb",
	"postgresql", "docker", "kubernetes", "aws", "azure", "gcp", "git",
	"machine learning", "deep learning", "tensorflow", "pytorch",
	"scikit-learn", "pandas", "numpy", "data analysis", "data science",
	"excel", "leadership", "communication", "problem-solving",
	"time management", "adaptability", "critical thinking", "creativity",
	"collaboration", "project management", "public speaking", "writing",
	"research", "customer service", "sales", "marketing", "negotiation",
	"strategic planning", "financial analysis", "budgeting",
	"risk management", "quality assurance", "networking", "cloud computing",
	"cybersecurity", "devops", "agile methodologies",
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	experienceHeading = regexp.MustCompile(
		`(?i)^(work experience|experience|internships|professional history|employment history)\b`)
	sectionAfterExperience = regexp.MustCompile(
		`(?i)^(education|skills|projects|awards|publications)\b`)
)

type skillMatcher struct {
	name string
	re   *regexp.Regexp
}

var skillMatchers = compileSkillMatchers()

// compileSkillMatchers builds one case-insensitive pattern per vocabulary
// entry. Word boundaries apply only where the term edge is a word character,
// so "c++" and "node.js" match without swallowing "javascript" into "java".
func compileSkillMatchers() []skillMatcher {
	matchers := make([]skillMatcher, 0, len(skillVocabulary))
	for _, skill := range skillVocabulary {
		expr := regexp.QuoteMeta(skill)
		if isWordByte(skill[0]) {
			expr = `\b` + expr
		}
		if isWordByte(skill[len(skill)-1]) {
			expr += `\b`
		}
		matchers = append(matchers, skillMatcher{
			name: skill,
			re:   regexp.MustCompile(`(?i)` + expr),
		})
	}
	return matchers
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

// heuristicExtract recovers candidate fields with regex scanning alone. This
// is the degraded path used when no model client is configured or the model
// reply is unusable.
func heuristicExtract(resumeText string) types.CandidateRecord {
	lines := strings.Split(resumeText, "\n")
	return types.CandidateRecord{
		Name:          guessName(lines),
		Email:         emailPattern.FindString(resumeText),
		Skills:        scanSkills(resumeText),
		Organizations: scanOrganizations(lines),
	}
}

// guessName inspects the first non-empty line. Resumes conventionally open
// with the candidate's name; anything that doesn't look like one (wrong word
// count, digits, an address) yields no name rather than a bad one.
func guessName(lines []string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		words := strings.Fields(trimmed)
		if len(words) < 2 || len(words) > 4 {
			return ""
		}
		if strings.ContainsAny(trimmed, "@0123456789") {
			return ""
		}
		for _, word := range words {
			first, _ := utf8.DecodeRuneInString(word)
			if !unicode.IsUpper(first) {
				return ""
			}
		}
		return trimmed
	}
	return ""
}

func scanSkills(text string) []string {
	var found []string
	for _, matcher := range skillMatchers {
		if matcher.re.MatchString(text) {
			found = append(found, matcher.name)
		}
	}
	return found
}

// scanOrganizations collects the lines under an experience heading until the
// next section heading. Employer names dominate those lines, and downstream
// matching only needs them as loose signal.
func scanOrganizations(lines []string) []string {
	var orgs []string
	inExperience := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if experienceHeading.MatchString(trimmed) {
			inExperience = true
			continue
		}
		if !inExperience {
			continue
		}
		if sectionAfterExperience.MatchString(trimmed) {
			break
		}
		if len(trimmed) > 2 {
			orgs = append(orgs, trimmed)
		}
		if len(orgs) == maxScannedOrganizations {
			break
		}
	}
	return orgs
}
