package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema describes one structured-extraction task: what the model
// is (Description) and the JSON fields it must return.
type ExtractionSchema struct {
	Name        string
	Description string
	Fields      []SchemaField
}

// SchemaField is a single field of the extraction output. Type is the JSON
// shape the model should emit, written as a literal hint such as "\"string\""
// or "[\"string\"]".
type SchemaField struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// BuildExtractionPrompt renders the schema and input text into one prompt
// that demands bare JSON back.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		sb.WriteString("  ")
		sb.WriteString(fieldLine(field))
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

func fieldLine(field SchemaField) string {
	typeHint := field.Type
	if typeHint == "" {
		typeHint = "string"
	}
	line := fmt.Sprintf("%q: %s", field.Name, typeHint)
	if field.Required {
		line += " (required)"
	}
	if field.Description != "" {
		line += " // " + field.Description
	}
	return line
}

// CandidateProfileSchema is the extraction schema for resume text: the
// candidate's identity, skills, and organizational history.
func CandidateProfileSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "CandidateProfile",
		Description: `You are an expert resume parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract the candidate's identity, skills, and work history from raw resume text.
IMPORTANT: Preserve the exact wording from the original text.
Only include information that is actually present in the text; use empty values for anything missing.
EXCLUDE: Cover letter prose, references sections, page headers and footers.`,
		Fields: []SchemaField{
			{
				Name:        "name",
				Type:        "\"string\"",
				Description: "Candidate's full name, usually at the top of the resume",
				Required:    true,
			},
			{
				Name:        "email",
				Type:        "\"string\"",
				Description: "Primary email address",
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Technical and professional skills - copy each skill verbatim",
				Required:    true,
			},
			{
				Name:        "organizations",
				Type:        "[\"string\"]",
				Description: "Companies, universities, and other organizations from work and education history",
			},
		},
	}
}
