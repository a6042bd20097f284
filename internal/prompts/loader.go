// Package prompts holds the model prompt templates shipped with the binary.
// Templates live in embedded JSON files, one file per concern, each mapping a
// template name to its text.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed *.json
var files embed.FS

// templates maps "file#name" to template text. Every embedded file is parsed
// when the package loads, so a malformed template file fails fast instead of
// at first use.
var templates = parseAll()

func parseAll() map[string]string {
	entries, err := files.ReadDir(".")
	if err != nil {
		panic(fmt.Sprintf("reading embedded prompt files: %v", err))
	}

	parsed := make(map[string]string)
	for _, entry := range entries {
		data, err := files.ReadFile(entry.Name())
		if err != nil {
			panic(fmt.Sprintf("reading embedded prompt file %s: %v", entry.Name(), err))
		}
		var byName map[string]string
		if err := json.Unmarshal(data, &byName); err != nil {
			panic(fmt.Sprintf("parsing prompt file %s: %v", entry.Name(), err))
		}
		for name, text := range byName {
			parsed[entry.Name()+"#"+name] = text
		}
	}
	return parsed
}

// Render returns the named template from filename with every {{.Key}}
// placeholder replaced by its value from data. Placeholders with no value in
// data are left in place.
func Render(filename, name string, data map[string]string) (string, error) {
	text, ok := templates[filename+"#"+name]
	if !ok {
		return "", fmt.Errorf("prompt %q not found in %s", name, filename)
	}
	for key, value := range data {
		text = strings.ReplaceAll(text, "{{."+key+"}}", value)
	}
	return text, nil
}

// MustRender is Render for templates known to be shipped with the binary.
func MustRender(filename, name string, data map[string]string) string {
	text, err := Render(filename, name, data)
	if err != nil {
		panic(err)
	}
	return text
}
