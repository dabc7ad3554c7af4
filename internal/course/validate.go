package course

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed content_schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

var (
	lessonIDPattern    = regexp.MustCompile(`^\d+-\d+$`)
	challengeIDPattern = regexp.MustCompile(`^\d+-\d+-(\d+|t)$`)
)

// validateSchema checks the raw catalog document against the embedded
// JSON Schema before any structural interpretation.
func validateSchema(raw []byte) error {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse content schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("catalog://content_schema.json", def); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("catalog://content_schema.json")
	})
	if schemaErr != nil {
		return schemaErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("catalog is not valid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("catalog schema validation: %w", err)
	}
	return nil
}

// validateStructure performs checks the schema cannot express: id
// uniqueness and format, id/position consistency, and per-type grading
// completeness. All problems are reported at once.
func validateStructure(modules []Module) error {
	var errs []string

	knownTypes := make(map[ChallengeType]bool)
	for _, t := range AllChallengeTypes() {
		knownTypes[t] = true
	}

	moduleIDs := make(map[int]bool)
	lessonIDs := make(map[string]bool)
	challengeIDs := make(map[string]bool)

	checkChallenge := func(lesson Lesson, ch Challenge, transfer bool) {
		if challengeIDs[ch.ID] {
			errs = append(errs, fmt.Sprintf("duplicate challenge id %q", ch.ID))
		}
		challengeIDs[ch.ID] = true

		if !challengeIDPattern.MatchString(ch.ID) {
			errs = append(errs, fmt.Sprintf("challenge id %q is not of the form <module>-<lesson>-<n>", ch.ID))
		} else if !strings.HasPrefix(ch.ID, lesson.ID+"-") {
			errs = append(errs, fmt.Sprintf("challenge %q does not belong to lesson %q by id", ch.ID, lesson.ID))
		}
		if transfer && !strings.HasSuffix(ch.ID, "-t") {
			errs = append(errs, fmt.Sprintf("transfer challenge %q must use the -t suffix", ch.ID))
		}

		if !knownTypes[ch.Type] {
			errs = append(errs, fmt.Sprintf("challenge %q has unknown type %q", ch.ID, ch.Type))
			return
		}

		switch {
		case ch.IsChoiceBased():
			if len(ch.Choices) < 2 {
				errs = append(errs, fmt.Sprintf("challenge %q needs at least 2 choices", ch.ID))
			}
			if ch.CorrectIdx < 0 || ch.CorrectIdx >= len(ch.Choices) {
				errs = append(errs, fmt.Sprintf("challenge %q correctIndex %d out of range", ch.ID, ch.CorrectIdx))
			}
		case ch.Type == TypeOrdering:
			if len(ch.Steps) < 2 {
				errs = append(errs, fmt.Sprintf("ordering challenge %q needs at least 2 steps", ch.ID))
			}
		case ch.Type == TypeExplanation:
			if ch.ModelAnswer == "" {
				errs = append(errs, fmt.Sprintf("explanation challenge %q needs a model answer", ch.ID))
			}
		}
	}

	for _, m := range modules {
		if m.ID < 1 {
			errs = append(errs, fmt.Sprintf("module id %d must be a positive integer", m.ID))
		}
		if moduleIDs[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module id %d", m.ID))
		}
		moduleIDs[m.ID] = true

		if len(m.Lessons) == 0 {
			errs = append(errs, fmt.Sprintf("module %d has no lessons", m.ID))
		}

		for _, l := range m.Lessons {
			if lessonIDs[l.ID] {
				errs = append(errs, fmt.Sprintf("duplicate lesson id %q", l.ID))
			}
			lessonIDs[l.ID] = true

			if !lessonIDPattern.MatchString(l.ID) {
				errs = append(errs, fmt.Sprintf("lesson id %q is not of the form <module>-<lesson>", l.ID))
			}
			if want := fmt.Sprintf("%d-%d", m.ID, l.Number); l.ID != want {
				errs = append(errs, fmt.Sprintf("lesson id %q does not match module %d lesson %d", l.ID, m.ID, l.Number))
			}
			if l.Module != m.ID {
				errs = append(errs, fmt.Sprintf("lesson %q declares module %d but lives in module %d", l.ID, l.Module, m.ID))
			}
			if len(l.Main) == 0 {
				errs = append(errs, fmt.Sprintf("lesson %q has no challenges", l.ID))
			}

			for _, ch := range l.Main {
				checkChallenge(l, ch, false)
			}
			if l.Transfer != nil {
				checkChallenge(l, *l.Transfer, true)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
