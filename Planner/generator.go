package Planner

import (
	"context"
	"log"
	"strings"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"
)

// ChatClient matches the two call shapes implemented by OpenAI.Client:
// ChatJSON requests constrained structured-JSON output, Chat relies on
// instructions alone.
type ChatClient interface {
	ChatJSON(ctx context.Context, system, user string) (string, error)
	Chat(ctx context.Context, system, user string) (string, error)
}

// Source tags which strategy produced the final plan.
type Source string

const (
	SourceStrict   Source = "strict"
	SourceLenient  Source = "lenient"
	SourceFallback Source = "fallback"
)

type resultKind int

const (
	resultOK resultKind = iota
	resultMalformed
	resultTransportError
)

// modelResult is the tagged outcome of one model call plus its
// validate/coerce pass.
type modelResult struct {
	kind resultKind
	plan Models.TreatmentPlan
	err  error
}

type Generator struct {
	Client ChatClient
}

func NewGenerator(client ChatClient) *Generator {
	return &Generator{Client: client}
}

// Generate runs the plan pipeline: strict call, validate, coerce; on failure
// one lenient retry with free-text JSON extraction; on failure the
// deterministic fallback. Intermediate failures are absorbed; the contract is
// a valid plan, always.
func (g *Generator) Generate(ctx context.Context, patient Models.PatientData) (Models.TreatmentPlan, Source, error) {
	prompt := BuildPrompt(patient)

	strict := g.call(ctx, prompt, false)
	if strict.kind == resultOK {
		return strict.plan, SourceStrict, nil
	}
	if strict.kind == resultTransportError {
		log.Printf("Strict model call failed: %v", strict.err)
	}

	lenient := g.call(ctx, prompt, true)
	if lenient.kind == resultOK {
		return lenient.plan, SourceLenient, nil
	}
	if lenient.kind == resultTransportError {
		log.Printf("Lenient model call failed: %v", lenient.err)
	}

	return FallbackPlan(patient), SourceFallback, nil
}

func (g *Generator) call(ctx context.Context, prompt string, lenient bool) modelResult {
	var content string
	var err error
	if lenient {
		content, err = g.Client.Chat(ctx, LenientSystemPrompt, prompt)
	} else {
		content, err = g.Client.ChatJSON(ctx, StrictSystemPrompt, prompt)
	}
	if err != nil {
		return modelResult{kind: resultTransportError, err: err}
	}
	if plan, ok := planFromResponse(content, lenient); ok {
		return modelResult{kind: resultOK, plan: plan}
	}
	return modelResult{kind: resultMalformed}
}

// planFromResponse parses the model output, validates it against the plan
// schema, and falls back to field coercion. For the lenient call, unparseable
// free text gets one extraction attempt for an embedded JSON object.
func planFromResponse(content string, allowExtract bool) (Models.TreatmentPlan, bool) {
	value, err := ParseValue(strings.TrimSpace(content))
	if err != nil {
		if !allowExtract {
			return Models.TreatmentPlan{}, false
		}
		snippet, found := ExtractJSON(content)
		if !found {
			return Models.TreatmentPlan{}, false
		}
		value, err = ParseValue(snippet)
		if err != nil {
			return Models.TreatmentPlan{}, false
		}
	}

	if plan, violations := ValidateObject(value); len(violations) == 0 {
		return plan, true
	}
	if plan, ok := CoercePlan(value); ok && len(ValidatePlan(plan)) == 0 {
		return plan, true
	}
	return Models.TreatmentPlan{}, false
}
