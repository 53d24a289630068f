package Planner

import (
	"fmt"
	"strings"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"
)

// Flatten renders an arbitrary JSON value as a single formatted string.
// Strings pass through unchanged; arrays become a numbered list; objects
// become bulleted entries in insertion order, joined by blank lines; scalars
// stringify from their source literal. Recursion depth is bounded by the
// input, which is always freshly parsed JSON and therefore acyclic.
func Flatten(v Value) string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num.String()
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	case KindArray:
		lines := make([]string, 0, len(v.Items))
		for i, item := range v.Items {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, Flatten(item)))
		}
		return strings.Join(lines, "\n")
	case KindObject:
		entries := make([]string, 0, len(v.Members))
		for _, m := range v.Members {
			flat := Flatten(m.Val)
			if strings.Contains(flat, "\n") {
				var b strings.Builder
				b.WriteString(m.Key + ":")
				for _, line := range strings.Split(flat, "\n") {
					b.WriteString("\n• " + line)
				}
				entries = append(entries, b.String())
			} else {
				entries = append(entries, "• "+m.Key+": "+flat)
			}
		}
		return strings.Join(entries, "\n\n")
	}
	return ""
}

// CoercePlan flattens every required field of a candidate object into a plan.
// A missing field, or a candidate that is not an object, signals failure;
// the result still has to pass ValidatePlan before it is used.
func CoercePlan(v Value) (Models.TreatmentPlan, bool) {
	var plan Models.TreatmentPlan
	if v.Kind != KindObject {
		return plan, false
	}
	for _, field := range PlanFields {
		member, ok := v.Get(field)
		if !ok {
			return Models.TreatmentPlan{}, false
		}
		*planField(&plan, field) = Flatten(member)
	}
	return plan, true
}
