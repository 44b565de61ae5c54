package illustrate

import (
	"strings"

	"github.com/homewise/homewise/internal/question"
)

// visualKeywords are trigger words that mark a question as describing a
// physical or geometric scene worth drawing, even when its category
// normally skips illustrations.
var visualKeywords = []string{
	// physics scenes
	"incline", "slides", "pulley", "projectile", "pendulum", "spring",
	"ramp", "circuit", "lever", "collision", "trajectory", "friction",
	"thrown", "launched", "orbits",
	// geometry
	"triangle", "circle", "rectangle", "polygon", "angle", "perpendicular",
	"parallel", "tangent", "chord", "radius", "hypotenuse",
	// explicit visual requests
	"graph", "plot", "sketch", "diagram", "figure", "draw", "vector",
	"coordinate",
}

// ShouldGenerateImage decides whether a question gets an illustration.
// A not_needed visualization verdict is authoritative and wins over every
// other rule. Categories that rarely need images only pass on an explicit
// visual keyword in the text.
func ShouldGenerateImage(cls question.Classification, text string) bool {
	if cls.VisualizationNeed == question.VisualizationNotNeeded {
		return false
	}

	switch cls.Category {
	case question.CategoryCalculation, question.CategoryProof, question.CategoryDefinition:
		return hasVisualKeyword(text)
	case question.CategoryPhysicsSetup, question.CategoryGeometry, question.CategoryGraph:
		return true
	case question.CategoryWordProblem:
		return hasVisualKeyword(text)
	default:
		return true
	}
}

func hasVisualKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range visualKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// categoryPrefixes seed the prompt-synthesis stage with a scene hint per
// category. Categories that rarely need a diagram stay empty.
var categoryPrefixes = map[question.Category]string{
	question.CategoryPhysicsSetup: "Draw the physical setup described in the problem, with all bodies, forces and directions visible.",
	question.CategoryGeometry:     "Draw the geometric figure described in the problem, with the named points, sides and angles marked.",
	question.CategoryGraph:        "Draw the function graph described in the problem on a clean coordinate plane.",
	question.CategoryWordProblem:  "Draw the real-world scene described in the problem.",
}

// TargetedPromptPrefix builds the scene hint passed to prompt synthesis.
// The classifier's visualization reason, when present, is placed before
// the category template.
func TargetedPromptPrefix(category question.Category, reason string) string {
	prefix := categoryPrefixes[category]
	if reason == "" {
		return prefix
	}
	if prefix == "" {
		return reason
	}
	return reason + " " + prefix
}
