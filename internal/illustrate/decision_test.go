package illustrate

import (
	"testing"

	"github.com/homewise/homewise/internal/question"
)

func TestShouldGenerateImage_NotNeededIsAuthoritative(t *testing.T) {
	cls := question.Classification{
		VisualizationNeed: question.VisualizationNotNeeded,
		Category:          question.CategoryPhysicsSetup,
	}
	if ShouldGenerateImage(cls, "A ball is thrown from a cliff at 20 m/s.") {
		t.Error("not_needed must win even for a physics_setup question")
	}
}

func TestShouldGenerateImage_CalculationNeedsKeyword(t *testing.T) {
	cls := question.Classification{
		VisualizationNeed: question.VisualizationHelpful,
		Category:          question.CategoryCalculation,
	}
	if ShouldGenerateImage(cls, "Find the derivative of x^2") {
		t.Error("a plain calculation without visual vocabulary must not get an image")
	}
	if !ShouldGenerateImage(cls, "A block slides down a frictionless incline") {
		t.Error("a calculation describing a physical scene must get an image")
	}
}

func TestShouldGenerateImage_VisualCategoriesAlwaysPass(t *testing.T) {
	for _, cat := range []question.Category{
		question.CategoryPhysicsSetup,
		question.CategoryGeometry,
		question.CategoryGraph,
	} {
		cls := question.Classification{
			VisualizationNeed: question.VisualizationRequired,
			Category:          cat,
		}
		if !ShouldGenerateImage(cls, "no trigger words here") {
			t.Errorf("category %s must pass unconditionally", cat)
		}
	}
}

func TestShouldGenerateImage_WordProblemNeedsKeyword(t *testing.T) {
	cls := question.Classification{
		VisualizationNeed: question.VisualizationHelpful,
		Category:          question.CategoryWordProblem,
	}
	if ShouldGenerateImage(cls, "Dana buys 3 apples and 2 oranges. How much does she pay?") {
		t.Error("a word problem without a scene must not get an image")
	}
	if !ShouldGenerateImage(cls, "A ladder leans against a wall at an angle of 60 degrees.") {
		t.Error("a word problem with geometric vocabulary must get an image")
	}
}

func TestTargetedPromptPrefix(t *testing.T) {
	if got := TargetedPromptPrefix(question.CategoryCalculation, ""); got != "" {
		t.Errorf("calculation without a reason must have no prefix, got %q", got)
	}
	if got := TargetedPromptPrefix(question.CategoryGeometry, ""); got == "" {
		t.Error("geometry must have a category template")
	}

	got := TargetedPromptPrefix(question.CategoryPhysicsSetup, "show the forces on the block")
	if len(got) == 0 || got[:9] != "show the " {
		t.Errorf("reason must come before the template, got %q", got)
	}
}
