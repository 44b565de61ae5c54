package illustrate

import (
	"fmt"
	"strings"
)

const promptSynthesisSystem = `You turn homework questions into prompts for an image-generation model.

The target style is fixed: a clean vector-style educational diagram on a
white background, using two accent colors at most, with simple shapes and
clear composition. The image must contain no text, numbers or labels of any
kind, since text renders unreliably.

Write one concise prompt (1-3 sentences) describing what to draw. Focus on
the scene or figure, not on the question's answer.`

// buildSynthesisMessage assembles the user turn for prompt synthesis.
func buildSynthesisMessage(text, subject, prefix string) string {
	var b strings.Builder
	if prefix != "" {
		fmt.Fprintf(&b, "Scene hint: %s\n\n", prefix)
	}
	if subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", subject)
	}
	fmt.Fprintf(&b, "Question: %s", text)
	return b.String()
}
