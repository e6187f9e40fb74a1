// Package delegate forwards a passage to a generative text service for a
// free-form AI analysis.
package delegate

import (
	"fmt"
	"strings"
)

const AnalysisTemplate = `Analyze the following reading-comprehension passage and provide:
1. Central idea
2. Tone
3. Structure (narrative, descriptive, expository or argumentative)
4. 5 difficult words with their meanings in context
5. 3 comprehension questions with answers

Passage:
%s`

// Prompt builds the analysis prompt for passage.
func Prompt(passage string) string {
	return fmt.Sprintf(AnalysisTemplate, strings.TrimSpace(passage))
}
