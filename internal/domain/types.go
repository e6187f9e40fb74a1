package domain

import (
	"encoding/json"
	"fmt"
)

// Difficulty is the reading-comprehension difficulty bucket, ordered from
// easiest to hardest.
type Difficulty int

const (
	Easy Difficulty = iota
	Moderate
	Hard
	VeryHard
	Extreme
)

var difficultyLabels = [...]struct{ label, tag string }{
	Easy:     {"Easy", "Light RC"},
	Moderate: {"Moderate", "Medium RC"},
	Hard:     {"Hard", "Dense RC"},
	VeryHard: {"Very Hard", "Philosophy/Academic RC"},
	Extreme:  {"Extreme", "Journal/Research RC"},
}

// Label returns the short display name, e.g. "Very Hard".
func (d Difficulty) Label() string {
	if d < Easy || d > Extreme {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyLabels[d].label
}

// Tag returns the passage category, e.g. "Dense RC".
func (d Difficulty) Tag() string {
	if d < Easy || d > Extreme {
		return ""
	}
	return difficultyLabels[d].tag
}

func (d Difficulty) String() string {
	if d < Easy || d > Extreme {
		return d.Label()
	}
	return d.Label() + " (" + d.Tag() + ")"
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Tone is the estimated emotional tone of a passage.
type Tone int

const (
	Neutral Tone = iota
	Positive
	Negative
)

func (t Tone) String() string {
	switch t {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	case Neutral:
		return "Neutral"
	}
	return fmt.Sprintf("Tone(%d)", int(t))
}

func (t Tone) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Structure is a coarse classification of how a passage is organized.
type Structure int

const (
	NarrativeShort Structure = iota
	DescriptiveExpository
	ArgumentativeExpository
)

func (s Structure) String() string {
	switch s {
	case ArgumentativeExpository:
		return "Argumentative/Expository"
	case DescriptiveExpository:
		return "Descriptive/Expository"
	case NarrativeShort:
		return "Narrative/Short"
	}
	return fmt.Sprintf("Structure(%d)", int(s))
}

func (s Structure) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// HardWord is a frequent long content word with its first dictionary sense.
type HardWord struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
	Gloss     string `json:"gloss"`
}

// CentralIdeaUndetermined is returned as the central idea when a passage has
// no sentences.
const CentralIdeaUndetermined = "Could not determine"

// GlossNotFound replaces the gloss of a word the lexicon does not know.
const GlossNotFound = "Meaning not found"

// Metrics holds the surface statistics of a passage.
type Metrics struct {
	TotalWords         int        `json:"total_words"`
	LexicalDensity     float64    `json:"lexical_density"`
	FleschReadingEase  float64    `json:"flesch_reading_ease"`
	FleschKincaidGrade float64    `json:"flesch_kincaid_grade"`
	Difficulty         Difficulty `json:"difficulty_level"`
}

// AnalysisResult is the output of one rule-based analysis.
type AnalysisResult struct {
	Metrics
	HardWords   []HardWord `json:"hard_words"`
	Tone        Tone       `json:"tone"`
	CentralIdea string     `json:"central_idea"`
	Structure   Structure  `json:"structure"`
}

// Report is an analysis result plus the optional delegated AI analysis.
// AIError is set when the delegate failed; Result is still complete.
type Report struct {
	Result  *AnalysisResult `json:"result"`
	AI      string          `json:"ai_analysis,omitempty"`
	AIError string          `json:"ai_error,omitempty"`
}
