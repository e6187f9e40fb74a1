package discourse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rcanalyzer/internal/domain"
	"rcanalyzer/internal/segment"
	"rcanalyzer/internal/stopwords"
)

type fixedPolarity float64

func (f fixedPolarity) Polarity(string) float64 { return float64(f) }

func TestTone(t *testing.T) {
	tests := []struct {
		polarity float64
		want     domain.Tone
	}{
		{0.5, domain.Positive},
		{0.1001, domain.Positive},
		{0.1, domain.Neutral},
		{0, domain.Neutral},
		{-0.1, domain.Neutral},
		{-0.1001, domain.Negative},
		{-1, domain.Negative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tone(tt.polarity), "polarity %v", tt.polarity)
		assert.Equal(t, tt.want, EstimateTone("ignored", fixedPolarity(tt.polarity)))
	}
}

func TestCentralIdea(t *testing.T) {
	c := NewCentralIdea(stopwords.English())
	text := "Rivers shape valleys. The valley floor holds rivers, lakes and rivers again. Birds sing."
	got := c.SelectText(text, segment.Sentences(text))
	assert.Equal(t, "The valley floor holds rivers, lakes and rivers again.", got)
}

func TestCentralIdeaTiesKeepFirst(t *testing.T) {
	c := NewCentralIdea(stopwords.English())
	text := "Cats purr. Dogs bark. Cats purr."
	assert.Equal(t, "Cats purr.", c.SelectText(text, segment.Sentences(text)))

	// Only stopwords: every sentence scores zero.
	text = "It is. We are. They were."
	assert.Equal(t, "It is.", c.SelectText(text, segment.Sentences(text)))
}

func TestCentralIdeaUndetermined(t *testing.T) {
	c := NewCentralIdea(stopwords.English())
	assert.Equal(t, domain.CentralIdeaUndetermined, c.Select(nil, []string{"word"}))
	assert.Equal(t, "Could not determine", c.SelectText("", nil))
}

func TestClassifyStructure(t *testing.T) {
	long := strings.Repeat("The sun rose. ", 9)
	tests := []struct {
		name string
		text string
		want domain.Structure
	}{
		{"short narrative", "The cat sat. It was happy.", domain.NarrativeShort},
		{"eight sentences", strings.Repeat("The sun rose. ", 8), domain.NarrativeShort},
		{"nine sentences", long, domain.DescriptiveExpository},
		{"because any case", "He left BECAUSE it rained.", domain.ArgumentativeExpository},
		{"however beats length", long + "However, it set.", domain.ArgumentativeExpository},
		{"therefore", "Therefore we go.", domain.ArgumentativeExpository},
		{"substring match", "He spoke thusly.", domain.ArgumentativeExpository},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyText(tt.text))
		})
	}
}
