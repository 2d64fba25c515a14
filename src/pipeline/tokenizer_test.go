package pipeline

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "length bounds",
			text:     "The wearable technology market is huge",
			expected: []string{"wearable", "technology"},
		},
		{
			name:     "lowercases input",
			text:     "WEARABLE Technology",
			expected: []string{"wearable", "technology"},
		},
		{
			name:     "exactly eight and fifteen letters",
			text:     "abcdefgh abcdefghijklmno",
			expected: []string{"abcdefgh", "abcdefghijklmno"},
		},
		{
			name:     "seven and sixteen letters excluded",
			text:     "abcdefg abcdefghijklmnop",
			expected: nil,
		},
		{
			name:     "punctuation is a boundary",
			text:     "#digitalhealth, @healthtech: innovation!",
			expected: []string{"digitalhealth", "healthtech", "innovation"},
		},
		{
			name:     "digits and underscores are not boundaries",
			text:     "wearable2 tech_wearable wearable",
			expected: []string{"wearable"},
		},
		{
			name:     "accented letters belong to the word",
			text:     "Krankenhäuser Gesundheitsförderung téléconsultation",
			expected: nil,
		},
		{
			name:     "accented word next to a plain one",
			text:     "Krankenhäuser und wearable",
			expected: []string{"wearable"},
		},
		{
			name:     "non-latin letters are not boundaries",
			text:     "telemedicineклиника telemedicine",
			expected: []string{"telemedicine"},
		},
		{
			name:     "url pieces",
			text:     "https://example.com/healthcare",
			expected: []string{"healthcare"},
		},
		{
			name:     "repeats kept in order",
			text:     "wearable device wearable",
			expected: []string{"wearable", "wearable"},
		},
		{
			name:     "empty",
			text:     "",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.text)
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

// TestTokenizeIsPure checks that repeated calls give the same sequence.
func TestTokenizeIsPure(t *testing.T) {
	text := "Remote monitoring improves healthcare outcomes"
	first := Tokenize(text)
	second := Tokenize(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results, got %v and %v", first, second)
	}
}
