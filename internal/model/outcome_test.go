package model

import "testing"

// TestStatusString tests the String method of Status.
func TestStatusString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status   Status
		expected string
	}{
		{StatusPassed, "PASSED"},
		{StatusFailed, "FAILED"},
		{StatusUnknownLanguage, "UNKNOWN_LANGUAGE"},
		{Status(999), "INVALID"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.status.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.status.String(), tc.expected)
			}
		})
	}
}

// TestOutcomeCountsAsFailure tests the strict-warnings failure policy.
func TestOutcomeCountsAsFailure(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		outcome        Outcome
		strictWarnings bool
		expected       bool
	}{
		{
			name:     "passed never fails",
			outcome:  NewPassed("python", 3, "x = 1"),
			expected: false,
		},
		{
			name:           "passed never fails even in strict mode",
			outcome:        NewPassed("python", 3, "x = 1"),
			strictWarnings: true,
			expected:       false,
		},
		{
			name:     "failed always fails",
			outcome:  NewFailed("c", 10, "int main(", "syntax error"),
			expected: true,
		},
		{
			name:           "failed always fails in strict mode",
			outcome:        NewFailed("c", 10, "int main(", "syntax error"),
			strictWarnings: true,
			expected:       true,
		},
		{
			name:     "unknown language passes by default",
			outcome:  NewUnknownLanguage("brainfuck", 1, "+++"),
			expected: false,
		},
		{
			name:           "unknown language fails in strict mode",
			outcome:        NewUnknownLanguage("brainfuck", 1, "+++"),
			strictWarnings: true,
			expected:       true,
		},
		{
			name:           "empty language tag behaves like unknown",
			outcome:        NewUnknownLanguage("", 7, "text"),
			strictWarnings: true,
			expected:       true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.outcome.CountsAsFailure(tc.strictWarnings)
			if got != tc.expected {
				t.Errorf("CountsAsFailure(%v) = %v, expected %v",
					tc.strictWarnings, got, tc.expected)
			}
		})
	}
}
