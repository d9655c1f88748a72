package string_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	ustring "bravectl/util/string"
)

func TestSanitize(t *testing.T) {
	testCases := []struct {
		desc string

		input    string
		expected string
	}{
		{
			desc: "Spaces",

			input:    "Profile 1",
			expected: "Profile_1",
		},
		{
			desc: "Path separators",

			input:    "Work/Personal",
			expected: "Work_Personal",
		},
		{
			desc: "Already safe",

			input:    "Default",
			expected: "Default",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.expected, ustring.Sanitize(tC.input))
		})
	}
}

func TestSanitizeLower(t *testing.T) {
	assert.Equal(t, "work_stuff", ustring.SanitizeLower("Work Stuff"))
}
