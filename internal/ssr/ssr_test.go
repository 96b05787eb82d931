package ssr_test

import (
	"testing"

	"bitbucket.org/crgw/accessibility-hub/internal/ssr"
	"bitbucket.org/crgw/accessibility-hub/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestValidateCodes(t *testing.T) {
	t.Run("should accept every registry code individually", func(t *testing.T) {
		for _, code := range ssr.SortedCodes() {
			t.Run(code, func(t *testing.T) {
				validated, err := ssr.ValidateCodes([]string{code})

				assert.Nil(t, err)
				assert.Equal(t, []string{code}, validated)
			})
		}
	})

	t.Run("should return the sequence unchanged", func(t *testing.T) {
		codes := []string{"WCHR", "WCHS", "DEAF"}

		validated, err := ssr.ValidateCodes(codes)

		assert.Nil(t, err)
		assert.Equal(t, codes, validated)
	})

	t.Run("should accept an empty sequence", func(t *testing.T) {
		validated, err := ssr.ValidateCodes([]string{})

		assert.Nil(t, err)
		assert.Equal(t, []string{}, validated)
	})

	t.Run("should fail for unknown tokens", func(t *testing.T) {
		tests := []struct {
			name  string
			codes []string
		}{
			{"single invalid", []string{"INVALID"}},
			{"invalid among valid", []string{"WCHR", "INVALID"}},
			{"lowercase is not folded", []string{"wchr"}},
			{"empty token", []string{""}},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				validated, err := ssr.ValidateCodes(test.codes)

				assert.Nil(t, validated)
				assert.NotNil(t, err)
			})
		}
	})

	t.Run("should name every invalid token", func(t *testing.T) {
		_, err := ssr.ValidateCodes([]string{"FOO", "WCHR", "BAR"})

		validationErrors, ok := err.(validation.Errors)
		assert.True(t, ok)
		assert.Equal(t, 2, len(validationErrors))
		assert.Contains(t, validationErrors[0].Message, "FOO")
		assert.Contains(t, validationErrors[1].Message, "BAR")
	})
}

func TestDescription(t *testing.T) {
	t.Run("should describe every registry member", func(t *testing.T) {
		for code := range ssr.AllCodes() {
			description, ok := ssr.Description(code)

			assert.True(t, ok)
			assert.NotEmpty(t, description)
		}
	})

	t.Run("should report not found without failing", func(t *testing.T) {
		for _, code := range []string{"XXXX", "wchr", ""} {
			description, ok := ssr.Description(code)

			assert.False(t, ok)
			assert.Empty(t, description)
		}
	})

	t.Run("should keep the documented wording", func(t *testing.T) {
		description, ok := ssr.Description("WCHR")

		assert.True(t, ok)
		assert.Equal(t, "Wheelchair assistance (passenger provides own wheelchair)", description)
	})
}

func TestAllCodes(t *testing.T) {
	t.Run("should hold exactly the six documented codes", func(t *testing.T) {
		assert.Equal(t, []string{"BLND", "DEAF", "PRMK", "STCR", "WCHR", "WCHS"}, ssr.SortedCodes())
		assert.Equal(t, 6, len(ssr.AllCodes()))
	})

	t.Run("should return a copy, not the registry itself", func(t *testing.T) {
		all := ssr.AllCodes()
		all["WCHR"] = "tampered"
		delete(all, "DEAF")

		description, ok := ssr.Description("WCHR")
		assert.True(t, ok)
		assert.NotEqual(t, "tampered", description)
		assert.True(t, ssr.IsValid("DEAF"))
	})
}
