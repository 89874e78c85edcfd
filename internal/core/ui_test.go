package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxtech-ae/einvoice-assistant/internal/dataset"
)

func TestExampleQuestions(t *testing.T) {
	en := ExampleQuestions(LangEnglish)
	ar := ExampleQuestions(LangArabic)

	assert.Len(t, en, 5)
	assert.Len(t, ar, 5)
	assert.NotEqual(t, en[0], ar[0])

	// Unknown language falls back to English.
	assert.Equal(t, en, ExampleQuestions(Language("fr")))
}

func TestTableOptions(t *testing.T) {
	options := TableOptions(LangEnglish)
	require.Len(t, options, 5)

	assert.Equal(t, Option{Value: "All", Label: "All Tables"}, options[0])
	for i, name := range dataset.Order {
		assert.Equal(t, name, options[i+1].Value)
	}

	arabic := TableOptions(LangArabic)
	assert.Equal(t, "جميع الجداول", arabic[0].Label)
}

func TestDomainOptions(t *testing.T) {
	options := DomainOptions(LangEnglish)
	require.Len(t, options, 5)

	assert.Equal(t, "All", options[0].Value)
	for i, name := range DomainOrder {
		assert.Equal(t, name, options[i+1].Value)
	}
	assert.Equal(t, "Tax Compliance", options[1].Label)
}

func TestDeriveTitle(t *testing.T) {
	assert.Equal(t, "short question", deriveTitle("short question"))

	long := ""
	for i := 0; i < 100; i++ {
		long += "x"
	}
	title := deriveTitle(long)
	assert.Equal(t, chatTitleMaxLen+1, len([]rune(title)))
	assert.Equal(t, '…', []rune(title)[chatTitleMaxLen])
}
