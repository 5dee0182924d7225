package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCultureSeparators(t *testing.T) {
	english := NewCulture(language.English)
	assert.Equal(t, '.', english.decimal)
	assert.Equal(t, ',', english.group)

	german := NewCulture(language.German)
	assert.Equal(t, ',', german.decimal)
	assert.Equal(t, '.', german.group)
}

func TestCultureFormat(t *testing.T) {
	english := NewCulture(language.English)
	assert.Equal(t, "1,234,567", english.FormatInt(1234567))
	assert.Equal(t, "1,234,567", english.FormatUint(1234567))
	assert.Equal(t, "1234.5", english.FormatFloat(1234.5, 64))

	german := NewCulture(language.German)
	assert.Equal(t, "1.234.567", german.FormatInt(1234567))
	assert.Equal(t, "1234,5", german.FormatFloat(1234.5, 64))
	assert.Equal(t, "12,34", german.Localize("12.34"))
}

func TestCultureParse(t *testing.T) {
	english := NewCulture(language.English)

	v, ok := english.ParseInt("1,234,567")
	assert.True(t, ok)
	assert.Equal(t, int64(1234567), v)

	f, ok := english.ParseFloat("1,234.5")
	assert.True(t, ok)
	assert.Equal(t, 1234.5, f)

	_, ok = english.ParseFloat("abc")
	assert.False(t, ok)

	german := NewCulture(language.German)

	f, ok = german.ParseFloat("1.234,5")
	assert.True(t, ok)
	assert.Equal(t, 1234.5, f)

	u, ok := german.ParseUint("1.234")
	assert.True(t, ok)
	assert.Equal(t, uint64(1234), u)
}

func TestCultureFor(t *testing.T) {
	c := CultureFor("de-DE")
	require.NotNil(t, c)
	assert.Equal(t, ',', c.decimal)

	assert.Nil(t, CultureFor("!!not-a-tag!!"))
}
