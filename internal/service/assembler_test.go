package service

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-xkpasswd/internal/mock"
	"github.com/MKhiriev/go-xkpasswd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// assemble
// ─────────────────────────────────────────────

func TestAssemble_DefaultShape_ExactDrawOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg, err := Resolve(models.Mode{Preset: "Default"})
	require.NoError(t, err)

	rnd := mock.NewMockSource(ctrl)
	gomock.InOrder(
		rnd.EXPECT().NextInt(0, 18).Return(0, nil),     // separator: '!'
		rnd.EXPECT().NextInt(0, 18).Return(1, nil),     // padding symbol: '@'
		rnd.EXPECT().NextInt(0, 99999).Return(12345, nil), // leading digits
		rnd.EXPECT().NextInt(0, 99999).Return(678, nil),   // trailing digits
	)

	got, err := assemble([]string{"alpha", "BRAVO", "charlie"}, cfg, rnd)

	require.NoError(t, err)
	assert.Equal(t, "@@12!alpha!BRAVO!charlie!00@@", got)
}

func TestAssemble_SeparatorDrawnOnceAndReused(t *testing.T) {
	cfg := models.Configuration{
		NumWords:            3,
		SeparatorCharacters: "abcdef",
		PaddingDigitsBefore: 2,
		PaddingDigitsAfter:  2,
	}
	src := &scriptedSource{values: []int{4, 11111, 22222}}

	got, err := assemble([]string{"one", "two", "three"}, cfg, src)

	require.NoError(t, err)
	assert.Equal(t, "11"+"e"+"one"+"e"+"two"+"e"+"three"+"e"+"22", got)
	assert.Equal(t, 4, strings.Count(got, "e")-strings.Count("onetwothree", "e"))
}

func TestAssemble_DisabledSeparators_WordsBackToBack(t *testing.T) {
	cfg := models.Configuration{
		NumWords:            3,
		PaddingDigitsBefore: 2,
		PaddingDigitsAfter:  1,
	}
	src := &scriptedSource{values: []int{90210, 345}}

	got, err := assemble([]string{"one", "two", "three"}, cfg, src)

	require.NoError(t, err)
	assert.Equal(t, "90onetwothree0", got)
}

func TestAssemble_DigitGroups_ZeroPaddedBeforeTruncation(t *testing.T) {
	cfg := models.Configuration{
		NumWords:            1,
		PaddingDigitsBefore: 4,
	}
	// a small draw must still yield four digit characters
	src := &scriptedSource{values: []int{7}}

	got, err := assemble([]string{"word"}, cfg, src)

	require.NoError(t, err)
	assert.Equal(t, "0000word", got)
}

func TestAssemble_PaddingSymbols_SameSymbolEverySlot(t *testing.T) {
	cfg := models.Configuration{
		NumWords:             1,
		PaddingSymbols:       "xyz",
		PaddingSymbolsBefore: 3,
		PaddingSymbolsAfter:  2,
	}
	src := &scriptedSource{values: []int{2}}

	got, err := assemble([]string{"word"}, cfg, src)

	require.NoError(t, err)
	assert.Equal(t, "zzzwordzz", got)
}

func TestAssemble_PadToLength_GrowsToExactTarget(t *testing.T) {
	cfg := models.Configuration{
		NumWords:       1,
		PaddingSymbols: "+",
		PadToLength:    12,
	}

	got, err := assemble([]string{"word"}, cfg, &floorSource{})

	require.NoError(t, err)
	assert.Equal(t, "word++++++++", got)
	assert.Len(t, got, 12)
}

func TestAssemble_PadToLength_NeverTruncates(t *testing.T) {
	cfg := models.Configuration{
		NumWords:       1,
		PaddingSymbols: "+",
		PadToLength:    5,
	}

	got, err := assemble([]string{"alreadylongenough"}, cfg, &floorSource{})

	require.NoError(t, err)
	assert.Equal(t, "alreadylongenough", got)
}

func TestAssemble_NoPaddingUse_NoPaddingSymbolDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.Configuration{
		NumWords:            2,
		SeparatorCharacters: "-",
		PaddingSymbols:      "!@#", // present but unused: all counts zero
	}

	rnd := mock.NewMockSource(ctrl)
	rnd.EXPECT().NextInt(0, 1).Return(0, nil) // only the separator draw

	got, err := assemble([]string{"one", "two"}, cfg, rnd)

	require.NoError(t, err)
	assert.Equal(t, "one-two", got)
}
