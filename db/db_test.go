package db

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
)

func patternItem(name string, order string, pattern string) Item {
	return Item{
		"Name":    {S: aws.String(name)},
		"Order":   {N: aws.String(order)},
		"Pattern": {S: aws.String(pattern)},
	}
}

func TestItemsToLibrarySortsByOrder(t *testing.T) {
	assert := assert.New(t)

	lib, err := ItemsToLibrary([]Item{
		patternItem("Am", "2", "x-0-2-2-1-0"),
		patternItem("C", "1", "x-3-2-0-1-0"),
	})
	assert.NoError(err)
	assert.Equal(model.KindPositions, lib.Kind)
	assert.Equal("C", lib.Chords[0].Name)
	assert.Equal([]model.Fret{model.Muted, 3, 2, 0, 1, 0}, lib.Chords[0].Positions)
	assert.Equal("Am", lib.Chords[1].Name)
}

func TestItemsToLibraryReadsFormulas(t *testing.T) {
	lib, err := ItemsToLibrary([]Item{{
		"Name":    {S: aws.String("major")},
		"Formula": {S: aws.String("0-4-7")},
	}})
	assert.NoError(t, err)
	assert.Equal(t, model.KindFormula, lib.Kind)
	assert.Equal(t, []int{0, 4, 7}, lib.Chords[0].Formula)
}

func TestItemsToLibraryRejectsMixedTables(t *testing.T) {
	_, err := ItemsToLibrary([]Item{
		patternItem("C", "1", "x-3-2-0-1-0"),
		{"Name": {S: aws.String("major")}, "Formula": {S: aws.String("0-4-7")}},
	})
	assert.Error(t, err)
}

func TestItemsToLibraryRejectsBadItems(t *testing.T) {
	_, err := ItemsToLibrary([]Item{{"Name": {S: aws.String("nothing")}}})
	assert.Error(t, err)

	_, err = ItemsToLibrary([]Item{patternItem("C", "one", "x-3-2-0-1-0")})
	assert.Error(t, err)

	_, err = ItemsToLibrary([]Item{{"Name": {S: aws.String("C")}, "Pattern": {S: aws.String("x-3-2")}}})
	assert.Error(t, err)
}

func TestEmptyTableIsEmptyLibrary(t *testing.T) {
	lib, err := ItemsToLibrary(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, lib.Len())
	assert.Equal(t, model.KindPositions, lib.Kind)
}
