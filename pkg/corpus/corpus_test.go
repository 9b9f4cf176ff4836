package corpus

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllWordsPreservesOrder(t *testing.T) {
	b := Batch{{"a", "b"}, {"c"}, {}, {"d", "e"}}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, AllWords(b))
	assert.Equal(t, 5, b.Size())
	assert.Equal(t, 4, b.Rows())
	assert.Equal(t, 2, b.Width())
	assert.False(t, b.IsRectangular())
	assert.Empty(t, AllWords(nil))
}

func TestReshape(t *testing.T) {
	b := Batch{{"a", "b"}, {"a", "c"}, {"a", "b"}}

	testCases := []struct {
		name string
		cols int
		want [][]string
	}{
		{"exact", 2, [][]string{{"a", "b"}, {"a", "c"}, {"a", "b"}}},
		{"wraps when larger", 3, [][]string{{"a", "b", "a"}, {"c", "a", "b"}, {"a", "b", "a"}}},
		{"truncates when smaller", 1, [][]string{{"a"}, {"b"}, {"a"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Reshape(b, tc.cols)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReshapeDoesNotAlias(t *testing.T) {
	b := Batch{{"a", "b"}, {"c", "d"}}
	got, err := Reshape(b, 2)
	require.NoError(t, err)

	got[0][0] = "z"
	assert.Equal(t, "a", b[0][0])

	// rows must not grow into each other
	got[0] = append(got[0], "extra")
	assert.Equal(t, []string{"c", "d"}, got[1])
}

func TestReshapeErrors(t *testing.T) {
	testCases := []struct {
		name   string
		batch  Batch
		cols   int
		strict bool
	}{
		{"no rows", Batch{}, 2, false},
		{"no words", Batch{{}, {}}, 2, false},
		{"zero width", Batch{{"a"}}, 0, false},
		{"strict ragged", Batch{{"a", "b"}, {"c"}}, 2, true},
		{"strict size mismatch", Batch{{"a", "b"}, {"c", "d"}}, 3, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReshapeWith(tc.batch, tc.cols, ReshapeOptions{Strict: tc.strict})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrShape))

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, tc.cols, shapeErr.Cols)
		})
	}
}

func TestReshapeRaggedNonStrict(t *testing.T) {
	got, err := Reshape(Batch{{"a", "b", "c"}, {"d"}}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, got)
}

func TestReadBatch(t *testing.T) {
	input := "the food was great\n\n  bad   service \nok\n"
	b, stats, err := ReadBatch(strings.NewReader(input), 2)
	require.NoError(t, err)

	assert.Equal(t, Batch{{"the", "food"}, {"was", "great"}, {"bad", "service"}}, b)
	assert.Equal(t, 3, stats.Lines)
	assert.Equal(t, 3, stats.Reviews)
	assert.Equal(t, 1, stats.DroppedWords)
	assert.True(t, b.IsRectangular())

	_, _, err = ReadBatch(strings.NewReader(input), 0)
	assert.Error(t, err)
}
