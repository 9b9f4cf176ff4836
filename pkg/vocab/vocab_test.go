package vocab

import (
	"testing"

	"github.com/bastiangx/wordprob/pkg/corpus"
	"github.com/bastiangx/wordprob/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviews = corpus.Batch{
	{"great", "food"},
	{"good", "service"},
	{"great", "service"},
	{"grim", "food"},
}

func TestBuild(t *testing.T) {
	v := Build(reviews)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, []string{"great", "food", "good", "service", "grim"}, v.Words())
	assert.Equal(t, 2, v.Count("great"))
	assert.Equal(t, 2, v.Count("service"))
	assert.Equal(t, 0, v.Count("gre"))
}

func TestCandidates(t *testing.T) {
	v := Build(reviews)

	assert.Equal(t, []string{"great", "good", "grim"}, v.Candidates("g"))
	assert.Equal(t, []string{"great", "grim"}, v.Candidates("gr"))
	assert.Empty(t, v.Candidates("x"))
	assert.Equal(t, v.Words(), v.Candidates(""))
}

func TestEmptyVocabulary(t *testing.T) {
	v := Build(nil)
	assert.Zero(t, v.Len())
	assert.Empty(t, v.Candidates("a"))
}

func TestVocabularyFeedsEstimator(t *testing.T) {
	v := Build(reviews)
	probs, err := stats.NextWordDistribution(v.Words(), []string{"great"}, reviews)
	require.NoError(t, err)

	assert.Equal(t, v.Words(), probs.Keys())
	food, _ := probs.Get("food")
	service, _ := probs.Get("service")
	assert.InDelta(t, 1.0/8.0, food, 1e-12)
	assert.InDelta(t, 1.0/8.0, service, 1e-12)
	assert.InDelta(t, 2.0/8.0, probs.Sum(), 1e-12)
}
