//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testsettings() Settings {
	return Settings{Topics: 2, Passes: 4, TopWords: 5, DocTokens: 20, MinLen: 3, Seed: 42, Workers: 1}
}

// twoworlds - pseudo-documents drawn alternately from two disjoint vocabularies
func twoworlds() []string {
	sea := strings.Fields("ship sail wave harbour anchor tide storm")
	farm := strings.Fields("wheat plough barn cattle harvest field orchard")
	var docs []string
	for d := 0; d < 8; d++ {
		src := sea
		if d%2 == 1 {
			src = farm
		}
		var words []string
		for i := 0; i < 20; i++ {
			words = append(words, src[(i+d)%len(src)])
		}
		docs = append(docs, strings.Join(words, " "))
	}
	return docs
}

func TestDocuments(t *testing.T) {
	tokens := strings.Fields("the man is an ox who was sick sick man the end")
	stops := map[string]struct{}{"the": {}, "who": {}, "was": {}}
	docs := Documents(tokens, stops, 3, 2)
	assert.Equal(t, []string{"man sick", "sick man", "end"}, docs)
	assert.Empty(t, Documents(nil, stops, 3, 2))
}

func TestTopicsShape(t *testing.T) {
	s := testsettings()
	m, err := Topics(twoworlds(), s)
	require.NoError(t, err)
	require.Len(t, m.Topics, 2)

	docs := 0
	for i, tp := range m.Topics {
		assert.Equal(t, i, tp.ID)
		assert.LessOrEqual(t, len(tp.Words), 5)
		assert.NotEmpty(t, tp.Words)
		var sum float64
		for j, w := range tp.Words {
			sum += w.Weight
			if j > 0 {
				assert.GreaterOrEqual(t, tp.Words[j-1].Weight, w.Weight)
			}
		}
		assert.LessOrEqual(t, sum, 1.0001)
		assert.LessOrEqual(t, tp.Share, 1.0)
		docs += tp.Docs
	}
	assert.Equal(t, 8, docs)
	assert.Len(t, m.Map, 8)
}

func TestTopicsNothingToModel(t *testing.T) {
	m, err := Topics(nil, testsettings())
	require.NoError(t, err)
	assert.Empty(t, m.Topics)
}

func TestTopicMapNeedsTwoDocs(t *testing.T) {
	one := mat.NewDense(3, 1, []float64{0.2, 0.5, 0.3})
	assert.Nil(t, TopicMap(one))

	// three topics, four documents; docs 0 and 1 lean on topic 0, docs 2 and 3 on topic 2
	four := mat.NewDense(3, 4, []float64{
		0.8, 0.7, 0.1, 0.0,
		0.1, 0.2, 0.1, 0.2,
		0.1, 0.1, 0.8, 0.8,
	})
	pts := TopicMap(four)
	require.Len(t, pts, 4)
	assert.Equal(t, 0, pts[0].Topic)
	assert.Equal(t, 2, pts[3].Topic)
	// the first component separates the two groups
	assert.Equal(t, pts[0].X > 0, pts[1].X > 0)
	assert.NotEqual(t, pts[0].X > 0, pts[2].X > 0)
}

func TestLdaHelpers(t *testing.T) {
	dot := mat.NewDense(2, 3, []float64{
		0.9, 0.4, 0.2,
		0.1, 0.6, 0.8,
	})
	assert.Equal(t, []int{1, 2}, ldadocpertopic(2, dot))
	w := ldadocbyweight(2, dot)
	assert.InDelta(t, 1.5/1.5, w[1], 1e-9)
	assert.InDelta(t, 1.5/1.5, w[0], 1e-9)
	assert.Equal(t, 0, dominant(dot, 0))
}

func TestDistinctive(t *testing.T) {
	texts := [][]string{
		strings.Fields("underground spite liver spite man man"),
		strings.Fields("vera pavlovna dream workshop man"),
		strings.Fields("utopia samurai planet man utopia"),
	}
	dd, err := Distinctive(texts, 2)
	require.NoError(t, err)
	require.Len(t, dd, 3)
	assert.Equal(t, "spite", dd[0][0].Word)
	assert.Equal(t, "utopia", dd[2][0].Word)
	for _, d := range dd {
		assert.LessOrEqual(t, len(d), 2)
	}

	single, err := Distinctive(texts[:1], 2)
	require.NoError(t, err)
	assert.Len(t, single, 1)
	assert.Empty(t, single[0])
}
