package rating

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBank() *Bank {
	return &Bank{
		Name:       "test",
		Categories: []string{"A", "B", "C", "D"},
		Questions: []Question{
			{ID: "a1", Category: "A"},
			{ID: "a2", Category: "A"},
			{ID: "b1", Category: "B"},
			{ID: "b2", Category: "B", Reverse: true},
			{ID: "c1", Category: "C"},
			{ID: "d1", Category: "D", Reverse: true},
		},
		Keywords: map[string][]string{
			"A": {"hope", "faith", "grace"},
			"C": {"art", "design"},
		},
	}
}

func TestReverseScore(t *testing.T) {
	cases := []struct {
		raw, points, want int
	}{
		{1, 7, 7},
		{4, 7, 4},
		{7, 7, 1},
		{0, 7, 7},
		{9, 7, 1},
		{2, 5, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ReverseScore(c.raw, c.points), "ReverseScore(%d,%d)", c.raw, c.points)
	}
}

func TestAggregate(t *testing.T) {
	e := New(nil)
	raw := e.Aggregate(testBank(), Responses{"a1": 7, "a2": 5, "b1": 3, "b2": 7, "d1": 7})

	assert.InDelta(t, 6.0, raw["A"], 1e-9)
	// b2 is reverse scored: 7 contributes 1
	assert.InDelta(t, 2.0, raw["B"], 1e-9)
	// c1 missing defaults to neutral
	assert.InDelta(t, 4.0, raw["C"], 1e-9)
	assert.InDelta(t, 1.0, raw["D"], 1e-9)
}

func TestAggregateClampsOutOfRange(t *testing.T) {
	e := New(nil)
	raw := e.Aggregate(testBank(), Responses{"a1": 0, "a2": 12})
	assert.InDelta(t, 4.0, raw["A"], 1e-9)
}

func TestAggregateStaysOnScale(t *testing.T) {
	e := New(nil)
	bank := testBank()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		resp := Responses{}
		for _, q := range bank.Questions {
			if rng.Intn(4) == 0 {
				continue
			}
			resp[q.ID] = 1 + rng.Intn(7)
		}
		for c, v := range e.Aggregate(bank, resp) {
			assert.GreaterOrEqual(t, v, 1.0, c)
			assert.LessOrEqual(t, v, 7.0, c)
		}
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	e := New(nil)
	out := e.Normalize(map[string]float64{"A": 3.5, "B": 3.5, "C": 3.5})
	for _, v := range out {
		assert.Equal(t, 50.0, v)
	}
	assert.Empty(t, e.Normalize(map[string]float64{}))
}

func TestNormalizeLogistic(t *testing.T) {
	e := New(nil)
	out := e.Normalize(map[string]float64{"lo": 1, "mid": 4, "hi": 7})
	assert.Equal(t, 4.74, out["lo"])
	assert.Equal(t, 50.0, out["mid"])
	assert.Equal(t, 95.26, out["hi"])
}

func TestNormalizeBoundedAndMonotonic(t *testing.T) {
	e := New(nil)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		raw := map[string]float64{}
		for _, k := range []string{"A", "B", "C", "D", "E"} {
			raw[k] = 1 + rng.Float64()*6
		}
		norm := e.Normalize(raw)
		for a, ra := range raw {
			assert.GreaterOrEqual(t, norm[a], 0.0)
			assert.LessOrEqual(t, norm[a], 100.0)
			for b, rb := range raw {
				if ra > rb {
					assert.GreaterOrEqual(t, norm[a], norm[b])
				}
			}
		}
	}
}

func TestKeywordBumps(t *testing.T) {
	e := New(nil)
	bumps := e.KeywordBumps(testBank(), "I live on HOPE and hope, and Faith. I love Design.")

	// hope counted once even though it appears twice
	assert.InDelta(t, 0.30, bumps["A"], 1e-9)
	assert.InDelta(t, 0.15, bumps["C"], 1e-9)
	assert.Zero(t, bumps["B"])
	assert.Zero(t, bumps["D"])
}

func TestKeywordBumpsSubstringMatch(t *testing.T) {
	e := New(nil)
	bumps := e.KeywordBumps(testBank(), "with all my heart")
	assert.InDelta(t, 0.15, bumps["C"], 1e-9)
}

func TestKeywordBumpsWithoutKeywords(t *testing.T) {
	e := New(nil)
	bank := testBank()
	bank.Keywords = nil
	for _, v := range e.KeywordBumps(bank, "hope faith art") {
		assert.Zero(t, v)
	}
}

func TestScore(t *testing.T) {
	e := New(nil)
	res := e.Score(testBank(), Responses{"a1": 6, "a2": 6, "b1": 2, "b2": 6, "c1": 5, "d1": 7}, "grace")

	require.Len(t, res.Scores, 4)
	assert.Equal(t, []string{"A", "B", "C", "D"}, []string{
		res.Scores[0].Category, res.Scores[1].Category, res.Scores[2].Category, res.Scores[3].Category,
	})

	a, ok := res.Score("A")
	require.True(t, ok)
	assert.InDelta(t, 6.0, a.Raw, 1e-9)
	assert.InDelta(t, 6.15, a.Adjusted, 1e-9)

	require.Len(t, res.Top, 3)
	assert.Equal(t, "A", res.Top[0].Category)
	for i := 1; i < len(res.Top); i++ {
		assert.GreaterOrEqual(t, res.Top[i-1].Normalized, res.Top[i].Normalized)
	}
	require.Len(t, res.Bottom, 3)
	assert.Equal(t, "D", res.Bottom[0].Category)
	assert.Contains(t, res.Explanation, "keywords")
}

func TestScoreAllNeutral(t *testing.T) {
	e := New(nil)
	res := e.Score(testBank(), Responses{}, "")
	for _, s := range res.Scores {
		assert.Equal(t, 50.0, s.Normalized)
	}
	// ties keep bank order
	assert.Equal(t, "A", res.Top[0].Category)
}

func TestValidate(t *testing.T) {
	require.NoError(t, testBank().Validate())

	dup := testBank()
	dup.Questions = append(dup.Questions, Question{ID: "a1", Category: "A"})
	assert.ErrorIs(t, dup.Validate(), ErrDuplicateQuestion)

	orphan := testBank()
	orphan.Questions = append(orphan.Questions, Question{ID: "z1", Category: "Z"})
	assert.ErrorIs(t, orphan.Validate(), ErrUnknownCategory)

	assert.ErrorIs(t, (&Bank{Name: "empty"}).Validate(), ErrEmptyBank)
}
