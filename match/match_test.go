package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hanfuzz/token"
)

type stubDict map[rune][]string

func (d stubDict) Lookup(r rune) []string { return d[r] }

var testDict = stubDict{
	'微': {"wei"},
	'信': {"xin"},
	'网': {"wang"},
	'易': {"yi"},
	'云': {"yun"},
	'音': {"yin"},
	'乐': {"le", "yue"},
	'相': {"xiang"},
	'机': {"ji"},
	'付': {"fu"},
	'款': {"kuan"},
}

func target(t *testing.T, text string) *Target {
	t.Helper()
	return NewTarget(token.NewTokenizer(testDict).Tokenize(text))
}

func TestMatch_FullPinyin(t *testing.T) {
	res, ok := target(t, "微信").Match([]string{"weixin"})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, res.Consumed)
}

func TestMatch_PinyinPrefix(t *testing.T) {
	tgt := target(t, "微信")

	res, ok := tgt.Match([]string{"wei"})
	require.True(t, ok)
	assert.Equal(t, []int{0}, res.Consumed)

	res, ok = tgt.Match([]string{"weix"})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, res.Consumed)
}

func TestMatch_Initials(t *testing.T) {
	res, ok := target(t, "微信").Match([]string{"wx"})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, res.Consumed)
}

func TestMatch_Heteronym(t *testing.T) {
	tgt := target(t, "音乐")

	for _, query := range []string{"yinyue", "yinle", "yy", "yl"} {
		res, ok := tgt.Match([]string{query})
		require.True(t, ok, "query %q must match", query)
		assert.Equal(t, []int{0, 1}, res.Consumed, "query %q", query)
	}
}

func TestMatch_LiteralChinese(t *testing.T) {
	res, ok := target(t, "微信").Match([]string{"微信"})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, res.Consumed)
}

func TestMatch_CamelCaseSkip(t *testing.T) {
	tgt := target(t, "Windows相机")

	tests := []struct {
		query string
		want  []int
	}{
		{"wxj", []int{0, 7, 8}},
		{"winxj", []int{0, 1, 2, 7, 8}},
		{"wixj", []int{0, 1, 7, 8}},
		{"windows", []int{0, 1, 2, 3, 4, 5, 6}},
		{"xiangji", []int{7, 8}},
	}
	for _, tt := range tests {
		res, ok := tgt.Match([]string{tt.query})
		require.True(t, ok, "query %q must match", tt.query)
		assert.Equal(t, tt.want, res.Consumed, "query %q", tt.query)
	}
}

func TestMatch_SeparatorFiller(t *testing.T) {
	// The space is not asked for by the query, so it is consumed as filler
	// and committed together with the following match.
	res, ok := target(t, "QQ 音乐").Match([]string{"qqyinyue"})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Consumed)
}

func TestMatch_SeparatorLiteral(t *testing.T) {
	// A query that names the separator consumes it as a literal character.
	res, ok := target(t, "a-b").Match([]string{"a-b"})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, res.Consumed)
}

func TestMatch_TrailingGapDiscarded(t *testing.T) {
	// Gap positions are only committed when a confirmed match follows.
	res, ok := target(t, "a b").Match([]string{"ab"})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, res.Consumed)

	res, ok = target(t, "a ").Match([]string{"a"})
	require.True(t, ok)
	assert.Equal(t, []int{0}, res.Consumed)
}

func TestMatch_DeadEndRetriesNextToken(t *testing.T) {
	// 乐 cannot start a match for "wei", so the matcher moves on to 微.
	res, ok := target(t, "乐微").Match([]string{"wei"})
	require.True(t, ok)
	assert.Equal(t, []int{1}, res.Consumed)
}

func TestMatch_LeftmostStartWins(t *testing.T) {
	res, ok := target(t, "abc abc").Match([]string{"abc"})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, res.Consumed)
}

func TestMatch_NoMidTokenStart(t *testing.T) {
	// Matches start at token boundaries; "ab" buried inside a single run is
	// not reachable.
	_, ok := target(t, "xyab").Match([]string{"ab"})
	assert.False(t, ok)
}

func TestMatch_MultiWord(t *testing.T) {
	tgt := target(t, "微信付款")

	res, ok := tgt.Match([]string{"weixin", "fukuan"})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Consumed)

	// Words must match strictly left to right.
	_, ok = tgt.Match([]string{"fukuan", "weixin"})
	assert.False(t, ok)
}

func TestMatch_NoMatch(t *testing.T) {
	tgt := target(t, "微信")

	for _, query := range []string{"xyz", "weixinx", "xin信"} {
		_, ok := tgt.Match([]string{query})
		assert.False(t, ok, "query %q must not match", query)
	}
}

func TestMatch_EmptyTarget(t *testing.T) {
	tgt := NewTarget(nil)
	_, ok := tgt.Match([]string{"a"})
	assert.False(t, ok)
	assert.Zero(t, tgt.Len())
}

func TestMatch_EarlierStartWeighsMore(t *testing.T) {
	early, ok := target(t, "微信").Match([]string{"weixin"})
	require.True(t, ok)
	late, ok := target(t, "付款微信").Match([]string{"weixin"})
	require.True(t, ok)

	assert.Greater(t, early.Weight, late.Weight)
}

func TestMatch_WholeQueryFailureDiscardsPartial(t *testing.T) {
	res, ok := target(t, "微信").Match([]string{"weixin", "nope"})
	assert.False(t, ok)
	assert.Empty(t, res.Consumed)
	assert.Zero(t, res.Weight)
}

func TestMatch_UnknownHanLiteralFallback(t *testing.T) {
	// 龘 is not in the dictionary; its literal form still matches.
	tgt := NewTarget(token.NewTokenizer(stubDict{}).Tokenize("龘信"))
	res, ok := tgt.Match([]string{"龘"})
	require.True(t, ok)
	assert.Equal(t, []int{0}, res.Consumed)
}
