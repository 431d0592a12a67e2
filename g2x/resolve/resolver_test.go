package resolve

import (
	"testing"

	"github.com/ZanzyTHEbar/g2x/g2x/indexing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const galleryListing = `
./CV-LAN/CVLAN1/DSC00800.jpg
./CV-LAN/CVLAN1/DSC00801.jpg
./dreamhack/dreamhack_97/martin_ojes/p000335.jpg
./dreamhack/dreamhack_98/martin_ojes/p000336.jpg
./internationella/sommar/IMG_0001.jpg
`

func galleryIndex(t *testing.T) *indexing.FileIndex {
	t.Helper()
	idx := indexing.BuildFileIndex(indexing.LoadFileList(galleryListing))
	require.Equal(t, 5, idx.Len())
	return idx
}

func allStrategies() map[string]Strategy {
	return map[string]Strategy{
		"consensus": DefaultConsensusStrategy(),
		"single":    DefaultSingleStrategy(),
		"plain":     PlainStrategy(),
	}
}

func TestResolveFuzzyScenarios(t *testing.T) {
	tests := []struct {
		name   string
		parsed ParsedURL
		want   string
	}{
		{
			name:   "ExactMatch",
			parsed: ParsedURL{DirSegments: []string{"CV-LAN", "CVLAN1"}, BaseFilename: "DSC00800.jpg"},
			want:   "CV-LAN/CVLAN1/DSC00800.jpg",
		},
		{
			name:   "CaseInsensitiveMatch",
			parsed: ParsedURL{DirSegments: []string{"cv-lan", "cvlan1"}, BaseFilename: "dsc00800.jpg"},
			want:   "CV-LAN/CVLAN1/DSC00800.jpg",
		},
	}

	idx := galleryIndex(t)
	for _, tt := range tests {
		for sname, strategy := range allStrategies() {
			t.Run(tt.name+"/"+sname, func(t *testing.T) {
				got, ok := ResolveFuzzy(tt.parsed, idx, strategy)
				require.True(t, ok)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestResolveSpaceVersusUnderscore(t *testing.T) {
	idx := galleryIndex(t)
	parsed := ParsedURL{DirSegments: []string{"dreamhack", "dreamhack 97", "martin_ojes"}, BaseFilename: "p000335.jpg"}

	got, ok := ResolveFuzzy(parsed, idx, DefaultConsensusStrategy())
	require.True(t, ok)
	assert.Equal(t, "dreamhack/dreamhack_97/martin_ojes/p000335.jpg", got)

	m := NewResolver(DefaultOptions(), zerolog.Nop()).Resolve(parsed, idx, DefaultConsensusStrategy())
	assert.Equal(t, MethodConsensus, m.Method)
	assert.Greater(t, m.Score, 0.9)
}

func TestResolveUnrelatedIndex(t *testing.T) {
	idx := indexing.BuildFileIndex(indexing.LoadFileList("zebra/stripes/zz_01.png\nCV-LAN/CVLAN1/DSC00800.png\n"))
	parsed := ParsedURL{DirSegments: []string{"nonexistent"}, BaseFilename: "missing.jpg"}

	for name, strategy := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			got, ok := ResolveFuzzy(parsed, idx, strategy)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestResolveConsensusAcceptsSharedExtension(t *testing.T) {
	// Only the ".jpg" trigrams link the query to the index. The Borda leader
	// always collects K+1 points, so consensus takes it while single refuses.
	idx := indexing.BuildFileIndex(indexing.LoadFileList("zebra/stripes/zz_01.jpg\nCV-LAN/CVLAN1/DSC00800.jpg\n"))
	parsed := ParsedURL{DirSegments: []string{"nonexistent"}, BaseFilename: "missing.jpg"}
	r := NewResolver(DefaultOptions(), zerolog.Nop())

	consensus := r.Resolve(parsed, idx, DefaultConsensusStrategy())
	require.True(t, consensus.Resolved())
	assert.Equal(t, MethodConsensus, consensus.Method)
	assert.Contains(t, []string{"zebra/stripes/zz_01.jpg", "CV-LAN/CVLAN1/DSC00800.jpg"}, consensus.Path)

	single := r.Resolve(parsed, idx, DefaultSingleStrategy())
	assert.False(t, single.Resolved())
}

func TestResolveEmptyGuards(t *testing.T) {
	empty := indexing.BuildFileIndex(indexing.LoadFileList(""))
	idx := galleryIndex(t)

	for name, strategy := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			_, ok := ResolveFuzzy(ParsedURL{DirSegments: []string{"CV-LAN", "CVLAN1"}, BaseFilename: "DSC00800.jpg"}, empty, strategy)
			assert.False(t, ok, "empty index")

			_, ok = ResolveFuzzy(ParsedURL{DirSegments: nil, BaseFilename: "   "}, idx, strategy)
			assert.False(t, ok, "no segments and a blank filename")

			_, ok = ResolveFuzzy(ParsedURL{}, nil, strategy)
			assert.False(t, ok, "nil index")
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	idx := galleryIndex(t)
	parsed := ParsedURL{DirSegments: []string{"dreamhack", "dreamhack 98", "martin ojes"}, BaseFilename: "p000336.jpg"}

	for name, strategy := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			first, firstOK := ResolveFuzzy(parsed, idx, strategy)
			for range 10 {
				got, ok := ResolveFuzzy(parsed, idx, strategy)
				assert.Equal(t, firstOK, ok)
				assert.Equal(t, first, got)
			}
		})
	}
}

func TestResolveExactShortCircuitIgnoresThresholds(t *testing.T) {
	idx := galleryIndex(t)
	strict := Strategy{
		Algorithm: "jaro-winkler",
		Type:      StrategySingle,
		Params:    &Params{Threshold: Float(2), LowerThreshold: Float(2)},
	}

	got, ok := ResolveFuzzy(ParsedURL{DirSegments: []string{"cv-lan", "CVLAN1"}, BaseFilename: "Dsc00801.JPG"}, idx, strict)
	require.True(t, ok)
	assert.Equal(t, "CV-LAN/CVLAN1/DSC00801.jpg", got)
}

func TestResolveConsensusFallsBackToSingle(t *testing.T) {
	idx := galleryIndex(t)
	r := NewResolver(DefaultOptions(), zerolog.Nop())

	queries := []ParsedURL{
		{DirSegments: []string{"dreamhack", "dreamhack 97", "martin_ojes"}, BaseFilename: "p000335.jpg"},
		{DirSegments: []string{"cv lan", "cvlan 1"}, BaseFilename: "dsc-00801.jpg"},
		{DirSegments: []string{"elsewhere"}, BaseFilename: "p000.jpg"},
	}

	for _, params := range []*Params{
		{MinConsensusPoints: Int(100)},
		{MinConsensusPoints: Int(100), Threshold: Float(2), LowerThreshold: Float(2)},
	} {
		for _, q := range queries {
			consensus := r.Resolve(q, idx, Strategy{Type: StrategyConsensus, Params: params})
			single := r.Resolve(q, idx, Strategy{Type: StrategySingle, Params: params})

			assert.Equal(t, single.Path, consensus.Path, q.FullPath())
			assert.Equal(t, single.Resolved(), consensus.Resolved(), q.FullPath())
			if consensus.Resolved() {
				assert.Equal(t, MethodConsensusFallback, consensus.Method)
			}
		}
	}
}

func TestResolvePlainFallback(t *testing.T) {
	idx := indexing.BuildFileIndex(indexing.LoadFileList("CV-LAN/CVLAN1/DSC_00800.jpg\n"))
	r := NewResolver(DefaultOptions(), zerolog.Nop())

	m := r.Resolve(ParsedURL{DirSegments: []string{"CV_LAN", "CVLAN1"}, BaseFilename: "dsc 00800.jpg"}, idx, PlainStrategy())
	require.True(t, m.Resolved())
	assert.Equal(t, MethodPlain, m.Method)
	assert.Equal(t, "CV-LAN/CVLAN1/DSC_00800.jpg", m.Path)

	m = r.Resolve(ParsedURL{DirSegments: []string{"CV_LAN", "CVLAN1"}, BaseFilename: "dsc00800.jpg"}, idx, PlainStrategy())
	assert.False(t, m.Resolved(), "plain matching needs an equal filename")
}

func TestParsePath(t *testing.T) {
	p := ParsePath(`.\dreamhack\dreamhack 97\p000335.jpg`)
	assert.Equal(t, []string{"dreamhack", "dreamhack 97"}, p.DirSegments)
	assert.Equal(t, "p000335.jpg", p.BaseFilename)
	assert.Equal(t, "dreamhack/dreamhack 97/p000335.jpg", p.FullPath())
	assert.Equal(t, "dreamhack 97", p.LastSegment())

	root := ParsePath("top.jpg")
	assert.Empty(t, root.DirSegments)
	assert.Equal(t, "top.jpg", root.FullPath())
	assert.Equal(t, "", root.LastSegment())
	assert.True(t, ParsePath("").IsEmpty())
}
