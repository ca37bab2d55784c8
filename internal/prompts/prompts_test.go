package prompts

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRespectsFacetBudget(t *testing.T) {
	resume := strings.Repeat("a", 1400) + strings.Repeat("b", 700) + "TAIL"
	opts := Options{Mode: RoastSavage, Industry: "finance", PersonaMode: "evil"}

	for _, f := range append(append([]Facet{}, AnalysisFacets...), RebuildFacets...) {
		s, err := SettingsFor(f)
		require.NoError(t, err)

		prompt, err := Build(f, opts, resume)
		require.NoError(t, err, f)

		assert.Contains(t, prompt, resume[:s.Budget], f)
		assert.NotContains(t, prompt, resume[:s.Budget+1], f)
		assert.NotContains(t, prompt, "TAIL", f)
	}
}

func TestBuildBudgets(t *testing.T) {
	cases := map[Facet]int{
		FacetRoast: 2000, FacetATS: 2000, FacetModern: 2000, FacetIndustryRewrite: 2000,
		FacetBias: 1500, FacetImpression: 1500, FacetIndustry: 1500, FacetPersona: 1500,
	}
	for f, want := range cases {
		s, err := SettingsFor(f)
		require.NoError(t, err)
		assert.Equal(t, want, s.Budget, f)
	}
}

func TestBuildSelectsRoastTemplate(t *testing.T) {
	savage, err := Build(FacetRoast, Options{Mode: RoastSavage}, "resume")
	require.NoError(t, err)
	genz, err := Build(FacetRoast, Options{Mode: RoastGenZ}, "resume")
	require.NoError(t, err)
	gentle, err := Build(FacetRoast, Options{Mode: RoastGentle}, "resume")
	require.NoError(t, err)
	unknown, err := Build(FacetRoast, Options{Mode: "spicy"}, "resume")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(savage, "Roast this resume brutally"))
	assert.Contains(t, genz, "no cap")
	assert.True(t, strings.HasPrefix(gentle, "Give gentle, comedic feedback"))
	assert.Equal(t, savage, unknown)
	assert.True(t, strings.HasSuffix(savage, "Resume:\nresume"))
}

func TestBuildInterpolatesOptions(t *testing.T) {
	opts := Options{Industry: "healthcare", PersonaMode: "shadow"}

	industry, err := Build(FacetIndustry, opts, "cv")
	require.NoError(t, err)
	assert.Contains(t, industry, "perceived in the healthcare industry")
	assert.Contains(t, industry, "appears to healthcare hiring managers")

	persona, err := Build(FacetPersona, opts, "cv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(persona, "Analyze this resume in shadow mode:"))
	assert.Contains(t, persona, "analysis for shadow mode.")

	rewrite, err := Build(FacetIndustryRewrite, opts, "cv")
	require.NoError(t, err)
	assert.Contains(t, rewrite, "- healthcare market expectations")
}

func TestBuildDoesNotReinterpretResumeText(t *testing.T) {
	prompt, err := Build(FacetIndustry, Options{Industry: "tech"}, "I love {{INDUSTRY}} placeholders")
	require.NoError(t, err)
	assert.Contains(t, prompt, "I love {{INDUSTRY}} placeholders")
}

func TestBuildUnknownFacet(t *testing.T) {
	_, err := Build("horoscope", Options{}, "cv")
	assert.ErrorIs(t, err, ErrUnknownFacet)
}

func TestTruncateCountsRunes(t *testing.T) {
	got := Truncate("héllo💀world", 6)
	assert.Equal(t, "héllo💀", got)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, "", Truncate("x", 0))
}

func TestParseRoastMode(t *testing.T) {
	assert.Equal(t, RoastGenZ, ParseRoastMode(" GenZ "))
	assert.Equal(t, RoastGentle, ParseRoastMode("gentle"))
	assert.Equal(t, RoastSavage, ParseRoastMode(""))
	assert.Equal(t, RoastSavage, ParseRoastMode("nuclear"))
}
