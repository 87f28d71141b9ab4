package synth

import (
	"testing"

	"twa-synth/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemographicSampler_RejectsInvalidCount(t *testing.T) {
	s := NewDemographicSampler(DefaultDemographicTables(), NewStream(1))

	_, err := s.Generate(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	_, err = s.Generate(-5)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestDemographicSampler_GeneratesRequestedCount(t *testing.T) {
	s := NewDemographicSampler(DefaultDemographicTables(), NewStream(42))
	profiles, err := s.Generate(500)
	require.NoError(t, err)
	require.Len(t, profiles, 500)

	ids := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		require.NotEmpty(t, p.SubjectID)
		require.False(t, ids[p.SubjectID], "duplicate subject id %s", p.SubjectID)
		ids[p.SubjectID] = true
	}
}

func TestDemographicSampler_MidpointsMatchBrackets(t *testing.T) {
	s := NewDemographicSampler(DefaultDemographicTables(), NewStream(7))
	profiles, err := s.Generate(200)
	require.NoError(t, err)

	for _, p := range profiles {
		assert.Equal(t, domain.AgeMidpoints[p.AgeBracket], p.AgeMidpoint)
		assert.Equal(t, domain.IncomeMidpoints[p.IncomeBracket], p.IncomeMidpoint)
		assert.NotEmpty(t, p.Occupation)
	}
}

func TestDemographicSampler_AllFieldsFromEnums(t *testing.T) {
	s := NewDemographicSampler(DefaultDemographicTables(), NewStream(11))
	profiles, err := s.Generate(300)
	require.NoError(t, err)

	for _, p := range profiles {
		assert.Contains(t, domain.AgeBrackets, p.AgeBracket)
		assert.Contains(t, domain.Genders, p.Gender)
		assert.Contains(t, domain.Ethnicities, p.Ethnicity)
		assert.Contains(t, domain.Educations, p.Education)
		assert.Contains(t, domain.IncomeBrackets, p.IncomeBracket)
		assert.Contains(t, domain.FitnessLevels, p.FitnessLevel)
		assert.Contains(t, domain.SleepPatterns, p.SleepPattern)
		assert.Contains(t, domain.Regions, p.Region)
		assert.Contains(t, domain.Urbanicities, p.Urbanicity)
	}
}

// 画像链的条件结构应在大样本上留下可观察痕迹：
// 老年组收入向高档倾斜、体能向低档倾斜。
func TestDemographicSampler_ConditionalTilts(t *testing.T) {
	s := NewDemographicSampler(DefaultDemographicTables(), NewStream(2024))
	profiles, err := s.Generate(20000)
	require.NoError(t, err)

	var youngLowFit, youngN, oldLowFit, oldN float64
	for _, p := range profiles {
		switch p.AgeBracket {
		case domain.Age18to24, domain.Age25to34:
			youngN++
			if p.FitnessLevel == domain.FitnessLow {
				youngLowFit++
			}
		case domain.Age65to74, domain.Age75to84:
			oldN++
			if p.FitnessLevel == domain.FitnessLow {
				oldLowFit++
			}
		}
	}
	require.Greater(t, youngN, 1000.0)
	require.Greater(t, oldN, 1000.0)
	assert.Greater(t, oldLowFit/oldN, youngLowFit/youngN)
}

func TestExpectedAgeDistribution_SumsToOne(t *testing.T) {
	dist := DefaultDemographicTables().ExpectedAgeDistribution()
	require.Len(t, dist, len(domain.AgeBrackets))
	var total float64
	for _, w := range dist {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}
