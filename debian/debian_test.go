package debian_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquasecurity/distro-info/debian"
	"github.com/aquasecurity/distro-info/distroinfo"
)

func loadEmbedded(t *testing.T) *distroinfo.DistroInfo {
	t.Helper()
	di, err := debian.NewLoader(debian.WithAppFs(afero.NewMemMapFs())).Load()
	require.NoError(t, err)
	return di
}

func seriesNames(releases []distroinfo.DistroRelease) []string {
	var names []string
	for _, r := range releases {
		names = append(names, r.Series)
	}
	return names
}

func TestLoader_Load(t *testing.T) {
	di := loadEmbedded(t)

	buzz := di.All()[0]
	assert.Equal(t, "1.1", buzz.Version)
	assert.Equal(t, "Buzz", buzz.Codename)

	// sid and experimental are version-less and never released.
	sid, err := di.Series("sid")
	require.NoError(t, err)
	assert.Empty(t, sid.Version)
	assert.Nil(t, sid.Release)

	wheezy, err := di.Series("wheezy")
	require.NoError(t, err)
	assert.True(t, debian.IsLTS(wheezy))
	assert.False(t, debian.IsLTS(buzz))
}

func TestLoader_HistoricalQueries(t *testing.T) {
	di := loadEmbedded(t)

	t.Run("stable in early 2024", func(t *testing.T) {
		stable, err := di.Stable(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "bookworm", stable.Series)
	})

	t.Run("devel is the next numbered series, not sid", func(t *testing.T) {
		devel, err := di.Devel(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "trixie", devel.Series)

		devel, err = di.Devel(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "forky", devel.Series)
	})

	t.Run("LTS series in early 2019", func(t *testing.T) {
		got := di.LTS(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, []string{"jessie", "stretch"}, seriesNames(got))
	})

	t.Run("ELTS series in early 2021", func(t *testing.T) {
		got := di.Extended(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, []string{"jessie", "stretch", "buster"}, seriesNames(got))
	})

	t.Run("latest before the first release falls back to the greatest version", func(t *testing.T) {
		latest, err := di.Latest(time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "forky", latest.Series)
	})
}
