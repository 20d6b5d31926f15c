package ubuntu_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquasecurity/distro-info/distroinfo"
	"github.com/aquasecurity/distro-info/ubuntu"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// Loading against an empty fs exercises the embedded snapshot.
func loadEmbedded(t *testing.T) *distroinfo.DistroInfo {
	t.Helper()
	di, err := ubuntu.NewLoader(ubuntu.WithAppFs(afero.NewMemMapFs())).Load()
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
	releases := di.All()
	require.NotEmpty(t, releases)

	warty := releases[0]
	assert.Equal(t, distroinfo.DistroRelease{
		Version:  "4.10",
		Codename: "Warty Warthog",
		Series:   "warty",
		Created:  date(2004, 3, 5),
		Release:  date(2004, 10, 20),
		EOL:      date(2006, 4, 30),
	}, warty)

	dapper, err := di.Series("dapper")
	require.NoError(t, err)
	assert.Equal(t, date(2011, 6, 1), dapper.EOLLTS)
	assert.True(t, ubuntu.IsLTS(dapper))
	assert.False(t, ubuntu.IsLTS(warty))
}

func TestLoader_LoadFromFile(t *testing.T) {
	appFs := afero.NewMemMapFs()
	csv := `version,codename,series,created,release,eol,eol-server,eol-esm
4.10,Warty Warthog,warty,2004-03-05,2004-10-20,2006-04-30,,
`
	require.NoError(t, afero.WriteFile(appFs, "/data/ubuntu.csv", []byte(csv), 0644))

	di, err := ubuntu.NewLoader(ubuntu.WithAppFs(appFs), ubuntu.WithCSVPath("/data/ubuntu.csv")).Load()
	require.NoError(t, err)
	assert.Len(t, di.All(), 1)

	_, err = ubuntu.NewLoader(ubuntu.WithAppFs(appFs), ubuntu.WithCSVPath("/data/missing.csv")).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoader_HistoricalQueries(t *testing.T) {
	di := loadEmbedded(t)

	t.Run("supported in mid 2018", func(t *testing.T) {
		got := di.Supported(time.Date(2018, 6, 14, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, []string{"trusty", "xenial", "artful", "bionic"}, seriesNames(got))
	})

	t.Run("devel in mid 2018", func(t *testing.T) {
		devel, err := di.Devel(time.Date(2018, 6, 14, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "cosmic", devel.Series)
	})

	t.Run("latest in mid 2005", func(t *testing.T) {
		latest, err := di.Latest(time.Date(2005, 6, 14, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "hoary", latest.Series)
	})

	t.Run("stable in mid 2020", func(t *testing.T) {
		stable, err := di.Stable(time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "focal", stable.Series)
	})

	t.Run("LTS series in early 2019", func(t *testing.T) {
		got := di.LTS(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, []string{"trusty", "xenial", "bionic"}, seriesNames(got))
	})

	t.Run("ESM series in mid 2024", func(t *testing.T) {
		got := di.Extended(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, []string{"xenial", "bionic", "focal", "jammy", "noble"}, seriesNames(got))
	})
}
