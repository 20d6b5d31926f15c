package debian

import (
	"bytes"
	_ "embed"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/aquasecurity/distro-info/distroinfo"
)

const defaultCSVPath = "/usr/share/distro-info/debian.csv"

// Snapshot of distro-info-data, used when the host has no debian.csv.
//
//go:embed data/debian.csv
var embeddedCSV []byte

type Option func(*Loader)

func WithAppFs(v afero.Fs) Option {
	return func(l *Loader) {
		l.appFs = v
	}
}

func WithCSVPath(v string) Option {
	return func(l *Loader) {
		l.csvPath = v
		l.explicitPath = true
	}
}

type Loader struct {
	appFs        afero.Fs
	csvPath      string
	explicitPath bool
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		appFs:   afero.NewOsFs(),
		csvPath: defaultCSVPath,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses the Debian release dataset. The default path falls back to the
// embedded snapshot when the distro-info-data package is not installed; a
// path set explicitly must exist. Debian's sid and experimental rows carry no
// version and no release date.
func (l *Loader) Load() (*distroinfo.DistroInfo, error) {
	data := embeddedCSV
	ok, err := afero.Exists(l.appFs, l.csvPath)
	if err != nil {
		return nil, xerrors.Errorf("failed to stat %s: %w", l.csvPath, err)
	}
	if ok {
		if data, err = afero.ReadFile(l.appFs, l.csvPath); err != nil {
			return nil, xerrors.Errorf("failed to read %s: %w", l.csvPath, err)
		}
	} else if l.explicitPath {
		return nil, xerrors.Errorf("dataset %s not found", l.csvPath)
	}

	releases, err := distroinfo.ParseCSV(bytes.NewReader(data))
	if err != nil {
		return nil, xerrors.Errorf("failed to parse Debian release data: %w", err)
	}
	return distroinfo.New("Debian", releases, IsLTS), nil
}

// IsLTS reports whether a release has a long-term-support offering; for
// Debian that is the presence of an eol-lts date in the dataset.
func IsLTS(r distroinfo.DistroRelease) bool {
	return r.EOLLTS != nil
}
