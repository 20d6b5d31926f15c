package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"

	"github.com/aquasecurity/distro-info/config"
	"github.com/aquasecurity/distro-info/debian"
	"github.com/aquasecurity/distro-info/distroinfo"
	"github.com/aquasecurity/distro-info/ubuntu"
	"github.com/aquasecurity/distro-info/utils"
)

var (
	distro     = flag.String("distro", "ubuntu", "distribution (ubuntu, debian)")
	dateStr    = flag.String("date", "", "date for calculating the version (default: today, UTC)")
	configPath = flag.String("config", "", "config file path (default: $DISTRO_INFO_CONFIG or /etc/distro-info/config.yaml)")

	all         = flag.Bool("all", false, "list all known versions")
	develSel    = flag.Bool("devel", false, "current development version")
	latestSel   = flag.Bool("latest", false, "latest released version")
	stableSel   = flag.Bool("stable", false, "latest stable version")
	supported   = flag.Bool("supported", false, "list of all supported versions")
	unsupported = flag.Bool("unsupported", false, "list of all unsupported versions")
	ltsSel      = flag.Bool("lts", false, "list of all versions under long-term support")
	extended    = flag.Bool("extended", false, "list of all versions under extended support (ESM/ELTS)")
	series      = flag.String("series", "", "version matching the given series name")

	codename = flag.Bool("codename", false, "print the series name (default)")
	release  = flag.Bool("release", false, "print the version number")
	fullname = flag.Bool("fullname", false, "print the full name")
)

var distributions = []string{"ubuntu", "debian"}

type loader interface {
	Load() (*distroinfo.DistroInfo, error)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("distro-info: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.Parse()

	if !slices.Contains(distributions, *distro) {
		return xerrors.Errorf("unknown distribution %q", *distro)
	}

	selector, err := selectedQuery()
	if err != nil {
		return err
	}

	asOf, err := asOfDate(*dateStr)
	if err != nil {
		return err
	}

	appFs := afero.NewOsFs()
	cfg, err := config.Load(appFs, config.Path(*configPath))
	if err != nil {
		return xerrors.Errorf("config error: %w", err)
	}

	di, err := newLoader(appFs, cfg).Load()
	if err != nil {
		return xerrors.Errorf("failed to load %s release data: %w", *distro, err)
	}

	var releases []distroinfo.DistroRelease
	if selector == "series" {
		rel, err := di.Series(utils.TrimSpaceNewline(*series))
		if err != nil {
			return err
		}
		releases = []distroinfo.DistroRelease{rel}
	} else {
		if releases, err = di.Evaluate(selector, asOf); err != nil {
			return err
		}
	}

	for _, rel := range releases {
		fmt.Println(format(di.Name(), rel))
	}
	return nil
}

// selectedQuery maps the selector flags onto a single engine selector,
// requiring exactly one of them.
func selectedQuery() (string, error) {
	chosen := map[string]bool{
		distroinfo.SelectorAll:         *all,
		distroinfo.SelectorDevel:       *develSel,
		distroinfo.SelectorLatest:      *latestSel,
		distroinfo.SelectorStable:      *stableSel,
		distroinfo.SelectorSupported:   *supported,
		distroinfo.SelectorUnsupported: *unsupported,
		distroinfo.SelectorLTS:         *ltsSel,
		distroinfo.SelectorExtended:    *extended,
		"series":                       *series != "",
	}

	var selectors []string
	for name, on := range chosen {
		if on {
			selectors = append(selectors, name)
		}
	}

	if len(selectors) == 0 {
		return "", xerrors.New("one of -all, -devel, -latest, -stable, -supported, -unsupported, -lts, -extended or -series is required")
	}
	if len(selectors) > 1 {
		slices.Sort(selectors)
		return "", xerrors.Errorf("conflicting selectors: %v", selectors)
	}
	return selectors[0], nil
}

// asOfDate parses the -date flag, defaulting to today. The clock is read
// here and nowhere else; the engine only ever sees the explicit date.
func asOfDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, xerrors.Errorf("failed to parse date %q: %w", s, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

func newLoader(appFs afero.Fs, cfg config.Config) loader {
	if *distro == "debian" {
		opts := []debian.Option{debian.WithAppFs(appFs)}
		if cfg.Debian.CSVPath != "" {
			opts = append(opts, debian.WithCSVPath(cfg.Debian.CSVPath))
		}
		return debian.NewLoader(opts...)
	}

	opts := []ubuntu.Option{ubuntu.WithAppFs(appFs)}
	if cfg.Ubuntu.CSVPath != "" {
		opts = append(opts, ubuntu.WithCSVPath(cfg.Ubuntu.CSVPath))
	}
	return ubuntu.NewLoader(opts...)
}

func format(distribution string, rel distroinfo.DistroRelease) string {
	switch {
	case *fullname:
		return fmt.Sprintf("%s %s %q", distribution, rel.Version, rel.Codename)
	case *release:
		return rel.Version
	case *codename:
		return rel.Series
	}
	return rel.Series
}
