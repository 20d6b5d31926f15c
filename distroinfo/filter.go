package distroinfo

import (
	"time"

	"github.com/samber/lo"
	"golang.org/x/xerrors"
)

// Selector names understood by Evaluate.
const (
	SelectorAll         = "all"
	SelectorLatest      = "latest"
	SelectorDevel       = "devel"
	SelectorStable      = "stable"
	SelectorSupported   = "supported"
	SelectorUnsupported = "unsupported"
	SelectorLTS         = "lts"
	SelectorExtended    = "extended"
)

// DistroInfo answers lifecycle queries against a loaded dataset. Every query
// takes an explicit as-of date; the engine never reads the system clock, so
// the same call yields the same answer for historical and future dates alike.
// The record slice is borrowed read-only and must not be mutated after New.
type DistroInfo struct {
	name     string
	releases []DistroRelease
	isLTS    func(DistroRelease) bool
}

// New wraps a loaded dataset. isLTS marks long-term-support series and is
// distribution-dependent (Ubuntu tags the version string, Debian has an
// eol-lts date); nil means the distribution has no LTS concept.
func New(name string, releases []DistroRelease, isLTS func(DistroRelease) bool) *DistroInfo {
	if isLTS == nil {
		isLTS = func(DistroRelease) bool { return false }
	}
	return &DistroInfo{
		name:     name,
		releases: releases,
		isLTS:    isLTS,
	}
}

func (d *DistroInfo) Name() string {
	return d.name
}

// All returns every record in dataset order, oldest first.
func (d *DistroInfo) All() []DistroRelease {
	return d.releases
}

// Series returns the record with the given series name.
func (d *DistroInfo) Series(name string) (DistroRelease, error) {
	rel, ok := lo.Find(d.releases, func(r DistroRelease) bool {
		return r.Series == name
	})
	if !ok {
		return DistroRelease{}, xerrors.Errorf("unknown distribution series %q: %w", name, ErrNoMatch)
	}
	return rel, nil
}

// Latest returns the greatest-version record released by the given date.
// Before the first release it falls back to the greatest-version record
// overall, so it only fails on an empty dataset.
func (d *DistroInfo) Latest(asOf time.Time) (DistroRelease, error) {
	released := lo.Filter(d.releases, func(r DistroRelease, _ int) bool {
		return r.Released(asOf)
	})
	if best, ok := greatest(released); ok {
		return best, nil
	}
	if best, ok := greatest(d.releases); ok {
		return best, nil
	}
	return DistroRelease{}, xerrors.Errorf("latest: %w", ErrNoMatch)
}

// Stable returns the greatest-version record that is within standard support
// at the given date.
func (d *DistroInfo) Stable(asOf time.Time) (DistroRelease, error) {
	supported := lo.Filter(d.releases, func(r DistroRelease, _ int) bool {
		return r.Supported(asOf)
	})
	best, ok := greatest(supported)
	if !ok {
		return DistroRelease{}, xerrors.Errorf("stable: %w", ErrNoMatch)
	}
	return best, nil
}

// Devel returns the nearest upcoming record: among those not yet released at
// the given date, the one with the smallest future release date, ties going
// to the greater version. When no candidate has a planned release date the
// first in dataset order wins, the dataset being chronological.
func (d *DistroInfo) Devel(asOf time.Time) (DistroRelease, error) {
	candidates := lo.Filter(d.releases, func(r DistroRelease, _ int) bool {
		return !r.Released(asOf)
	})
	if len(candidates) == 0 {
		return DistroRelease{}, xerrors.Errorf("devel: %w", ErrNoMatch)
	}

	dated := lo.Filter(candidates, func(r DistroRelease, _ int) bool {
		return r.Release != nil
	})
	if len(dated) == 0 {
		return candidates[0], nil
	}

	best := dated[0]
	for _, r := range dated[1:] {
		switch {
		case r.Release.Before(*best.Release):
			best = r
		case r.Release.Equal(*best.Release) && compareVersions(r.Version, best.Version) > 0:
			best = r
		}
	}
	return best, nil
}

// Supported returns every record within standard support at the given date,
// in dataset order. Boundary dates are inclusive: a record released or
// reaching EOL exactly on the as-of date counts as supported.
func (d *DistroInfo) Supported(asOf time.Time) []DistroRelease {
	return lo.Filter(d.releases, func(r DistroRelease, _ int) bool {
		return r.Supported(asOf)
	})
}

// Unsupported returns every released record whose standard support has ended
// by the given date, in dataset order.
func (d *DistroInfo) Unsupported(asOf time.Time) []DistroRelease {
	return lo.Filter(d.releases, func(r DistroRelease, _ int) bool {
		return r.Released(asOf) && r.EOL != nil && r.EOL.Before(asOf)
	})
}

// LTS returns every released long-term-support record whose LTS window is
// still open at the given date. The window closes at the eol-lts/eol-server
// date when the dataset has one, otherwise at the standard EOL.
func (d *DistroInfo) LTS(asOf time.Time) []DistroRelease {
	return lo.Filter(d.releases, func(r DistroRelease, _ int) bool {
		if !d.isLTS(r) || !r.Released(asOf) {
			return false
		}
		if r.EOLLTS != nil {
			return !r.EOLLTS.Before(asOf)
		}
		return r.EOL == nil || !r.EOL.Before(asOf)
	})
}

// Extended returns every released record whose extended-support window
// (eol-esm / eol-elts) is open at the given date. Only records past standard
// EOL or flagged long-term-support qualify; a record without the extended
// column has no extended offering at all.
func (d *DistroInfo) Extended(asOf time.Time) []DistroRelease {
	return lo.Filter(d.releases, func(r DistroRelease, _ int) bool {
		if !r.Released(asOf) || r.EOLESM == nil || r.EOLESM.Before(asOf) {
			return false
		}
		pastEOL := r.EOL != nil && r.EOL.Before(asOf)
		return pastEOL || d.isLTS(r)
	})
}

// Evaluate dispatches a selector by name, wrapping single-result selectors
// into a one-element slice for uniform consumption.
func (d *DistroInfo) Evaluate(selector string, asOf time.Time) ([]DistroRelease, error) {
	switch selector {
	case SelectorAll:
		return d.All(), nil
	case SelectorSupported:
		return d.Supported(asOf), nil
	case SelectorUnsupported:
		return d.Unsupported(asOf), nil
	case SelectorLTS:
		return d.LTS(asOf), nil
	case SelectorExtended:
		return d.Extended(asOf), nil
	case SelectorLatest:
		rel, err := d.Latest(asOf)
		if err != nil {
			return nil, err
		}
		return []DistroRelease{rel}, nil
	case SelectorStable:
		rel, err := d.Stable(asOf)
		if err != nil {
			return nil, err
		}
		return []DistroRelease{rel}, nil
	case SelectorDevel:
		rel, err := d.Devel(asOf)
		if err != nil {
			return nil, err
		}
		return []DistroRelease{rel}, nil
	}
	return nil, xerrors.Errorf("unknown selector %q", selector)
}

// greatest picks the record with the greatest version; among records whose
// versions compare equal (version-less rows) the later one wins, matching
// dataset chronology.
func greatest(releases []DistroRelease) (DistroRelease, bool) {
	if len(releases) == 0 {
		return DistroRelease{}, false
	}
	best := releases[0]
	for _, r := range releases[1:] {
		if compareVersions(r.Version, best.Version) >= 0 {
			best = r
		}
	}
	return best, true
}
