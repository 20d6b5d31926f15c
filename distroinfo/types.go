package distroinfo

import (
	"time"

	"golang.org/x/xerrors"
)

var (
	// ErrMalformedRecord is returned when a dataset row has the wrong number of
	// fields or an unparseable date.
	ErrMalformedRecord = xerrors.New("malformed record")

	// ErrDuplicateEntry is returned when two dataset rows share a series or
	// codename.
	ErrDuplicateEntry = xerrors.New("duplicate entry")

	// ErrNoMatch is returned by single-result selectors when no release
	// satisfies the predicate at the given date.
	ErrNoMatch = xerrors.New("no matching release")
)

// DistroRelease is one row of a distro-info-data dataset. Date fields are
// calendar dates at UTC midnight; a nil date means the field was empty in the
// dataset, which is distinct from any real date.
type DistroRelease struct {
	Version  string
	Codename string
	Series   string
	Created  *time.Time
	Release  *time.Time
	EOL      *time.Time

	// EOLLTS holds the first extended-support column (eol-server for Ubuntu,
	// eol-lts for Debian), EOLESM the second (eol-esm / eol-elts).
	EOLLTS *time.Time
	EOLESM *time.Time
}

// Released reports whether the release date exists and is on or before the
// given date.
func (r DistroRelease) Released(asOf time.Time) bool {
	return r.Release != nil && !r.Release.After(asOf)
}

// Supported reports whether the release is within standard support at the
// given date: released, and either no EOL is known yet or the EOL has not
// passed. An unknown EOL never means infinite support for an unreleased
// series.
func (r DistroRelease) Supported(asOf time.Time) bool {
	if !r.Released(asOf) {
		return false
	}
	return r.EOL == nil || !r.EOL.Before(asOf)
}
