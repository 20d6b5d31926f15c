package distroinfo

import (
	"encoding/csv"
	"errors"
	"io"
	"time"

	"golang.org/x/xerrors"
)

const dateFormat = "2006-01-02"

// minFields covers version..eol; the two extended-support columns are
// optional and distribution-dependent.
const (
	minFields = 6
	maxFields = 8
)

// ParseCSV reads a distro-info-data CSV document and returns its rows in
// input order, oldest series first. A leading header row is skipped. The
// result is all-or-nothing: any malformed row or duplicate series/codename
// fails the whole parse.
func ParseCSV(r io.Reader) ([]DistroRelease, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	seenSeries := map[string]struct{}{}
	seenCodenames := map[string]struct{}{}

	var releases []DistroRelease
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, xerrors.Errorf("line %d: %v: %w", line, err, ErrMalformedRecord)
		}

		if line == 1 && record[0] == "version" {
			continue
		}

		rel, err := parseRecord(record)
		if err != nil {
			return nil, xerrors.Errorf("line %d: %w", line, err)
		}

		if _, ok := seenSeries[rel.Series]; ok {
			return nil, xerrors.Errorf("series %q: %w", rel.Series, ErrDuplicateEntry)
		}
		if _, ok := seenCodenames[rel.Codename]; ok {
			return nil, xerrors.Errorf("codename %q: %w", rel.Codename, ErrDuplicateEntry)
		}
		seenSeries[rel.Series] = struct{}{}
		seenCodenames[rel.Codename] = struct{}{}

		releases = append(releases, rel)
	}
	return releases, nil
}

func parseRecord(record []string) (DistroRelease, error) {
	if len(record) < minFields || len(record) > maxFields {
		return DistroRelease{}, xerrors.Errorf("expected %d to %d fields, got %d: %w",
			minFields, maxFields, len(record), ErrMalformedRecord)
	}

	rel := DistroRelease{
		Version:  record[0],
		Codename: record[1],
		Series:   record[2],
	}

	dates := []**time.Time{&rel.Created, &rel.Release, &rel.EOL, &rel.EOLLTS, &rel.EOLESM}
	for i, field := range record[3:] {
		d, err := parseDate(field)
		if err != nil {
			return DistroRelease{}, err
		}
		*dates[i] = d
	}
	return rel, nil
}

// parseDate parses a YYYY-MM-DD field; an empty field means the date is not
// applicable or not yet known, and is deliberately kept distinct from any
// sentinel value.
func parseDate(field string) (*time.Time, error) {
	if field == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(dateFormat, field, time.UTC)
	if err != nil {
		return nil, xerrors.Errorf("invalid date %q: %w", field, ErrMalformedRecord)
	}
	return &d, nil
}
