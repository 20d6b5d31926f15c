package distroinfo

import (
	"strings"

	version "github.com/hashicorp/go-version"
)

// Ubuntu LTS releases carry the suffix in the version column, e.g. "20.04 LTS".
var versionNormalizer = strings.NewReplacer(" LTS", "")

// compareVersions orders two version strings numerically, so that "9.10"
// sorts below "10.04". A version that is empty or unparseable (Debian's sid
// and experimental rows have no version) orders below every parseable one;
// two such versions compare equal and the caller's scan order decides, which
// matches dataset chronology.
func compareVersions(a, b string) int {
	av, aerr := version.NewVersion(versionNormalizer.Replace(a))
	bv, berr := version.NewVersion(versionNormalizer.Replace(b))
	switch {
	case aerr != nil && berr != nil:
		return 0
	case aerr != nil:
		return -1
	case berr != nil:
		return 1
	}
	return av.Compare(bv)
}
