package backups

import (
	"strings"
	"time"
)

const timestampLayout = "2006-01-02T15-04-05"

var utc8 = time.FixedZone("UTC+8", 8*60*60)

// Timestamp renders t for use in a snapshot file name.
func Timestamp(t time.Time) string {
	return t.In(utc8).Format(timestampLayout)
}

// FileName returns the snapshot name for prefix at t.
func FileName(prefix string, t time.Time) string {
	return prefix + "-" + Timestamp(t) + ".json"
}

// timestampPart strips the prefix and extension from a snapshot name. Names
// that do not follow the pattern are returned without the extension.
func timestampPart(name string) string {
	base := strings.TrimSuffix(name, ".json")
	for _, p := range []string{PrefixAuto, PrefixManual} {
		if rest, ok := strings.CutPrefix(base, p+"-"); ok {
			return rest
		}
	}
	return base
}
