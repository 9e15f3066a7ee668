package schedule

import (
	"regexp"
	"strings"
)

var (
	roomPattern      = regexp.MustCompile(`([A-Za-z]+)(\d+[A-Za-z]?)`)
	roomExactPattern = regexp.MustCompile(`^([A-Za-z]+)(\d+[A-Za-z]?)$`)
)

// roomEndings are annex/lab markers that sometimes fuse into the building
// letters of a scraped room code ("THHLL101" is building THH), tried in order.
var roomEndings = []string{"B", "LL", "L", "G"}

// RoomMention is one room occurrence found inside a raw location field.
// A single field may embed several ("SCA214 SCAB105").
type RoomMention struct {
	Code   string // full room code, e.g. "THH101"
	Prefix string // leading alphabetic run, e.g. "THH"
}

// SplitLocation finds every room-code-shaped substring in a raw location
// field: letters followed by digits with an optional trailing letter.
func SplitLocation(rawText string) []RoomMention {
	var mentions []RoomMention
	for _, m := range roomPattern.FindAllStringSubmatch(rawText, -1) {
		mentions = append(mentions, RoomMention{Code: m[0], Prefix: m[1]})
	}
	return mentions
}

// ResolveBuildingPrefix extracts the building prefix of a room code and
// corrects it against the known building set. When the raw prefix is not a
// known code, each room ending is stripped in turn and the first stripped
// form that is known wins. An unresolved prefix is still returned so the
// meeting can be recorded under it, with the second return false to exclude
// it from building aggregation.
func ResolveBuildingPrefix(roomCode string, known map[string]string) (string, bool) {
	m := roomExactPattern.FindStringSubmatch(roomCode)
	if m == nil {
		return "", false
	}
	prefix := m[1]
	if _, ok := known[prefix]; ok {
		return prefix, true
	}
	for _, ending := range roomEndings {
		stripped := strings.TrimSuffix(prefix, ending)
		if stripped == prefix {
			continue
		}
		if _, ok := known[stripped]; ok {
			return stripped, true
		}
	}
	return prefix, false
}
