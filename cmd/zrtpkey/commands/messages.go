package commands

import (
	"fmt"
	"os"

	"zrtpkey/internal/domain"
)

// readMessages loads the canonical encodings of Hello, Commit, DHPart1 and
// DHPart2 from four files, in that order.
func readMessages(paths []string) ([4]domain.Message, error) {
	var msgs [4]domain.Message
	if len(paths) != len(msgs) {
		return msgs, fmt.Errorf("want 4 message files (Hello, Commit, DHPart1, DHPart2), got %d", len(paths))
	}
	for i, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return msgs, err
		}
		msgs[i] = domain.RawMessage(b)
	}
	return msgs, nil
}

func parseZID(flag, s string) (domain.ZID, error) {
	b, err := parseHexFlag(flag, s)
	if err != nil {
		return domain.ZID{}, err
	}
	zid, err := domain.ParseZID(b)
	if err != nil {
		return domain.ZID{}, fmt.Errorf("--%s: %w", flag, err)
	}
	return zid, nil
}
