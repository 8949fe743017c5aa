package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-dungeon/internal/level"
)

// sessionRequest is what an SSH client asked for on the command line.
type sessionRequest struct {
	seed      uint64
	architect *level.ArchitectKind
}

// parseSessionRequest reads an optional seed and architect name, in any order.
// Without a seed the current time is used.
func parseSessionRequest(args []string, now time.Time) (sessionRequest, error) {
	req := sessionRequest{seed: uint64(now.UnixNano())}
	seenSeed := false

	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		if seed, err := strconv.ParseUint(arg, 10, 64); err == nil {
			if seenSeed {
				return sessionRequest{}, fmt.Errorf("seed given twice: %q", arg)
			}
			req.seed = seed
			seenSeed = true
			continue
		}
		kind, err := level.ParseArchitectKind(arg)
		if err != nil {
			return sessionRequest{}, fmt.Errorf("usage: [seed] [architect]: %w", err)
		}
		if req.architect != nil {
			return sessionRequest{}, fmt.Errorf("architect given twice: %q", arg)
		}
		req.architect = &kind
	}
	return req, nil
}
