package main

import (
	"fmt"
	"io/fs"
	"strconv"
)

// parseMode parses an octal chmod-style mode such as "0775" or "2750" into
// an fs.FileMode, mapping the setuid, setgid and sticky digits onto their
// fs.Mode* bits.
func parseMode(s string) (fs.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid mode %q: %w", s, err)
	}
	if v > 0o7777 {
		return 0, fmt.Errorf("invalid mode %q: out of range", s)
	}

	mode := fs.FileMode(v) & fs.ModePerm
	if v&0o4000 != 0 {
		mode |= fs.ModeSetuid
	}
	if v&0o2000 != 0 {
		mode |= fs.ModeSetgid
	}
	if v&0o1000 != 0 {
		mode |= fs.ModeSticky
	}
	return mode, nil
}
