package stamps

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Header is the subset of a FITS header the trim selector needs:
// ordered key lookup with string-formatted values.
type Header interface {
	Value(key string) (string, bool)
}

// noTrimBox is the degenerate section some instruments write to mean
// "whole frame, nothing to trim".
const noTrimBox = "[0:0,0:0]"

// Trim cuts g down to the section named by the image header, trying
// each key in keys in order and using the first one present. A
// non-empty customBox bypasses the header entirely.
//
// Absent keys and syntactically malformed sections are recoverable:
// the grid is returned unchanged and a warning is logged. A
// well-formed section that falls outside the grid is a hard error.
func Trim(g *Grid, hdr Header, keys []string, customBox string) (*Grid, error) {
	section := customBox

	if section == "" {
		for _, key := range keys {
			if v, ok := hdr.Value(key); ok {
				section = v
				break
			}
		}
		if section == "" {
			slog.Warn("no trim section in image header, not trimming", "keys", strings.Join(keys, ","))
			return g, nil
		}
	}

	if section == noTrimBox {
		return g, nil
	}

	rows, cols, err := parseSection(section)
	if err != nil {
		slog.Warn("trim section not correctly set in image header, not trimming",
			"section", section, "error", err)
		return g, nil
	}

	// 1-indexed inclusive bounds: subtract 1 from the lower bound
	// only, the upper bound is already a half-open endpoint.
	trimmed, err := g.Sub(cols[0]-1, rows[0]-1, cols[1], rows[1])
	if err != nil {
		return nil, fmt.Errorf("trim section %q: %w", section, err)
	}
	return trimmed, nil
}

// parseSection parses a "[a:b,c:d]" section string into its row pair
// (a:b) and column pair (c:d).
func parseSection(s string) (rows, cols [2]int, err error) {
	body := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	pairs := strings.Split(body, ",")
	if len(pairs) != 2 {
		return rows, cols, fmt.Errorf("want two ranges, got %d", len(pairs))
	}

	if rows, err = parseRange(pairs[0]); err != nil {
		return rows, cols, err
	}
	if cols, err = parseRange(pairs[1]); err != nil {
		return rows, cols, err
	}
	return rows, cols, nil
}

func parseRange(s string) ([2]int, error) {
	var r [2]int
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return r, fmt.Errorf("range %q: want lo:hi", s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return r, fmt.Errorf("range %q: %w", s, err)
		}
		r[i] = v
	}
	return r, nil
}
