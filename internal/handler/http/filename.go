// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// secureFilename reduces a client-supplied file name to a safe base name:
// accents are decomposed and dropped, path separators and whitespace become
// underscores, and leading or trailing dots and underscores are removed.
// "../../etc/passwd" becomes "etc_passwd". The result may be empty.
func secureFilename(name string) string {
	name = norm.NFKD.String(name)

	name = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return ' '
		case r > 0x7f:
			return -1
		}
		return r
	}, name)

	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")

	return strings.Trim(name, "._")
}
