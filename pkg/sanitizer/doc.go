// Package sanitizer normalises guest-supplied contact details before they are
// logged or published.
//
// Every function is idempotent and never fails: input that cannot be
// normalised comes back as an empty string.
package sanitizer
