//go:build segmentdebug

package segment

// debug enables contract checks that panic on programmer error.
const debug = true
