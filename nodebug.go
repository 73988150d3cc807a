//go:build !segmentdebug

package segment

const debug = false
