//go:build xlrudebug

package xlru

const debugChecks = true
