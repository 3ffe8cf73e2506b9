//go:build !smallbitset_unchecked

package smallbitset

const checks = true
