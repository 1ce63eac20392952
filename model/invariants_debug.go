//go:build lifedebug

package model

const debugInvariants = true
