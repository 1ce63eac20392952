//go:build !lifedebug

package model

const debugInvariants = false
