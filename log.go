package memocache

import (
	"github.com/apex/log"
)

// logger receives the package's debug-level diagnostics: non-cacheable
// arguments, cache sweep activity. Purely observational; it never affects
// control flow.
var logger log.Interface = log.Log

// SetLogger replaces the diagnostic sink for this package. Passing nil
// restores the default apex/log root logger.
func SetLogger(l log.Interface) {
	if l == nil {
		l = log.Log
	}
	logger = l
}
