// Package memokey derives cache keys from call arguments.
//
// Two intentionally distinct keying schemes exist. The member scheme
// (ForMember) covers properties and instance methods: it folds the member
// identity, the positional values in order and the keyword values in
// name-sorted order into one digest. The call scheme (ForCall) covers free
// functions: there is no identity component, positional values hash in order
// and keyword pairs hash as an unordered set with their names included. The
// two schemes must never be mixed for the same binding.
//
// Arguments whose values have no stable identity (slices, maps, functions)
// cannot form a key; derivation reports ErrNotCacheable and the caller is
// expected to run the computation uncached.
package memokey
