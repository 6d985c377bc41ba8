package memocache

import (
	"context"
	"errors"
	"iter"

	"github.com/goccy/go-reflect"

	"github.com/mitba/memo-cache/internal/iterutil"
)

// PopulateCache eagerly evaluates every memoized member of the owner, so all
// cacheable state is warm before a latency-sensitive phase.
//
// Members named in skip are left alone. A member that turns out to require
// arguments (ErrMissingArguments) is logged and skipped; any other
// computation failure aborts the sweep and propagates.
//
// Members registered for types the owner embeds are swept too, against the
// embedded value. A shadowed member name is warmed once, outermost first.
func PopulateCache(ctx context.Context, owner Owner, skip ...string) error {
	skipSet := make(map[string]struct{}, len(skip))
	for _, name := range skip {
		skipSet[name] = struct{}{}
	}

	members := iterutil.UniqBy(boundMembersOf(owner), func(b boundMember) string {
		return b.m.Name()
	})
	members = iterutil.Filter(members, func(b boundMember) bool {
		_, skipped := skipSet[b.m.Name()]
		return !skipped
	})

	for b := range members {
		logger.WithField("member", b.m.Name()).Debug("warming cached member")
		if err := b.m.warm(ctx, b.recv); err != nil {
			if errors.Is(err, ErrMissingArguments) {
				logger.WithField("member", b.m.Name()).WithError(err).
					Debug("cached member requires arguments, skipping")
				continue
			}
			return err
		}
	}
	return nil
}

type boundMember struct {
	m    member
	recv any
}

// boundMembersOf yields the members registered for the owner's type and for
// the types of its embedded anonymous fields, outermost first. Embedded
// fields yield their address when possible, so members bound to a pointer
// owner type find their receiver.
func boundMembersOf(owner Owner) iter.Seq[boundMember] {
	return func(yield func(boundMember) bool) {
		seen := map[reflect.Type]struct{}{}
		var walk func(v reflect.Value) bool
		walk = func(v reflect.Value) bool {
			t := v.Type()
			if _, ok := seen[t]; ok {
				return true
			}
			seen[t] = struct{}{}

			for _, m := range membersOf(t) {
				if !yield(boundMember{m: m, recv: v.Interface()}) {
					return false
				}
			}

			elem := v
			if t.Kind() == reflect.Ptr {
				if v.IsNil() {
					return true
				}
				elem = v.Elem()
			}
			if elem.Kind() != reflect.Struct {
				return true
			}
			et := elem.Type()
			for i := 0; i < et.NumField(); i++ {
				if !et.Field(i).Anonymous {
					continue
				}
				fv := elem.Field(i)
				if fv.Kind() != reflect.Ptr && fv.CanAddr() {
					fv = fv.Addr()
				}
				if !fv.CanInterface() {
					continue
				}
				if !walk(fv) {
					return false
				}
			}
			return true
		}
		walk(reflect.ValueOf(owner))
	}
}
