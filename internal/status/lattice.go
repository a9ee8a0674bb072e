package status

// CanDerive reports whether a query at the requested untracked mode can be
// answered from a record captured at the recorded mode.
//
// Identity always derives. A "none" view is derivable from anything (it is
// empty). A "complete" record derives every other mode. All remaining pairs
// require a rescan: "normal" and "all" each lack information the other needs.
func CanDerive(recorded, requested UntrackedMode) bool {
	if requested == recorded {
		return true
	}
	if requested == UntrackedNone {
		return true
	}
	if recorded == UntrackedComplete {
		switch requested {
		case UntrackedNone, UntrackedNormal, UntrackedAll:
			return true
		}
	}
	return false
}

// IgnoredCompatible reports whether a record's ignored mode satisfies a
// query's. Ignored reporting has no coarser/finer relationship, so only an
// exact match is compatible.
func IgnoredCompatible(recorded, requested IgnoredMode) bool {
	return recorded == requested
}
