package dispatch

// MatchesAll reports whether candidate is a mapping holding every key of
// required with an [Equal] value. It returns false, never an error, when
// either argument is not a mapping.
func MatchesAll(candidate, required any) bool {
	cm, err := AsMap(candidate)
	if err != nil {
		return false
	}
	rm, err := AsMap(required)
	if err != nil {
		return false
	}
	matched := true
	rm.Range(func(key, want any) bool {
		got, ok := cm.Get(key)
		matched = ok && Equal(got, want)
		return matched
	})
	return matched
}
