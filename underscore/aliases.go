package underscore

// Alternative names for some operations. They are registered under the
// same names for use with [Wrapper.Call].

// ForEach is [Each].
func ForEach(list, iteratee any, context ...any) (any, error) {
	return Each(list, iteratee, context...)
}

// Collect is [Map].
func Collect(list, iteratee any, context ...any) ([]any, error) {
	return Map(list, iteratee, context...)
}

// CollectObject is [MapObject].
func CollectObject(object, iteratee any, context ...any) (any, error) {
	return MapObject(object, iteratee, context...)
}

// Inject is [Reduce].
func Inject(list, iteratee any, memoAndContext ...any) (any, error) {
	return Reduce(list, iteratee, memoAndContext...)
}

// Detect is [Find].
func Detect(list, predicate any, context ...any) (any, bool, error) {
	return Find(list, predicate, context...)
}

// Select is [Filter].
func Select(list, predicate any, context ...any) (any, error) {
	return Filter(list, predicate, context...)
}

// Any is [Some].
func Any(list, predicate any, context ...any) (bool, error) { return Some(list, predicate, context...) }

// Include is [Contains].
func Include(list, value any) (bool, error) { return Contains(list, value) }

// Unique is [Uniq].
func Unique(array, iteratee any, context ...any) (any, error) {
	return Uniq(array, iteratee, context...)
}

// Attribute is [Property].
func Attribute(key any) func(object any) (any, error) { return Property(key) }

// AttributeOf is [PropertyOf].
func AttributeOf(object any) func(key any) (any, error) { return PropertyOf(object) }
