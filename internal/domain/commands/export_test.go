package commands

// IsOlderVersion exports isOlderVersion for testing.
var IsOlderVersion = isOlderVersion //nolint:gochecknoglobals // test export

// SelectOverrides exports selectOverrides for testing.
var SelectOverrides = selectOverrides //nolint:gochecknoglobals // test export

// ResolveLanguageLevel exports resolveLanguageLevel for testing.
var ResolveLanguageLevel = resolveLanguageLevel //nolint:gochecknoglobals // test export
