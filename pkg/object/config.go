package object

import (
	"os"
	"strconv"
)

// Config hoists the experiment/build-config switches spec §9 calls
// out as needing a single runtime switch rather than a compile-time
// branch. Grounded on the teacher's environment-variable-backed flags
// in cache_prototype.go, generalized into one record instead of scattered
// package vars so a Heap's behavior is reproducible from its Config alone.
type Config struct {
	// FreezeBuiltinsFatalOnOverride selects the §4.3 putNamed branch
	// for a non-writable static-builtin slot: when true, writing to it
	// is a fatal condition rather than a catchable TypeError. Spec §9
	// Open Questions: the original distinguishes debug/release builds;
	// this core exposes it as the single switch the spec recommends.
	FreezeBuiltinsFatalOnOverride bool

	// MaxPolymorphicInlineCacheEntries bounds the inline-cache
	// population hook (§4) before a call site goes megamorphic.
	MaxPolymorphicInlineCacheEntries int

	// ForInCacheMaxExpansion bounds how many prototype-chain steps a
	// for-in cache's ProtoClasses prefix may record before the walk is
	// left uncached rather than pinning an unbounded chain (§4.8).
	ForInCacheMaxExpansion int
}

// DefaultConfig mirrors the teacher's default flag values.
func DefaultConfig() Config {
	return Config{
		FreezeBuiltinsFatalOnOverride: false,
		MaxPolymorphicInlineCacheEntries: 4,
		ForInCacheMaxExpansion:           4,
	}
}

// ConfigFromEnv overlays DefaultConfig with environment overrides, in
// the style of the teacher's getEnvBool/getEnvInt helpers.
func ConfigFromEnv() Config {
	c := DefaultConfig()
	if v, ok := envBool("OBJMODEL_FREEZE_BUILTINS_FATAL"); ok {
		c.FreezeBuiltinsFatalOnOverride = v
	}
	if v, ok := envInt("OBJMODEL_MAX_POLY_ENTRIES"); ok {
		c.MaxPolymorphicInlineCacheEntries = v
	}
	if v, ok := envInt("OBJMODEL_FORIN_CACHE_MAX_EXPANSION"); ok {
		c.ForInCacheMaxExpansion = v
	}
	return c
}

func envBool(key string) (bool, bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b, true
		}
	}
	return false, false
}

func envInt(key string) (int, bool) {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i, true
		}
	}
	return 0, false
}
