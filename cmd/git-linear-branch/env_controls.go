package main

import (
	"os"
	"strings"
)

func envFlagEnabled(name string) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func debugEnabled() bool {
	return envFlagEnabled("GLB_DEBUG")
}

func colorDisabledByEnv() bool {
	return envFlagEnabled("GLB_NO_COLOR") || strings.TrimSpace(os.Getenv("NO_COLOR")) != ""
}
