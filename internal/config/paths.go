package config

import (
	"os"
	"regexp"
	"runtime"

	homedir "github.com/mitchellh/go-homedir"
)

// windowsVar matches %NAME% references.
var windowsVar = regexp.MustCompile(`%([^%]+)%`)

// expandPath expands $VAR references (and %VAR% on Windows) followed by a
// leading ~. Unresolvable paths are returned as expanded so far.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		p = expandPercentVars(p)
	}
	if expanded, err := homedir.Expand(p); err == nil {
		return expanded
	}
	return p
}

// expandPercentVars replaces %NAME% with the variable's value. Unknown
// names are kept verbatim.
func expandPercentVars(p string) string {
	return windowsVar.ReplaceAllStringFunc(p, func(ref string) string {
		if val, ok := os.LookupEnv(ref[1 : len(ref)-1]); ok {
			return val
		}
		return ref
	})
}

// homeDir returns the user's home directory, or "" when it is unknown.
func homeDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return home
}
