package cli

import (
	"fmt"
	"io"
	"runtime/debug"
)

// printThirdParty lists the module's dependencies from the build info
// compiled into the binary.
func printThirdParty(outW io.Writer) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return &ExitError{Code: 1, Message: "build information is not available"}
	}

	for _, dep := range info.Deps {
		mod := dep
		if dep.Replace != nil {
			mod = dep.Replace
		}
		fmt.Fprintf(outW, "module: %s, version: %s\n", mod.Path, mod.Version)
	}
	return nil
}
