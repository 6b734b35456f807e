package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Settings passed to extensions.
const (
	EnvSeedDir = "BO_SEED_DIR"
	EnvStyle   = "BO_STYLE"
	EnvModel   = "BO_MODEL"
	EnvVerbose = "BO_VERBOSE"
)

// RunExtension attempts to find and execute an external bo-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "bo-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("extension", externalCmdName).Msg("extension not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass the global settings as environment variables.
	cmd.Env = append(os.Environ(),
		EnvConfig+"="+*configFile,
		EnvSeedDir+"="+settings.SeedDir,
		EnvStyle+"="+settings.Style,
		EnvModel+"="+settings.Model,
		EnvVerbose+"="+strconv.FormatBool(settings.Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
