package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// Environment variables read by fin and passed to its extensions.
const (
	EnvDataDir  = "FIN_DATA_DIR"
	EnvAPIURL   = "FIN_API_URL"
	EnvToken    = "FIN_TOKEN"
	EnvCurrency = "FIN_CURRENCY"
	EnvVerbose  = "FIN_VERBOSE"
)

// RunExtension attempts to find and execute an external fin-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "fin-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Global flags are passed as environment variables, resolved.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvDataDir+"="+setting(dataDir, EnvDataDir, defaultDataDir))
	cmd.Env = append(cmd.Env, EnvAPIURL+"="+setting(apiURL, EnvAPIURL, ""))
	cmd.Env = append(cmd.Env, EnvToken+"="+setting(apiToken, EnvToken, ""))
	cmd.Env = append(cmd.Env, EnvCurrency+"="+newFormatter().Currency)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(IsVerbose()))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0
}
