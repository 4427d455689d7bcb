package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// Environment variables passing the global flags to extensions.
const (
	EnvConfigFile      = "FAP_CONFIG"
	EnvProvider        = "FAP_PROVIDER"
	EnvDefaultCurrency = "FAP_CURRENCY"
	EnvVerbose         = "FAP_VERBOSE"
)

// RunExtension attempts to find and execute an external fap-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "fap-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Global flags are passed as environment variables, empty ones are left
	// to the extension's own configuration.
	cmd.Env = os.Environ()
	for _, kv := range [][2]string{
		{EnvConfigFile, *configFile},
		{EnvProvider, *providerName},
		{EnvDefaultCurrency, *defaultCurrency},
	} {
		if kv[1] != "" {
			cmd.Env = append(cmd.Env, kv[0]+"="+kv[1])
		}
	}
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
