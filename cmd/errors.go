package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/ghsecrets/internal/configs"
	kerrors "github.com/PolarWolf314/ghsecrets/internal/errors"
	"github.com/PolarWolf314/ghsecrets/internal/ui"
)

// FormatError renders an error returned by a command for the terminal,
// with a hint where the fix is known.
func FormatError(err error) string {
	missingRepo := errors.Is(err, kerrors.ErrMissingRepo)
	missingToken := errors.Is(err, kerrors.ErrMissingToken)

	switch {
	case missingRepo && missingToken:
		return ui.FailureLine("Error: %s and %s must be set", configs.EnvRepo, configs.EnvToken) + "\n" +
			ui.HintLine("Export them or add them to %s", ui.Path.Sprint(configs.DefaultEnvFile))

	case missingRepo:
		return ui.FailureLine("Error: %s", kerrors.ErrMissingRepo) + "\n" +
			ui.HintLine("Export %s or pass %s", configs.EnvRepo, ui.Code.Sprint("--repo owner/name"))

	case missingToken:
		return ui.FailureLine("Error: %s", kerrors.ErrMissingToken) + "\n" +
			ui.HintLine("Export %s, or pass %s or %s", configs.EnvToken, ui.Code.Sprint("--token-stdin"), ui.Code.Sprint("--prompt-token"))

	case errors.Is(err, kerrors.ErrInvalidRepo):
		return ui.FailureLine("Error: %v", err) + "\n" +
			ui.HintLine("Use the owner/name form, e.g. %s", ui.Highlight.Sprint("octo-org/hello-world"))

	case errors.Is(err, kerrors.ErrInvalidSecretName):
		return ui.FailureLine("Error: %v", err) + "\n" +
			ui.HintLine("Secret names may only contain letters, digits and underscores")

	case errors.Is(err, kerrors.ErrInvalidApp):
		return ui.FailureLine("Error: %v", err) + "\n" +
			ui.HintLine("Valid values for %s are actions, dependabot and codespaces", ui.Code.Sprint("--app"))

	case errors.Is(err, kerrors.ErrSecretsFailed):
		return ui.FailureLine("%v", err)

	case errors.Is(err, os.ErrExist):
		return ui.FailureLine("Error: %v", err) + "\n" +
			ui.HintLine("Pass %s to overwrite it", ui.Code.Sprint("--force"))
	}

	var unknown *configs.UnknownKeysError
	if errors.As(err, &unknown) {
		return ui.FailureLine("Error: %v", err) + "\n" +
			ui.HintLine("Known keys are %s", strings.Join([]string{"secrets", "app", "api_url", "parallel", "timeout"}, ", "))
	}

	return ui.FailureLine("Error: %v", err)
}

// wrapf annotates err with a message while keeping it matchable with errors.Is.
func wrapf(err error, format string, a ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, a...), err)
}
