// Package messenger manages the messaging provider credentials from the
// command line.
package messenger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/teamboard/teamboard/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/teamboard/teamboard/internal/interfaces/http"
)

var (
	opts      bootstrap.Options
	apiKey    string
	numberKey string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messenger",
		Short: "Messaging provider credentials",
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newConfigureCommand(), newStatusCommand())
	return cmd
}

func newConfigureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store the api key and number key as the default configuration",
		Long: `Encrypt and store the messaging provider credentials. When --api-key is
omitted the key is read from the terminal without echo.`,
		RunE: runConfigure,
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Provider api key")
	cmd.Flags().StringVar(&numberKey, "number-key", "", "Provider number key")
	_ = cmd.MarkFlagRequired("number-key")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the configured api key against the provider",
		RunE:  runStatus,
	}
}

func runConfigure(cmd *cobra.Command, args []string) error {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		read, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "API key: ")
		if err != nil {
			return err
		}
		key = read
	}

	rt, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	container, err := httpRouter.NewContainer(rt.DB, rt.Config, rt.Log)
	if err != nil {
		return err
	}
	defer container.Shutdown()

	if err := container.MessengerCredentials().SaveMessengerCredential(cmd.Context(), key, strings.TrimSpace(numberKey)); err != nil {
		return fmt.Errorf("failed to save messenger credentials: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Messenger credentials saved")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	container, err := httpRouter.NewContainer(rt.DB, rt.Config, rt.Log)
	if err != nil {
		return err
	}
	defer container.Shutdown()

	status, err := container.MessengerClient().CheckStatus(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Connected: %t\nMessage:   %s\n", status.Connected, status.Message)
	return nil
}

// readSecret reads one line, disabling echo when in is a terminal.
func readSecret(in io.Reader, prompt io.Writer, label string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read api key: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read api key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
