package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/safe-browser/internal/allowlist"
	"github.com/ytget/safe-browser/internal/config"
	"github.com/ytget/safe-browser/internal/platform"
)

// Version is set via ldflags at build time.
var Version = "dev"

// session is the loaded configuration and store for one command run
type session struct {
	cfg   *config.Config
	store *allowlist.Store
}

// opener loads the configuration and the allow-list store
type opener func() (*session, error)

// NewRootCmd creates the allowlist command tree
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "allowlist",
		Short: "Manage the safe browser allow-list",
		Long: `allowlist edits the list of URL prefixes the safe browser may open.
The list is stored as JSON in the file named by store_path; a running
browser configured with the same file reloads it on change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigPath(), "config file path")

	open := func() (*session, error) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}

		store := allowlist.NewStore(platform.NewFileBackend(cfg.StorePath))
		store.Load()
		return &session{cfg: cfg, store: store}, nil
	}

	root.AddCommand(
		ListCmd(open),
		AddCmd(open),
		RemoveCmd(open),
		ImportCmd(open),
		ExportCmd(open),
		CheckCmd(open),
		VersionCmd(),
	)
	return root
}

// VersionCmd creates the version command
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of allowlist",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "allowlist %s\n", Version)
		},
	}
}
