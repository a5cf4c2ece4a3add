package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/safe-browser/internal/allowlist"
	"github.com/ytget/safe-browser/internal/model"
	"github.com/ytget/safe-browser/internal/platform"
)

// ListCmd creates the list command
func ListCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List allowed URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}

			urls := s.store.List()
			if len(urls) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No allowed URLs.")
				return nil
			}
			for _, u := range urls {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}

// AddCmd creates the add command
func AddCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "add <url>",
		Short: "Add a URL prefix; https:// is assumed when no scheme is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}

			urls, err := s.store.Add(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", urls[len(urls)-1])
			return nil
		},
	}
}

// RemoveCmd creates the remove command
func RemoveCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <url>",
		Short: "Remove an exact entry from the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}

			url := args[0]
			if !allowlist.Contains(s.store.List(), model.AllowedURL(url)) {
				fmt.Fprintf(cmd.OutOrStdout(), "Not in list: %s\n", url)
				return nil
			}
			if _, err := s.store.Remove(url); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", url)
			return nil
		},
	}
}

// ImportCmd creates the import command
func ImportCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge http(s) lines from a text file into the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}

			content, err := platform.ReadImportFile(args[0])
			if err != nil {
				return err
			}
			result, err := s.store.Import(content)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d URLs (%d new)\n", result.Accepted, result.Added)
			return nil
		},
	}
}

// ExportCmd creates the export command
func ExportCmd(open opener) *cobra.Command {
	var (
		dir    string
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the list to urls_<millis>.txt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}

			text := s.store.Export()
			if stdout {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			if dir == "" {
				dir = s.cfg.ExportDir
			}
			path, err := platform.WriteExportFile(dir, text, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default: export_dir from config)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the list instead of writing a file")
	return cmd
}

// CheckCmd creates the check command
func CheckCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "check <url>",
		Short: "Report whether a URL is allowed; exits non-zero when denied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}

			url := args[0]
			if !s.store.IsAllowed(url) {
				return &allowlist.AccessDeniedError{URL: url}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "allowed: %s\n", url)
			return nil
		},
	}
}
