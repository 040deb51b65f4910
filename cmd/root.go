package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/maxvaer/webrecon/internal/config"
	"github.com/maxvaer/webrecon/internal/logging"
	"github.com/maxvaer/webrecon/internal/runner"
	"github.com/maxvaer/webrecon/pkg/version"
)

var opts config.Options

type flagGroup struct {
	title string
	flags []string
}

var helpGroups = []flagGroup{
	{"TARGET", []string{"url", "ports"}},
	{"TOOLS", []string{"tools", "wordlist", "probe-timeout"}},
	{"OUTPUT", []string{"output", "ffuf-output", "quiet", "no-color"}},
	{"LOGGING", []string{"log-file"}},
}

var rootCmd = &cobra.Command{
	Use:     "webrecon -u <url> [flags]",
	Short:   "Automated web reconnaissance pipeline over external scan tools",
	Version: version.Version,
	Long: `webrecon runs a fixed set of external security tools (nmap, whatweb,
wafw00f, ffuf, nikto) against a single target, normalizes each tool's
output, filters content-discovery wildcard noise, and consolidates the
results into a CSV report with a formatted console summary.

The external tools must be installed and on PATH; webrecon only
orchestrates them.`,
	Example: `  webrecon -u http://example.com
  webrecon -u http://example.com -p 80,443,8080
  webrecon -u http://example.com -t nmap,nikto
  webrecon -u http://example.com -t ffuf -w custom-wordlist.txt
  webrecon -u http://example.com -o report.csv --log-file ""`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Environment overrides (WEBRECON_URL, WEBRECON_TOOLS, ...).
		opts.URL = viper.GetString("url")
		opts.Ports = viper.GetString("ports")
		opts.Tools = viper.GetString("tools")
		opts.WordlistPath = viper.GetString("wordlist")
		opts.OutputFile = viper.GetString("output")
		opts.FfufOutput = viper.GetString("ffuf-output")
		opts.LogFile = viper.GetString("log-file")
		opts.Quiet = viper.GetBool("quiet")
		opts.NoColor = viper.GetBool("no-color")
		opts.ProbeTimeout = viper.GetDuration("probe-timeout")

		if opts.URL == "" {
			_ = cmd.Help()
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("target required: use -u")
		}
		if !strings.HasPrefix(opts.URL, "http://") && !strings.HasPrefix(opts.URL, "https://") {
			opts.URL = "http://" + opts.URL
		}
		for _, p := range strings.Split(opts.Ports, ",") {
			if _, err := strconv.Atoi(strings.TrimSpace(p)); err != nil {
				return fmt.Errorf("invalid port %q in --ports", p)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.Init(opts.LogFile, opts.NoColor)
		if err != nil {
			return err
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return runner.Run(ctx, &opts, log)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()

	// Target
	f.StringVarP(&opts.URL, "url", "u", "", "Target URL (e.g. http://example.com)")
	f.StringVarP(&opts.Ports, "ports", "p", "80,443", "Target port(s) for the service scan, comma-separated")

	// Tools
	f.StringVarP(&opts.Tools, "tools", "t", "all", "Tools to run: all | nmap,whatweb,wafw00f,ffuf,nikto")
	f.StringVarP(&opts.WordlistPath, "wordlist", "w", "", "Content-discovery wordlist path (default: built-in)")
	f.DurationVar(&opts.ProbeTimeout, "probe-timeout", 5*time.Second, "Timeout for the wildcard baseline probe")

	// Output
	f.StringVarP(&opts.OutputFile, "output", "o", "scan_results.csv", "CSV report path")
	f.StringVar(&opts.FfufOutput, "ffuf-output", "outputs/ffuf_result.json", "Path ffuf writes its JSON results to")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress spinner and console summary")
	f.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	// Logging
	f.StringVar(&opts.LogFile, "log-file", "scan.log", "JSON log file path (empty disables)")

	viper.SetEnvPrefix("WEBRECON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(f)

	// Custom help: categorized flags like httpx.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		w := os.Stderr
		fmt.Fprint(w, helpBanner(cmd.Version))
		fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.UseLine())
		fmt.Fprintf(w, "\nExamples:\n%s\n", cmd.Example)
		fmt.Fprintf(w, "\nFlags:\n")
		for _, g := range helpGroups {
			fmt.Fprintf(w, "\n%s:\n", g.title)
			for _, name := range g.flags {
				if f := cmd.Flags().Lookup(name); f != nil {
					fmt.Fprintln(w, formatFlag(f))
				}
			}
		}
		fmt.Fprintln(w)
	})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func formatFlag(f *pflag.Flag) string {
	var left string
	if f.Shorthand != "" {
		left = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	} else {
		left = fmt.Sprintf("    --%s", f.Name)
	}

	typ := f.Value.Type()
	if typ != "bool" {
		left += " " + typ
	}

	// Pad to fixed column width for aligned descriptions.
	const col = 36
	for len(left) < col {
		left += " "
	}

	right := f.Usage
	def := f.DefValue
	if def != "" && def != "false" && def != "0" && def != "0s" && def != "[]" {
		right += fmt.Sprintf(" (default %s)", def)
	}

	return "   " + left + right
}

func helpBanner(ver string) string {
	if ver != "dev" && ver != "" && !strings.HasPrefix(ver, "v") {
		ver = "v" + ver
	}
	return fmt.Sprintf(`
                __
 _      _____  / /_  ________  _________  ____
| | /| / / _ \/ __ \/ ___/ _ \/ ___/ __ \/ __ \
| |/ |/ /  __/ /_/ / /  /  __/ /__/ /_/ / / / /
|__/|__/\___/_.___/_/   \___/\___/\____/_/ /_/   %s

`, ver)
}
