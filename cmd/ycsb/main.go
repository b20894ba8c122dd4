package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benchctl/ycsb"
	_ "github.com/benchctl/ycsb/binding"
)

var (
	propertyFiles []string
	properties    []string
	printStatus   bool
	tableName     string
	logLevel      string
	configFile    string
	threadCount   int
	target        float64
	statusLabel   string
)

func main() {
	root := &cobra.Command{
		Use:   "ycsb",
		Short: "A Go benchmarking client for key-value and cloud serving stores",
	}
	root.PersistentFlags().StringArrayVarP(&propertyFiles, "property-file", "P", nil, "workload property file (repeatable)")
	root.PersistentFlags().StringArrayVarP(&properties, "param", "p", nil, "a single property in key=value form (repeatable)")
	root.PersistentFlags().BoolVarP(&printStatus, "status", "s", false, "print periodic status to stderr")
	root.PersistentFlags().StringVar(&tableName, "table", ycsb.PropertyTableNameDefault, "table name to use")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: verbose, debug, info, warn, error, quiet")
	root.PersistentFlags().StringVar(&configFile, "config", "", "optional YAML config file merged under the workload properties")
	root.PersistentFlags().IntVar(&threadCount, "threads", 0, "number of client threads, overrides -p threadcount")
	root.PersistentFlags().Float64Var(&target, "target", 0, "target total operations per second across all threads, overrides -p target")
	root.PersistentFlags().StringVarP(&statusLabel, "label", "l", "", "label prefixed to each status line")
	viper.BindPFlag("status", root.PersistentFlags().Lookup("status"))

	root.AddCommand(
		newPhaseCommand("load", "Execute the load phase, populating the database", false),
		newPhaseCommand("run", "Execute the transaction phase against a loaded database", true),
		newShellCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPhaseCommand(name, short string, doTransactions bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <database>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildArguments(name, args[0])
			if err != nil {
				return err
			}
			if err := ycsb.SetLogLevel(logLevel); err != nil {
				return err
			}
			var client ycsb.Client
			if doTransactions {
				client = ycsb.NewRunner(a)
			} else {
				client = ycsb.NewLoader(a)
			}
			client.Main()
			return nil
		},
	}
}

func newShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell <database>",
		Short: "Interactively issue read/scan/update/insert/delete commands against a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildArguments("shell", args[0])
			if err != nil {
				return err
			}
			if err := ycsb.SetLogLevel(logLevel); err != nil {
				return err
			}
			ycsb.NewShell(a).Main()
			return nil
		},
	}
}

// buildArguments merges, in increasing priority order: built-in defaults
// (applied later via GetDefault), an optional YAML config file, every -P
// workload property file in order, every -p key=value override, and
// finally --threads/--target, which take precedence over any of the above.
func buildArguments(command, database string) (*ycsb.Arguments, error) {
	if _, ok := ycsb.Databases[database]; !ok {
		known := make([]string, 0, len(ycsb.Databases))
		for name := range ycsb.Databases {
			known = append(known, name)
		}
		return nil, fmt.Errorf("unknown database %q, known databases: %s", database, strings.Join(known, ", "))
	}

	props := ycsb.NewProperties()
	props.Add(ycsb.PropertyDB, database)
	props.Add(ycsb.PropertyTableName, tableName)

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		for k, v := range viper.AllSettings() {
			props.Add(k, fmt.Sprintf("%v", v))
		}
	}

	for _, path := range propertyFiles {
		fileProps, err := ycsb.LoadProperties(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load property file %s: %w", path, err)
		}
		props.Merge(fileProps)
	}

	for _, kv := range properties {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid -p value %q, expected key=value", kv)
		}
		props.Add(parts[0], parts[1])
	}

	// -threads and -target are first-class flags that override whatever the
	// property files or -p set, since a caller reaching for them on the
	// command line means it, not the workload file.
	if threadCount > 0 {
		props.Add(ycsb.PropertyThreadCount, fmt.Sprintf("%d", threadCount))
	}
	if target > 0 {
		props.Add(ycsb.PropertyTarget, fmt.Sprintf("%g", target))
	}

	options := map[string]string{}
	if printStatus {
		options["s"] = "true"
	}
	if statusLabel != "" {
		options["l"] = statusLabel
	}

	return &ycsb.Arguments{
		Command:    command,
		Database:   database,
		Options:    options,
		Properties: props,
	}, nil
}
