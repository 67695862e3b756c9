package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"Ordlist/pkg/util/app/version"
)

var (
	progressMessage = color.GreenString("==>")
	usageTemplate   = fmt.Sprintf(`%s{{if .Runnable}}
  %s{{end}}{{if .HasAvailableSubCommands}}
  %s{{end}}{{if gt (len .Aliases) 0}}

%s
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

%s
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

%s{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  %s {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

%s
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

%s
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

%s{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "%s --help" for more information about a command.{{end}}
`,
		color.CyanString("Usage:"),
		color.GreenString("{{.UseLine}}"),
		color.GreenString("{{.CommandPath}} [command]"),
		color.CyanString("Aliases:"),
		color.CyanString("Examples:"),
		color.CyanString("Available Commands:"),
		color.GreenString("{{rpad .Name .NamePadding }}"),
		color.CyanString("Flags:"),
		color.CyanString("Global Flags:"),
		color.CyanString("Additional help topics:"),
		color.GreenString("{{.CommandPath}} [command]"),
	)
)

// App is the main structure of a cli application.
// It is recommended that an app be created with the app.NewApp() function.
type App struct {
	name         string
	description  string
	options      CliOptions
	runFunc      RunFunc
	silence      bool
	noVersion    bool
	commands     []*Command
	configurable interface{}
}

// Option defines optional parameters for initializing the application
// structure.
type Option func(*App)

// WithOptions registers the flags of opt on the root command. They are
// inherited by every sub command.
func WithOptions(opt CliOptions) Option {
	return func(a *App) {
		a.options = opt
	}
}

// RunFunc defines the application's startup callback function.
type RunFunc func(basename string) error

// WithRunFunc is used to set the application startup callback function option.
func WithRunFunc(run RunFunc) Option {
	return func(a *App) {
		a.runFunc = run
	}
}

// WithDescription is used to set the description of the application.
func WithDescription(desc string) Option {
	return func(a *App) {
		a.description = desc
	}
}

// WithSilence sets the application to silent mode, in which the program
// startup information and configuration are never logged.
func WithSilence() Option {
	return func(a *App) {
		a.silence = true
	}
}

// WithNoVersion set the application does not provide version flag.
func WithNoVersion() Option {
	return func(a *App) {
		a.noVersion = true
	}
}

// WithConfiguration unmarshals the merged flags, environment and
// configuration file into conf before any command runs.
func WithConfiguration(conf interface{}) Option {
	return func(a *App) {
		a.configurable = conf
	}
}

// NewApp creates a new application instance based on the given application name,
// binary name, and other options.
func NewApp(name string, opts ...Option) *App {
	a := &App{
		name: name,
	}

	for _, o := range opts {
		o(a)
	}

	return a
}

// Run is used to launch the application.
func (a *App) Run() {
	defer klog.Flush()
	if err := a.Command().Execute(); err != nil {
		fmt.Printf("%v %v\n", color.RedString("Error:"), err)
		klog.Flush()
		os.Exit(1)
	}
}

// Command builds the cobra command tree of the application.
func (a *App) Command() *cobra.Command {
	initFlag()

	cmd := &cobra.Command{
		Use:               FormatBaseName(a.name),
		Long:              a.description,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.prepare,
	}
	cmd.SetUsageTemplate(usageTemplate)
	cmd.Flags().SortFlags = false
	if len(a.commands) > 0 {
		for _, command := range a.commands {
			cmd.AddCommand(command.cobraCommand())
		}
		cmd.SetHelpCommand(helpCommand(a.name))
	}
	if a.runFunc != nil {
		cmd.RunE = a.runCommand
	} else {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		}
	}

	fs := cmd.PersistentFlags()
	if a.options != nil {
		optionFlags := pflag.NewFlagSet(a.name, pflag.ContinueOnError)
		a.options.AddFlags(optionFlags)
		fs.AddFlagSet(optionFlags)
		if a.configurable != nil {
			// flags override env, env overrides the config file
			_ = viper.BindPFlags(optionFlags)
		}
	}
	if a.configurable != nil {
		addConfigFlag(a.name, fs)
	}
	addGoFlags(fs)

	if !a.noVersion {
		version.AddFlags(fs)
	}
	addHelpFlag(a.name, cmd.Flags())
	cmd.SetGlobalNormalizationFunc(wordSepNormalizeFunc)

	return cmd
}

// prepare runs before the root command and every sub command.
func (a *App) prepare(cmd *cobra.Command, args []string) error {
	if !a.noVersion {
		version.PrintAndExitIfRequested(a.name)
	}
	if !a.silence {
		klog.V(1).Infof("%v Starting %s...", progressMessage, a.name)
		wd, _ := os.Getwd()
		klog.V(1).Infof("%v WorkingDir: %s", progressMessage, wd)
		klog.V(1).Infof("%v Args: %v", progressMessage, os.Args)
	}

	if a.configurable != nil {
		if err := viper.Unmarshal(a.configurable); err != nil {
			return err
		}
		if !a.silence && klog.V(1).Enabled() {
			printConfig()
		}
	}

	if a.options != nil {
		if errs := a.options.Validate(); len(errs) > 0 {
			return errors.Join(errs...)
		}
	}

	if !a.silence && !a.noVersion {
		klog.V(1).Infof("%v Version: %s", progressMessage, version.Get())
	}
	return nil
}

func (a *App) runCommand(cmd *cobra.Command, args []string) error {
	return a.runFunc(a.name)
}

// AddCommand adds sub command to the application.
func (a *App) AddCommand(cmd *Command) {
	a.commands = append(a.commands, cmd)
}

// AddCommands adds multiple sub commands to the application.
func (a *App) AddCommands(cmds ...*Command) {
	a.commands = append(a.commands, cmds...)
}
