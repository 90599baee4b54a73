package glossary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/glossary/internal/version"
	"github.com/arthur-debert/glossary/pkg/config"
	"github.com/arthur-debert/glossary/pkg/errors"
	"github.com/arthur-debert/glossary/pkg/glossary"
	"github.com/arthur-debert/glossary/pkg/logging"
	"github.com/arthur-debert/glossary/pkg/pipeline"
	"github.com/arthur-debert/glossary/pkg/render"
	"github.com/arthur-debert/glossary/pkg/styles"
	"github.com/arthur-debert/glossary/pkg/ui"
	"github.com/arthur-debert/glossary/pkg/writer"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the file system documents and definitions are read from and
// output is written to.
var appFs = afero.NewOsFs()

// globalOptions holds the persistent flags shared by all commands.
type globalOptions struct {
	verbosity   int
	definitions string
	to          string
	popup       string
	style       string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "glossary",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help and report incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.definitions, "definitions", "d", "", MsgFlagDefinitions)
	rootCmd.PersistentFlags().StringVarP(&opts.to, "to", "t", "auto", MsgFlagTo)
	rootCmd.PersistentFlags().StringVar(&opts.popup, "popup", "", MsgFlagPopup)
	rootCmd.PersistentFlags().StringVar(&opts.style, "style", "auto", MsgFlagStyle)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newLookupCmd(opts))
	rootCmd.AddCommand(newTableCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// overrides turns flags into the highest configuration layer.
func (o *globalOptions) overrides() map[string]interface{} {
	m := map[string]interface{}{}
	if o.definitions != "" {
		m[config.KeyPath] = o.definitions
	}
	if o.popup != "" {
		m[config.KeyPopup] = o.popup
	}
	return m
}

func (o *globalOptions) backend(cmd *cobra.Command) (render.Backend, error) {
	target, err := ui.ParseTarget(o.to)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrInvalidInput, "invalid --to")
	}
	f, _ := cmd.OutOrStdout().(*os.File)
	return target.Resolve(f), nil
}

func (o *globalOptions) session(backend render.Backend) (*pipeline.Session, error) {
	defaults, err := config.LoadDefaults(appFs, ".", o.overrides())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadConfig)
	}
	return pipeline.NewSession(pipeline.Config{FS: appFs, Backend: backend, Defaults: defaults}), nil
}

func (o *globalOptions) writerOptions() writer.Options {
	opts := writer.DefaultOptions()
	if o.style != "" {
		opts.TerminalStyle = o.style
	}
	return opts
}

// readInputs reads the named documents, or standard input when there are
// none.
func readInputs(cmd *cobra.Command, paths []string) ([]pipeline.Input, error) {
	if len(paths) == 0 {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, MsgErrReadDocument, "standard input")
		}
		return []pipeline.Input{{Name: "stdin.md", Source: src}}, nil
	}

	inputs := make([]pipeline.Input, 0, len(paths))
	for _, p := range paths {
		src, err := afero.ReadFile(appFs, p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, MsgErrReadDocument, p).WithDetail("path", p)
		}
		inputs = append(inputs, pipeline.Input{Name: p, Source: src})
	}
	return inputs, nil
}

func outputPath(dir, name string, b render.Backend) string {
	base := filepath.Base(name)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+writer.Extension(b))
}

func writeOutput(path string, data []byte) error {
	if err := appFs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(path))
	}
	if err := afero.WriteFile(appFs, path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}

func reportFailure(w io.Writer, name string, err error) {
	fmt.Fprintf(w, MsgDocumentFailed, styles.Render("Path", name), styles.Render("Error", err.Error()))
}

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:     "render [files...]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := opts.backend(cmd)
			if err != nil {
				return err
			}
			session, err := opts.session(backend)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			log.Info().
				Int("documents", len(inputs)).
				Str("backend", backend.String()).
				Msg("Rendering documents")

			failed := 0
			for i, res := range session.RenderAll(inputs) {
				name := inputs[i].Name
				if res.Err != nil {
					failed++
					reportFailure(cmd.ErrOrStderr(), name, res.Err)
					continue
				}
				out, err := writer.Write(backend, res.Doc, opts.writerOptions())
				if err != nil {
					failed++
					reportFailure(cmd.ErrOrStderr(), name, err)
					continue
				}
				if outDir == "" {
					if _, err := cmd.OutOrStdout().Write(out); err != nil {
						return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
					}
					continue
				}
				path := outputPath(outDir, name, backend)
				if err := writeOutput(path, out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), MsgWroteFile, path)
			}

			if failed > 0 {
				return errors.Newf(errors.ErrRender, MsgErrRenderFailed, failed, len(inputs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", MsgFlagOut)
	return cmd
}

func newLookupCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "lookup <term>",
		Short:   MsgLookupShort,
		Long:    MsgLookupLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := opts.backend(cmd)
			if err != nil {
				return err
			}
			session, err := opts.session(backend)
			if err != nil {
				return err
			}

			path := session.Settings().Path
			defs, err := session.Reader().Load(path)
			if err != nil {
				return err
			}
			def, ok := defs.Lookup(glossary.Normalize(args[0]))
			if !ok {
				return errors.Newf(errors.ErrNotFound, MsgErrTermNotFound, args[0], path).
					WithDetail("term", args[0])
			}

			out := cmd.OutOrStdout()
			if backend == render.BackendTerminal {
				fmt.Fprintln(out, styles.Render("Term", args[0]))
				fmt.Fprint(out, writer.RenderMarkdown(def, opts.writerOptions()))
				return nil
			}
			fmt.Fprintln(out, def)
			return nil
		},
	}
}

func newTableCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "table",
		Short:   MsgTableShort,
		Long:    MsgTableLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := opts.backend(cmd)
			if err != nil {
				return err
			}
			session, err := opts.session(backend)
			if err != nil {
				return err
			}
			if err := session.RecordDefinitions(""); err != nil {
				return err
			}
			d, err := session.Table("glossary")
			if err != nil {
				return err
			}
			out, err := writer.Write(backend, d, opts.writerOptions())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "check <files...>",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.session(render.BackendMarkdown)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			var findings []pipeline.Finding
			for _, in := range inputs {
				found, err := session.Check(in.Name, in.Source)
				if err != nil {
					return err
				}
				findings = append(findings, found...)
			}

			out := cmd.OutOrStdout()
			if len(findings) == 0 {
				fmt.Fprint(out, MsgNoTerms)
				return nil
			}

			undefined := pipeline.Undefined(findings)
			rows := undefined
			if all {
				rows = findings
			}
			if len(rows) > 0 {
				table, err := findingsTable(rows)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, table)
			}

			if len(undefined) > 0 {
				return errors.Newf(errors.ErrUndefinedTerms, MsgErrUndefinedTerms, len(undefined))
			}
			fmt.Fprintf(out, MsgAllDefined, len(findings))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)
	return cmd
}

func findingsTable(findings []pipeline.Finding) (string, error) {
	data := pterm.TableData{{MsgCheckHeaderDoc, MsgCheckHeaderLine, MsgCheckHeaderTerm, MsgCheckHeaderDef}}
	for _, f := range findings {
		defined := styles.Render("Missing", "no")
		switch {
		case f.Explicit:
			defined = styles.Render("Success", "inline")
		case f.Defined:
			defined = styles.Render("Success", "yes")
		}
		data = append(data, []string{f.Document, fmt.Sprint(f.Line), styles.Render("Term", f.Term), defined})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
