package main

import (
	"errors"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"diamond-price-service/internal/adapters/secondary/codec"
	"diamond-price-service/internal/config"
	"diamond-price-service/internal/core/domain"
	"diamond-price-service/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

// errReported marks failures already rendered to the user; main only sets the exit code.
var errReported = errors.New("failure reported")

type rootOptions struct {
	fs       afero.Fs
	artifact string
	codecs   []string
	noColor  bool
	verbose  bool
}

func newRootCmd(cfg *config.Config, fs afero.Fs) *cobra.Command {
	opts := &rootOptions{fs: fs}

	cmd := &cobra.Command{
		Use:           "diamondctl",
		Short:         "Diamond price prediction from the terminal",
		Long:          "diamondctl loads a trained pricing pipeline and predicts a diamond's price\nfrom its carat, cut, color, clarity and dimensions.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initLogger(opts.verbose)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.artifact, "artifact", cfg.Artifact.Path, "Path to the trained pipeline artifact")
	f.StringSliceVar(&opts.codecs, "codecs", cfg.Artifact.Codecs, "Artifact codecs in the order they are tried")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log loader and prediction details to stderr")

	cmd.AddCommand(newPredictCmd(opts))
	cmd.AddCommand(newInspectCmd(opts))
	return cmd
}

func (o *rootOptions) loadArtifact() (domain.LoadResult, error) {
	codecs, err := codec.NewRegistry().Resolve(o.codecs)
	if err != nil {
		return nil, err
	}
	return services.NewArtifactLoader(o.fs, codecs...).Load(o.artifact), nil
}

func initLogger(verbose bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if !verbose {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(log.DebugLevel)
}
