// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/audmood"
	"github.com/ik5/audmood/dsp"
	"github.com/ik5/audmood/internal/config"
)

type analyzeOptions struct {
	format string
	title  string
	artist string
}

func newAnalyzeCommand(a *app) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Estimate the mood of each file",
		Long: `Decodes every FILE, extracts its features and prints the estimated mood.
Files that cannot be decoded are reported with the mood "unknown".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.analyze(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.Int("workers", 0, "files analysed concurrently (default is the number of CPUs)")
	flags.Int("sample-rate", 0, "resample to this rate before analysis, 0 keeps the native rate")
	flags.Int("frame-size", dsp.DefaultConfig().FrameSize, "STFT frame size in samples")
	flags.Int("hop-size", dsp.DefaultConfig().HopSize, "STFT hop size in samples")
	flags.StringVarP(&opts.format, "format", "f", formatTable, "output format (table, json)")
	flags.StringVar(&opts.title, "title", "", "song title, only with a single FILE")
	flags.StringVar(&opts.artist, "artist", "", "song artist, only with a single FILE")

	bindFlags(a.v, flags, map[string]string{
		"workers":     config.KeyWorkers,
		"sample-rate": config.KeySampleRate,
		"frame-size":  config.KeyFrameSize,
		"hop-size":    config.KeyHopSize,
	})

	return cmd
}

func (a *app) analyze(cmd *cobra.Command, paths []string, opts analyzeOptions) error {
	if opts.format != formatTable && opts.format != formatJSON {
		return fmt.Errorf("%w: %q", errUnknownOutput, opts.format)
	}
	if len(paths) > 1 && (opts.title != "" || opts.artist != "") {
		return errSingleFileFlags
	}

	engine, err := dsp.NewSTFT(a.cfg.Analysis.Engine())
	if err != nil {
		return err
	}
	an := audmood.New(
		audmood.WithEngine(engine),
		audmood.WithLogger(a.log),
		audmood.WithSampleRate(a.cfg.Analysis.SampleRate),
		audmood.WithBufferSize(a.cfg.Analysis.BufferSize),
	)

	reports := analyzeAll(an, paths, a.cfg.Analysis.Workers, opts.title, opts.artist)

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		return writeJSON(out, reports)
	}
	return writeTable(out, reports)
}
