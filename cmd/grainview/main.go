package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/wav-labs/grainview/internal/cliconfig"
	"github.com/wav-labs/grainview/internal/session"
	"github.com/wav-labs/grainview/internal/track"
	"github.com/wav-labs/grainview/internal/watch"
	"github.com/wav-labs/grainview/pkg/log"
)

const helpDescription = `
Inspect and edit the grain partition of a WAV track from the terminal.

Highlights:
  - Partitions a track into equal grains and renders any sample window.
  - Cuts are recorded in an edit log next to the track and replayed on reopen.
  - Follow mode re-renders when the track or edit log changes on disk.
  - Configure via file ($HOME/.grainview/config.toml), GRAINVIEW_* env, or flags.
`

var exampleUsage = strings.TrimSpace(`
  grainview info track.wav
  grainview view track.wav --from 1.5 --dur 4
  grainview view track.wav --follow
  grainview split track.wav --at 44100
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := log.NewZerologAdapter()

	// resolveConfig layers file and env config under explicitly set flags.
	resolveConfig := func(cmd *cobra.Command) error {
		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}
		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
				return err
			}
		}
		if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
			return err
		}
		return cfg.Validate()
	}

	openSession := func(path string) (*session.Session, error) {
		return session.New(path, session.Config{
			GrainSeconds: cfg.GrainSeconds,
			CaseRate:     cfg.CaseRate,
			ViewWidth:    cfg.ViewWidth,
			ViewHeight:   cfg.ViewHeight,
			StateDir:     cfg.StateDir,
		}, logger)
	}

	root := &cobra.Command{
		Use:     "grainview",
		Short:   "Inspect and edit the grain partition of a WAV track",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (default $HOME/.grainview/config.toml)")
	root.PersistentFlags().Float64Var(&cfg.GrainSeconds, "grain-seconds", cfg.GrainSeconds, "grain duration for the initial partition")
	root.PersistentFlags().IntVar(&cfg.CaseRate, "case-rate", cfg.CaseRate, "samples per rendered amplitude case")
	root.PersistentFlags().IntVar(&cfg.ViewWidth, "width", cfg.ViewWidth, "panel width in columns")
	root.PersistentFlags().IntVar(&cfg.ViewHeight, "height", cfg.ViewHeight, "panel height in rows")
	root.PersistentFlags().StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "edit log directory (default: next to the track)")
	root.PersistentFlags().DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "settle delay before re-rendering in follow mode")

	infoCmd := &cobra.Command{
		Use:   "info <track.wav>",
		Short: "Show track and grain partition details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveConfig(cmd); err != nil {
				return err
			}
			s, err := openSession(args[0])
			if err != nil {
				return err
			}
			audio := s.Audio()
			seq := s.Sequence()
			fmt.Printf("track:    %s\n", s.Path())
			fmt.Printf("samples:  %d (%.2fs at %d Hz)\n", audio.Len(), audio.Seconds(), audio.SampleRate)
			fmt.Printf("grains:   %d\n", len(seq))
			fmt.Printf("edit log: %s\n", track.StateFile(s.StateDir()))
			for i, g := range seq {
				fmt.Printf("  %3d  [%9d, %9d)  %d samples\n", i, g.Start, g.End, g.Len())
			}
			return nil
		},
	}

	var fromSec, durSec float64
	var follow bool
	viewCmd := &cobra.Command{
		Use:   "view <track.wav>",
		Short: "Render a sample window of the track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveConfig(cmd); err != nil {
				return err
			}
			if follow {
				cfg.Follow = true
			}
			s, err := openSession(args[0])
			if err != nil {
				return err
			}

			renderOnce := func() {
				fmt.Print(s.Render(s.ViewAt(fromSec, durSec)))
			}
			renderOnce()

			if !cfg.Follow {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.New(
				[]string{s.Path(), track.StateFile(s.StateDir())},
				cfg.DebounceDelay,
				logger,
				func() {
					if err := s.Reload(); err != nil {
						logger.Error("reload failed", log.Err(err))
						return
					}
					fmt.Println()
					renderOnce()
				},
			)
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()

			<-ctx.Done()
			return nil
		},
	}
	viewCmd.Flags().Float64Var(&fromSec, "from", 0, "window start in seconds")
	viewCmd.Flags().Float64Var(&durSec, "dur", 0, "window duration in seconds (0 = to end of track)")
	viewCmd.Flags().BoolVar(&follow, "follow", false, "re-render when the track or edit log changes")

	var atSample int64
	splitCmd := &cobra.Command{
		Use:   "split <track.wav>",
		Short: "Cut the grain containing a sample index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveConfig(cmd); err != nil {
				return err
			}
			s, err := openSession(args[0])
			if err != nil {
				return err
			}
			before := len(s.Sequence())
			if err := s.Split(atSample); err != nil {
				return err
			}
			if len(s.Sequence()) == before {
				fmt.Printf("no cut: %d is on a grain edge or outside the track\n", atSample)
				return nil
			}
			fmt.Printf("cut at sample %d: %d grains\n", atSample, len(s.Sequence()))
			return nil
		},
	}
	splitCmd.Flags().Int64Var(&atSample, "at", 0, "sample index to cut at")
	_ = splitCmd.MarkFlagRequired("at")

	root.AddCommand(infoCmd, viewCmd, splitCmd)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", log.Err(err))
		os.Exit(1)
	}
}
