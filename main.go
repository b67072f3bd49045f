package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/madesmac/portfolio/internal/ambient"
	"github.com/madesmac/portfolio/internal/config"
	"github.com/madesmac/portfolio/internal/contact"
	"github.com/madesmac/portfolio/internal/game"
)

var cfg = config.Load()

var pickMusic bool

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio hero with an animated constellation backdrop",
	Long: "Opens the portfolio window. The hero section is animated with a field of\n" +
		"drifting particles linked by proximity; scroll to the sections below.\n" +
		"Esc or Q quits.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := run(); err != nil {
			showError(err)
			return err
		}
		return nil
	},
}

var form contact.Form

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Validate a contact form submission with the site's rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		errs, err := contact.Validate(form)
		if err != nil {
			return err
		}
		if len(errs) == 0 {
			fmt.Println("contact form is valid")
			return nil
		}
		for _, field := range []string{"name", "email", "subject", "message"} {
			if msg, ok := errs[field]; ok {
				fmt.Printf("  %-8s %s\n", field+":", msg)
			}
		}
		return fmt.Errorf("%d invalid field(s)", len(errs))
	},
}

func init() {
	c := &cfg.Constellation
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "Window width.")
	flags.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "Window height.")
	flags.StringVar(&cfg.Name, "name", cfg.Name, "Name shown in the hero.")
	flags.StringSliceVar(&cfg.Roles, "roles", cfg.Roles, "Roles cycled in the hero headline.")
	flags.IntVar(&c.MaxParticles, "max-particles", c.MaxParticles, "Upper bound on the particle count.")
	flags.Float64Var(&c.DensityDivisor, "density", c.DensityDivisor, "Surface area per particle.")
	flags.Float64Var(&c.LinkDistance, "link-distance", c.LinkDistance, "Distance below which particles are linked.")
	flags.Float64Var(&c.LinkOpacity, "link-opacity", c.LinkOpacity, "Opacity of a link between touching particles.")
	flags.Float64Var(&c.PulseSpeed, "pulse-speed", c.PulseSpeed, "Pulse phase added per frame.")
	flags.DurationVar(&c.ResizeDebounce, "resize-debounce", c.ResizeDebounce, "Quiet time before a resize rebuilds the field.")
	flags.Float64Var(&c.MaxPixelRatio, "max-pixel-ratio", c.MaxPixelRatio, "Cap on the backing buffer's pixel ratio.")
	flags.Float64Var(&c.MinIntersection, "min-intersection", c.MinIntersection, "Visible fraction of the hero below which the backdrop pauses.")
	flags.BoolVar(&cfg.Capabilities.FinePointer, "cursor-effects", cfg.Capabilities.FinePointer, "Draw the custom cursor and grid spotlight.")
	flags.StringVar(&cfg.MusicPath, "music", cfg.MusicPath, "Ambient track to loop (wav, mp3 or flac).")
	flags.BoolVar(&pickMusic, "pick-music", false, "Choose the ambient track with a file dialog.")
	flags.BoolVar(&cfg.ShowHUD, "hud", cfg.ShowHUD, "Show particle count, gate state and FPS.")

	cf := contactCmd.Flags()
	cf.StringVar(&form.Name, "name", "", "Sender name.")
	cf.StringVar(&form.Email, "email", "", "Sender email.")
	cf.StringVar(&form.Subject, "subject", "", "Message subject.")
	cf.StringVar(&form.Message, "message", "", "Message body.")
	rootCmd.AddCommand(contactCmd)
}

func run() error {
	if pickMusic {
		path, err := zenity.SelectFile(
			zenity.Title("Choose an ambient track"),
			zenity.FileFilters{{
				Name:     "Audio",
				Patterns: []string{"*.wav", "*.mp3", "*.flac"},
			}},
		)
		switch {
		case errors.Is(err, zenity.ErrCanceled):
		case err != nil:
			return err
		default:
			cfg.MusicPath = path
		}
	}

	var music *ambient.Player
	if cfg.MusicPath != "" {
		p, err := ambient.Open(cfg.MusicPath, false)
		if err != nil {
			log.Printf("[WARN] ambient track disabled: %v", err)
		} else {
			music = p
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.FPS)
	if cfg.Capabilities.FinePointer {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	g := game.New(cfg, music)
	defer func() {
		if err := g.Close(); err != nil {
			log.Printf("[WARN] shutdown: %v", err)
		}
	}()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// showError reports a fatal error in a native dialog; the terminal may not be
// visible when the app is launched from a desktop shortcut.
func showError(err error) {
	msg := strings.TrimSpace(err.Error())
	if derr := zenity.Error(msg, zenity.Title(config.WindowTitle)); derr != nil {
		log.Printf("[ERROR] %s", msg)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
