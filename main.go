package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	rg "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"quiz-client/board"
	"quiz-client/config"
	"quiz-client/game"
	qnet "quiz-client/quiz_net"
	w "quiz-client/window"
)

var (
	flagConfig   string
	flagPort     int
	flagLogLevel string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz-client [host]",
		Short: "Desktop client for the countries and cities quiz server",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runClient,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	cmd.Flags().IntVar(&flagPort, "port", 0, "server port")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges command line overrides on top of file and env values.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Server.Host = args[0]
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = flagPort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func initProgCtx(cfg *config.Config) *ProgCtx {
	ctx := &ProgCtx{
		Config:   cfg,
		Board:    board.New(),
		DoneChan: make(chan error, 1),
		Popup:    NewPopupManager(clockwork.NewRealClock()),
	}

	ctx.NetHandler = qnet.NewNetHandler(cfg.Net())
	ctx.Loop = game.NewLoop(cfg.Loop(), ctx.NetHandler, boardPresenter{ctx: ctx})
	ctx.Inputs = ctx.Loop.Inputs()

	buildUI(ctx)

	return ctx
}

func runClient(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	level, _ := cfg.LogLevel()
	zerolog.SetGlobalLevel(level)

	rl.SetConfigFlags(rl.FlagWindowResizable)

	const (
		screenWidth  int32 = 1000
		screenHeight int32 = 800
	)

	rl.InitWindow(screenWidth, screenHeight, "Quiz - Countries and Cities")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	ctx := initProgCtx(cfg)

	loopCtx, cancel := context.WithCancel(context.Background())
	ctx.Cancel = cancel

	log.Info().Str("addr", cfg.Net().Addr()).Msg("starting quiz client")

	// Start the "Game Thread"
	go func() {
		ctx.DoneChan <- ctx.Loop.Run(loopCtx)
	}()

	renderLoop(ctx, screenWidth, screenHeight)

	// --- Shutdown ---
	ctx.Cancel()
	if err := ctx.NetHandler.Close(); err != nil {
		log.Debug().Err(err).Msg("closing connection")
	}

	log.Info().Msg("waiting for game loop to shut down")
	if err := <-ctx.DoneChan; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("shutdown complete")
	return nil
}

func renderLoop(ctx *ProgCtx, screenWidth, screenHeight int32) {
	// meant for calculation/recalculation
	screenBounds := rl.Rectangle{
		X: 0, Y: 0,
		Width:  float32(screenWidth),
		Height: float32(screenHeight),
	}

	for !rl.WindowShouldClose() {
		if h := float32(rl.GetScreenHeight()); h != screenBounds.Height {
			screenBounds.Height = h
			ctx.UI.SetDirty()
		}
		if wd := float32(rl.GetScreenWidth()); wd != screenBounds.Width {
			screenBounds.Width = wd
			ctx.UI.SetDirty()
		}

		drainAlerts(ctx)
		ctx.Popup.Update()
		ctx.Popup.Calculate(screenBounds)

		ctx.BoardMutex.RLock()
		dialogOpen := ctx.Board.NicknamePrompt
		ctx.BoardMutex.RUnlock()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		uiEventChannel := make(chan w.UIEvent, 10)

		if dialogOpen {
			rg.Lock()
		}
		drawElement(&ctx.UI.Board, screenBounds, uiEventChannel)
		if dialogOpen {
			rg.Unlock()
		}
		drawElement(&ctx.UI.Nickname, screenBounds, uiEventChannel)

		// Draw popups
		ctx.Popup.Draw(uiEventChannel)

		rl.EndDrawing()

		close(uiEventChannel)
		for event := range uiEventChannel {
			if dialogOpen && event.SourceID != w.NicknameBoxID && event.SourceID != w.NicknameSubmitID {
				continue
			}
			handleUIEvent(ctx, event)
		}
	}
}

func drawElement(element *UIElement, screenBounds rl.Rectangle, eventChannel chan<- w.UIEvent) {
	if element.dirty {
		element.component.Calculate(screenBounds)
		element.dirty = false
	}
	element.component.Draw(eventChannel)
}
