package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/sowilo/internal"
	"github.com/starford/sowilo/internal/convert"
	"github.com/starford/sowilo/internal/mcpserver"
	"github.com/starford/sowilo/internal/pptx"
	pkgconfig "github.com/starford/sowilo/pkg/config"
)

// defaultConfigFile is picked up from the working directory when --config
// is not given.
const defaultConfigFile = "sowilo.yaml"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to config file",
		Sources: cli.EnvVars("SOWILO_CONFIG_FILE"),
	}
}

func convertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "template",
			Aliases: []string{"t"},
			Usage:   "Template name (default, professional, modern, minimal, or a configured custom template)",
		},
		&cli.BoolFlag{
			Name:    "recursive",
			Aliases: []string{"r"},
			Usage:   "Include markdown files in subdirectories",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Enable debug logging",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
		},
	}
}

// loadConfig builds the effective config from defaults plus an optional file.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if path := cmd.String("config"); path != "" {
		if err := pkgconfig.Load(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		return cfg, nil
	}
	if err := pkgconfig.LoadIfPresent(defaultConfigFile, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// setupLogger configures the default logger for CLI commands. Logs go to
// stderr so generated output and the MCP protocol own stdout.
func setupLogger(cmd *cli.Command, cfg *internal.Config) {
	level := cfg.App.LogLevel
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	if cmd.Bool("quiet") {
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func newConverter(cfg *internal.Config) *convert.Converter {
	return convert.New(pptx.NewResolver(cfg.CustomTemplates()...))
}

func templateName(cmd *cli.Command, cfg *internal.Config) string {
	if t := cmd.String("template"); t != "" {
		return t
	}
	return cfg.Convert.DefaultTemplate
}

func runConvert(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cmd, cfg)

	if cmd.Args().Len() < 2 {
		return fmt.Errorf("usage: sowilo convert [flags] <input> <output>")
	}
	input := cmd.Args().Get(0)
	output := cmd.Args().Get(1)
	template := templateName(cmd, cfg)

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input %s: %w", input, err)
	}

	conv := newConverter(cfg)
	switch {
	case !info.IsDir():
		if err := requirePptxOutput(output); err != nil {
			return err
		}
		return conv.File(ctx, input, output, template)
	case cmd.Bool("separate"):
		_, err := conv.Separate(ctx, input, output, template, cmd.Bool("recursive"))
		return err
	default:
		if err := requirePptxOutput(output); err != nil {
			return err
		}
		return conv.Directory(ctx, input, output, template, cmd.Bool("recursive"))
	}
}

func requirePptxOutput(output string) error {
	if !strings.HasSuffix(strings.ToLower(output), ".pptx") {
		return fmt.Errorf("output %s must end with .pptx", output)
	}
	return nil
}

func runWatch(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cmd, cfg)

	if cmd.Args().Len() < 2 {
		return fmt.Errorf("usage: sowilo watch [flags] <input-dir> <output.pptx>")
	}
	input := cmd.Args().Get(0)
	output := cmd.Args().Get(1)

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input %s: %w", input, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch input %s is not a directory", input)
	}
	if err := requirePptxOutput(output); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return newConverter(cfg).Watch(ctx, input, output, templateName(cmd, cfg), cmd.Bool("recursive"), nil)
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}
	if port := int(cmd.Int("port")); port != 0 {
		opts = append(opts, internal.WithPort(port))
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// stdout carries the MCP protocol, so logs go to stderr at error level.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))

	resolver := pptx.NewResolver(cfg.CustomTemplates()...)
	srv := mcpserver.New(convert.New(resolver), resolver, cfg.Convert.DefaultTemplate)
	return srv.ServeStdio()
}

func main() {
	cmd := &cli.Command{
		Name:  "sowilo",
		Usage: "Convert Markdown documents into PowerPoint presentations",
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "Convert a markdown file or directory into a .pptx deck",
				ArgsUsage: "<input> <output>",
				Flags: append(convertFlags(),
					&cli.BoolFlag{
						Name:    "separate",
						Aliases: []string{"s"},
						Usage:   "Write one deck per markdown file instead of combining",
					},
					configFlag()),
				Action: runConvert,
			},
			{
				Name:      "watch",
				Usage:     "Rebuild the deck whenever markdown in a directory changes",
				ArgsUsage: "<input-dir> <output.pptx>",
				Flags:     append(convertFlags(), configFlag()),
				Action:    runWatch,
			},
			{
				Name:  "serve",
				Usage: "Run the HTTP conversion API",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "Override the configured HTTP port",
					},
				},
				Action: runServe,
			},
			{
				Name:   "mcp",
				Usage:  "Serve conversion tools over the Model Context Protocol on stdio",
				Flags:  []cli.Flag{configFlag()},
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
