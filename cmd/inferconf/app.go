package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/gotd/td/bin"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/tdakkota/inferconf/inference"
	"github.com/tdakkota/inferconf/version"
)

type App struct {
	logger *zap.Logger
	out    io.Writer
}

func NewApp() *App {
	logger, _ := zap.NewDevelopment()
	return newApp(logger, os.Stdout)
}

func newApp(logger *zap.Logger, out io.Writer) *App {
	return &App{
		logger: logger,
		out:    out,
	}
}

// readOptions reads options map from YAML or JSON file. Empty path means no options.
func (app *App) readOptions(path string) (map[string]interface{}, error) {
	opts := map[string]interface{}{}
	if path == "" {
		return opts, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("failed to read options: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, xerrors.Errorf("failed to parse options %q: %w", path, err)
	}
	if opts == nil {
		opts = map[string]interface{}{}
	}

	app.logger.With(zap.String("path", path), zap.Int("keys", len(opts))).
		Debug("Read options")
	return opts, nil
}

// loadConfig parses config from options file. If type is not set, file must
// contain wrapped form like {"classification": {...}}.
func (app *App) loadConfig(c *cli.Context) (inference.Config, error) {
	opts, err := app.readOptions(c.Path("file"))
	if err != nil {
		return nil, err
	}

	var cfg inference.Config
	if name := c.String("type"); name != "" {
		cfg, err = inference.ParseConfig(name, opts)
	} else {
		cfg, err = inference.ParseNamedMap(opts)
	}
	if err != nil {
		return nil, xerrors.Errorf("failed to load config: %w", err)
	}

	app.logger.With(zap.String("name", cfg.Name()), zap.Uint64("hash", cfg.Hash())).
		Info("Loaded config")
	return cfg, nil
}

func (app *App) printJSON(cfg inference.Config) error {
	data, err := inference.MarshalNamedJSON(cfg)
	if err != nil {
		return xerrors.Errorf("failed to marshal: %w", err)
	}
	_, err = fmt.Fprintln(app.out, string(data))
	return err
}

func (app *App) printHex(cfg inference.Config, peer version.Version) error {
	b := bin.Buffer{}
	if err := inference.EncodeNamedFor(&b, cfg, peer); err != nil {
		return xerrors.Errorf("failed to encode: %w", err)
	}
	_, err := fmt.Fprintln(app.out, hex.EncodeToString(b.Buf))
	return err
}

func (app *App) peer(c *cli.Context) (version.Version, error) {
	if !c.IsSet("peer") {
		return version.Current, nil
	}
	v, err := version.Parse(c.String("peer"))
	if err != nil {
		return version.Version{}, xerrors.Errorf("failed to parse peer version: %w", err)
	}
	return v, nil
}

func (app *App) parse(c *cli.Context) error {
	cfg, err := app.loadConfig(c)
	if err != nil {
		return err
	}
	peer, err := app.peer(c)
	if err != nil {
		return err
	}

	switch format := c.String("format"); format {
	case "json":
		return app.printJSON(cfg)
	case "hex":
		return app.printHex(cfg, peer)
	case "both":
		if err := app.printJSON(cfg); err != nil {
			return err
		}
		return app.printHex(cfg, peer)
	default:
		return xerrors.Errorf("unknown format %q", format)
	}
}

func (app *App) decode(c *cli.Context) error {
	raw, err := hex.DecodeString(c.String("hex"))
	if err != nil {
		return xerrors.Errorf("failed to decode hex: %w", err)
	}

	b := &bin.Buffer{Buf: raw}
	cfg, err := inference.DecodeNamed(b)
	if err != nil {
		return xerrors.Errorf("failed to decode config: %w", err)
	}
	if len(b.Buf) > 0 {
		app.logger.With(zap.Int("trailing", len(b.Buf))).Warn("Trailing bytes after config")
	}

	return app.printJSON(cfg)
}

func (app *App) check(c *cli.Context) error {
	cfg, err := app.loadConfig(c)
	if err != nil {
		return err
	}
	peer, err := app.peer(c)
	if err != nil {
		return err
	}

	if c.IsSet("target") {
		target, err := inference.ParseTargetType(c.String("target"))
		if err != nil {
			return err
		}
		if !cfg.TargetTypeSupported(target) {
			return xerrors.Errorf("config %q does not support target type %q", cfg.Name(), target)
		}
	}

	if err := inference.CheckCompatible(cfg, peer); err != nil {
		return err
	}

	_, err = fmt.Fprintf(app.out, "%s: compatible with %s (requires %s)\n",
		cfg.Name(), peer, cfg.MinimalSupportedVersion())
	return err
}

const envPrefix = "INFERCONF_"

func (app *App) getEnvNames(names ...string) []string {
	r := make([]string, len(names))
	for i, name := range names {
		r[i] = envPrefix + name
	}
	return r
}

func (app *App) configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config.file",
			Value:   "inferconf.yml",
			Usage:   "path to config file",
			EnvVars: app.getEnvNames("CONFIG_FILE", "CONFIG"),
		},
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "type",
			Usage:   "inference config name, one of classification, regression",
			Aliases: []string{"t"},
			EnvVars: app.getEnvNames("TYPE"),
		}),
		altsrc.NewPathFlag(&cli.PathFlag{
			Name:    "file",
			Usage:   "path to YAML or JSON options file",
			Aliases: []string{"f"},
			EnvVars: app.getEnvNames("FILE"),
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "peer",
			Usage:   "peer version, defaults to current",
			EnvVars: app.getEnvNames("PEER"),
		}),
	}
}

func (app *App) commands() []*cli.Command {
	commands := []*cli.Command{
		{
			Name:        "parse",
			Description: "parses options and prints config",
			Flags: append(app.configFlags(),
				altsrc.NewStringFlag(&cli.StringFlag{
					Name:    "format",
					Value:   "both",
					Usage:   "output format: json, hex or both",
					EnvVars: app.getEnvNames("FORMAT"),
				}),
			),
			Action: app.parse,
		},
		{
			Name:        "check",
			Description: "checks that config can be sent to peer",
			Flags: append(app.configFlags(),
				&cli.StringFlag{
					Name:  "target",
					Usage: "model target type",
				},
			),
			Action: app.check,
		},
		{
			Name:        "decode",
			Description: "decodes binary config",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "hex",
					Required: true,
					Usage:    "hex-encoded config",
				},
			},
			Action: app.decode,
		},
	}

	app.addFileConfig("config.file", commands[0])
	app.addFileConfig("config.file", commands[1])
	return commands
}

func (app *App) addFileConfig(flagName string, command *cli.Command) {
	prev := command.Before

	command.Before = func(context *cli.Context) error {
		if prev != nil {
			err := prev(context)
			if err != nil {
				return err
			}
		}

		path := context.String(flagName)
		fileContext, err := altsrc.NewYamlSourceFromFile(path)
		if err != nil {
			app.logger.Debug("failed to load config from", zap.String("path", path))
			return nil
		}

		return altsrc.ApplyInputSourceValues(context, fileContext, command.Flags)
	}
}

func (app *App) cli() *cli.App {
	cliApp := &cli.App{
		Name:     "inferconf",
		Usage:    "Inspect and convert inference result configs",
		Commands: app.commands(),
		Writer:   app.out,
	}

	return cliApp
}

func (app *App) Run(args []string) error {
	return app.cli().Run(args)
}

func main() {
	if err := NewApp().Run(os.Args); err != nil {
		_, _ = os.Stdout.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
