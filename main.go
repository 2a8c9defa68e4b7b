package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const usage = `Generate pseudorandom numbers using MT19937 PRNG`

const usageTemplate = `Usage: {{.Name}} {{.ArgsUsage}}

  {{.Usage}}

Options:
  SEED: seed of the PRNG
  N: number of elements to generate
`

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "pseudorandom"
	app.Usage = usage
	app.ArgsUsage = "<SEED> <N>"
	app.CustomAppHelpTemplate = usageTemplate
	app.HideHelp = true
	app.HideVersion = true
	app.Writer = w
	app.Action = generateAction

	app.Before = func(ctx *cli.Context) error {
		// stdout carries the generated list, logs stay on stderr
		log.SetFormatter(&log.TextFormatter{})
		log.SetOutput(os.Stderr)
		log.SetLevel(log.WarnLevel)
		return nil
	}
	return app
}

func main() {
	Run(os.Args, os.Stdout)
}
