package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/wangstu/pseudorandom/cmds"
	"github.com/wangstu/pseudorandom/utils"
)

const invalidArgs = "* Invalid Arguments /!\\\n\n"

/*
	1. wrong argument count: show usage
	2. unparsable seed or count: show notice and usage
	3. generate
	every path exits 0
*/
func generateAction(ctx *cli.Context) error {
	if len(ctx.Args()) != 2 {
		return cli.ShowAppHelp(ctx)
	}

	seed, err := utils.ParseInt32(ctx.Args().Get(0))
	if err == nil {
		var count int32
		count, err = utils.ParseInt32(ctx.Args().Get(1))
		if err == nil {
			logrus.Debugf("seed: %d, count: %d", seed, count)
			return errors.Wrap(cmds.Generate(ctx.App.Writer, utils.SeedFromInt32(seed), int(count)), "generate")
		}
	}

	logrus.Debugf("invalid arguments: %v", err)
	if _, err := fmt.Fprint(ctx.App.Writer, invalidArgs); err != nil {
		return errors.Wrap(err, "print invalid arguments notice")
	}
	return cli.ShowAppHelp(ctx)
}
