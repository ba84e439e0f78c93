package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type LoginCmd struct{}

func (cmd *LoginCmd) Run(ctx *kong.Context, globals *Globals) error {
	rt, err := globals.setup("login")
	if err != nil {
		return err
	}
	defer rt.done(ctx)

	admin, err := globals.login(rt, ctx)
	if err != nil {
		return fail(ctx.Stderr, err)
	}

	level := "regular"
	if admin.AccessLevel > 1 {
		level = "super"
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Logged in as %s (%s admin)", admin.Username, level))

	return nil
}
