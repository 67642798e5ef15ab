package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/CafeGargoyle/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Cafe Gargoyle"), kong.Description("CafeGargoyle is a cafe listing and review site."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
