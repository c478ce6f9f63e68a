// Topomesh builds structured finite-element meshes whose top surface
// follows a digital elevation model.
package main

import (
	"github.com/js-arias/command"

	"github.com/bollig/topomesh/cmd/topomesh/build"
	"github.com/bollig/topomesh/cmd/topomesh/info"
	"github.com/bollig/topomesh/cmd/topomesh/preview"
)

var app = &command.Command{
	Usage: "topomesh <command> [<argument>...]",
	Short: "a tool to build terrain-following structured meshes",
}

func init() {
	app.Add(build.Command)
	app.Add(info.Command)
	app.Add(preview.Command)
}

func main() {
	app.Main()
}
