// Command rfc9421 is the CLI entrypoint: keygen, sign, verify, and serve
// subcommands over the RFC 9421 HTTP Message Signatures toolkit.
package main

import "github.com/LeJamon/gorfc9421/internal/cli"

func main() {
	cli.Execute()
}
