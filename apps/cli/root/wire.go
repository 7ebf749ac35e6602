package root

import (
	"github.com/zenGate-Global/yt-http-gateway/apps/cli/cmd/corscheck"
)

func init() {
	Root().AddCommand(corscheck.Command())
}
