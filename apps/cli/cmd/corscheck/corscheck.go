package corscheck

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zenGate-Global/yt-http-gateway/platform/go/cors"
)

// Command prints the headers the edge CORS filter sets for a request.
func Command() *cobra.Command {
	var method, origin string

	cmd := &cobra.Command{
		Use:   "cors",
		Short: "Show the CORS headers the edge sets for a method and origin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasOrigin := cmd.Flags().Changed("origin")
			return render(cmd.OutOrStdout(), cors.Decide(method, origin, hasOrigin))
		},
	}

	cmd.Flags().StringVar(&method, "method", "OPTIONS", "request method (case-sensitive)")
	cmd.Flags().StringVar(&origin, "origin", "", "Origin request header; omitted means no header")

	return cmd
}

func render(w io.Writer, d cors.Decision) error {
	if _, err := fmt.Fprintf(w, "outcome: %s\n", d.Outcome); err != nil {
		return err
	}
	for _, h := range d.Headers {
		if _, err := fmt.Fprintf(w, "%s: %s\n", h.Name, h.Value); err != nil {
			return err
		}
	}
	return nil
}
