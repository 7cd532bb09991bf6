package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdChat(a *app) *cli.Command {
	var debug bool

	return &cli.Command{
		Name:      "chat",
		Usage:     "Send one message to the chatbot",
		ArgsUsage: "MESSAGE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "Print the debug info returned by the backend",
				Destination: &debug,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			message := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if message == "" {
				return goerr.New("MESSAGE argument is required")
			}

			client, err := a.newClient()
			if err != nil {
				return err
			}

			resp, err := client.PostChat(ctx, model.ChatRequest{Message: message, Debug: debug})
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, resp.Answer)
			if debug && len(resp.DebugInfo) > 0 {
				var pretty map[string]any
				if err := json.Unmarshal(resp.DebugInfo, &pretty); err == nil {
					out, _ := json.MarshalIndent(pretty, "", "  ")
					fmt.Fprintln(a.out, string(out))
				} else {
					fmt.Fprintln(a.out, string(resp.DebugInfo))
				}
			}
			return nil
		},
	}
}
