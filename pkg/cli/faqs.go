package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdFAQs(a *app) *cli.Command {
	return &cli.Command{
		Name:  "faqs",
		Usage: "Manage FAQs",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List FAQs",
				Action: func(ctx context.Context, c *cli.Command) error {
					client, err := a.newClient()
					if err != nil {
						return err
					}
					faqs, err := client.ListFAQs(ctx)
					if err != nil {
						return err
					}
					renderFAQs(a.out, faqs)
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "Show one FAQ",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					id, err := parseID(c)
					if err != nil {
						return err
					}
					client, err := a.newClient()
					if err != nil {
						return err
					}
					faq, err := client.GetFAQ(ctx, id)
					if err != nil {
						return err
					}
					renderFAQ(a.out, faq)
					return nil
				},
			},
			cmdFAQCreate(a),
			cmdFAQUpdate(a),
			{
				Name:      "delete",
				Usage:     "Delete one FAQ",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Do not ask for confirmation"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					id, err := parseID(c)
					if err != nil {
						return err
					}

					ok, err := confirmerFor(c.Bool("yes"), a.in, a.out).Confirm(ctx, fmt.Sprintf("Delete FAQ %d?", id))
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(a.out, "cancelled")
						return nil
					}

					client, err := a.newClient()
					if err != nil {
						return err
					}
					if err := client.DeleteFAQ(ctx, id); err != nil {
						return err
					}
					fmt.Fprintf(a.out, "faq %d deleted\n", id)
					return nil
				},
			},
			{
				Name:  "reindex",
				Usage: "Rebuild the FAQ search index",
				Action: func(ctx context.Context, c *cli.Command) error {
					client, err := a.newClient()
					if err != nil {
						return err
					}
					if err := client.ReindexFAQs(ctx); err != nil {
						return err
					}
					fmt.Fprintln(a.out, "reindex requested")
					return nil
				},
			},
		},
	}
}

// faqFlags are the editable FAQ fields
func faqFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "question", Aliases: []string{"q"}, Usage: "Question text"},
		&cli.StringFlag{Name: "answer", Aliases: []string{"a"}, Usage: "Answer text"},
		&cli.Int64Flag{Name: "category-id", Usage: "Category ID"},
		&cli.BoolFlag{Name: "active", Usage: "Whether the FAQ is matched (--active=false to disable)"},
	}
}

func cmdFAQCreate(a *app) *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create an FAQ",
		Flags: faqFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			in := model.FAQCreate{
				Question: c.String("question"),
				Answer:   c.String("answer"),
			}
			if in.Question == "" || in.Answer == "" {
				return goerr.New("--question and --answer are required")
			}
			if c.IsSet("category-id") {
				in.CategoryID = model.Ptr(c.Int64("category-id"))
			}
			if c.IsSet("active") {
				in.IsActive = model.Ptr(c.Bool("active"))
			}

			client, err := a.newClient()
			if err != nil {
				return err
			}
			faq, err := client.CreateFAQ(ctx, in)
			if err != nil {
				return err
			}
			renderFAQ(a.out, faq)
			return nil
		},
	}
}

func cmdFAQUpdate(a *app) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update fields of an FAQ",
		ArgsUsage: "ID",
		Flags:     faqFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := parseID(c)
			if err != nil {
				return err
			}

			var in model.FAQUpdate
			if c.IsSet("question") {
				in.Question = model.Ptr(c.String("question"))
			}
			if c.IsSet("answer") {
				in.Answer = model.Ptr(c.String("answer"))
			}
			if c.IsSet("category-id") {
				in.CategoryID = model.Ptr(c.Int64("category-id"))
			}
			if c.IsSet("active") {
				in.IsActive = model.Ptr(c.Bool("active"))
			}
			if in == (model.FAQUpdate{}) {
				return goerr.New("nothing to update")
			}

			client, err := a.newClient()
			if err != nil {
				return err
			}
			faq, err := client.UpdateFAQ(ctx, id, in)
			if err != nil {
				return err
			}
			renderFAQ(a.out, faq)
			return nil
		},
	}
}
