package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func categoryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "Category name"},
		&cli.StringFlag{Name: "slug", Usage: "Category slug"},
	}
}

func categoryInput(c *cli.Command) (model.CategoryInput, error) {
	in := model.CategoryInput{
		Name: c.String("name"),
		Slug: c.String("slug"),
	}
	if in.Name == "" || in.Slug == "" {
		return model.CategoryInput{}, goerr.New("--name and --slug are required")
	}
	return in, nil
}

func cmdCategories(a *app) *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "Manage FAQ categories",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List categories",
				Action: func(ctx context.Context, c *cli.Command) error {
					client, err := a.newClient()
					if err != nil {
						return err
					}
					categories, err := client.ListCategories(ctx)
					if err != nil {
						return err
					}
					renderCategories(a.out, categories)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create a category",
				Flags: categoryFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					in, err := categoryInput(c)
					if err != nil {
						return err
					}
					client, err := a.newClient()
					if err != nil {
						return err
					}
					category, err := client.CreateCategory(ctx, in)
					if err != nil {
						return err
					}
					renderCategories(a.out, []model.Category{*category})
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "Replace the name and slug of a category",
				ArgsUsage: "ID",
				Flags:     categoryFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					id, err := parseID(c)
					if err != nil {
						return err
					}
					in, err := categoryInput(c)
					if err != nil {
						return err
					}
					client, err := a.newClient()
					if err != nil {
						return err
					}
					category, err := client.UpdateCategory(ctx, id, in)
					if err != nil {
						return err
					}
					renderCategories(a.out, []model.Category{*category})
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a category",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Do not ask for confirmation"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					id, err := parseID(c)
					if err != nil {
						return err
					}

					ok, err := confirmerFor(c.Bool("yes"), a.in, a.out).Confirm(ctx, fmt.Sprintf("Delete category %d?", id))
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
					if err := client.DeleteCategory(ctx, id); err != nil {
						return err
					}
					fmt.Fprintf(a.out, "category %d deleted\n", id)
					return nil
				},
			},
		},
	}
}
