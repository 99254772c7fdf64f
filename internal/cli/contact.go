package cli

import (
	"context"
	stderrors "errors"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/showcase/pkg/contact"
	"github.com/matzehuels/showcase/pkg/errors"
)

// contactCommand creates the contact form command.
func (c *CLI) contactCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send and inspect contact messages",
	}

	cmd.AddCommand(c.contactSendCommand())
	cmd.AddCommand(c.contactShowCommand())

	return cmd
}

// contactSendCommand creates the "contact send" subcommand.
func (c *CLI) contactSendCommand() *cobra.Command {
	var sub contact.Submission

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit a message through the configured contact store",
		Example: `  showcase contact send --name Ada --email ada@example.com \
    --message "Loved the portfolio"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			store, err := contact.Open(ctx, cfg.Contact)
			if err != nil {
				return err
			}
			defer store.Close(context.WithoutCancel(ctx))

			msg, err := contact.NewService(store).Submit(ctx, sub)
			if err != nil {
				fields := contact.Fields(err)
				for _, name := range slices.Sorted(maps.Keys(fields)) {
					printError(c.Out, "%s", fields[name])
				}
				return err
			}

			printSuccess(c.Out, "Message sent")
			printKeyValue(c.Out, "ID", msg.ID)
			printKeyValue(c.Out, "Store", store.Name())
			printKeyValue(c.Out, "Timestamp", msg.Timestamp.Format("2006-01-02 15:04:05"))
			return nil
		},
	}

	cmd.Flags().StringVar(&sub.Name, "name", "", "sender name")
	cmd.Flags().StringVar(&sub.Email, "email", "", "sender email address")
	cmd.Flags().StringVarP(&sub.Message, "message", "m", "", "message body")

	return cmd
}

// contactShowCommand creates the "contact show" subcommand.
func (c *CLI) contactShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			store, err := contact.Open(ctx, cfg.Contact)
			if err != nil {
				return err
			}
			defer store.Close(context.WithoutCancel(ctx))

			msg, err := store.Get(ctx, args[0])
			if stderrors.Is(err, contact.ErrNotFound) {
				return errors.Wrap(errors.ErrCodeNotFound, err, "no message with id %s", args[0])
			}
			if err != nil {
				return err
			}

			printKeyValue(c.Out, "From", msg.Name+" <"+msg.Email+">")
			printKeyValue(c.Out, "Sent", msg.Timestamp.Format("2006-01-02 15:04:05"))
			printKeyValue(c.Out, "Read", boolWord(msg.Read))
			printDetail(c.Out, "%s", msg.Message)
			return nil
		},
	}
}

func boolWord(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
