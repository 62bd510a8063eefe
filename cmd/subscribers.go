/*
Copyright © 2026 insights.codes hello@insights.codes
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listConfirmedOnly bool

var subscribersCmd = &cobra.Command{
	Use:     "subscribers",
	Aliases: []string{"subs"},
	Short:   "Manage the subscriber list",
}

var subscribersAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Add a subscriber",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subs, err := openSubscribers(GetConfig())
		if err != nil {
			return err
		}
		defer func() { _ = subs.Close() }()

		sub, err := subs.Add(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, okStyle.Render("✓ Subscribed: "+sub.Email))
		if !sub.Confirmed {
			fmt.Fprintln(out, dimStyle.Render("  confirm token: "+sub.ConfirmToken))
		}
		return nil
	},
}

var subscribersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscribers",
	RunE: func(cmd *cobra.Command, args []string) error {
		subs, err := openSubscribers(GetConfig())
		if err != nil {
			return err
		}
		defer func() { _ = subs.Close() }()

		list, err := subs.List(listConfirmedOnly)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, dimStyle.Render("No subscribers."))
			return nil
		}
		for _, sub := range list {
			status := warnStyle.Render("pending")
			if sub.Confirmed {
				status = okStyle.Render("confirmed")
			}
			fmt.Fprintf(out, "%-40s %s  %s\n", sub.Email, status, dimStyle.Render(sub.CreatedAt.Format("2006-01-02")))
		}
		fmt.Fprintf(out, "\n%d subscriber(s)\n", len(list))
		return nil
	},
}

var subscribersConfirmCmd = &cobra.Command{
	Use:   "confirm <token>",
	Short: "Confirm a subscription by token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subs, err := openSubscribers(GetConfig())
		if err != nil {
			return err
		}
		defer func() { _ = subs.Close() }()

		if err := subs.Confirm(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✓ Subscription confirmed"))
		return nil
	},
}

var subscribersRemoveCmd = &cobra.Command{
	Use:     "remove <email>",
	Aliases: []string{"rm"},
	Short:   "Remove a subscriber",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subs, err := openSubscribers(GetConfig())
		if err != nil {
			return err
		}
		defer func() { _ = subs.Close() }()

		if err := subs.Remove(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✓ Removed "+args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subscribersCmd)
	subscribersCmd.AddCommand(subscribersAddCmd, subscribersListCmd, subscribersConfirmCmd, subscribersRemoveCmd)
	subscribersListCmd.Flags().BoolVar(&listConfirmedOnly, "confirmed", false, "only list confirmed subscribers")
}
