package htmlfixture

import (
	"fmt"

	"github.com/arthur-debert/htmlfixture/internal/version"
	"github.com/arthur-debert/htmlfixture/pkg/commands"
	"github.com/arthur-debert/htmlfixture/pkg/logging"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := commands.List(commands.ListOptions{FS: a.fs, Base: a.manager.Base()})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := newStyles(out)
			if len(names) == 0 {
				fmt.Fprintf(out, MsgNoFixtures, a.manager.Base())
				return nil
			}
			fmt.Fprint(out, st.render(st.header, fmt.Sprintf(MsgFixturesHeader, a.manager.Base())))
			for _, name := range names {
				fmt.Fprintf(out, MsgFixtureItem, name)
			}
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: MsgShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand("show", args)

			result, err := commands.Show(a.manager, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result.HTML)
			return nil
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Check(a.manager, commands.ListOptions{FS: a.fs})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := newStyles(out)
			for _, item := range result.Items {
				if item.OK() {
					fmt.Fprint(out, st.render(st.ok, fmt.Sprintf(MsgCheckOK, item.Name)))
				} else {
					fmt.Fprint(out, st.render(st.fail, fmt.Sprintf(MsgCheckFail, item.Name, item.Err)))
				}
			}

			failed := len(result.Failed())
			fmt.Fprint(out, st.render(st.muted, fmt.Sprintf(MsgCheckSummary, len(result.Items), failed)))
			if failed > 0 {
				return fmt.Errorf("%d fixtures failed the check", failed)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return nil
		},
	}
}
