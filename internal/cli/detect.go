package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-quickadd/pkg/quickparse"
)

var detectCmd = &cobra.Command{
	Use:   "detect [text...]",
	Short: "Check whether text contains any schedulable phrase",
	Long:  `Run the detection probe only: reports whether the text would parse into anything beyond a bare title, without printing the full parse.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if quickparse.LooksParseable(strings.Join(args, " ")) {
		fmt.Fprintln(w, okStyle.Render("parseable"))
		return nil
	}
	fmt.Fprintln(w, subtleStyle.Render("not parseable"))
	return nil
}
