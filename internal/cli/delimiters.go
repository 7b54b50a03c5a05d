package cli

import (
	"github.com/scbrown/codename/internal/codename"
	"github.com/spf13/cobra"
)

var delimiterNames = map[string]string{
	"-": "hyphen",
	",": "comma",
	"_": "underscore",
	"|": "pipe",
	";": "semicolon",
	":": "colon",
}

func newDelimitersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delimiters",
		Short: "List the allowed delimiters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := NewTable(cmd.OutOrStdout(), "DELIMITER", "NAME")
			for _, d := range codename.ValidDelimiters {
				tbl.Row(d, delimiterNames[d])
			}
			return tbl.Flush()
		},
	}
}
